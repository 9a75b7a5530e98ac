package analytics

import (
	"time"

	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/pkg/utils"
)

// BuildTrend gera um ponto por dia do recorte, em ordem crescente e sem
// lacunas. Dias sem movimento saem zerados.
func BuildTrend(scope *Scope) []domain.TrendPoint {
	dates := utils.GenerateDateRange(scope.Start, scope.End)

	points := make([]domain.TrendPoint, len(dates))
	indexByDate := make(map[string]int, len(dates))
	for i, date := range dates {
		key := date.Format(time.DateOnly)
		points[i] = domain.TrendPoint{Date: key}
		indexByDate[key] = i
	}

	for _, entry := range scope.AdSpend {
		if i, ok := indexByDate[utils.DayOf(entry.Date).Format(time.DateOnly)]; ok {
			points[i].Spend += entry.Spend
		}
	}

	for _, lead := range scope.Leads {
		if i, ok := indexByDate[utils.DayOf(lead.Date).Format(time.DateOnly)]; ok {
			points[i].Leads++
		}
	}

	for _, sale := range scope.Sales {
		if i, ok := indexByDate[utils.DayOf(sale.Date).Format(time.DateOnly)]; ok {
			points[i].Revenue += sale.Amount
			points[i].Profit += sale.Profit()
			points[i].Sales++
		}
	}

	for i := range points {
		points[i].Spend = utils.RoundWithTwoDecimalPlace(points[i].Spend)
		points[i].Revenue = utils.RoundWithTwoDecimalPlace(points[i].Revenue)
		points[i].Profit = utils.RoundWithTwoDecimalPlace(points[i].Profit)
	}

	return points
}

// BuildTrendResponse inclui a série do período anterior quando previous não é nulo
func BuildTrendResponse(current, previous *Scope) *domain.TrendResponse {
	response := &domain.TrendResponse{
		Current: BuildTrend(current),
	}
	if previous != nil {
		response.Previous = BuildTrend(previous)
	}
	return response
}

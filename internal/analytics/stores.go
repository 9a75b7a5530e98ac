package analytics

import (
	"sort"

	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/pkg/utils"
)

type storeAggregator struct {
	store              domain.Store
	revenue            float64
	profit             float64
	salesCount         int
	appointments       int
	closedAppointments int
}

func (a *storeAggregator) profitPerM2() float64 {
	return ProfitPerM2(a.profit, a.store.AreaM2)
}

// StoreRanking ordena as lojas do recorte por lucro por m² (decrescente, empate
// pelo menor ID) e sinaliza as que ficam abaixo de UnderperformingRatio × média.
// A média inclui a própria loja.
func StoreRanking(scope *Scope, thresholds Thresholds) *domain.StoreRankingResponse {
	response := &domain.StoreRankingResponse{
		Ranking: make([]domain.StoreRankingItem, 0, len(scope.Stores)),
	}
	if len(scope.Stores) == 0 {
		return response
	}

	aggregators := make([]*storeAggregator, 0, len(scope.Stores))
	byStore := make(map[int]*storeAggregator, len(scope.Stores))
	for _, store := range scope.Stores {
		agg := &storeAggregator{store: store}
		aggregators = append(aggregators, agg)
		byStore[store.ID] = agg
	}

	for _, sale := range scope.Sales {
		agg, ok := byStore[sale.StoreID]
		if !ok {
			continue
		}
		agg.revenue += sale.Amount
		agg.profit += sale.Profit()
		agg.salesCount++
	}

	for _, appointment := range scope.Appointments {
		agg, ok := byStore[appointment.StoreID]
		if !ok {
			continue
		}
		agg.appointments++
		if appointment.Outcome == domain.AppointmentSale {
			agg.closedAppointments++
		}
	}

	sort.Slice(aggregators, func(i, j int) bool {
		pi, pj := aggregators[i].profitPerM2(), aggregators[j].profitPerM2()
		if pi != pj {
			return pi > pj
		}
		return aggregators[i].store.ID < aggregators[j].store.ID
	})

	total := 0.0
	for _, agg := range aggregators {
		total += agg.profitPerM2()
	}
	average := total / float64(len(aggregators))
	threshold := average * thresholds.UnderperformingRatio

	for i, agg := range aggregators {
		response.Ranking = append(response.Ranking, domain.StoreRankingItem{
			StoreID:            agg.store.ID,
			StoreName:          agg.store.Name,
			City:               agg.store.City,
			AreaM2:             agg.store.AreaM2,
			Revenue:            utils.RoundWithTwoDecimalPlace(agg.revenue),
			SalesCount:         agg.salesCount,
			AverageTicket:      utils.RoundWithTwoDecimalPlace(utils.SafeDivide(agg.revenue, float64(agg.salesCount))),
			Appointments:       agg.appointments,
			ClosedAppointments: agg.closedAppointments,
			CloseRate:          utils.RoundWithTwoDecimalPlace(utils.Percentage(float64(agg.closedAppointments), float64(agg.appointments))),
			Profit:             utils.RoundWithTwoDecimalPlace(agg.profit),
			ProfitPerM2:        utils.RoundWithTwoDecimalPlace(agg.profitPerM2()),
			Position:           i + 1,
			Underperforming:    agg.profitPerM2() < threshold,
		})
	}

	response.AverageProfitPerM2 = utils.RoundWithTwoDecimalPlace(average)
	response.UnderperformingThreshold = utils.RoundWithTwoDecimalPlace(threshold)

	return response
}

// StoreHeatmap projeta o ranking no mapa. A intensidade é o lucro por m² da loja
// relativo à melhor loja, limitado a [0, 1].
func StoreHeatmap(scope *Scope, ranking *domain.StoreRankingResponse) []domain.StoreHeatmapPoint {
	points := make([]domain.StoreHeatmapPoint, 0, len(ranking.Ranking))
	if len(ranking.Ranking) == 0 {
		return points
	}

	top := ranking.Ranking[0].ProfitPerM2

	for _, item := range ranking.Ranking {
		store, ok := scope.Dataset.StoreByID(item.StoreID)
		if !ok {
			continue
		}

		intensity := 0.0
		if top > 0 && item.ProfitPerM2 > 0 {
			intensity = utils.RoundWithTwoDecimalPlace(item.ProfitPerM2 / top)
		}

		points = append(points, domain.StoreHeatmapPoint{
			StoreID:     item.StoreID,
			StoreName:   item.StoreName,
			City:        item.City,
			Latitude:    store.Latitude,
			Longitude:   store.Longitude,
			Revenue:     item.Revenue,
			ProfitPerM2: item.ProfitPerM2,
			Intensity:   intensity,
		})
	}

	return points
}

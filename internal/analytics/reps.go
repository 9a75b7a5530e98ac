package analytics

import (
	"sort"

	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/pkg/utils"
)

type repAggregator struct {
	rep                domain.SalesRep
	appointments       int
	closedAppointments int
	salesCount         int
	revenue            float64
}

// SalesRepRanking ordena os vendedores por receita e monta as listas de alerta.
// Precisa de treinamento quem tem conversão no intervalo (0, NeedsTrainingRate];
// conversão zero (sem fechamento ou sem atendimento) não entra no alerta.
func SalesRepRanking(scope *Scope, thresholds Thresholds) *domain.SalesRepRankingResponse {
	response := &domain.SalesRepRankingResponse{
		Ranking:       make([]domain.SalesRepRankingItem, 0, len(scope.SalesReps)),
		NeedsTraining: make([]domain.SalesRepRankingItem, 0),
		OverTarget:    make([]domain.SalesRepRankingItem, 0),
		RevenueTarget: thresholds.RepRevenueTarget,
	}

	aggregators := make([]*repAggregator, 0, len(scope.SalesReps))
	byRep := make(map[int]*repAggregator, len(scope.SalesReps))
	for _, rep := range scope.SalesReps {
		agg := &repAggregator{rep: rep}
		aggregators = append(aggregators, agg)
		byRep[rep.ID] = agg
	}

	for _, appointment := range scope.Appointments {
		agg, ok := byRep[appointment.SalesRepID]
		if !ok {
			continue
		}
		agg.appointments++
		if appointment.Outcome == domain.AppointmentSale {
			agg.closedAppointments++
		}
	}

	for _, sale := range scope.Sales {
		agg, ok := byRep[sale.SalesRepID]
		if !ok {
			continue
		}
		agg.salesCount++
		agg.revenue += sale.Amount
	}

	sort.Slice(aggregators, func(i, j int) bool {
		if aggregators[i].revenue != aggregators[j].revenue {
			return aggregators[i].revenue > aggregators[j].revenue
		}
		return aggregators[i].rep.ID < aggregators[j].rep.ID
	})

	for i, agg := range aggregators {
		conversion := utils.Percentage(float64(agg.closedAppointments), float64(agg.appointments))

		storeName := ""
		if store, ok := scope.Dataset.StoreByID(agg.rep.StoreID); ok {
			storeName = store.Name
		}

		item := domain.SalesRepRankingItem{
			SalesRepID:         agg.rep.ID,
			Name:               agg.rep.Name,
			StoreID:            agg.rep.StoreID,
			StoreName:          storeName,
			Appointments:       agg.appointments,
			ClosedAppointments: agg.closedAppointments,
			SalesCount:         agg.salesCount,
			Revenue:            utils.RoundWithTwoDecimalPlace(agg.revenue),
			ConversionRate:     utils.RoundWithTwoDecimalPlace(conversion),
			AverageTicket:      utils.RoundWithTwoDecimalPlace(utils.SafeDivide(agg.revenue, float64(agg.salesCount))),
			Position:           i + 1,
			NeedsTraining:      needsTraining(conversion, thresholds.NeedsTrainingRate),
			OverTarget:         agg.revenue > thresholds.RepRevenueTarget,
		}

		response.Ranking = append(response.Ranking, item)
		if item.NeedsTraining {
			response.NeedsTraining = append(response.NeedsTraining, item)
		}
		if item.OverTarget {
			response.OverTarget = append(response.OverTarget, item)
		}
	}

	return response
}

// needsTraining compara o limite superior com a taxa exibida, para que um
// vendedor mostrado com exatamente o limite seja incluído
func needsTraining(conversion, rate float64) bool {
	return conversion > 0 && utils.RoundWithTwoDecimalPlace(conversion) <= rate
}

package analytics

import (
	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/pkg/utils"
)

const (
	SourceStageLead        = "lead"
	SourceStageAppointment = "appointment"
	SourceStageSale        = "sale"
)

var sourceStages = []string{SourceStageLead, SourceStageAppointment, SourceStageSale}

type sourceAggregator struct {
	leads        int
	appointments int
	sold         int
	salesCount   int
	revenue      float64
}

// LeadSourceBreakdown agrega leads e vendas por origem, com o funil
// lead → agendamento → venda. A linha inteira usa a coorte de leads do período:
// a receita vem das vendas desses leads, mesmo quando fechadas depois do fim do
// período. Com filtro de canal só a origem paga do canal aparece.
func LeadSourceBreakdown(scope *Scope) []domain.LeadSourceMetrics {
	aggregators := make(map[domain.LeadSource]*sourceAggregator, len(domain.LeadSources))
	for _, source := range domain.LeadSources {
		aggregators[source] = &sourceAggregator{}
	}

	cohort := make(map[int]domain.LeadSource, len(scope.Leads))
	for _, lead := range scope.Leads {
		agg, ok := aggregators[lead.Source]
		if !ok {
			continue
		}
		agg.leads++
		cohort[lead.ID] = lead.Source

		depth := lead.Status.FunnelDepth()
		if depth >= 1 {
			agg.appointments++
		}
		if lead.Status == domain.LeadStatusSold {
			agg.sold++
		}
	}

	for _, sale := range scope.Dataset.Sales {
		if sale.LeadID == nil {
			continue
		}
		source, ok := cohort[*sale.LeadID]
		if !ok {
			continue
		}
		agg := aggregators[source]
		agg.salesCount++
		agg.revenue += sale.Amount
	}

	rows := make([]domain.LeadSourceMetrics, 0, len(domain.LeadSources))
	for _, source := range domain.LeadSources {
		if !matchesSource(scope.Filters.Channel, source, true) {
			continue
		}

		agg := aggregators[source]
		rows = append(rows, domain.LeadSourceMetrics{
			Source:            source,
			Leads:             agg.leads,
			Appointments:      agg.appointments,
			Sales:             agg.sold,
			ConversionRate:    utils.RoundWithTwoDecimalPlace(ConversionRate(agg.sold, agg.leads)),
			Revenue:           utils.RoundWithTwoDecimalPlace(agg.revenue),
			AvgRevenuePerSale: utils.RoundWithTwoDecimalPlace(utils.SafeDivide(agg.revenue, float64(agg.salesCount))),
			Funnel:            buildStages(sourceStages, []int{agg.leads, agg.appointments, agg.sold}),
		})
	}

	return rows
}

package analytics

import (
	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/pkg/utils"
)

// BuildKPISummary monta os KPIs do recorte. Com previous nulo nenhuma
// comparação é calculada.
func BuildKPISummary(current, previous *Scope, thresholds Thresholds) *domain.KPISummary {
	cur := Calculate(current)

	summary := &domain.KPISummary{
		Period: current.Period(),
	}

	var prev *Snapshot
	if previous != nil {
		snapshot := Calculate(previous)
		prev = &snapshot
		period := previous.Period()
		summary.PreviousPeriod = &period
	}

	kpi := func(value func(Snapshot) float64, invert bool) domain.KPI {
		result := domain.KPI{Value: utils.RoundWithTwoDecimalPlace(value(cur))}
		if prev != nil {
			comparison := Compare(value(cur), value(*prev), invert, thresholds.ComparisonEpsilon)
			result.Comparison = &comparison
		}
		return result
	}

	summary.AdSpend = kpi(func(s Snapshot) float64 { return s.AdSpend }, true)
	summary.Revenue = kpi(func(s Snapshot) float64 { return s.Revenue }, false)
	summary.LeadRevenue = kpi(func(s Snapshot) float64 { return s.LeadRevenue }, false)
	summary.Profit = kpi(func(s Snapshot) float64 { return s.Profit }, false)
	summary.ROAS = kpi(func(s Snapshot) float64 { return s.ROAS }, false)
	summary.MER = kpi(func(s Snapshot) float64 { return s.MER }, false)
	summary.CAC = kpi(func(s Snapshot) float64 { return s.CAC }, true)
	summary.ConversionRate = kpi(func(s Snapshot) float64 { return s.ConversionRate }, false)
	summary.ProfitPerM2 = kpi(func(s Snapshot) float64 { return s.ProfitPerM2 }, false)
	summary.Leads = kpi(func(s Snapshot) float64 { return float64(s.Leads) }, false)
	summary.Sales = kpi(func(s Snapshot) float64 { return float64(s.Sales) }, false)

	status := thresholds.MERStatus(cur.MER)
	summary.MER.Status = &status

	return summary
}

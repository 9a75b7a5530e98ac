package analytics

import "github.com/vfg2006/store-insights-api/internal/domain"

// Scopes devolve o recorte do filtro e, se a comparação estiver ativa, o do período anterior
func Scopes(ds *domain.Dataset, filters domain.InsightFilters) (*Scope, *Scope) {
	current := NewScope(ds, filters)
	if !filters.Compare {
		return current, nil
	}
	return current, current.Previous()
}

// BuildDashboard calcula todas as visões para o filtro
func BuildDashboard(ds *domain.Dataset, filters domain.InsightFilters, thresholds Thresholds) *domain.Dashboard {
	current, previous := Scopes(ds, filters)
	stores := StoreRanking(current, thresholds)

	return &domain.Dashboard{
		Filters:     filters,
		KPIs:        BuildKPISummary(current, previous, thresholds),
		Trend:       BuildTrendResponse(current, previous),
		Channels:    ChannelBreakdown(current),
		Funnel:      BuildFunnel(current.Leads),
		Stores:      stores,
		Heatmap:     StoreHeatmap(current, stores),
		SalesReps:   SalesRepRanking(current, thresholds),
		Products:    ProductPerformance(current),
		LeadSources: LeadSourceBreakdown(current),
	}
}

package insighting

import (
	"context"

	"github.com/vfg2006/store-insights-api/internal/domain"
)

// DatasetProvider fornece o dataset publicado no momento
type DatasetProvider interface {
	Current() (*domain.Dataset, error)
}

// Insighter expõe as visões do dashboard, todas calculadas sobre o mesmo filtro
type Insighter interface {
	// GetDashboard calcula todas as visões de uma vez
	GetDashboard(ctx context.Context, filters domain.InsightFilters) (*domain.Dashboard, error)

	GetKPISummary(ctx context.Context, filters domain.InsightFilters) (*domain.KPISummary, error)

	// GetTrend traz a série diária; com comparação ativa inclui a série do período anterior
	GetTrend(ctx context.Context, filters domain.InsightFilters) (*domain.TrendResponse, error)

	GetChannels(ctx context.Context, filters domain.InsightFilters) ([]domain.ChannelMetrics, error)
	GetFunnel(ctx context.Context, filters domain.InsightFilters) ([]domain.FunnelStage, error)
	GetLeadSources(ctx context.Context, filters domain.InsightFilters) ([]domain.LeadSourceMetrics, error)
	GetProducts(ctx context.Context, filters domain.InsightFilters) ([]domain.ProductMetrics, error)
}

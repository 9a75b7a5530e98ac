package ranking

import (
	"context"

	"github.com/vfg2006/store-insights-api/internal/analytics"
	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/internal/usecases/insighting"
)

const (
	ViewStoreRanking    = "store_ranking"
	ViewStoreHeatmap    = "store_heatmap"
	ViewSalesRepRanking = "sales_rep_ranking"
)

type RankingService interface {
	GetStoreRanking(ctx context.Context, filters domain.InsightFilters) (*domain.StoreRankingResponse, error)
	GetStoreHeatmap(ctx context.Context, filters domain.InsightFilters) ([]domain.StoreHeatmapPoint, error)
	GetSalesRepRanking(ctx context.Context, filters domain.InsightFilters) (*domain.SalesRepRankingResponse, error)
}

// StoreRankingService calcula os rankings de lojas e vendedores usando o
// mesmo cache das visões do dashboard
type StoreRankingService struct {
	datasets   insighting.DatasetProvider
	cache      *insighting.Cache
	thresholds analytics.Thresholds
}

func NewStoreRankingService(
	datasets insighting.DatasetProvider,
	cache *insighting.Cache,
	thresholds analytics.Thresholds,
) *StoreRankingService {
	return &StoreRankingService{
		datasets:   datasets,
		cache:      cache,
		thresholds: thresholds,
	}
}

func (s *StoreRankingService) GetStoreRanking(ctx context.Context, filters domain.InsightFilters) (*domain.StoreRankingResponse, error) {
	return insighting.ComputeView(ctx, s.datasets, s.cache, ViewStoreRanking, filters, func(ds *domain.Dataset) *domain.StoreRankingResponse {
		return analytics.StoreRanking(analytics.NewScope(ds, filters), s.thresholds)
	})
}

// GetStoreHeatmap reaproveita o ranking memorizado da mesma versão do dataset
func (s *StoreRankingService) GetStoreHeatmap(ctx context.Context, filters domain.InsightFilters) ([]domain.StoreHeatmapPoint, error) {
	return insighting.ComputeView(ctx, s.datasets, s.cache, ViewStoreHeatmap, filters, func(ds *domain.Dataset) []domain.StoreHeatmapPoint {
		scope := analytics.NewScope(ds, filters)
		ranking, _ := insighting.Memoize(s.cache, insighting.CacheKey(ds.Version, ViewStoreRanking, filters), func() *domain.StoreRankingResponse {
			return analytics.StoreRanking(scope, s.thresholds)
		})
		return analytics.StoreHeatmap(scope, ranking)
	})
}

func (s *StoreRankingService) GetSalesRepRanking(ctx context.Context, filters domain.InsightFilters) (*domain.SalesRepRankingResponse, error) {
	return insighting.ComputeView(ctx, s.datasets, s.cache, ViewSalesRepRanking, filters, func(ds *domain.Dataset) *domain.SalesRepRankingResponse {
		return analytics.SalesRepRanking(analytics.NewScope(ds, filters), s.thresholds)
	})
}

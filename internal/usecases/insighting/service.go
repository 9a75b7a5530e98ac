package insighting

import (
	"context"
	"time"

	"github.com/vfg2006/store-insights-api/internal/analytics"
	"github.com/vfg2006/store-insights-api/internal/config"
	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/pkg/log"
)

const (
	ViewDashboard   = "dashboard"
	ViewKPIs        = "kpis"
	ViewTrend       = "trend"
	ViewChannels    = "channels"
	ViewFunnel      = "funnel"
	ViewLeadSources = "lead_sources"
	ViewProducts    = "products"
)

type Service struct {
	datasets   DatasetProvider
	cache      *Cache
	thresholds analytics.Thresholds
}

func NewService(datasets DatasetProvider, cache *Cache, thresholds analytics.Thresholds) *Service {
	return &Service{
		datasets:   datasets,
		cache:      cache,
		thresholds: thresholds,
	}
}

// ThresholdsFromConfig converte os limites configurados para o formato do motor de análise
func ThresholdsFromConfig(cfg config.Thresholds) analytics.Thresholds {
	thresholds := analytics.DefaultThresholds()
	thresholds.MERGreen = cfg.MERGreen
	thresholds.MERYellow = cfg.MERYellow
	thresholds.UnderperformingRatio = cfg.UnderperformingRatio
	thresholds.NeedsTrainingRate = cfg.NeedsTrainingRate
	thresholds.RepRevenueTarget = cfg.RepRevenueTarget
	if cfg.ComparisonEpsilon > 0 {
		thresholds.ComparisonEpsilon = cfg.ComparisonEpsilon
	}
	return thresholds
}

// ValidateFilters exige as duas datas e um intervalo em ordem
func ValidateFilters(filters domain.InsightFilters) error {
	if filters.StartDate.IsZero() {
		return NewFilterError("start_date", "data de início obrigatória")
	}
	if filters.EndDate.IsZero() {
		return NewFilterError("end_date", "data de fim obrigatória")
	}
	if filters.StartDate.After(filters.EndDate) {
		return NewFilterError("end_date", "data de fim anterior à data de início")
	}
	return nil
}

// ComputeView valida o filtro, busca o dataset atual e calcula a visão através do cache
func ComputeView[T any](
	ctx context.Context,
	datasets DatasetProvider,
	cache *Cache,
	view string,
	filters domain.InsightFilters,
	compute func(ds *domain.Dataset) T,
) (T, error) {
	var zero T

	if err := ValidateFilters(filters); err != nil {
		return zero, err
	}

	ds, err := datasets.Current()
	if err != nil {
		return zero, err
	}

	startTime := time.Now()
	result, hit := Memoize(cache, CacheKey(ds.Version, view, filters), func() T {
		return compute(ds)
	})

	log.Annotate(ctx, log.Fields{
		"cache_hit":       hit,
		"dataset_version": ds.Version,
	})

	log.ForContext(ctx).WithFields(log.Fields{
		"view":            view,
		"cache_hit":       hit,
		"dataset_version": ds.Version,
		"filters":         filters.Key(),
		"duration_ms":     time.Since(startTime).Milliseconds(),
	}).Debug("insights: visão calculada")

	return result, nil
}

func (s *Service) GetDashboard(ctx context.Context, filters domain.InsightFilters) (*domain.Dashboard, error) {
	return ComputeView(ctx, s.datasets, s.cache, ViewDashboard, filters, func(ds *domain.Dataset) *domain.Dashboard {
		return analytics.BuildDashboard(ds, filters, s.thresholds)
	})
}

func (s *Service) GetKPISummary(ctx context.Context, filters domain.InsightFilters) (*domain.KPISummary, error) {
	return ComputeView(ctx, s.datasets, s.cache, ViewKPIs, filters, func(ds *domain.Dataset) *domain.KPISummary {
		current, previous := analytics.Scopes(ds, filters)
		return analytics.BuildKPISummary(current, previous, s.thresholds)
	})
}

func (s *Service) GetTrend(ctx context.Context, filters domain.InsightFilters) (*domain.TrendResponse, error) {
	return ComputeView(ctx, s.datasets, s.cache, ViewTrend, filters, func(ds *domain.Dataset) *domain.TrendResponse {
		return analytics.BuildTrendResponse(analytics.Scopes(ds, filters))
	})
}

func (s *Service) GetChannels(ctx context.Context, filters domain.InsightFilters) ([]domain.ChannelMetrics, error) {
	return ComputeView(ctx, s.datasets, s.cache, ViewChannels, filters, func(ds *domain.Dataset) []domain.ChannelMetrics {
		return analytics.ChannelBreakdown(analytics.NewScope(ds, filters))
	})
}

func (s *Service) GetFunnel(ctx context.Context, filters domain.InsightFilters) ([]domain.FunnelStage, error) {
	return ComputeView(ctx, s.datasets, s.cache, ViewFunnel, filters, func(ds *domain.Dataset) []domain.FunnelStage {
		return analytics.BuildFunnel(analytics.NewScope(ds, filters).Leads)
	})
}

func (s *Service) GetLeadSources(ctx context.Context, filters domain.InsightFilters) ([]domain.LeadSourceMetrics, error) {
	return ComputeView(ctx, s.datasets, s.cache, ViewLeadSources, filters, func(ds *domain.Dataset) []domain.LeadSourceMetrics {
		return analytics.LeadSourceBreakdown(analytics.NewScope(ds, filters))
	})
}

func (s *Service) GetProducts(ctx context.Context, filters domain.InsightFilters) ([]domain.ProductMetrics, error) {
	return ComputeView(ctx, s.datasets, s.cache, ViewProducts, filters, func(ds *domain.Dataset) []domain.ProductMetrics {
		return analytics.ProductPerformance(analytics.NewScope(ds, filters))
	})
}

// PurgeCache descarta todas as visões memorizadas
func (s *Service) PurgeCache() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

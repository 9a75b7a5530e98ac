package handler

import (
	"net/http"

	"github.com/vfg2006/store-insights-api/internal/api/handler/router"
	"github.com/vfg2006/store-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/store-insights-api/internal/usecases/ranking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: viewHandler(insighting.ViewDashboard, service.GetDashboard),
		},
		{
			Path:    "/v1/dashboard/kpis",
			Method:  http.MethodGet,
			Handler: viewHandler(insighting.ViewKPIs, service.GetKPISummary),
		},
		{
			Path:    "/v1/dashboard/trend",
			Method:  http.MethodGet,
			Handler: viewHandler(insighting.ViewTrend, service.GetTrend),
		},
		{
			Path:    "/v1/dashboard/channels",
			Method:  http.MethodGet,
			Handler: viewHandler(insighting.ViewChannels, service.GetChannels),
		},
		{
			Path:    "/v1/dashboard/funnel",
			Method:  http.MethodGet,
			Handler: viewHandler(insighting.ViewFunnel, service.GetFunnel),
		},
		{
			Path:    "/v1/dashboard/lead-sources",
			Method:  http.MethodGet,
			Handler: viewHandler(insighting.ViewLeadSources, service.GetLeadSources),
		},
		{
			Path:    "/v1/dashboard/products",
			Method:  http.MethodGet,
			Handler: viewHandler(insighting.ViewProducts, service.GetProducts),
		},
	}
}

func StoreRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores/ranking",
			Method:  http.MethodGet,
			Handler: GetStoreRanking(service),
		},
		{
			Path:    "/v1/stores/heatmap",
			Method:  http.MethodGet,
			Handler: GetStoreHeatmap(service),
		},
		{
			Path:    "/v1/sales-reps/ranking",
			Method:  http.MethodGet,
			Handler: GetSalesRepRanking(service),
		},
	}
}

func Dataset(provider DatasetInfoProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset",
			Method:  http.MethodGet,
			Handler: GetDatasetInfo(provider),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

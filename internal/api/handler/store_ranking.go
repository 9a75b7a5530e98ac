package handler

import (
	"net/http"

	"github.com/vfg2006/store-insights-api/internal/usecases/ranking"
)

// GetStoreRanking retorna as lojas ordenadas por lucro por m²
func GetStoreRanking(service ranking.RankingService) http.Handler {
	return viewHandler(ranking.ViewStoreRanking, service.GetStoreRanking)
}

// GetStoreHeatmap retorna as lojas com coordenadas e intensidade para o mapa
func GetStoreHeatmap(service ranking.RankingService) http.Handler {
	return viewHandler(ranking.ViewStoreHeatmap, service.GetStoreHeatmap)
}

func GetSalesRepRanking(service ranking.RankingService) http.Handler {
	return viewHandler(ranking.ViewSalesRepRanking, service.GetSalesRepRanking)
}

package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/pkg/log"
)

// viewHandler lê o filtro da query, chama a visão e responde em JSON
func viewHandler[T any](view string, fetch func(ctx context.Context, filters domain.InsightFilters) (T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("view", view)
		log.Annotate(r.Context(), log.Fields{"view": view})

		filters, err := ParseFilters(r.URL.Query())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		log.Annotate(r.Context(), log.Fields{
			"view":    view,
			"filters": filters.Key(),
		})

		result, err := fetch(r.Context(), filters)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, result)
	})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/internal/usecases/seeding"
	"github.com/vfg2006/store-insights-api/pkg/apiErrors"
	"github.com/vfg2006/store-insights-api/pkg/log"
)

// DatasetInfoProvider expõe os metadados do dataset publicado
type DatasetInfoProvider interface {
	Info() (*domain.DatasetInfo, error)
}

// GetDatasetInfo retorna a versão, a data de geração e a contagem de registros do dataset
func GetDatasetInfo(provider DatasetInfoProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		info, err := provider.Info()
		if errors.Is(err, seeding.ErrDatasetUnavailable) {
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Dataset ainda não carregado", nil)
			return
		}
		if err != nil {
			logger.WithError(err).Error("Erro ao buscar informações do dataset")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar informações do dataset", nil)
			return
		}

		writeJSON(w, logger, info)
	})
}

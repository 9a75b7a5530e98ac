package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/store-insights-api/internal/usecases/seeding"
	"github.com/vfg2006/store-insights-api/pkg/apiErrors"
	"github.com/vfg2006/store-insights-api/pkg/log"
	"github.com/vfg2006/store-insights-api/pkg/utils"
)

// ParseFilters lê start_date, end_date, stores, channel e compare da query.
// stores aceita ids separados por vírgula ou "all".
func ParseFilters(query url.Values) (domain.InsightFilters, error) {
	filters := domain.InsightFilters{}

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return filters, insighting.NewFilterError("start_date", "formato esperado YYYY-MM-DD")
	}
	filters.StartDate = *startDate

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return filters, insighting.NewFilterError("end_date", "formato esperado YYYY-MM-DD")
	}
	filters.EndDate = *endDate

	stores := strings.TrimSpace(query.Get("stores"))
	if stores != "" && !strings.EqualFold(stores, "all") {
		for _, part := range strings.Split(stores, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || id <= 0 {
				return filters, insighting.NewFilterError("stores", "ids de loja devem ser inteiros positivos")
			}
			filters.StoreIDs = append(filters.StoreIDs, id)
		}
	}

	channel, err := domain.ParseChannel(query.Get("channel"))
	if err != nil {
		return filters, insighting.NewFilterError("channel", err.Error())
	}
	filters.Channel = channel

	if compare := query.Get("compare"); compare != "" {
		filters.Compare, err = strconv.ParseBool(compare)
		if err != nil {
			return filters, insighting.NewFilterError("compare", "valor booleano esperado")
		}
	}

	return filters, nil
}

// writeServiceError traduz os erros dos casos de uso para o formato da API
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	var filterErr *insighting.FilterError

	switch {
	case errors.As(err, &filterErr):
		logger.WithError(err).Warn("insights: filtro inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, filterErr.Details, map[string]string{
			"field": filterErr.Field,
		})
	case errors.Is(err, seeding.ErrDatasetUnavailable):
		logger.WithError(err).Warn("insights: dataset indisponível")
		apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Dataset ainda não carregado", nil)
	default:
		logger.WithError(err).Error("insights: erro ao calcular visão")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular visão", nil)
	}
}

// Package analytics contém o motor de agregação do dashboard.
// Todas as funções são puras: recebem o dataset imutável e o filtro e não
// guardam estado entre chamadas.
package analytics

import (
	"time"

	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/pkg/utils"
)

// FilterByInterval seleciona os registros cujo dia está em [start, end],
// preservando a ordem original. predicate é opcional.
func FilterByInterval[T any](
	records []T,
	dateOf func(T) time.Time,
	start, end time.Time,
	predicate func(T) bool,
) []T {
	from := utils.DayOf(start)
	to := utils.DayOf(end)

	result := make([]T, 0)
	if from.After(to) {
		return result
	}

	for _, record := range records {
		day := utils.DayOf(dateOf(record))
		if day.Before(from) || day.After(to) {
			continue
		}
		if predicate != nil && !predicate(record) {
			continue
		}
		result = append(result, record)
	}

	return result
}

// Scope é o recorte do dataset para um filtro e período
type Scope struct {
	Dataset      *domain.Dataset
	Filters      domain.InsightFilters
	Start        time.Time
	End          time.Time
	Stores       []domain.Store
	SalesReps    []domain.SalesRep
	AdSpend      []domain.AdSpend
	Leads        []domain.Lead
	Sales        []domain.Sale
	Appointments []domain.Appointment
}

// NewScope aplica o filtro a todas as coleções do dataset
func NewScope(ds *domain.Dataset, filters domain.InsightFilters) *Scope {
	return newScope(ds, filters, filters.StartDate, filters.EndDate)
}

// Previous devolve o recorte do período anterior de mesmo tamanho
func (s *Scope) Previous() *Scope {
	start, end := PreviousPeriod(s.Start, s.End)
	return newScope(s.Dataset, s.Filters, start, end)
}

// Days é a quantidade de dias do período, inclusive
func (s *Scope) Days() int {
	return utils.DaysInclusive(s.Start, s.End)
}

func (s *Scope) Period() domain.Period {
	return domain.Period{
		StartDate: utils.DayOf(s.Start).Format(time.DateOnly),
		EndDate:   utils.DayOf(s.End).Format(time.DateOnly),
		Days:      s.Days(),
	}
}

func newScope(ds *domain.Dataset, filters domain.InsightFilters, start, end time.Time) *Scope {
	scope := &Scope{
		Dataset:   ds,
		Filters:   filters,
		Start:     utils.DayOf(start),
		End:       utils.DayOf(end),
		Stores:    make([]domain.Store, 0),
		SalesReps: make([]domain.SalesRep, 0),
	}

	for _, store := range ds.Stores {
		if filters.HasStore(store.ID) {
			scope.Stores = append(scope.Stores, store)
		}
	}

	for _, rep := range ds.SalesReps {
		if filters.HasStore(rep.StoreID) {
			scope.SalesReps = append(scope.SalesReps, rep)
		}
	}

	scope.AdSpend = FilterByInterval(ds.AdSpend,
		func(a domain.AdSpend) time.Time { return a.Date },
		start, end,
		func(a domain.AdSpend) bool {
			return filters.HasStore(a.StoreID) && (filters.Channel == "" || a.Channel == filters.Channel)
		},
	)

	scope.Leads = FilterByInterval(ds.Leads,
		func(l domain.Lead) time.Time { return l.Date },
		start, end,
		func(l domain.Lead) bool {
			return filters.HasStore(l.StoreID) && matchesSource(filters.Channel, l.Source, true)
		},
	)

	scope.Sales = FilterByInterval(ds.Sales,
		func(s domain.Sale) time.Time { return s.Date },
		start, end,
		func(s domain.Sale) bool {
			if !filters.HasStore(s.StoreID) {
				return false
			}
			source, ok := ds.SaleSource(s)
			return matchesSource(filters.Channel, source, ok)
		},
	)

	scope.Appointments = FilterByInterval(ds.Appointments,
		func(a domain.Appointment) time.Time { return a.Date },
		start, end,
		func(a domain.Appointment) bool {
			if !filters.HasStore(a.StoreID) {
				return false
			}
			lead, ok := ds.LeadByID(a.LeadID)
			return matchesSource(filters.Channel, lead.Source, ok)
		},
	)

	return scope
}

// matchesSource aplica o filtro de canal; sem lead associado só passa quando
// nenhum canal foi selecionado.
func matchesSource(channel domain.Channel, source domain.LeadSource, hasLead bool) bool {
	if channel == "" {
		return true
	}
	if !hasLead {
		return false
	}
	sourceChannel, paid := source.Channel()
	return paid && sourceChannel == channel
}

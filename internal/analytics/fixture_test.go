package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-insights-api/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int {
	return &v
}

func januaryFilters() domain.InsightFilters {
	return domain.InsightFilters{
		StartDate: day(1),
		EndDate:   day(31),
	}
}

// datasetBuilder monta datasets pequenos para os testes do motor
type datasetBuilder struct {
	stores       []domain.Store
	adSpend      []domain.AdSpend
	leads        []domain.Lead
	sales        []domain.Sale
	reps         []domain.SalesRep
	products     []domain.Product
	appointments []domain.Appointment
}

func newBuilder() *datasetBuilder {
	return &datasetBuilder{}
}

func (b *datasetBuilder) store(id int, area float64) *datasetBuilder {
	b.stores = append(b.stores, domain.Store{ID: id, Name: "Loja " + string(rune('A'+id-1)), City: "Cidade", AreaM2: area})
	return b
}

func (b *datasetBuilder) spend(date time.Time, channel domain.Channel, storeID int, amount float64, impressions, clicks int) *datasetBuilder {
	b.adSpend = append(b.adSpend, domain.AdSpend{
		ID:          len(b.adSpend) + 1,
		Date:        date,
		Channel:     channel,
		StoreID:     storeID,
		Spend:       amount,
		Impressions: impressions,
		Clicks:      clicks,
	})
	return b
}

func (b *datasetBuilder) lead(id int, date time.Time, source domain.LeadSource, storeID int, status domain.LeadStatus) *datasetBuilder {
	b.leads = append(b.leads, domain.Lead{ID: id, Date: date, Source: source, StoreID: storeID, Status: status})
	return b
}

func (b *datasetBuilder) sale(date time.Time, storeID int, leadID *int, repID, productID int, amount, margin float64) *datasetBuilder {
	b.sales = append(b.sales, domain.Sale{
		ID:         len(b.sales) + 1,
		Date:       date,
		StoreID:    storeID,
		LeadID:     leadID,
		SalesRepID: repID,
		ProductID:  productID,
		Amount:     amount,
		Margin:     margin,
	})
	return b
}

func (b *datasetBuilder) rep(id, storeID int, name string) *datasetBuilder {
	b.reps = append(b.reps, domain.SalesRep{ID: id, StoreID: storeID, Name: name})
	return b
}

func (b *datasetBuilder) product(id int, model string) *datasetBuilder {
	b.products = append(b.products, domain.Product{ID: id, Model: model, Category: "Cozinha", Price: 1000})
	return b
}

func (b *datasetBuilder) appointment(date time.Time, storeID, leadID, repID int, outcome domain.AppointmentOutcome) *datasetBuilder {
	b.appointments = append(b.appointments, domain.Appointment{
		ID:         len(b.appointments) + 1,
		Date:       date,
		StoreID:    storeID,
		LeadID:     leadID,
		SalesRepID: repID,
		Outcome:    outcome,
	})
	return b
}

func (b *datasetBuilder) build(t *testing.T) *domain.Dataset {
	t.Helper()
	ds, err := domain.NewDataset(b.stores, b.adSpend, b.leads, b.sales, b.reps, b.products, b.appointments)
	require.NoError(t, err)
	return ds
}

// sampleDataset tem duas lojas, os três canais, leads orgânicos e uma venda de balcão
func sampleDataset(t *testing.T) *domain.Dataset {
	return newBuilder().
		store(1, 100).
		store(2, 200).
		rep(10, 1, "Ana").
		rep(20, 2, "Bruno").
		product(100, "Modelo A").
		product(200, "Modelo B").
		spend(day(1), domain.ChannelMeta, 1, 600, 10000, 200).
		spend(day(2), domain.ChannelGoogle, 2, 300, 5000, 100).
		spend(day(3), domain.ChannelProgrammatic, 1, 100, 20000, 50).
		lead(1, day(1), domain.LeadSourceMeta, 1, domain.LeadStatusSold).
		lead(2, day(2), domain.LeadSourceMeta, 1, domain.LeadStatusAppointmentPresented).
		lead(3, day(2), domain.LeadSourceGoogle, 2, domain.LeadStatusSold).
		lead(4, day(3), domain.LeadSourceOrganic, 2, domain.LeadStatusLost).
		lead(5, day(4), domain.LeadSourceReferral, 1, domain.LeadStatusAppointmentSet).
		appointment(day(3), 1, 1, 10, domain.AppointmentSale).
		appointment(day(3), 1, 2, 10, domain.AppointmentPresented).
		appointment(day(4), 2, 3, 20, domain.AppointmentSale).
		appointment(day(5), 1, 5, 10, domain.AppointmentNoShow).
		sale(day(5), 1, intPtr(1), 10, 100, 1500, 0.4).
		sale(day(6), 2, intPtr(3), 20, 200, 1000, 0.5).
		sale(day(6), 2, nil, 20, 100, 500, 0.2).
		build(t)
}

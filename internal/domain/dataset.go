package domain

import (
	"fmt"
	"time"
)

type Store struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	AreaM2    float64 `json:"area_m2"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AdSpend é o investimento diário de um canal para uma loja
type AdSpend struct {
	ID          int       `json:"id"`
	Date        time.Time `json:"date"`
	Channel     Channel   `json:"channel"`
	StoreID     int       `json:"store_id"`
	Spend       float64   `json:"spend"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
}

type Lead struct {
	ID      int        `json:"id"`
	Date    time.Time  `json:"date"`
	Source  LeadSource `json:"source"`
	StoreID int        `json:"store_id"`
	Status  LeadStatus `json:"status"`
}

type SalesRep struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	StoreID int    `json:"store_id"`
}

type Product struct {
	ID       int     `json:"id"`
	Model    string  `json:"model"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

type Appointment struct {
	ID         int                `json:"id"`
	Date       time.Time          `json:"date"`
	StoreID    int                `json:"store_id"`
	LeadID     int                `json:"lead_id"`
	SalesRepID int                `json:"sales_rep_id"`
	Outcome    AppointmentOutcome `json:"outcome"`
}

// Dataset é o conjunto imutável de registros usado pelo motor de análise.
// Após NewDataset nenhum slice deve ser alterado.
type Dataset struct {
	Version      string
	GeneratedAt  time.Time
	Stores       []Store
	AdSpend      []AdSpend
	Leads        []Lead
	Sales        []Sale
	SalesReps    []SalesRep
	Products     []Product
	Appointments []Appointment

	firstDate time.Time
	lastDate  time.Time
	leadByID  map[int]Lead
	storeByID map[int]Store
}

// DatasetInfo resume o dataset carregado
type DatasetInfo struct {
	Version      string    `json:"version"`
	GeneratedAt  time.Time `json:"generated_at"`
	Stores       int       `json:"stores"`
	AdSpend      int       `json:"ad_spend"`
	Leads        int       `json:"leads"`
	Sales        int       `json:"sales"`
	SalesReps    int       `json:"sales_reps"`
	Products     int       `json:"products"`
	Appointments int       `json:"appointments"`
	FirstDate    string    `json:"first_date,omitempty"`
	LastDate     string    `json:"last_date,omitempty"`
}

// NewDataset monta os índices e valida as invariantes entre as coleções
func NewDataset(
	stores []Store,
	adSpend []AdSpend,
	leads []Lead,
	sales []Sale,
	reps []SalesRep,
	products []Product,
	appointments []Appointment,
) (*Dataset, error) {
	ds := &Dataset{
		Stores:       stores,
		AdSpend:      adSpend,
		Leads:        leads,
		Sales:        sales,
		SalesReps:    reps,
		Products:     products,
		Appointments: appointments,
		leadByID:     make(map[int]Lead, len(leads)),
		storeByID:    make(map[int]Store, len(stores)),
	}

	for _, store := range stores {
		if store.AreaM2 <= 0 {
			return nil, fmt.Errorf("loja %d com área inválida: %.2f", store.ID, store.AreaM2)
		}
		ds.storeByID[store.ID] = store
	}

	for _, lead := range leads {
		if !lead.Status.Valid() {
			return nil, fmt.Errorf("lead %d com status inválido: %s", lead.ID, lead.Status)
		}
		ds.leadByID[lead.ID] = lead
	}

	for _, spend := range adSpend {
		if spend.Clicks > spend.Impressions {
			return nil, fmt.Errorf("investimento %d com mais cliques que impressões", spend.ID)
		}
		ds.observeDate(spend.Date)
	}

	for _, lead := range leads {
		ds.observeDate(lead.Date)
	}

	for _, sale := range sales {
		ds.observeDate(sale.Date)
		if sale.LeadID == nil {
			continue
		}
		lead, ok := ds.leadByID[*sale.LeadID]
		if !ok {
			return nil, fmt.Errorf("venda %d referencia lead inexistente %d", sale.ID, *sale.LeadID)
		}
		if lead.Status != LeadStatusSold {
			return nil, fmt.Errorf("venda %d referencia lead %d com status %s", sale.ID, lead.ID, lead.Status)
		}
	}

	return ds, nil
}

func (d *Dataset) observeDate(date time.Time) {
	if d.firstDate.IsZero() || date.Before(d.firstDate) {
		d.firstDate = date
	}
	if date.After(d.lastDate) {
		d.lastDate = date
	}
}

// DateRange retorna o primeiro e o último dia com registros; zero para dataset vazio
func (d *Dataset) DateRange() (time.Time, time.Time) {
	return d.firstDate, d.lastDate
}

// LeadByID busca o lead pelo identificador
func (d *Dataset) LeadByID(id int) (Lead, bool) {
	lead, ok := d.leadByID[id]
	return lead, ok
}

func (d *Dataset) StoreByID(id int) (Store, bool) {
	store, ok := d.storeByID[id]
	return store, ok
}

// SaleChannel resolve o canal pago da venda pelo lead associado
func (d *Dataset) SaleChannel(sale Sale) (Channel, bool) {
	if sale.LeadID == nil {
		return "", false
	}
	lead, ok := d.leadByID[*sale.LeadID]
	if !ok {
		return "", false
	}
	return lead.Source.Channel()
}

// SaleSource resolve a origem do lead associado à venda
func (d *Dataset) SaleSource(sale Sale) (LeadSource, bool) {
	if sale.LeadID == nil {
		return "", false
	}
	lead, ok := d.leadByID[*sale.LeadID]
	if !ok {
		return "", false
	}
	return lead.Source, true
}

func (d *Dataset) Info() DatasetInfo {
	info := DatasetInfo{
		Version:      d.Version,
		GeneratedAt:  d.GeneratedAt,
		Stores:       len(d.Stores),
		AdSpend:      len(d.AdSpend),
		Leads:        len(d.Leads),
		Sales:        len(d.Sales),
		SalesReps:    len(d.SalesReps),
		Products:     len(d.Products),
		Appointments: len(d.Appointments),
	}

	if !d.lastDate.IsZero() {
		info.FirstDate = d.firstDate.Format(time.DateOnly)
		info.LastDate = d.lastDate.Format(time.DateOnly)
	}

	return info
}

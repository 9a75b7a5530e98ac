// Package generator produz datasets sintéticos e reprodutíveis a partir de uma semente
package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/pkg/utils"
)

var categories = []string{"Cozinha", "Dormitório", "Sala", "Closet", "Banheiro", "Home Office"}

var productLines = []string{"Prime", "Urban", "Classic", "Essence", "Nordic", "Luxo"}

// pesos de origem dos leads, na ordem de domain.LeadSources
var sourceWeights = []int{35, 30, 10, 15, 10}

var channelBudget = map[domain.Channel][2]float64{
	domain.ChannelMeta:         {80, 260},
	domain.ChannelGoogle:       {60, 220},
	domain.ChannelProgrammatic: {20, 120},
}

type Config struct {
	Seed         uint64
	HistoryDays  int
	Stores       int
	RepsPerStore int
	Products     int
	DailyLeads   int
	EndDate      time.Time // zero usa o dia anterior
}

type Generator struct {
	cfg Config
}

func New(cfg Config) *Generator {
	if cfg.RepsPerStore < 1 {
		cfg.RepsPerStore = 1
	}
	if cfg.DailyLeads < 1 {
		cfg.DailyLeads = 1
	}
	return &Generator{cfg: cfg}
}

// Load gera um novo dataset; a mesma configuração sempre produz o mesmo resultado
func (g *Generator) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	ds, err := g.Generate()
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"seed":         g.cfg.Seed,
		"stores":       len(ds.Stores),
		"leads":        len(ds.Leads),
		"sales":        len(ds.Sales),
		"appointments": len(ds.Appointments),
		"duration":     time.Since(startTime).String(),
	}).Info("Dataset sintético gerado")

	return ds, nil
}

type state struct {
	faker        *gofakeit.Faker
	endDate      time.Time
	stores       []domain.Store
	repsByStore  map[int][]domain.SalesRep
	reps         []domain.SalesRep
	products     []domain.Product
	adSpend      []domain.AdSpend
	leads        []domain.Lead
	sales        []domain.Sale
	appointments []domain.Appointment
}

func (g *Generator) Generate() (*domain.Dataset, error) {
	if g.cfg.HistoryDays <= 0 || g.cfg.Stores <= 0 || g.cfg.Products <= 0 {
		return nil, fmt.Errorf("configuração do gerador inválida: %+v", g.cfg)
	}

	endDate := g.cfg.EndDate
	if endDate.IsZero() {
		endDate = time.Now().AddDate(0, 0, -1)
	}
	endDate = utils.DayOf(endDate)
	startDate := endDate.AddDate(0, 0, -(g.cfg.HistoryDays - 1))

	s := &state{
		faker:       gofakeit.New(g.cfg.Seed),
		endDate:     endDate,
		repsByStore: make(map[int][]domain.SalesRep),
	}

	g.generateCatalog(s)

	for _, date := range utils.GenerateDateRange(startDate, endDate) {
		for _, store := range s.stores {
			g.generateSpend(s, store, date)
			g.generateLeads(s, store, date)
			g.generateWalkIns(s, store, date)
		}
	}

	return domain.NewDataset(s.stores, s.adSpend, s.leads, s.sales, s.reps, s.products, s.appointments)
}

func (g *Generator) generateCatalog(s *state) {
	for i := 1; i <= g.cfg.Stores; i++ {
		city := s.faker.City()
		s.stores = append(s.stores, domain.Store{
			ID:        i,
			Name:      fmt.Sprintf("Showroom %s", city),
			City:      city,
			AreaM2:    float64(s.faker.IntRange(120, 600)),
			Latitude:  utils.RoundWithTwoDecimalPlace(s.faker.Float64Range(-30, -3)),
			Longitude: utils.RoundWithTwoDecimalPlace(s.faker.Float64Range(-55, -35)),
		})

		for j := 0; j < g.cfg.RepsPerStore; j++ {
			rep := domain.SalesRep{
				ID:      len(s.reps) + 1,
				Name:    fmt.Sprintf("%s %s", s.faker.FirstName(), s.faker.LastName()),
				StoreID: i,
			}
			s.reps = append(s.reps, rep)
			s.repsByStore[i] = append(s.repsByStore[i], rep)
		}
	}

	for i := 1; i <= g.cfg.Products; i++ {
		category := categories[(i-1)%len(categories)]
		s.products = append(s.products, domain.Product{
			ID:       i,
			Model:    fmt.Sprintf("%s %s %02d", category, s.faker.RandomString(productLines), i),
			Category: category,
			Price:    float64(s.faker.IntRange(40, 400)) * 100,
		})
	}
}

func (g *Generator) generateSpend(s *state, store domain.Store, date time.Time) {
	for _, channel := range domain.Channels {
		budget := channelBudget[channel]
		impressions := s.faker.IntRange(1500, 15000)
		clicks := impressions * s.faker.IntRange(5, 40) / 1000

		s.adSpend = append(s.adSpend, domain.AdSpend{
			ID:          len(s.adSpend) + 1,
			Date:        date,
			Channel:     channel,
			StoreID:     store.ID,
			Spend:       utils.RoundWithTwoDecimalPlace(s.faker.Float64Range(budget[0], budget[1])),
			Impressions: impressions,
			Clicks:      clicks,
		})
	}
}

// generateLeads cria os leads do dia e, conforme o status sorteado, os
// atendimentos e a venda correspondentes.
func (g *Generator) generateLeads(s *state, store domain.Store, date time.Time) {
	count := s.faker.IntRange(0, 2*g.cfg.DailyLeads)

	for i := 0; i < count; i++ {
		lead := domain.Lead{
			ID:      len(s.leads) + 1,
			Date:    date,
			Source:  g.pickSource(s),
			StoreID: store.ID,
			Status:  g.pickStatus(s),
		}
		s.leads = append(s.leads, lead)

		appointmentDate := g.followUpDate(s, date, 1, 10)
		rep := g.pickRep(s, store.ID)

		switch lead.Status {
		case domain.LeadStatusAppointmentSet:
			g.addAppointment(s, lead, rep, appointmentDate, domain.AppointmentNoShow)
		case domain.LeadStatusAppointmentPresented:
			g.addAppointment(s, lead, rep, appointmentDate, domain.AppointmentPresented)
		case domain.LeadStatusLost:
			if s.faker.IntRange(1, 100) <= 30 {
				g.addAppointment(s, lead, rep, appointmentDate, domain.AppointmentLost)
			}
		case domain.LeadStatusSold:
			g.addAppointment(s, lead, rep, appointmentDate, domain.AppointmentSale)

			leadID := lead.ID
			daysSinceLead := utils.DaysInclusive(date, appointmentDate) - 1
			g.addSale(s, store.ID, rep.ID, appointmentDate, &leadID, &daysSinceLead)
		}
	}
}

func (g *Generator) generateWalkIns(s *state, store domain.Store, date time.Time) {
	for i := s.faker.IntRange(0, 2); i > 0; i-- {
		g.addSale(s, store.ID, g.pickRep(s, store.ID).ID, date, nil, nil)
	}
}

func (g *Generator) addAppointment(s *state, lead domain.Lead, rep domain.SalesRep, date time.Time, outcome domain.AppointmentOutcome) {
	s.appointments = append(s.appointments, domain.Appointment{
		ID:         len(s.appointments) + 1,
		Date:       date,
		StoreID:    lead.StoreID,
		LeadID:     lead.ID,
		SalesRepID: rep.ID,
		Outcome:    outcome,
	})
}

func (g *Generator) addSale(s *state, storeID, repID int, date time.Time, leadID, daysSinceLead *int) {
	product := s.products[s.faker.IntRange(0, len(s.products)-1)]

	s.sales = append(s.sales, domain.Sale{
		ID:            len(s.sales) + 1,
		Date:          date,
		StoreID:       storeID,
		LeadID:        leadID,
		SalesRepID:    repID,
		ProductID:     product.ID,
		Amount:        utils.RoundWithTwoDecimalPlace(product.Price * s.faker.Float64Range(0.85, 1.1)),
		Margin:        utils.RoundWithTwoDecimalPlace(s.faker.Float64Range(0.25, 0.55)),
		DaysSinceLead: daysSinceLead,
	})
}

func (g *Generator) pickSource(s *state) domain.LeadSource {
	roll := s.faker.IntRange(1, 100)
	for i, weight := range sourceWeights {
		if roll <= weight {
			return domain.LeadSources[i]
		}
		roll -= weight
	}
	return domain.LeadSourceOrganic
}

// pickStatus sorteia até onde o lead avançou: 60% agendam, 80% desses são
// atendidos e 35% dos atendidos compram.
func (g *Generator) pickStatus(s *state) domain.LeadStatus {
	if s.faker.IntRange(1, 100) > 60 {
		switch s.faker.IntRange(1, 3) {
		case 1:
			return domain.LeadStatusNew
		case 2:
			return domain.LeadStatusContacted
		default:
			return domain.LeadStatusLost
		}
	}

	if s.faker.IntRange(1, 100) > 80 {
		return domain.LeadStatusAppointmentSet
	}

	if s.faker.IntRange(1, 100) > 35 {
		return domain.LeadStatusAppointmentPresented
	}

	return domain.LeadStatusSold
}

func (g *Generator) pickRep(s *state, storeID int) domain.SalesRep {
	reps := s.repsByStore[storeID]
	return reps[s.faker.IntRange(0, len(reps)-1)]
}

// followUpDate sorteia uma data alguns dias depois, sem ultrapassar o fim do dataset
func (g *Generator) followUpDate(s *state, date time.Time, minDays, maxDays int) time.Time {
	followUp := date.AddDate(0, 0, s.faker.IntRange(minDays, maxDays))
	if followUp.After(s.endDate) {
		return s.endDate
	}
	return followUp
}

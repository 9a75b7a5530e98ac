package analytics

import (
	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/pkg/utils"
)

// Thresholds reúne os limites de classificação usados pelas visões
type Thresholds struct {
	MERGreen             float64 // MER acima disso é verde
	MERYellow            float64 // MER acima disso (e até MERGreen) é amarelo
	UnderperformingRatio float64 // fração da média de lucro/m² abaixo da qual a loja é sinalizada
	NeedsTrainingRate    float64 // conversão (%) abaixo da qual o vendedor precisa de treinamento
	RepRevenueTarget     float64
	ComparisonEpsilon    float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		MERGreen:             5,
		MERYellow:            3,
		UnderperformingRatio: 0.8,
		NeedsTrainingRate:    10,
		RepRevenueTarget:     50000,
		ComparisonEpsilon:    1e-9,
	}
}

// MERStatus classifica o MER: verde (> MERGreen), amarelo (> MERYellow) e vermelho no resto
func (t Thresholds) MERStatus(mer float64) domain.HealthStatus {
	switch {
	case mer > t.MERGreen:
		return domain.StatusGreen
	case mer > t.MERYellow:
		return domain.StatusYellow
	default:
		return domain.StatusRed
	}
}

// Snapshot são as métricas base de um recorte, sem arredondamento
type Snapshot struct {
	AdSpend        float64
	Revenue        float64
	LeadRevenue    float64
	Profit         float64
	ROAS           float64
	MER            float64
	CAC            float64
	ConversionRate float64
	ProfitPerM2    float64
	Leads          int
	SoldLeads      int
	Sales          int
}

// Calculate calcula todas as métricas base do recorte
func Calculate(scope *Scope) Snapshot {
	snapshot := Snapshot{
		AdSpend:     TotalAdSpend(scope.AdSpend),
		Revenue:     TotalRevenue(scope.Sales),
		LeadRevenue: LeadRevenue(scope.Sales),
		Profit:      TotalProfit(scope.Sales),
		Leads:       len(scope.Leads),
		SoldLeads:   SoldLeads(scope.Leads),
		Sales:       len(scope.Sales),
	}

	snapshot.ROAS = ROAS(snapshot.LeadRevenue, snapshot.AdSpend)
	snapshot.MER = MER(snapshot.Revenue, snapshot.AdSpend)
	snapshot.CAC = CAC(snapshot.AdSpend, snapshot.SoldLeads)
	snapshot.ConversionRate = ConversionRate(snapshot.SoldLeads, snapshot.Leads)
	snapshot.ProfitPerM2 = ProfitPerM2(snapshot.Profit, TotalArea(scope.Stores))

	return snapshot
}

func TotalAdSpend(entries []domain.AdSpend) float64 {
	total := 0.0
	for _, entry := range entries {
		total += entry.Spend
	}
	return total
}

// LeadRevenue soma apenas as vendas originadas de leads
func LeadRevenue(sales []domain.Sale) float64 {
	total := 0.0
	for _, sale := range sales {
		if sale.FromLead() {
			total += sale.Amount
		}
	}
	return total
}

func TotalRevenue(sales []domain.Sale) float64 {
	total := 0.0
	for _, sale := range sales {
		total += sale.Amount
	}
	return total
}

func TotalProfit(sales []domain.Sale) float64 {
	total := 0.0
	for _, sale := range sales {
		total += sale.Profit()
	}
	return total
}

func SoldLeads(leads []domain.Lead) int {
	count := 0
	for _, lead := range leads {
		if lead.Status == domain.LeadStatusSold {
			count++
		}
	}
	return count
}

func TotalArea(stores []domain.Store) float64 {
	total := 0.0
	for _, store := range stores {
		total += store.AreaM2
	}
	return total
}

// ROAS é a receita de leads sobre o investimento
func ROAS(leadRevenue, spend float64) float64 {
	return utils.SafeDivide(leadRevenue, spend)
}

// MER é a receita total sobre o investimento
func MER(revenue, spend float64) float64 {
	return utils.SafeDivide(revenue, spend)
}

// CAC é o investimento por lead vendido
func CAC(spend float64, soldLeads int) float64 {
	return utils.SafeDivide(spend, float64(soldLeads))
}

func ConversionRate(soldLeads, leads int) float64 {
	return utils.Percentage(float64(soldLeads), float64(leads))
}

func ProfitPerM2(profit, area float64) float64 {
	return utils.SafeDivide(profit, area)
}

package domain

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// InsightFilters é o estado de filtro de todas as visões do dashboard.
// StoreIDs vazio seleciona todas as lojas e Channel vazio todos os canais.
type InsightFilters struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	StoreIDs  []int     `json:"store_ids,omitempty"`
	Channel   Channel   `json:"channel,omitempty"`
	Compare   bool      `json:"compare"`
}

func (f InsightFilters) AllStores() bool {
	return len(f.StoreIDs) == 0
}

func (f InsightFilters) HasStore(storeID int) bool {
	return f.AllStores() || slices.Contains(f.StoreIDs, storeID)
}

// Key serializa o filtro de forma canônica: lojas ordenadas e sem repetição,
// datas em dia de calendário.
func (f InsightFilters) Key() string {
	stores := "all"
	if !f.AllStores() {
		ids := slices.Clone(f.StoreIDs)
		slices.Sort(ids)
		ids = slices.Compact(ids)

		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		stores = strings.Join(parts, ",")
	}

	channel := "all"
	if f.Channel != "" {
		channel = string(f.Channel)
	}

	return strings.Join([]string{
		f.StartDate.Format(time.DateOnly),
		f.EndDate.Format(time.DateOnly),
		stores,
		channel,
		strconv.FormatBool(f.Compare),
	}, "|")
}

type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

type ComparisonDirection string

const (
	DirectionPositive      ComparisonDirection = "positive"
	DirectionNegative      ComparisonDirection = "negative"
	DirectionNeutral       ComparisonDirection = "neutral"
	DirectionNotApplicable ComparisonDirection = "not_applicable"
)

// Comparison é a variação de uma métrica contra o período anterior.
// ChangePct é nulo quando o valor anterior é zero.
type Comparison struct {
	PreviousValue float64             `json:"previous_value"`
	ChangePct     *float64            `json:"change_pct"`
	Label         string              `json:"label"`
	Direction     ComparisonDirection `json:"direction"`
}

type HealthStatus string

const (
	StatusGreen  HealthStatus = "green"
	StatusYellow HealthStatus = "yellow"
	StatusRed    HealthStatus = "red"
)

type KPI struct {
	Value      float64       `json:"value"`
	Comparison *Comparison   `json:"comparison,omitempty"`
	Status     *HealthStatus `json:"status,omitempty"`
}

type KPISummary struct {
	Period         Period  `json:"period"`
	PreviousPeriod *Period `json:"previous_period,omitempty"`
	AdSpend        KPI     `json:"ad_spend"`
	Revenue        KPI     `json:"revenue"`
	LeadRevenue    KPI     `json:"lead_revenue"`
	Profit         KPI     `json:"profit"`
	ROAS           KPI     `json:"roas"`
	MER            KPI     `json:"mer"`
	CAC            KPI     `json:"cac"`
	ConversionRate KPI     `json:"conversion_rate"`
	ProfitPerM2    KPI     `json:"profit_per_m2"`
	Leads          KPI     `json:"leads"`
	Sales          KPI     `json:"sales"`
}

type TrendPoint struct {
	Date    string  `json:"date"`
	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	Leads   int     `json:"leads"`
	Sales   int     `json:"sales"`
}

// TrendResponse traz a série do período e, com comparação ativa, a do período anterior
type TrendResponse struct {
	Current  []TrendPoint `json:"current"`
	Previous []TrendPoint `json:"previous,omitempty"`
}

type ChannelMetrics struct {
	Channel     Channel `json:"channel"`
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	Leads       int     `json:"leads"`
	CPL         float64 `json:"cpl"`
	Conversions int     `json:"conversions"`
	Revenue     float64 `json:"revenue"`
	ROAS        float64 `json:"roas"`
}

type FunnelStage struct {
	Stage string  `json:"stage"`
	Count int     `json:"count"`
	Rate  float64 `json:"rate"`
}

type LeadSourceMetrics struct {
	Source            LeadSource    `json:"source"`
	Leads             int           `json:"leads"`
	Appointments      int           `json:"appointments"`
	Sales             int           `json:"sales"`
	ConversionRate    float64       `json:"conversion_rate"`
	Revenue           float64       `json:"revenue"`
	AvgRevenuePerSale float64       `json:"avg_revenue_per_sale"`
	Funnel            []FunnelStage `json:"funnel"`
}

type ProductMetrics struct {
	ProductID     int     `json:"product_id"`
	Model         string  `json:"model"`
	Category      string  `json:"category"`
	SalesCount    int     `json:"sales_count"`
	Revenue       float64 `json:"revenue"`
	Profit        float64 `json:"profit"`
	AverageMargin float64 `json:"average_margin"`
	MarketShare   float64 `json:"market_share"`
}

// Dashboard agrupa todas as visões calculadas para um mesmo filtro
type Dashboard struct {
	Filters     InsightFilters           `json:"filters"`
	KPIs        *KPISummary              `json:"kpis"`
	Trend       *TrendResponse           `json:"trend"`
	Channels    []ChannelMetrics         `json:"channels"`
	Funnel      []FunnelStage            `json:"funnel"`
	Stores      *StoreRankingResponse    `json:"stores"`
	Heatmap     []StoreHeatmapPoint      `json:"heatmap"`
	SalesReps   *SalesRepRankingResponse `json:"sales_reps"`
	Products    []ProductMetrics         `json:"products"`
	LeadSources []LeadSourceMetrics      `json:"lead_sources"`
}

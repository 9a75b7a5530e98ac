// Package domain contém as estruturas de dados do domínio da aplicação
package domain

type StoreRankingResponse struct {
	Ranking                  []StoreRankingItem `json:"ranking"`
	AverageProfitPerM2       float64            `json:"average_profit_per_m2"`
	UnderperformingThreshold float64            `json:"underperforming_threshold"`
}

// StoreRankingItem é a rentabilidade de uma loja no período.
// Position começa em 1 e segue lucro por m² decrescente.
type StoreRankingItem struct {
	StoreID            int     `json:"store_id"`
	StoreName          string  `json:"store_name"`
	City               string  `json:"city"`
	AreaM2             float64 `json:"area_m2"`
	Revenue            float64 `json:"revenue"`
	SalesCount         int     `json:"sales_count"`
	AverageTicket      float64 `json:"average_ticket"`
	Appointments       int     `json:"appointments"`
	ClosedAppointments int     `json:"closed_appointments"`
	CloseRate          float64 `json:"close_rate"`
	Profit             float64 `json:"profit"`
	ProfitPerM2        float64 `json:"profit_per_m2"`
	Position           int     `json:"position"`
	Underperforming    bool    `json:"underperforming"`
}

type StoreHeatmapPoint struct {
	StoreID     int     `json:"store_id"`
	StoreName   string  `json:"store_name"`
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Revenue     float64 `json:"revenue"`
	ProfitPerM2 float64 `json:"profit_per_m2"`
	Intensity   float64 `json:"intensity"` // 0..1 relativo à melhor loja
}

type SalesRepRankingResponse struct {
	Ranking       []SalesRepRankingItem `json:"ranking"`
	NeedsTraining []SalesRepRankingItem `json:"needs_training"`
	OverTarget    []SalesRepRankingItem `json:"over_target"`
	RevenueTarget float64               `json:"revenue_target"`
}

// SalesRepRankingItem é o desempenho do vendedor no período.
// ConversionRate considera atendimentos com resultado "sale" sobre o total de atendimentos.
type SalesRepRankingItem struct {
	SalesRepID         int     `json:"sales_rep_id"`
	Name               string  `json:"name"`
	StoreID            int     `json:"store_id"`
	StoreName          string  `json:"store_name"`
	Appointments       int     `json:"appointments"`
	ClosedAppointments int     `json:"closed_appointments"`
	SalesCount         int     `json:"sales_count"`
	Revenue            float64 `json:"revenue"`
	ConversionRate     float64 `json:"conversion_rate"`
	AverageTicket      float64 `json:"average_ticket"`
	Position           int     `json:"position"`
	NeedsTraining      bool    `json:"needs_training"`
	OverTarget         bool    `json:"over_target"`
}

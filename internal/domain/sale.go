package domain

import "time"

// Sale é uma venda fechada na loja. LeadID nulo indica venda de balcão (walk-in).
type Sale struct {
	ID            int       `json:"id"`
	Date          time.Time `json:"date"`
	StoreID       int       `json:"store_id"`
	LeadID        *int      `json:"lead_id,omitempty"`
	SalesRepID    int       `json:"sales_rep_id"`
	ProductID     int       `json:"product_id"`
	Amount        float64   `json:"amount"`
	Margin        float64   `json:"margin"`
	DaysSinceLead *int      `json:"days_since_lead,omitempty"`
}

// Profit é o lucro da venda (valor × margem)
func (s Sale) Profit() float64 {
	return s.Amount * s.Margin
}

// FromLead indica se a venda foi originada de um lead
func (s Sale) FromLead() bool {
	return s.LeadID != nil
}

package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/store-insights-api/internal/domain"
)

func TestCalculate(t *testing.T) {
	snapshot := Calculate(NewScope(sampleDataset(t), januaryFilters()))

	assert.Equal(t, 1000.0, snapshot.AdSpend)
	assert.Equal(t, 3000.0, snapshot.Revenue)
	assert.Equal(t, 2500.0, snapshot.LeadRevenue)
	assert.InDelta(t, 1200.0, snapshot.Profit, 1e-9)
	assert.Equal(t, 2.5, snapshot.ROAS)
	assert.Equal(t, 3.0, snapshot.MER)
	assert.Equal(t, 500.0, snapshot.CAC)
	assert.Equal(t, 40.0, snapshot.ConversionRate)
	assert.InDelta(t, 4.0, snapshot.ProfitPerM2, 1e-9)
	assert.Equal(t, 5, snapshot.Leads)
	assert.Equal(t, 2, snapshot.SoldLeads)
	assert.Equal(t, 3, snapshot.Sales)
}

func TestRatioMetrics(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "ROAS exato", value: ROAS(2500, 1000), expected: 2.5},
		{name: "ROAS sem investimento", value: ROAS(2500, 0), expected: 0},
		{name: "MER sem investimento", value: MER(1000, 0), expected: 0},
		{name: "CAC sem vendas", value: CAC(1000, 0), expected: 0},
		{name: "Conversão sem leads", value: ConversionRate(0, 0), expected: 0},
		{name: "Lucro por m² sem área", value: ProfitPerM2(500, 0), expected: 0},
		{name: "Conversão", value: ConversionRate(1, 4), expected: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value)
			assert.False(t, math.IsNaN(tt.value) || math.IsInf(tt.value, 0))
		})
	}
}

func TestCalculate_PeriodWithoutData(t *testing.T) {
	filters := domain.InsightFilters{StartDate: day(20), EndDate: day(25)}
	snapshot := Calculate(NewScope(sampleDataset(t), filters))

	assert.Equal(t, 0, snapshot.Leads)
	assert.Equal(t, 0.0, snapshot.ConversionRate)
	assert.Equal(t, 0.0, snapshot.CAC)
	assert.Equal(t, 0.0, snapshot.ROAS)
	assert.Equal(t, 0.0, snapshot.MER)
}

func TestThresholds_MERStatus(t *testing.T) {
	thresholds := DefaultThresholds()

	assert.Equal(t, domain.StatusGreen, thresholds.MERStatus(5.01))
	assert.Equal(t, domain.StatusYellow, thresholds.MERStatus(5))
	assert.Equal(t, domain.StatusYellow, thresholds.MERStatus(3.01))
	assert.Equal(t, domain.StatusRed, thresholds.MERStatus(3))
	assert.Equal(t, domain.StatusRed, thresholds.MERStatus(0))

	custom := Thresholds{MERGreen: 8, MERYellow: 4}
	assert.Equal(t, domain.StatusYellow, custom.MERStatus(6))
}

package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-insights-api/internal/domain"
)

func TestCompare(t *testing.T) {
	const epsilon = 1e-9

	tests := []struct {
		name     string
		current  float64
		previous float64
		invert   bool
		validate func(t *testing.T, result domain.Comparison)
	}{
		{
			name:     "Receita cresceu 17,6%",
			current:  100000,
			previous: 85000,
			validate: func(t *testing.T, result domain.Comparison) {
				require.NotNil(t, result.ChangePct)
				assert.Equal(t, 17.65, *result.ChangePct)
				assert.Equal(t, "+17.6%", result.Label)
				assert.Equal(t, domain.DirectionPositive, result.Direction)
			},
		},
		{
			name:     "Valor anterior zero não é comparável",
			current:  500,
			previous: 0,
			validate: func(t *testing.T, result domain.Comparison) {
				assert.Nil(t, result.ChangePct)
				assert.Equal(t, "N/A", result.Label)
				assert.Equal(t, domain.DirectionNotApplicable, result.Direction)
			},
		},
		{
			name:     "Valor anterior abaixo do epsilon não é comparável",
			current:  500,
			previous: 1e-12,
			validate: func(t *testing.T, result domain.Comparison) {
				assert.Nil(t, result.ChangePct)
				assert.Equal(t, "N/A", result.Label)
				assert.Equal(t, domain.DirectionNotApplicable, result.Direction)
			},
		},
		{
			name:     "Queda de receita é negativa",
			current:  90,
			previous: 100,
			validate: func(t *testing.T, result domain.Comparison) {
				assert.Equal(t, -10.0, *result.ChangePct)
				assert.Equal(t, "-10.0%", result.Label)
				assert.Equal(t, domain.DirectionNegative, result.Direction)
			},
		},
		{
			name:     "Queda de investimento é positiva quando invertida",
			current:  90,
			previous: 100,
			invert:   true,
			validate: func(t *testing.T, result domain.Comparison) {
				assert.Equal(t, "-10.0%", result.Label)
				assert.Equal(t, domain.DirectionPositive, result.Direction)
			},
		},
		{
			name:     "Aumento de CAC é negativo quando invertido",
			current:  120,
			previous: 100,
			invert:   true,
			validate: func(t *testing.T, result domain.Comparison) {
				assert.Equal(t, domain.DirectionNegative, result.Direction)
			},
		},
		{
			name:     "Diferença abaixo do epsilon é neutra",
			current:  100 + epsilon/10,
			previous: 100,
			validate: func(t *testing.T, result domain.Comparison) {
				assert.Equal(t, 0.0, *result.ChangePct)
				assert.Equal(t, "0.0%", result.Label)
				assert.Equal(t, domain.DirectionNeutral, result.Direction)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Compare(tt.current, tt.previous, tt.invert, epsilon))
		})
	}
}

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		name          string
		start         time.Time
		end           time.Time
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "Mês de 31 dias",
			start:         day(1),
			end:           day(31),
			expectedStart: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Um único dia",
			start:         day(10),
			end:           day(10),
			expectedStart: day(9),
			expectedEnd:   day(9),
		},
		{
			name:          "Sete dias",
			start:         day(8),
			end:           day(14),
			expectedStart: day(1),
			expectedEnd:   day(7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PreviousPeriod(tt.start, tt.end)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
		})
	}
}

func TestBuildKPISummary(t *testing.T) {
	ds := sampleDataset(t)

	t.Run("Sem comparação", func(t *testing.T) {
		summary := BuildKPISummary(NewScope(ds, januaryFilters()), nil, DefaultThresholds())

		assert.Nil(t, summary.PreviousPeriod)
		assert.Equal(t, 1000.0, summary.AdSpend.Value)
		assert.Nil(t, summary.AdSpend.Comparison)
		assert.Equal(t, 2.5, summary.ROAS.Value)
		assert.Equal(t, 3.0, summary.MER.Value)
		require.NotNil(t, summary.MER.Status)
		assert.Equal(t, domain.StatusRed, *summary.MER.Status)
		assert.Equal(t, 1200.0, summary.Profit.Value)
		assert.Equal(t, 4.0, summary.ProfitPerM2.Value)
		assert.Equal(t, "2024-01-01", summary.Period.StartDate)
		assert.Equal(t, 31, summary.Period.Days)
	})

	t.Run("Com comparação contra os dois dias anteriores", func(t *testing.T) {
		filters := domain.InsightFilters{StartDate: day(5), EndDate: day(6), Compare: true}
		current, previous := Scopes(ds, filters)
		summary := BuildKPISummary(current, previous, DefaultThresholds())

		require.NotNil(t, summary.PreviousPeriod)
		assert.Equal(t, "2024-01-03", summary.PreviousPeriod.StartDate)
		assert.Equal(t, "2024-01-04", summary.PreviousPeriod.EndDate)

		require.NotNil(t, summary.AdSpend.Comparison)
		assert.Equal(t, "-100.0%", summary.AdSpend.Comparison.Label)
		assert.Equal(t, domain.DirectionPositive, summary.AdSpend.Comparison.Direction)

		require.NotNil(t, summary.Revenue.Comparison)
		assert.Equal(t, domain.DirectionNotApplicable, summary.Revenue.Comparison.Direction)
	})
}

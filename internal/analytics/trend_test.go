package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-insights-api/internal/domain"
)

func TestBuildTrend(t *testing.T) {
	ds := sampleDataset(t)

	t.Run("Um ponto por dia com dias vazios zerados", func(t *testing.T) {
		points := BuildTrend(NewScope(ds, januaryFilters()))
		require.Len(t, points, 31)

		assert.Equal(t, "2024-01-01", points[0].Date)
		assert.Equal(t, "2024-01-31", points[30].Date)

		assert.Equal(t, 600.0, points[0].Spend)
		assert.Equal(t, 1, points[0].Leads)
		assert.Equal(t, 2, points[1].Leads)
		assert.Equal(t, 1500.0, points[4].Revenue)
		assert.Equal(t, 600.0, points[4].Profit)
		assert.Equal(t, 2, points[5].Sales)
		assert.Equal(t, domain.TrendPoint{Date: "2024-01-20"}, points[19])

		for i := 1; i < len(points); i++ {
			assert.Less(t, points[i-1].Date, points[i].Date)
		}
	})

	t.Run("Período sem dados continua completo", func(t *testing.T) {
		filters := domain.InsightFilters{StartDate: day(20), EndDate: day(26)}
		points := BuildTrend(NewScope(ds, filters))
		assert.Len(t, points, 7)
	})

	t.Run("Intervalo invertido retorna série vazia", func(t *testing.T) {
		filters := domain.InsightFilters{StartDate: day(10), EndDate: day(1)}
		assert.Empty(t, BuildTrend(NewScope(ds, filters)))
	})

	t.Run("Comparação inclui a série anterior", func(t *testing.T) {
		filters := domain.InsightFilters{StartDate: day(5), EndDate: day(6), Compare: true}
		current, previous := Scopes(ds, filters)
		response := BuildTrendResponse(current, previous)

		require.Len(t, response.Current, 2)
		require.Len(t, response.Previous, 2)
		assert.Equal(t, "2024-01-03", response.Previous[0].Date)
		assert.Equal(t, 100.0, response.Previous[0].Spend)
	})
}

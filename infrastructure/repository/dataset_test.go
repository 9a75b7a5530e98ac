package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-insights-api/internal/domain"
)

func TestSelectBuilders(t *testing.T) {
	tests := []struct {
		name     string
		builder  squirrel.SelectBuilder
		expected string
	}{
		{
			name:     "Lojas ordenadas por id",
			builder:  selectStores(),
			expected: "SELECT id, name, city, area_m2, latitude, longitude FROM stores ORDER BY id ASC",
		},
		{
			name:     "Investimentos ordenados por data",
			builder:  selectAdSpend(),
			expected: "SELECT id, date, channel, store_id, spend, impressions, clicks FROM ad_spend ORDER BY date ASC, id ASC",
		},
		{
			name:     "Vendas com lead opcional",
			builder:  selectSales(),
			expected: "SELECT id, date, store_id, lead_id, sales_rep_id, product_id, amount, margin, days_since_lead FROM sales ORDER BY date ASC, id ASC",
		},
		{
			name:     "Atendimentos",
			builder:  selectAppointments(),
			expected: "SELECT id, date, store_id, lead_id, sales_rep_id, outcome FROM appointments ORDER BY date ASC, id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.builder.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, query)
			assert.Empty(t, args)
		})
	}
}

func TestSaleRows(t *testing.T) {
	leadID := 7
	days := 3
	sales := []domain.Sale{
		{ID: 1, Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), StoreID: 2, LeadID: &leadID, SalesRepID: 4, ProductID: 5, Amount: 1000, Margin: 0.4, DaysSinceLead: &days},
		{ID: 2, Date: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), StoreID: 2, SalesRepID: 4, ProductID: 5, Amount: 500, Margin: 0.3},
	}

	rows := saleRows(sales)
	require.Len(t, rows, 2)

	assert.Equal(t, "2024-06-01", rows[0][1])
	assert.Equal(t, &leadID, rows[0][3])
	assert.Nil(t, rows[1][3])
	assert.Nil(t, rows[1][8])
}

func TestInsertBuilderUsesDollarPlaceholders(t *testing.T) {
	query, args, err := squirrel.StatementBuilder.
		Insert(storesTable).
		Columns("id", "name").
		Values(1, "Loja A").
		Values(2, "Loja B").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO stores (id,name) VALUES ($1,$2),($3,$4)", query)
	assert.Len(t, args, 4)
}

func TestSchemaStatements(t *testing.T) {
	tables := []string{storesTable, productsTable, salesRepsTable, adSpendTable, leadsTable, appointmentsTable, salesTable}

	for _, table := range tables {
		found := false
		for _, statement := range schemaStatements {
			if strings.Contains(statement, "CREATE TABLE IF NOT EXISTS "+table+" ") {
				found = true
				break
			}
		}
		assert.True(t, found, table)
	}
}

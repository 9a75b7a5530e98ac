package analytics

import (
	"sort"

	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/pkg/utils"
)

type productAggregator struct {
	product    domain.Product
	salesCount int
	revenue    float64
	profit     float64
	marginSum  float64
}

// ProductPerformance agrega as vendas por modelo. A participação de mercado é a
// fração da quantidade de vendas do recorte; a lista sai por receita decrescente.
func ProductPerformance(scope *Scope) []domain.ProductMetrics {
	aggregators := make([]*productAggregator, 0, len(scope.Dataset.Products))
	byProduct := make(map[int]*productAggregator, len(scope.Dataset.Products))
	for _, product := range scope.Dataset.Products {
		agg := &productAggregator{product: product}
		aggregators = append(aggregators, agg)
		byProduct[product.ID] = agg
	}

	totalSales := 0
	for _, sale := range scope.Sales {
		agg, ok := byProduct[sale.ProductID]
		if !ok {
			continue
		}
		agg.salesCount++
		agg.revenue += sale.Amount
		agg.profit += sale.Profit()
		agg.marginSum += sale.Margin
		totalSales++
	}

	sort.Slice(aggregators, func(i, j int) bool {
		if aggregators[i].revenue != aggregators[j].revenue {
			return aggregators[i].revenue > aggregators[j].revenue
		}
		return aggregators[i].product.ID < aggregators[j].product.ID
	})

	rows := make([]domain.ProductMetrics, 0, len(aggregators))
	for _, agg := range aggregators {
		rows = append(rows, domain.ProductMetrics{
			ProductID:     agg.product.ID,
			Model:         agg.product.Model,
			Category:      agg.product.Category,
			SalesCount:    agg.salesCount,
			Revenue:       utils.RoundWithTwoDecimalPlace(agg.revenue),
			Profit:        utils.RoundWithTwoDecimalPlace(agg.profit),
			AverageMargin: utils.RoundWithTwoDecimalPlace(utils.Percentage(agg.marginSum, float64(agg.salesCount))),
			MarketShare:   utils.RoundWithTwoDecimalPlace(utils.Percentage(float64(agg.salesCount), float64(totalSales))),
		})
	}

	return rows
}

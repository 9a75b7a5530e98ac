package analytics

import (
	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/pkg/utils"
)

type channelAggregator struct {
	spend       float64
	impressions int
	clicks      int
	leads       int
	conversions int
	revenue     float64
}

// ChannelBreakdown agrega investimento, leads e receita por canal, na ordem fixa
// de domain.Channels. Com filtro de canal apenas a linha do canal é retornada.
func ChannelBreakdown(scope *Scope) []domain.ChannelMetrics {
	aggregators := make(map[domain.Channel]*channelAggregator, len(domain.Channels))
	for _, channel := range domain.Channels {
		aggregators[channel] = &channelAggregator{}
	}

	for _, entry := range scope.AdSpend {
		agg, ok := aggregators[entry.Channel]
		if !ok {
			continue
		}
		agg.spend += entry.Spend
		agg.impressions += entry.Impressions
		agg.clicks += entry.Clicks
	}

	for _, lead := range scope.Leads {
		channel, paid := lead.Source.Channel()
		if !paid {
			continue
		}
		agg := aggregators[channel]
		agg.leads++
		if lead.Status == domain.LeadStatusSold {
			agg.conversions++
		}
	}

	for _, sale := range scope.Sales {
		channel, paid := scope.Dataset.SaleChannel(sale)
		if !paid {
			continue
		}
		aggregators[channel].revenue += sale.Amount
	}

	rows := make([]domain.ChannelMetrics, 0, len(domain.Channels))
	for _, channel := range domain.Channels {
		if scope.Filters.Channel != "" && scope.Filters.Channel != channel {
			continue
		}

		agg := aggregators[channel]
		rows = append(rows, domain.ChannelMetrics{
			Channel:     channel,
			Spend:       utils.RoundWithTwoDecimalPlace(agg.spend),
			Impressions: agg.impressions,
			Clicks:      agg.clicks,
			CTR:         utils.RoundWithTwoDecimalPlace(utils.Percentage(float64(agg.clicks), float64(agg.impressions))),
			CPC:         utils.RoundWithTwoDecimalPlace(utils.SafeDivide(agg.spend, float64(agg.clicks))),
			Leads:       agg.leads,
			CPL:         utils.RoundWithTwoDecimalPlace(utils.SafeDivide(agg.spend, float64(agg.leads))),
			Conversions: agg.conversions,
			Revenue:     utils.RoundWithTwoDecimalPlace(agg.revenue),
			ROAS:        utils.RoundWithTwoDecimalPlace(ROAS(agg.revenue, agg.spend)),
		})
	}

	return rows
}

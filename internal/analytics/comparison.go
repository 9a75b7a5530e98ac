package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/pkg/utils"
)

const notApplicableLabel = "N/A"

// Compare calcula a variação percentual de current contra previous.
// previous com módulo abaixo de epsilon é tratado como zero (N/A).
// invert troca positivo e negativo para métricas em que reduzir é melhor (investimento, CAC).
func Compare(current, previous float64, invert bool, epsilon float64) domain.Comparison {
	comparison := domain.Comparison{
		PreviousValue: utils.RoundWithTwoDecimalPlace(previous),
	}

	if previous == 0 || math.Abs(previous) < epsilon {
		comparison.Direction = domain.DirectionNotApplicable
		comparison.Label = notApplicableLabel
		return comparison
	}

	if math.Abs(current-previous) < epsilon {
		zero := 0.0
		comparison.ChangePct = &zero
		comparison.Direction = domain.DirectionNeutral
		comparison.Label = "0.0%"
		return comparison
	}

	change := (current - previous) / previous * 100
	rounded := utils.RoundWithTwoDecimalPlace(change)
	comparison.ChangePct = &rounded
	comparison.Label = fmt.Sprintf("%+.1f%%", change)

	increased := change > 0
	if invert {
		increased = !increased
	}

	if increased {
		comparison.Direction = domain.DirectionPositive
	} else {
		comparison.Direction = domain.DirectionNegative
	}

	return comparison
}

// PreviousPeriod retorna os N dias imediatamente anteriores a start,
// onde N é o tamanho do período [start, end].
func PreviousPeriod(start, end time.Time) (time.Time, time.Time) {
	days := utils.DaysInclusive(start, end)
	startDay := utils.DayOf(start)

	return startDay.AddDate(0, 0, -days), startDay.AddDate(0, 0, -1)
}

package analytics

import (
	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/pkg/utils"
)

const (
	StageGenerated            = "generated"
	StageAppointmentSet       = "appointment_set"
	StageAppointmentPresented = "appointment_presented"
	StageSold                 = "sold"
)

var funnelStages = []string{StageGenerated, StageAppointmentSet, StageAppointmentPresented, StageSold}

// BuildFunnel conta os leads de forma cumulativa: um lead vendido também conta
// como gerado, agendado e apresentado. As contagens nunca crescem entre etapas.
func BuildFunnel(leads []domain.Lead) []domain.FunnelStage {
	counts := make([]int, len(funnelStages))
	for _, lead := range leads {
		depth := lead.Status.FunnelDepth()
		for stage := 0; stage <= depth; stage++ {
			counts[stage]++
		}
	}

	return buildStages(funnelStages, counts)
}

// buildStages calcula a taxa de cada etapa sobre a anterior. A primeira é sempre 100.
func buildStages(names []string, counts []int) []domain.FunnelStage {
	stages := make([]domain.FunnelStage, len(names))
	for i, name := range names {
		rate := 100.0
		if i > 0 {
			rate = utils.RoundWithTwoDecimalPlace(utils.Percentage(float64(counts[i]), float64(counts[i-1])))
		}

		stages[i] = domain.FunnelStage{
			Stage: name,
			Count: counts[i],
			Rate:  rate,
		}
	}
	return stages
}

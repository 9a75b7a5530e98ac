package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-insights-api/internal/domain"
)

func leadsWithStatus(counts map[domain.LeadStatus]int) []domain.Lead {
	leads := make([]domain.Lead, 0)
	id := 1
	for status, count := range counts {
		for i := 0; i < count; i++ {
			leads = append(leads, domain.Lead{ID: id, Date: day(1), Source: domain.LeadSourceMeta, StoreID: 1, Status: status})
			id++
		}
	}
	return leads
}

func TestBuildFunnel(t *testing.T) {
	tests := []struct {
		name   string
		leads  []domain.Lead
		counts []int
		rates  []float64
	}{
		{
			name: "100 gerados, 70 agendados, 60 apresentados e 20 vendidos",
			leads: leadsWithStatus(map[domain.LeadStatus]int{
				domain.LeadStatusNew:                  20,
				domain.LeadStatusLost:                 10,
				domain.LeadStatusAppointmentSet:       10,
				domain.LeadStatusAppointmentPresented: 40,
				domain.LeadStatusSold:                 20,
			}),
			counts: []int{100, 70, 60, 20},
			rates:  []float64{100, 70, 85.71, 33.33},
		},
		{
			name:   "Sem leads mantém as quatro etapas zeradas",
			leads:  []domain.Lead{},
			counts: []int{0, 0, 0, 0},
			rates:  []float64{100, 0, 0, 0},
		},
		{
			name: "Apenas leads perdidos",
			leads: leadsWithStatus(map[domain.LeadStatus]int{
				domain.LeadStatusLost: 5,
			}),
			counts: []int{5, 0, 0, 0},
			rates:  []float64{100, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages := BuildFunnel(tt.leads)
			require.Len(t, stages, 4)

			assert.Equal(t, StageGenerated, stages[0].Stage)
			assert.Equal(t, StageSold, stages[3].Stage)

			for i, stage := range stages {
				assert.Equal(t, tt.counts[i], stage.Count, stage.Stage)
				assert.InDelta(t, tt.rates[i], stage.Rate, 0.001, stage.Stage)
				if i > 0 {
					assert.LessOrEqual(t, stage.Count, stages[i-1].Count)
				}
			}
		})
	}
}

package domain

import (
	"fmt"
	"strings"
)

// Channel é o canal de mídia paga onde o investimento foi feito
type Channel string

const (
	ChannelMeta         Channel = "Meta"
	ChannelGoogle       Channel = "Google"
	ChannelProgrammatic Channel = "Programmatic"
)

// Channels mantém a ordem fixa usada em todas as visões por canal
var Channels = []Channel{ChannelMeta, ChannelGoogle, ChannelProgrammatic}

// ParseChannel aceita o nome do canal sem diferenciar maiúsculas.
// "all" e string vazia retornam o canal vazio, que significa todos.
func ParseChannel(value string) (Channel, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		return "", nil
	}

	for _, channel := range Channels {
		if strings.EqualFold(trimmed, string(channel)) {
			return channel, nil
		}
	}

	return "", fmt.Errorf("canal inválido: %s", value)
}

// LeadSource é a origem do lead. As origens pagas correspondem a um Channel.
type LeadSource string

const (
	LeadSourceMeta         LeadSource = "Meta"
	LeadSourceGoogle       LeadSource = "Google"
	LeadSourceProgrammatic LeadSource = "Programmatic"
	LeadSourceOrganic      LeadSource = "Organic"
	LeadSourceReferral     LeadSource = "Referral"
)

var LeadSources = []LeadSource{
	LeadSourceMeta,
	LeadSourceGoogle,
	LeadSourceProgrammatic,
	LeadSourceOrganic,
	LeadSourceReferral,
}

// Channel retorna o canal pago da origem, ou false para origens orgânicas
func (s LeadSource) Channel() (Channel, bool) {
	switch s {
	case LeadSourceMeta:
		return ChannelMeta, true
	case LeadSourceGoogle:
		return ChannelGoogle, true
	case LeadSourceProgrammatic:
		return ChannelProgrammatic, true
	}
	return "", false
}

type LeadStatus string

const (
	LeadStatusNew                  LeadStatus = "new"
	LeadStatusContacted            LeadStatus = "contacted"
	LeadStatusAppointmentSet       LeadStatus = "appointment_set"
	LeadStatusAppointmentPresented LeadStatus = "appointment_presented"
	LeadStatusSold                 LeadStatus = "sold"
	LeadStatusLost                 LeadStatus = "lost"
)

// FunnelDepth indica até qual etapa do funil o lead chegou (0 = apenas gerado).
// Leads perdidos contam somente como gerados.
func (s LeadStatus) FunnelDepth() int {
	switch s {
	case LeadStatusAppointmentSet:
		return 1
	case LeadStatusAppointmentPresented:
		return 2
	case LeadStatusSold:
		return 3
	}
	return 0
}

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusAppointmentSet,
		LeadStatusAppointmentPresented, LeadStatusSold, LeadStatusLost:
		return true
	}
	return false
}

type AppointmentOutcome string

const (
	AppointmentPresented AppointmentOutcome = "presented"
	AppointmentNoShow    AppointmentOutcome = "no_show"
	AppointmentSale      AppointmentOutcome = "sale"
	AppointmentLost      AppointmentOutcome = "lost"
)

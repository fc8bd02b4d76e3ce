package model

import (
	"encoding/json"
	"fmt"
)

// InfectionState is the SI²R compartment a person currently occupies:
// Susceptible, Infected (incubating), Infectious (can spread), Recovered.
type InfectionState int

const (
	Susceptible InfectionState = iota
	Infected
	Infectious
	Recovered
)

var infectionStateNames = [...]string{"susceptible", "infected", "infectious", "recovered"}

func (s InfectionState) String() string {
	if int(s) < 0 || int(s) >= len(infectionStateNames) {
		return "unknown"
	}
	return infectionStateNames[s]
}

func (s InfectionState) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}

func (s *InfectionState) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for i, n := range infectionStateNames {
		if n == name {
			*s = InfectionState(i)
			return nil
		}
	}
	return fmt.Errorf("model: unknown infection state %q", name)
}

// State bundles the compartment with the number of ticks spent in it, which
// drives the Infected->Infectious and Infectious->Recovered transitions.
type State struct {
	Compartment  InfectionState `json:"compartment"`
	TicksInState int            `json:"ticksInState"`
}

// NewSusceptibleState returns the state of a person who has not yet been
// exposed.
func NewSusceptibleState() State {
	return State{Compartment: Susceptible}
}

// Infect transitions a susceptible person to Infected; a no-op on anyone
// already past Susceptible, mirroring the idempotent infect() used when two
// infectious neighbors both try to infect the same person in one tick.
func (s State) Infect() State {
	if s.Compartment != Susceptible {
		return s
	}
	return State{Compartment: Infected, TicksInState: 0}
}

// Advance applies one tick of residency, transitioning compartments once the
// relevant threshold is reached.
func (s State) Advance(incubationTime, recoveryTime int) State {
	switch s.Compartment {
	case Infected:
		if s.TicksInState+1 >= incubationTime {
			return State{Compartment: Infectious, TicksInState: 0}
		}
		return State{Compartment: Infected, TicksInState: s.TicksInState + 1}
	case Infectious:
		if s.TicksInState+1 >= recoveryTime {
			return State{Compartment: Recovered, TicksInState: 0}
		}
		return State{Compartment: Infectious, TicksInState: s.TicksInState + 1}
	default:
		return s
	}
}

func (s State) IsSusceptible() bool { return s.Compartment == Susceptible }
func (s State) IsInfected() bool    { return s.Compartment == Infected }
func (s State) IsInfectious() bool  { return s.Compartment == Infectious }
func (s State) IsRecovered() bool   { return s.Compartment == Recovered }

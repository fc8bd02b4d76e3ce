package model

import "fmt"

// Statistics is a single SI²R snapshot: the count of persons in each
// compartment within some queried area at some tick.
type Statistics struct {
	Susceptible uint64 `json:"susceptible"`
	Infected    uint64 `json:"infected"`
	Infectious  uint64 `json:"infectious"`
	Recovered   uint64 `json:"recovered"`
}

func (s Statistics) String() string {
	return fmt.Sprintf("Statistics(%d, %d, %d, %d)", s.Susceptible, s.Infected, s.Infectious, s.Recovered)
}

// Add returns the component-wise sum of s and other, used when merging
// per-patch statistics for a query area spanning several patches.
func (s Statistics) Add(other Statistics) Statistics {
	return Statistics{
		Susceptible: s.Susceptible + other.Susceptible,
		Infected:    s.Infected + other.Infected,
		Infectious:  s.Infectious + other.Infectious,
		Recovered:   s.Recovered + other.Recovered,
	}
}

// StatisticsFor tallies the compartment of each person in population,
// counting only persons located within area.
func StatisticsFor(population []PersonInfo, area Rectangle) Statistics {
	var s Statistics
	for _, p := range population {
		if !Contains(area, p.Position) {
			continue
		}
		switch p.InfectionState {
		case Susceptible:
			s.Susceptible++
		case Infected:
			s.Infected++
		case Infectious:
			s.Infectious++
		case Recovered:
			s.Recovered++
		}
	}
	return s
}

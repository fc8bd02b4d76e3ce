package model

import "testing"

func Test_Statistics_Add(t *testing.T) {
	a := Statistics{Susceptible: 3, Infected: 1}
	b := Statistics{Susceptible: 2, Infectious: 4, Recovered: 5}

	got := a.Add(b)
	want := Statistics{Susceptible: 5, Infected: 1, Infectious: 4, Recovered: 5}
	if got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
}

func Test_StatisticsFor_CountsOnlyPersonsInArea(t *testing.T) {
	area := NewRectangle(XY{X: 0, Y: 0}, XY{X: 5, Y: 5})
	population := []PersonInfo{
		{Name: "a", Position: XY{X: 1, Y: 1}, InfectionState: Susceptible},
		{Name: "b", Position: XY{X: 2, Y: 2}, InfectionState: Infected},
		{Name: "c", Position: XY{X: 3, Y: 3}, InfectionState: Infectious},
		{Name: "d", Position: XY{X: 1, Y: 4}, InfectionState: Recovered},
		{Name: "outside", Position: XY{X: 9, Y: 9}, InfectionState: Susceptible},
	}

	got := StatisticsFor(population, area)
	want := Statistics{Susceptible: 1, Infected: 1, Infectious: 1, Recovered: 1}
	if got != want {
		t.Errorf("StatisticsFor() = %v, want %v", got, want)
	}
}

func Test_StatisticsFor_EmptyPopulation(t *testing.T) {
	area := NewRectangle(XY{X: 0, Y: 0}, XY{X: 5, Y: 5})
	got := StatisticsFor(nil, area)
	if got != (Statistics{}) {
		t.Errorf("StatisticsFor(nil, ...) = %v, want zero value", got)
	}
}

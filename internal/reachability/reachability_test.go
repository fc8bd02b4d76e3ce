package reachability

import (
	"testing"

	"spreadsim/internal/model"
)

func rect(x, y, w, h int) model.Rectangle {
	return model.NewRectangle(model.XY{X: x, Y: y}, model.XY{X: w, Y: h})
}

func Test_MayPropagateFrom_AdjacentOpenPatches(t *testing.T) {
	grid := rect(0, 0, 10, 5)
	population := []model.XY{{X: 1, Y: 1}}
	g := Build(grid, nil, population, 2)

	a := rect(0, 0, 5, 5)
	b := rect(5, 0, 5, 5)
	if !g.MayPropagateFrom(a, b) {
		t.Fatalf("adjacent open patches should be able to propagate")
	}
}

func Test_MayPropagateFrom_FalseAcrossDividingWall(t *testing.T) {
	grid := rect(0, 0, 10, 5)
	wall := rect(5, 0, 1, 5)
	population := []model.XY{{X: 1, Y: 1}, {X: 8, Y: 1}}
	g := Build(grid, []model.Rectangle{wall}, population, 2)

	a := rect(0, 0, 5, 5)
	b := rect(6, 0, 4, 5)
	if g.MayPropagateFrom(a, b) {
		t.Fatalf("patches separated by a full-height wall should not propagate")
	}
}

func Test_MayPropagateFrom_EmptyComponentNeverPropagates(t *testing.T) {
	grid := rect(0, 0, 10, 5)
	wall := rect(5, 0, 1, 5)
	// Only the left side has population; the right side, though reachable
	// from nowhere the infection started, can never seed anyone.
	population := []model.XY{{X: 1, Y: 1}}
	g := Build(grid, []model.Rectangle{wall}, population, 2)

	left := rect(0, 0, 5, 5)
	right := rect(6, 0, 4, 5)
	if g.MayPropagateFrom(right, left) {
		t.Fatalf("a component with no initial population should never be a propagation source")
	}
}

func Test_MayPropagateFrom_ReachesAcrossDistanceWithinSameComponent(t *testing.T) {
	// Propagation compounds over an unbounded number of ticks, so any two
	// populated patches in the same open component can eventually
	// influence each other regardless of how far apart they sit.
	grid := rect(0, 0, 20, 1)
	population := []model.XY{{X: 0, Y: 0}}
	g := Build(grid, nil, population, 1)

	near := rect(0, 0, 1, 1)
	far := rect(19, 0, 1, 1)
	if !g.MayPropagateFrom(near, far) {
		t.Fatalf("expected distant patch within the same open component to be reachable")
	}
}

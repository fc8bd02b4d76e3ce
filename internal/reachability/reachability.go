// Package reachability decides, ahead of a run, whether two patches can
// ever influence each other through the grid's free space — so the
// orchestrator can skip creating a padding channel across a wall.
package reachability

import "spreadsim/internal/model"

// Grid is an obstacle-aware connected-component labeling of a scenario's
// grid, built once at setup and queried many times while wiring padding
// channels between patches.
type Grid struct {
	grid      model.Rectangle
	obstacle  map[model.XY]bool
	component map[model.XY]int
	empty     map[int]bool
	radius    int
}

// Build constructs a Grid from the scenario's grid size, obstacles, and
// initial population, following spec §4.2: mark obstacle cells, flood-fill
// 4-connected free cells into components, then mark components with no
// initial inhabitant as empty.
func Build(grid model.Rectangle, obstacles []model.Rectangle, population []model.XY, infectionRadius int) *Grid {
	g := &Grid{
		grid:      grid,
		obstacle:  make(map[model.XY]bool),
		component: make(map[model.XY]int),
		empty:     make(map[int]bool),
		radius:    infectionRadius,
	}

	for _, o := range obstacles {
		for _, c := range o.Cells() {
			g.obstacle[c] = true
		}
	}

	nextID := 0
	occupied := make(map[int]bool)
	for _, cell := range grid.Cells() {
		if g.obstacle[cell] {
			continue
		}
		if _, labeled := g.component[cell]; labeled {
			continue
		}
		id := nextID
		nextID++
		g.floodFill(cell, id)
	}

	for _, p := range population {
		if id, ok := g.component[p]; ok {
			occupied[id] = true
		}
	}
	for id := 0; id < nextID; id++ {
		if !occupied[id] {
			g.empty[id] = true
		}
	}

	return g
}

func (g *Grid) floodFill(start model.XY, id int) {
	stack := []model.XY{start}
	g.component[start] = id
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range []model.XY{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}} {
			n := cell.Add(d)
			if !model.Contains(g.grid, n) || g.obstacle[n] {
				continue
			}
			if _, labeled := g.component[n]; labeled {
				continue
			}
			g.component[n] = id
			stack = append(stack, n)
		}
	}
}

// usable reports whether cell can carry an infection influence: it must be
// a free, non-obstacle cell belonging to a non-empty component.
func (g *Grid) usable(cell model.XY) bool {
	if !model.Contains(g.grid, cell) || g.obstacle[cell] {
		return false
	}
	id, labeled := g.component[cell]
	if !labeled {
		return false
	}
	return !g.empty[id]
}

// MayPropagateFrom reports whether, after an arbitrary number of ticks, an
// infection could reach any cell of target starting from some cell of
// source, by expanding a frontier of cells reachable within one tick's
// influence radius (Manhattan distance <= R, unioned with Chebyshev
// distance <= 1 for diagonal movement) from every free cell of target.
func (g *Grid) MayPropagateFrom(source, target model.Rectangle) bool {
	region := make(map[model.XY]bool)
	var frontier []model.XY
	for _, cell := range target.Cells() {
		if !g.usable(cell) {
			continue
		}
		if model.Contains(source, cell) {
			return true
		}
		region[cell] = true
		frontier = append(frontier, cell)
	}

	r := g.radius
	for len(frontier) > 0 {
		cell := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for dx := -r; dx <= r; dx++ {
			for dy := -r; dy <= r; dy++ {
				manhattan := abs(dx) + abs(dy)
				chebyshev1 := abs(dx) <= 1 && abs(dy) <= 1
				if manhattan > r && !chebyshev1 {
					continue
				}
				neighbor := cell.Add(model.XY{X: dx, Y: dy})
				if region[neighbor] || !g.usable(neighbor) {
					continue
				}
				if model.Contains(source, neighbor) {
					return true
				}
				region[neighbor] = true
				frontier = append(frontier, neighbor)
			}
		}
	}

	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

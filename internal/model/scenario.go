package model

// Scenario is the full, immutable description of a simulation run: its
// parameters, grid, partition into patches, obstacles, statistic queries,
// and initial population. Loaded from JSON via encoding/json.
type Scenario struct {
	Name       string           `json:"name"`
	Parameters Parameters       `json:"parameters"`
	Ticks      int              `json:"ticks"`
	GridSize   XY               `json:"gridSize"`
	Trace      bool             `json:"trace"`
	Partition  Partition        `json:"partition"`
	Obstacles  []Rectangle      `json:"obstacles"`
	Queries    map[string]Query `json:"statQueries"`
	Population []PersonInfo     `json:"population"`
}

// Grid returns the rectangle spanning the whole scenario grid.
func (s Scenario) Grid() Rectangle {
	return NewRectangle(XY{}, s.GridSize)
}

// NumberOfPatches returns the number of patches the scenario's partition
// divides the grid into.
func (s Scenario) NumberOfPatches() int {
	return s.Partition.NumberOfPatches()
}

// OnObstacle reports whether cell lies within any of the scenario's
// obstacles.
func (s Scenario) OnObstacle(cell XY) bool {
	for _, o := range s.Obstacles {
		if Contains(o, cell) {
			return true
		}
	}
	return false
}

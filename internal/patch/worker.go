// Package patch implements the per-patch simulation worker: it owns a
// slice of the grid's population, advances it tick by tick, exchanges
// border snapshots with neighboring patches at fixed cycle intervals, and
// emits one OutputEntry per tick to its output sink.
package patch

import (
	"context"
	"fmt"
	"sort"

	"spreadsim/internal/model"
	"spreadsim/internal/padding"
	"spreadsim/internal/person"
	"spreadsim/internal/validator"
)

// Worker owns one patch's population and runs its local simulation loop.
type Worker struct {
	ID             int
	PatchArea      model.Rectangle
	PaddedArea     model.Rectangle
	CycleDuration  int
	Ticks          int
	Obstacles      []model.Rectangle
	Queries        map[string]model.Query
	Parameters     model.Parameters
	Trace          bool
	InnerChannels  []*padding.Channel
	OuterChannels  []*padding.Channel
	Validator      validator.Validator
	Output         chan<- model.OutputEntry

	p []person.Person // P: population whose position lies in PatchArea
	c []person.Person // C: P plus neighbor copies inside PaddedArea \ PatchArea
}

// NewWorker constructs a worker for one patch with its initial population.
func NewWorker(id int, patchArea, paddedArea model.Rectangle, cycleDuration, ticks int,
	obstacles []model.Rectangle, queries map[string]model.Query, parameters model.Parameters,
	trace bool, initial []person.Person, inner, outer []*padding.Channel, v validator.Validator,
	output chan<- model.OutputEntry) *Worker {
	return &Worker{
		ID:            id,
		PatchArea:     patchArea,
		PaddedArea:    paddedArea,
		CycleDuration: cycleDuration,
		Ticks:         ticks,
		Obstacles:     obstacles,
		Queries:       queries,
		Parameters:    parameters,
		Trace:         trace,
		InnerChannels: inner,
		OuterChannels: outer,
		Validator:     v,
		Output:        output,
		p:             initial,
	}
}

// Run executes the worker's full tick loop, emitting T+1 OutputEntry
// values to Output in ascending tick order, and returns a fatal error if
// ctx is cancelled while blocked on a padding exchange.
func (w *Worker) Run(ctx context.Context) error {
	if err := w.emit(ctx, 0); err != nil {
		return err
	}

	for tick := 0; tick < w.Ticks; tick++ {
		if tick%w.CycleDuration == 0 {
			if err := w.synchronize(ctx); err != nil {
				return err
			}
		}

		w.Validator.OnPatchTick(tick, w.ID)
		w.localTick(tick)
		if err := w.emit(ctx, tick+1); err != nil {
			return err
		}
	}

	return nil
}

// synchronize performs the boundary exchange: write every inner channel
// before reading any outer channel, so the channel graph (which may be
// cyclic) cannot deadlock.
func (w *Worker) synchronize(ctx context.Context) error {
	for _, ch := range w.InnerChannels {
		snapshot := extractArea(w.p, ch.Area())
		if ok := writeWithCancel(ctx, ch, snapshot); !ok {
			return fmt.Errorf("patch %d: %w", w.ID, ErrWorkerInterrupted)
		}
	}

	w.c = w.c[:0]
	for _, ch := range w.OuterChannels {
		snapshot, ok := readWithCancel(ctx, ch)
		if !ok {
			return fmt.Errorf("patch %d: %w", w.ID, ErrWorkerInterrupted)
		}
		for _, entry := range snapshot {
			w.c = append(w.c, person.New(person.ID(entry.ID), entry.Info, w.Parameters))
		}
	}
	w.c = append(w.c, w.p...)
	sortByID(w.c)
	if hasDuplicateID(w.c) {
		panic(fmt.Sprintf("patch %d: sort-merge produced duplicate person ids", w.ID))
	}

	return nil
}

// extractArea clones every person of population whose position lies in
// area into a serializable snapshot, reassigning each to a neutral
// context: a padding exchange never shares a mutable Person across
// patches.
func extractArea(population []person.Person, area model.Rectangle) []model.PersonInfoWithID {
	var out []model.PersonInfoWithID
	for _, p := range population {
		if model.Contains(area, p.Position) {
			out = append(out, model.PersonInfoWithID{Info: p.Info(), ID: int(p.ID)})
		}
	}
	return out
}

func sortByID(population []person.Person) {
	sort.SliceStable(population, func(i, j int) bool {
		return population[i].ID < population[j].ID
	})
}

func hasDuplicateID(population []person.Person) bool {
	for i := 1; i < len(population); i++ {
		if population[i].ID == population[i-1].ID {
			return true
		}
	}
	return false
}

// localTick advances every person in C by one step, resolves infection
// spread, and recomputes P as the subset of C inside PatchArea.
func (w *Worker) localTick(tick int) {
	positions := make([]model.XY, len(w.c))
	for i, p := range w.c {
		positions[i] = p.Position
	}

	var ghosts []model.XY
	for i := range w.c {
		ghosts = append(ghosts, w.c[i].Position)
		w.Validator.OnPersonTick(tick, w.ID, int(w.c[i].ID))
		w.c[i].Tick(w.PaddedArea, w.Obstacles, positions, ghosts)
		positions[i] = w.c[i].Position
	}
	for i := range w.c {
		w.c[i].BustGhost()
	}

	radius := w.Parameters.InfectionRadius
	for i := 0; i < len(w.c); i++ {
		for j := i + 1; j < len(w.c); j++ {
			a, b := &w.c[i], &w.c[j]
			dx := abs(a.Position.X - b.Position.X)
			dy := abs(a.Position.Y - b.Position.Y)
			if dx+dy > radius {
				continue
			}
			if a.IsInfectious() && a.IsCoughing() && b.IsBreathing() {
				b.Infect()
			}
			if b.IsInfectious() && b.IsCoughing() && a.IsBreathing() {
				a.Infect()
			}
		}
	}

	w.p = w.p[:0]
	for _, pp := range w.c {
		if model.Contains(w.PatchArea, pp.Position) {
			w.p = append(w.p, pp)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// emit builds and sends the OutputEntry for tick, using the patch's
// current P (after the initialization or a local tick). It returns
// ErrWorkerInterrupted if ctx is cancelled while the output queue is full,
// so a worker can never block forever after a sibling has already failed.
func (w *Worker) emit(ctx context.Context, tick int) error {
	entry := model.OutputEntry{
		Tick:       tick,
		Statistics: make(map[string]model.Statistics),
	}

	for key, query := range w.Queries {
		if !model.Overlaps(query.Area, w.PaddedArea) {
			continue
		}
		var s model.Statistics
		for _, pp := range w.p {
			if !model.Contains(query.Area, pp.Position) {
				continue
			}
			switch {
			case pp.IsSusceptible():
				s.Susceptible++
			case pp.IsInfected():
				s.Infected++
			case pp.IsInfectious():
				s.Infectious++
			case pp.IsRecovered():
				s.Recovered++
			}
		}
		entry.Statistics[key] = s
	}

	if w.Trace {
		entry.Trace = make([]model.PersonInfoWithID, len(w.p))
		for i, pp := range w.p {
			entry.Trace[i] = model.PersonInfoWithID{Info: pp.Info(), ID: int(pp.ID)}
		}
	}

	select {
	case w.Output <- entry:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("patch %d: %w", w.ID, ErrWorkerInterrupted)
	}
}

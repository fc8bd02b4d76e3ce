// Package spreadsim implements the concurrent core of a discrete-time
// pandemic simulator over a 2D grid: the grid is partitioned into
// rectangular patches, each run by its own worker goroutine, exchanging
// border population snapshots with neighboring patches at fixed cycle
// intervals, while a collector assembles per-tick statistics and trace
// output in a deterministic global order.
package spreadsim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"spreadsim/internal/collector"
	"spreadsim/internal/model"
	"spreadsim/internal/padding"
	"spreadsim/internal/patch"
	"spreadsim/internal/person"
	"spreadsim/internal/reachability"
	"spreadsim/internal/validator"
)

// ErrInsufficientPadding is returned from New when the requested padding
// cannot sustain even a single local tick between synchronizations.
var ErrInsufficientPadding = errors.New("spreadsim: insufficient padding for this scenario's parameters")

// ErrWorkerInterrupted is surfaced from Run when a patch worker is
// cancelled while blocked on a padding exchange. Fatal: the run aborts.
var ErrWorkerInterrupted = patch.ErrWorkerInterrupted

// outputQueueCapacity bounds each worker's output queue, giving the
// collector natural backpressure instead of letting a worker race ahead of
// a slow collector across the whole run.
const outputQueueCapacity = 4

// Simulation runs a scenario's patches to completion and reports the
// merged output. Construct with New; call Run once, then GetOutput.
type Simulation struct {
	scenario model.Scenario
	padding  int
	cycle    int
	workers  []*patch.Worker
	outputs  []<-chan model.OutputEntry
	queries  []string

	output model.Output
}

// New builds a Simulation for scenario using padding cells of border
// exchange and reporting progress through validator (validator.Noop{} if
// the caller does not need the hooks). Fails with ErrInsufficientPadding if
// the derived cycle duration would be zero.
func New(scenario model.Scenario, paddingCells int, v validator.Validator) (*Simulation, error) {
	if v == nil {
		v = validator.Noop{}
	}

	cycle := patch.CycleDuration(paddingCells, scenario.Parameters.IncubationTime, scenario.Parameters.InfectionRadius)
	if cycle == 0 {
		return nil, fmt.Errorf("%w: padding=%d, incubationTime=%d, infectionRadius=%d",
			ErrInsufficientPadding, paddingCells, scenario.Parameters.IncubationTime, scenario.Parameters.InfectionRadius)
	}

	grid := scenario.Grid()
	initial := make([]person.Person, len(scenario.Population))
	positions := make([]model.XY, len(scenario.Population))
	for i, info := range scenario.Population {
		initial[i] = person.New(person.ID(i), info, scenario.Parameters)
		positions[i] = info.Position
	}

	reach := reachability.Build(grid, scenario.Obstacles, positions, scenario.Parameters.InfectionRadius)

	patchAreas := scenario.Partition.Patches(grid)
	paddedAreas := make([]model.Rectangle, len(patchAreas))
	for i, area := range patchAreas {
		paddedAreas[i] = model.Padded(area, paddingCells, grid)
	}

	inner := make([][]*padding.Channel, len(patchAreas))
	outer := make([][]*padding.Channel, len(patchAreas))
	for outerIdx := range patchAreas {
		for innerIdx := range patchAreas {
			if innerIdx == outerIdx {
				continue
			}
			if !model.Overlaps(patchAreas[innerIdx], paddedAreas[outerIdx]) {
				continue
			}
			intersection := model.Intersect(paddedAreas[outerIdx], patchAreas[innerIdx])
			if !reach.MayPropagateFrom(intersection, patchAreas[outerIdx]) {
				continue
			}
			ch := padding.New(intersection)
			inner[innerIdx] = append(inner[innerIdx], ch)
			outer[outerIdx] = append(outer[outerIdx], ch)
		}
	}

	queries := make([]string, 0, len(scenario.Queries))
	for key := range scenario.Queries {
		queries = append(queries, key)
	}
	sort.Strings(queries)

	workers := make([]*patch.Worker, len(patchAreas))
	outputs := make([]<-chan model.OutputEntry, len(patchAreas))
	for i, area := range patchAreas {
		var local []person.Person
		for _, p := range initial {
			if model.Contains(area, p.Position) {
				local = append(local, p)
			}
		}
		output := make(chan model.OutputEntry, outputQueueCapacity)
		workers[i] = patch.NewWorker(i, area, paddedAreas[i], cycle, scenario.Ticks, scenario.Obstacles,
			scenario.Queries, scenario.Parameters, scenario.Trace, local, inner[i], outer[i], v, output)
		outputs[i] = output
	}

	slog.Info("spreadsim: simulation constructed",
		"patches", len(patchAreas), "cycleDuration", cycle, "padding", paddingCells, "ticks", scenario.Ticks)

	return &Simulation{
		scenario: scenario,
		padding:  paddingCells,
		cycle:    cycle,
		workers:  workers,
		outputs:  outputs,
		queries:  queries,
	}, nil
}

// Run executes every patch worker and the collector concurrently, and
// blocks until the whole run completes or a fatal error occurs. On a
// worker failure, Run cancels the remaining workers so the collector isn't
// left waiting forever on a queue that will never fill.
func (s *Simulation) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	for _, w := range s.workers {
		w := w
		group.Go(func() error {
			if err := w.Run(groupCtx); err != nil {
				return fmt.Errorf("patch %d: %w", w.ID, err)
			}
			return nil
		})
	}

	var trace []model.TraceEntry
	var statistics map[string][]model.Statistics
	group.Go(func() error {
		var err error
		trace, statistics, err = collector.Collect(groupCtx, s.outputs, s.scenario.Ticks, s.queries, s.scenario.Trace)
		if err != nil {
			return fmt.Errorf("collector: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		slog.Error("spreadsim: run aborted", "error", err)
		return err
	}

	s.output = model.Output{Scenario: s.scenario, Trace: trace, Statistics: statistics}
	return nil
}

// GetOutput returns the finalized Output. Only valid after Run returns nil.
func (s *Simulation) GetOutput() model.Output {
	return s.output
}

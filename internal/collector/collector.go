// Package collector implements the output collector: it drains one
// OutputEntry per tick from every patch worker's own queue, merges their
// per-query statistics additively, and sort-merges their already
// individually-sorted traces into one globally ordered trace per tick.
//
// Each worker writes to its own bounded channel rather than a single shared
// queue, so a slow collector applies backpressure to every worker instead
// of letting one unbounded queue grow without limit.
package collector

import (
	"context"
	"fmt"
	"sort"

	"spreadsim/internal/model"
)

// Collect reads exactly one entry per tick (t = 0..ticks) from each channel
// in outputs, in lockstep, and returns the merged trace and per-query
// statistics series. The returned map holds one series of ticks+1 values
// for each key in queryKeys; statistics under any other key are dropped.
func Collect(ctx context.Context, outputs []<-chan model.OutputEntry, ticks int, queryKeys []string, trace bool) ([]model.TraceEntry, map[string][]model.Statistics, error) {
	length := ticks + 1

	traceEntries := make([]model.TraceEntry, length)
	statistics := make(map[string][]model.Statistics, len(queryKeys))
	for _, key := range queryKeys {
		statistics[key] = make([]model.Statistics, length)
	}

	for tick := 0; tick < length; tick++ {
		merged := make(map[string]model.Statistics, len(queryKeys))
		var perWorkerTraces [][]model.PersonInfoWithID

		for _, ch := range outputs {
			entry, err := receive(ctx, ch)
			if err != nil {
				return nil, nil, err
			}
			if entry.Tick != tick {
				panic(fmt.Sprintf("collector: expected tick %d from worker queue, got %d", tick, entry.Tick))
			}

			for key, s := range entry.Statistics {
				merged[key] = merged[key].Add(s)
			}
			if trace {
				perWorkerTraces = append(perWorkerTraces, entry.Trace)
			}
		}

		for _, key := range queryKeys {
			statistics[key][tick] = merged[key]
		}
		if trace {
			traceEntries[tick] = model.TraceEntry{Population: sortMergeByID(perWorkerTraces)}
		}
	}

	return traceEntries, statistics, nil
}

func receive(ctx context.Context, ch <-chan model.OutputEntry) (model.OutputEntry, error) {
	select {
	case entry, ok := <-ch:
		if !ok {
			return model.OutputEntry{}, fmt.Errorf("collector: worker output queue closed early")
		}
		return entry, nil
	case <-ctx.Done():
		return model.OutputEntry{}, ctx.Err()
	}
}

// sortMergeByID merges per-worker trace slices, each already sorted by id
// (a patch's local population never repeats an id), into one globally
// sorted slice with ids stripped.
func sortMergeByID(perWorker [][]model.PersonInfoWithID) []model.PersonInfo {
	total := 0
	for _, w := range perWorker {
		total += len(w)
	}
	all := make([]model.PersonInfoWithID, 0, total)
	for _, w := range perWorker {
		all = append(all, w...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	out := make([]model.PersonInfo, len(all))
	for i, p := range all {
		out[i] = p.Info
	}
	return out
}

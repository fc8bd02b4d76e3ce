package patch

import (
	"context"
	"errors"

	"spreadsim/internal/model"
	"spreadsim/internal/padding"
)

// ErrWorkerInterrupted reports that a worker was blocked on a padding
// exchange when its context was cancelled. It is fatal: the orchestrator
// aborts the run rather than treating it as recoverable.
var ErrWorkerInterrupted = errors.New("patch worker interrupted while waiting on padding channel")

// writeWithCancel writes to ch, unblocking early (returning false) if ctx
// is cancelled before the write completes.
func writeWithCancel(ctx context.Context, ch *padding.Channel, population []model.PersonInfoWithID) bool {
	done := make(chan bool, 1)
	go func() {
		done <- ch.Write(population)
	}()

	select {
	case ok := <-done:
		return ok
	case <-ctx.Done():
		ch.Close()
		<-done
		return false
	}
}

// readWithCancel reads from ch, unblocking early (returning false) if ctx
// is cancelled before a snapshot arrives.
func readWithCancel(ctx context.Context, ch *padding.Channel) ([]model.PersonInfoWithID, bool) {
	type result struct {
		population []model.PersonInfoWithID
		ok         bool
	}
	done := make(chan result, 1)
	go func() {
		population, ok := ch.Read()
		done <- result{population, ok}
	}()

	select {
	case r := <-done:
		return r.population, r.ok
	case <-ctx.Done():
		ch.Close()
		r := <-done
		return r.population, false
	}
}

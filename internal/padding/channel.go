// Package padding implements the one-slot rendezvous buffer patches use to
// exchange boundary population snapshots at cycle boundaries.
package padding

import (
	"sync"

	"spreadsim/internal/model"
)

// Channel is a capacity-1 handoff between exactly one writer patch and one
// reader patch: a write blocks while a snapshot is pending, a read blocks
// while the channel is empty.
type Channel struct {
	cond     *sync.Cond
	area     model.Rectangle
	pending  bool
	closed   bool
	snapshot []model.PersonInfoWithID
}

// New creates a Channel covering area, the geometric intersection between
// the writer's patch and the reader's padded patch.
func New(area model.Rectangle) *Channel {
	return &Channel{cond: sync.NewCond(new(sync.Mutex)), area: area}
}

// Area returns the rectangle this channel carries snapshots for. Immutable
// after construction.
func (c *Channel) Area() model.Rectangle {
	return c.area
}

// Write stores population, blocking while a previously written snapshot is
// still pending. Returns false if the channel was closed before the write
// could complete.
func (c *Channel) Write(population []model.PersonInfoWithID) bool {
	c.cond.L.Lock()
	defer c.cond.L.Unlock()

	for c.pending && !c.closed {
		c.cond.Wait()
	}
	if c.closed {
		return false
	}

	c.snapshot = population
	c.pending = true
	c.cond.Broadcast()
	return true
}

// Read consumes the pending snapshot, blocking while the channel is empty.
// Returns false if the channel was closed before a snapshot arrived.
func (c *Channel) Read() ([]model.PersonInfoWithID, bool) {
	c.cond.L.Lock()
	defer c.cond.L.Unlock()

	for !c.pending && !c.closed {
		c.cond.Wait()
	}
	if !c.pending {
		return nil, false
	}

	population := c.snapshot
	c.snapshot = nil
	c.pending = false
	c.cond.Broadcast()
	return population, true
}

// Close wakes any goroutine blocked in Write or Read, used to unwind the
// worker pool after a fatal error elsewhere in the run.
func (c *Channel) Close() {
	c.cond.L.Lock()
	defer c.cond.L.Unlock()
	c.closed = true
	c.cond.Broadcast()
}

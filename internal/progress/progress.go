// Package progress provides the progress-reporting sink shared between
// the binary-splitting evaluator and the CLI's progress bar.
package progress

import "sync/atomic"

// AtomicCounter is a bsplit.ProgressSink implementation backed by an
// atomic counter, safe to tick concurrently from the parallel evaluator's
// worker goroutines.
type AtomicCounter struct {
	count  atomic.Int64
	onTick func(current int64)
}

// NewAtomicCounter returns a counter that invokes onTick after every
// increment, passing the new total. onTick may be nil, in which case
// Tick only maintains the counter.
func NewAtomicCounter(onTick func(current int64)) *AtomicCounter {
	return &AtomicCounter{onTick: onTick}
}

// Tick increments the counter and reports the new total to onTick.
func (c *AtomicCounter) Tick() {
	n := c.count.Add(1)
	if c.onTick != nil {
		c.onTick(n)
	}
}

// Count returns the current tick count.
func (c *AtomicCounter) Count() int64 {
	return c.count.Load()
}

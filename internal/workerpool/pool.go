// Package workerpool provides a fixed-size worker pool for parallel
// computation. Unlike a pool that spawns one goroutine per submission, it
// bounds concurrency to a fixed worker count, backed by
// golang.org/x/sync/errgroup, and propagates the first worker error while
// still joining every in-flight sibling.
package workerpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs work items of result type T across a fixed number of worker
// slots. It is safe for concurrent use by multiple goroutines submitting
// work, which is how the binary-splitting evaluator uses it: every level
// of the recursion tree shares the same Pool.
//
// Slot acquisition is non-blocking (TrySubmit), not errgroup's own
// SetLimit, because this pool is used recursively: a task already running
// on a slot may itself want to submit more work. A blocking acquire there
// can deadlock the pool — every slot occupied by a task waiting on a
// child that can never acquire a slot of its own. A caller that fails to
// get a slot is expected to fall back to evaluating the work inline.
type Pool[T any] struct {
	g     *errgroup.Group
	slots chan struct{}
}

// Future is a handle to a submitted computation's eventual result.
type Future[T any] struct {
	result chan taskResult[T]
}

type taskResult[T any] struct {
	value T
	err   error
}

// New creates a pool with the given number of worker slots. If workers is
// 0 or negative, it defaults to the number of CPU cores.
func New[T any](workers int) *Pool[T] {
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}
	return &Pool[T]{g: &errgroup.Group{}, slots: make(chan struct{}, workers)}
}

// TrySubmit attempts to schedule fn on a free worker slot without
// blocking. It returns (future, true) if a slot was acquired, or
// (nil, false) immediately if the pool is saturated — in which case the
// caller should evaluate the work itself rather than wait.
func (p *Pool[T]) TrySubmit(ctx context.Context, fn func(context.Context) (T, error)) (*Future[T], bool) {
	select {
	case p.slots <- struct{}{}:
	default:
		return nil, false
	}

	fut := &Future[T]{result: make(chan taskResult[T], 1)}
	p.g.Go(func() error {
		defer func() { <-p.slots }()
		v, err := fn(ctx)
		fut.result <- taskResult[T]{value: v, err: err}
		return err
	})
	return fut, true
}

// Join blocks until fut's computation completes and returns its result.
// Calling Join is how a caller that spawned a subtree onto the pool
// rejoins it after computing its own half of the work.
func (p *Pool[T]) Join(fut *Future[T]) (T, error) {
	r := <-fut.result
	return r.value, r.err
}

// Discard drains fut's result in the background without blocking the
// caller, for a future whose result is no longer needed but must still be
// consumed so its goroutine can exit.
func (p *Pool[T]) Discard(fut *Future[T]) {
	go func() {
		<-fut.result
	}()
}

// Wait blocks until every submission made so far has completed and
// returns the first error encountered, if any. Callers that Join every
// Future they create do not need to call Wait; it exists as a safety net
// for draining the pool on shutdown.
func (p *Pool[T]) Wait() error {
	return p.g.Wait()
}

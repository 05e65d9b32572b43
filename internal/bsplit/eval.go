package bsplit

import (
	"context"
	"fmt"

	"github.com/vmaritato/piracer/internal/workerpool"
)

// ProgressSink receives one tick per leaf evaluated, in depth-first order.
// Implementations must be cheap and non-blocking: Tick is called from
// whichever goroutine is evaluating that leaf, sequential or parallel.
type ProgressSink interface {
	Tick()
}

type noopSink struct{}

func (noopSink) Tick() {}

// NoopProgress is a ProgressSink that does nothing, used when the caller
// does not want progress reporting.
var NoopProgress ProgressSink = noopSink{}

// Sequential evaluates the half-open range [a, b) of term indices with a
// single goroutine, recursively splitting at the floor midpoint.
func Sequential(a, b int64, m Multiplier, progress ProgressSink) Triplet {
	if a >= b {
		return identity()
	}
	if b-a == 1 {
		progress.Tick()
		return Leaf(a)
	}
	mid := a + (b-a)/2
	left := Sequential(a, mid, m, progress)
	right := Sequential(mid, b, m, progress)
	return Combine(m, left, right)
}

// Parallel evaluates [a, b) using pool to run left subtrees concurrently
// with the caller's right-subtree recursion, as long as the subrange is
// wider than chunk. Below that width it falls back to Sequential. Results
// are bit-identical to Sequential: the combination code path is the same
// regardless of how the two halves were produced.
//
// ctx cancellation and worker errors both propagate: the first error from
// any spawned left subtree is returned after all in-flight siblings have
// been joined, never leaving an orphaned worker goroutine behind.
func Parallel(ctx context.Context, a, b int64, chunk int64, m Multiplier, pool *workerpool.Pool[Triplet], progress ProgressSink) (Triplet, error) {
	if a >= b {
		return identity(), nil
	}
	if b-a <= chunk || pool == nil {
		return Sequential(a, b, m, progress), nil
	}

	select {
	case <-ctx.Done():
		return Triplet{}, ctx.Err()
	default:
	}

	mid := a + (b-a)/2

	future, spawned := pool.TrySubmit(ctx, func(ctx context.Context) (Triplet, error) {
		return Parallel(ctx, a, mid, chunk, m, pool, progress)
	})
	if !spawned {
		// Pool saturated: no slot to wait on, so evaluate the left
		// subtree inline rather than blocking for one.
		left := Sequential(a, mid, m, progress)
		right, err := Parallel(ctx, mid, b, chunk, m, pool, progress)
		if err != nil {
			return Triplet{}, fmt.Errorf("right subtree [%d,%d): %w", mid, b, err)
		}
		return Combine(m, left, right), nil
	}

	right, err := Parallel(ctx, mid, b, chunk, m, pool, progress)
	if err != nil {
		// Join the in-flight left subtree before returning so that no
		// worker outlives this call.
		_, _ = pool.Join(future)
		return Triplet{}, fmt.Errorf("right subtree [%d,%d): %w", mid, b, err)
	}

	left, err := pool.Join(future)
	if err != nil {
		return Triplet{}, fmt.Errorf("left subtree [%d,%d): %w", a, mid, err)
	}

	return Combine(m, left, right), nil
}

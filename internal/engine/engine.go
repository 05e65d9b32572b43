// Package engine exposes the library surface of the π computation
// engine: sequential and parallel computation, progress reporting, and
// self-testing, all built on top of internal/precision, internal/bsplit,
// internal/assemble, and internal/formatter.
package engine

import (
	"context"
	"fmt"

	"github.com/vmaritato/piracer/internal/assemble"
	"github.com/vmaritato/piracer/internal/bsplit"
	"github.com/vmaritato/piracer/internal/clierr"
	"github.com/vmaritato/piracer/internal/config"
	"github.com/vmaritato/piracer/internal/formatter"
	"github.com/vmaritato/piracer/internal/precision"
	"github.com/vmaritato/piracer/internal/selftest"
	"github.com/vmaritato/piracer/internal/workerpool"
)

// Engine computes π using the Chudnovsky series via binary splitting,
// sequentially or in parallel across a fixed-size worker pool.
type Engine struct {
	cfg        *config.Config
	multiplier bsplit.Multiplier
}

// New creates an Engine with cfg. A nil cfg falls back to config.Default().
func New(cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Engine{cfg: cfg, multiplier: bsplit.DefaultMultiplier{}}
}

func (e *Engine) validate(digits int64) error {
	if digits < 1 {
		return clierr.Argument("digits must be at least 1, got %d", digits)
	}
	if digits > e.cfg.MaxDigits {
		return clierr.Argument("digits exceeds maximum allowed (%d), got %d", e.cfg.MaxDigits, digits)
	}
	return nil
}

// ComputePi computes π to digits decimal digits, sequentially.
func (e *Engine) ComputePi(ctx context.Context, digits int64) (string, error) {
	return e.ComputePiBase(ctx, digits, precision.Decimal)
}

// ComputePiBase computes π to digits digits in the given base,
// sequentially.
func (e *Engine) ComputePiBase(ctx context.Context, digits int64, base precision.Base) (string, error) {
	return e.ComputePiWithProgress(ctx, digits, base, bsplit.NoopProgress)
}

// ComputePiWithProgress computes π sequentially, ticking progress once per
// leaf visited.
func (e *Engine) ComputePiWithProgress(ctx context.Context, digits int64, base precision.Base, progress bsplit.ProgressSink) (string, error) {
	if err := e.validate(digits); err != nil {
		return "", err
	}
	plan := precision.New(digits, base)

	select {
	case <-ctx.Done():
		return "", clierr.Resource(ctx.Err())
	default:
	}

	root := bsplit.Sequential(0, plan.Terms, e.multiplier, progress)
	return e.assembleAndFormat(root, plan)
}

// ComputePiParallel computes π using a fixed-size worker pool of workers
// goroutines. workers must be at least 1; callers that want CPU-count
// auto-detection must resolve that themselves before calling in (the CLI
// does this for its --threads convenience). Ranges no wider than
// e.cfg.MaxChunkSize are evaluated sequentially rather than spawned.
func (e *Engine) ComputePiParallel(ctx context.Context, digits int64, base precision.Base, workers int, progress bsplit.ProgressSink) (string, error) {
	if err := e.validate(digits); err != nil {
		return "", err
	}
	if workers < 1 {
		return "", clierr.Argument("workers must be at least 1, got %d", workers)
	}
	plan := precision.New(digits, base)
	if progress == nil {
		progress = bsplit.NoopProgress
	}

	pool := workerpool.New[bsplit.Triplet](workers)
	root, err := bsplit.Parallel(ctx, 0, plan.Terms, e.cfg.MaxChunkSize, e.multiplier, pool, progress)
	if err != nil {
		if ctx.Err() != nil {
			return "", clierr.Resource(err)
		}
		return "", clierr.Resource(fmt.Errorf("parallel evaluation: %w", err))
	}
	return e.assembleAndFormat(root, plan)
}

func (e *Engine) assembleAndFormat(root bsplit.Triplet, plan precision.Plan) (string, error) {
	pi := assemble.Pi(root.Q, root.T, plan.Bits)
	fbase := formatter.Decimal
	if plan.Base == precision.Hex {
		fbase = formatter.Hex
	}
	return formatter.FixedPoint(pi, int(plan.Digits), fbase), nil
}

// SelfTest runs the correctness oracle at digits digits, comparing this
// engine's sequential decimal output against an independent AGM-based
// reference. It returns a correctness-kind error on mismatch.
func (e *Engine) SelfTest(ctx context.Context, digits int64) (selftest.Verdict, error) {
	v, err := selftest.Run(digits, func(d int64) (string, error) {
		return e.ComputePi(ctx, d)
	})
	if err != nil {
		return selftest.Verdict{}, err
	}
	if !v.OK {
		return v, clierr.Correctness(fmt.Errorf("self-test mismatch at index %d: got %q want %q", v.MismatchIndex, v.Got, v.Want))
	}
	return v, nil
}

package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/vmaritato/piracer/internal/clierr"
	"github.com/vmaritato/piracer/internal/precision"
)

func TestComputePiKnownScenarios(t *testing.T) {
	e := New(nil)
	cases := []struct {
		digits int64
		base   precision.Base
		want   string
	}{
		{1, precision.Decimal, "3.1"},
		{50, precision.Decimal, "3.14159265358979323846264338327950288419716939937510"},
		{10, precision.Hex, "3.243f6a8885"},
	}
	for _, tc := range cases {
		got, err := e.ComputePiBase(context.Background(), tc.digits, tc.base)
		if err != nil {
			t.Fatalf("digits=%d base=%v: unexpected error: %v", tc.digits, tc.base, err)
		}
		if got != tc.want {
			t.Errorf("digits=%d base=%v: got %q, want %q", tc.digits, tc.base, got, tc.want)
		}
	}
}

func TestComputePiRejectsZeroDigits(t *testing.T) {
	e := New(nil)
	_, err := e.ComputePi(context.Background(), 0)
	var ce *clierr.Error
	if !errors.As(err, &ce) || ce.Kind != clierr.KindArgument {
		t.Fatalf("got %v, want an argument-kind error", err)
	}
}

func TestComputePiRejectsExcessiveDigits(t *testing.T) {
	e := New(nil)
	e.cfg.MaxDigits = 10
	_, err := e.ComputePi(context.Background(), 11)
	var ce *clierr.Error
	if !errors.As(err, &ce) || ce.Kind != clierr.KindArgument {
		t.Fatalf("got %v, want an argument-kind error", err)
	}
}

func TestComputePiParallelRejectsNonPositiveWorkers(t *testing.T) {
	e := New(nil)
	for _, workers := range []int{0, -1} {
		_, err := e.ComputePiParallel(context.Background(), 50, precision.Decimal, workers, nil)
		var ce *clierr.Error
		if !errors.As(err, &ce) || ce.Kind != clierr.KindArgument {
			t.Errorf("workers=%d: got %v, want an argument-kind error", workers, err)
		}
	}
}

func TestSequentialAndParallelAgree(t *testing.T) {
	e := New(nil)
	e.cfg.MaxChunkSize = 2 // force spawning even at this small scale

	seq, err := e.ComputePi(context.Background(), 200)
	if err != nil {
		t.Fatalf("sequential: unexpected error: %v", err)
	}
	par, err := e.ComputePiParallel(context.Background(), 200, precision.Decimal, 4, nil)
	if err != nil {
		t.Fatalf("parallel: unexpected error: %v", err)
	}
	if seq != par {
		t.Errorf("sequential and parallel results differ:\nseq=%s\npar=%s", seq, par)
	}
}

func TestSelfTestPasses(t *testing.T) {
	e := New(nil)
	v, err := e.SelfTest(context.Background(), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.OK {
		t.Fatalf("expected self-test to pass, mismatch at %d", v.MismatchIndex)
	}
}

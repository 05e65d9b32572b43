// Package selftest implements the correctness oracle: it compares the
// engine's Chudnovsky-derived output against an AGM-based reference value
// of π that is independent of the Chudnovsky series.
package selftest

import (
	"fmt"

	"github.com/ALTree/bigfloat"
	"github.com/vmaritato/piracer/internal/formatter"
	"github.com/vmaritato/piracer/internal/precision"
)

// Verdict is the result of a self-test run.
type Verdict struct {
	OK bool
	// MismatchIndex is the index of the first differing character, valid
	// only when OK is false.
	MismatchIndex int
	Got, Want     string
}

// Run computes π to digits decimal digits via engine and compares it
// against bigfloat's Gauss–Legendre/AGM reference at the same plan,
// formatted through the same formatter used by engine. Because the
// formatter is shared between both sides, formatter bugs cancel out —
// only the series evaluation is exercised.
func Run(digits int64, engine func(int64) (string, error)) (Verdict, error) {
	got, err := engine(digits)
	if err != nil {
		return Verdict{}, fmt.Errorf("engine output: %w", err)
	}

	plan := precision.New(digits, precision.Decimal)
	reference := bigfloat.Pi(plan.Bits)
	want := formatter.FixedPoint(reference, int(digits), formatter.Decimal)

	if got == want {
		return Verdict{OK: true, Got: got, Want: want}, nil
	}

	idx := firstDifference(got, want)
	return Verdict{OK: false, MismatchIndex: idx, Got: got, Want: want}, nil
}

func firstDifference(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

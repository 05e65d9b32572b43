package selftest

import (
	"errors"
	"testing"
)

func TestRunOKWhenEngineMatchesReference(t *testing.T) {
	v, err := Run(20, func(digits int64) (string, error) {
		return "3.14159265358979323846", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.OK {
		t.Fatalf("expected match, got mismatch at index %d (got %q want %q)", v.MismatchIndex, v.Got, v.Want)
	}
}

func TestRunPropagatesEngineError(t *testing.T) {
	sentinel := errors.New("boom")
	_, err := Run(10, func(digits int64) (string, error) {
		return "", sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("got %v, want wrapped %v", err, sentinel)
	}
}

func TestRunReportsMismatchIndex(t *testing.T) {
	v, err := Run(10, func(digits int64) (string, error) {
		return "3.0000000000", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.OK {
		t.Fatal("expected mismatch against the real pi reference")
	}
	if v.MismatchIndex != 2 {
		t.Errorf("MismatchIndex = %d, want 2", v.MismatchIndex)
	}
}

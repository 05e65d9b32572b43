package formatter

import (
	"math/big"
	"testing"
)

func piAt(t *testing.T, prec uint) *big.Float {
	t.Helper()
	// 60 known decimal digits of pi, far more than any test below requests.
	f, _, err := big.ParseFloat("3.14159265358979323846264338327950288419716939937510582097494", 10, prec, big.ToNearestEven)
	if err != nil {
		t.Fatalf("failed to parse reference pi: %v", err)
	}
	return f
}

func TestFixedPointOneDigit(t *testing.T) {
	got := FixedPoint(piAt(t, 256), 1, Decimal)
	if got != "3.1" {
		t.Errorf("got %q, want %q", got, "3.1")
	}
}

func TestFixedPointFiftyDigits(t *testing.T) {
	want := "3.14159265358979323846264338327950288419716939937510"
	got := FixedPoint(piAt(t, 256), 50, Decimal)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFixedPointHexHeadroom(t *testing.T) {
	want := "3.243f6a8885"
	got := FixedPoint(piAt(t, 256), 10, Hex)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFixedPointExactLength(t *testing.T) {
	for _, digits := range []int{1, 5, 17, 100} {
		got := FixedPoint(piAt(t, 1024), digits, Decimal)
		dot := -1
		for i, r := range got {
			if r == '.' {
				dot = i
				break
			}
		}
		if dot < 0 {
			t.Fatalf("digits=%d: no radix point in %q", digits, got)
		}
		if frac := len(got) - dot - 1; frac != digits {
			t.Errorf("digits=%d: fractional length = %d, want %d", digits, frac, digits)
		}
	}
}

func TestFixedPointNegativeSign(t *testing.T) {
	x := new(big.Float).SetPrec(256).Neg(piAt(t, 256))
	got := FixedPoint(x, 5, Decimal)
	if got[0] != '-' {
		t.Errorf("got %q, want leading '-'", got)
	}
}

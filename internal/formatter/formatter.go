// Package formatter bridges math/big's natural mantissa-and-exponent view
// of a floating-point value into the engine's required fixed-point output
// string, in either base 10 or base 16.
package formatter

import (
	"math"
	"math/big"
	"strings"
)

// Base is the output radix: 10 for decimal, 16 for hex.
type Base int64

const (
	Decimal Base = 10
	Hex     Base = 16
)

// FixedPoint renders x with exactly digits characters after the radix
// point, in the given base. The integer part is written without leading
// zeros (π's integer part is always the single character "3", but the
// algorithm below makes no assumption about that — it is general enough
// to also format the reference value used by the self-test boundary
// cases).
func FixedPoint(x *big.Float, digits int, base Base) string {
	neg := x.Sign() < 0
	abs := new(big.Float).Abs(x)

	b := int64(base)
	length := int64(digits) + 2 // two guard digits absorb tail rounding

	expo := exponentOf(abs, b)
	mantissa := mantissaDigits(abs, expo, length, b)

	var body strings.Builder
	switch {
	case expo <= 0:
		body.WriteString("0.")
		body.WriteString(strings.Repeat("0", int(-expo)))
		body.WriteString(mantissa)
	case int64(len(mantissa)) <= expo:
		body.WriteString(mantissa)
		body.WriteString(strings.Repeat("0", int(expo)-len(mantissa)))
		body.WriteString(".")
	default:
		end := expo + int64(digits)
		if end > int64(len(mantissa)) {
			end = int64(len(mantissa))
		}
		body.WriteString(mantissa[:expo])
		body.WriteString(".")
		body.WriteString(mantissa[expo:end])
	}

	s := normalize(body.String(), digits)
	if neg {
		s = "-" + s
	}
	return s
}

// normalize pads or truncates the fractional part of s to exactly digits
// characters.
func normalize(s string, digits int) string {
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot+1:]
	if len(frac) < digits {
		frac += strings.Repeat("0", digits-len(frac))
	} else {
		frac = frac[:digits]
	}
	return intPart + "." + frac
}

// exponentOf returns expo such that base^(expo-1) <= abs < base^expo,
// i.e. abs = 0.mantissa * base^expo. abs must be positive.
func exponentOf(abs *big.Float, base int64) int64 {
	f, _ := abs.Float64()
	if f <= 0 {
		return 0
	}
	guess := int64(math.Floor(math.Log(f)/math.Log(float64(base)))) + 1

	for {
		if abs.Cmp(powFloat(base, guess-1, abs.Prec())) < 0 {
			guess--
			continue
		}
		if abs.Cmp(powFloat(base, guess, abs.Prec())) >= 0 {
			guess++
			continue
		}
		return guess
	}
}

// mantissaDigits returns a string of exactly length base-b digits
// representing abs's leading digits, positioned so that abs equals
// 0.mantissa * base^expo.
func mantissaDigits(abs *big.Float, expo, length, base int64) string {
	prec := abs.Prec() + uint(length)*4 + 64
	scaled := new(big.Float).SetPrec(prec).Set(abs)
	scaled.Mul(scaled, powFloat(base, length-expo, prec))

	mantInt, _ := scaled.Int(nil)
	s := mantInt.Text(int(base))
	switch {
	case int64(len(s)) < length:
		s = strings.Repeat("0", int(length)-len(s)) + s
	case int64(len(s)) > length:
		s = s[:length]
	}
	return s
}

// powFloat returns base^exp (exp may be negative) at the given precision.
func powFloat(base, exp int64, prec uint) *big.Float {
	if exp < 0 {
		p := new(big.Int).Exp(big.NewInt(base), big.NewInt(-exp), nil)
		denom := new(big.Float).SetPrec(prec).SetInt(p)
		one := new(big.Float).SetPrec(prec).SetInt64(1)
		return new(big.Float).SetPrec(prec).Quo(one, denom)
	}
	p := new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), nil)
	return new(big.Float).SetPrec(prec).SetInt(p)
}

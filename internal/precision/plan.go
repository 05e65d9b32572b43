// Package precision turns a requested digit count and base into the bit
// precision and Chudnovsky term count needed to produce that many correct
// fixed-point digits.
package precision

import "math"

// Base identifies the radix of the requested output.
type Base int

const (
	// Decimal requests base-10 output.
	Decimal Base = iota
	// Hex requests base-16 output.
	Hex
)

// digitsPerTerm is the number of correct decimal digits the Chudnovsky
// series contributes per additional term (14.1816474627254776555...).
const digitsPerTerm = 14.181647462725477

// guardBits is added on top of the information-theoretic bit requirement
// to absorb rounding error accumulated across the big.Float arithmetic in
// the final assembly step.
const guardBits = 64

// log2 returns log2(b) for the bases this engine supports.
func log2(b Base) float64 {
	if b == Hex {
		return 4.0
	}
	return 3.32192809488736 // log2(10)
}

// Plan is the precision budget for one computation: how many bits of
// big.Float mantissa to carry, and how many Chudnovsky terms to sum.
type Plan struct {
	Digits int64
	Base   Base
	Bits   uint
	Terms  int64
}

// New computes the plan for digits fractional digits in the given base.
// digits must be at least 1; callers are expected to have validated that
// upstream (it is an argument error, not a planning concern).
func New(digits int64, base Base) Plan {
	bits := uint(math.Floor(float64(digits)*log2(base))) + guardBits
	terms := int64(math.Ceil(float64(digits)/digitsPerTerm)) + 1
	return Plan{Digits: digits, Base: base, Bits: bits, Terms: terms}
}

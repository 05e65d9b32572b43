// Package assemble turns a binary-splitting root triplet into a
// high-precision floating-point value of π.
package assemble

import (
	"math/big"
)

// Pi computes π = 426880 * sqrt(10005) * Q / |T| at bits of precision,
// from the root triplet's Q and T components. P is not used in the final
// formula.
func Pi(q, t *big.Int, bits uint) *big.Float {
	bigQ := new(big.Float).SetPrec(bits).SetInt(q)

	absT := new(big.Int).Abs(t)
	bigT := new(big.Float).SetPrec(bits).SetInt(absT)

	c := new(big.Float).SetPrec(bits).SetInt64(10005)
	sqrtC := new(big.Float).SetPrec(bits).Sqrt(c)

	factor := new(big.Float).SetPrec(bits).SetInt64(426880)
	numerator := new(big.Float).SetPrec(bits).Mul(factor, sqrtC)
	numerator.Mul(numerator, bigQ)

	return new(big.Float).SetPrec(bits).Quo(numerator, bigT)
}

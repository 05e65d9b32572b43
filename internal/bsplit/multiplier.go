package bsplit

import "math/big"

// Multiplier performs the large-integer multiplication used at every
// Combine step. It is the engine's one pluggable extension point: a
// future implementation could swap in an asymptotically faster backend
// (e.g. an NTT-based multiplier) without touching the evaluator or the
// combination rule above it.
type Multiplier interface {
	Mul(a, b *big.Int) *big.Int
}

// DefaultMultiplier delegates to math/big's schoolbook/Karatsuba/Toom-Cook
// multiplication, chosen automatically by (*big.Int).Mul based on operand
// size.
type DefaultMultiplier struct{}

// Mul returns a new *big.Int holding a*b.
func (DefaultMultiplier) Mul(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

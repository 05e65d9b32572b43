// Package bsplit implements the Chudnovsky series via binary splitting:
// term leaves, the (P, Q, T) combination rule, and sequential and
// parallel tree evaluators.
package bsplit

import "math/big"

// Triplet holds one node's accumulated (P, Q, T) values, as defined by
// the Chudnovsky binary-splitting recurrence.
type Triplet struct {
	P, Q, T *big.Int
}

// identity is the combination identity: combining it with any triplet x
// yields x unchanged. It is returned for empty ranges.
func identity() Triplet {
	return Triplet{P: big.NewInt(1), Q: big.NewInt(1), T: big.NewInt(0)}
}

// Combine merges a left and right triplet into their parent, per the
// binary-splitting rule:
//
//	P = P1*P2
//	Q = Q1*Q2
//	T = T1*Q2 + P1*T2
func Combine(m Multiplier, left, right Triplet) Triplet {
	p := m.Mul(left.P, right.P)
	q := m.Mul(left.Q, right.Q)
	t := new(big.Int).Add(m.Mul(left.T, right.Q), m.Mul(left.P, right.T))
	return Triplet{P: p, Q: q, T: t}
}

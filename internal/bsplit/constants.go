package bsplit

import "math/big"

// Chudnovsky series constants. For term k:
//
//	P_k = (6k-5)(2k-1)(6k-1)
//	Q_k = k^3 * C3 / 24
//	T_k = P_k * (A + B*k), negated when k is odd
var (
	chudA = big.NewInt(13591409)
	chudB = big.NewInt(545140134)

	// chudC3 is 640320^3, precomputed once.
	chudC3 = new(big.Int).Exp(big.NewInt(640320), big.NewInt(3), nil)

	big24 = big.NewInt(24)
)

package bsplit

import "math/big"

// Leaf computes the term triplet for a single index k, promoting every
// intermediate to *big.Int so that large k never overflows a machine
// word.
func Leaf(k int64) Triplet {
	if k == 0 {
		return Triplet{P: big.NewInt(1), Q: big.NewInt(1), T: new(big.Int).Set(chudA)}
	}

	bigK := big.NewInt(k)

	p1 := big.NewInt(6*k - 5)
	p2 := big.NewInt(2*k - 1)
	p3 := big.NewInt(6*k - 1)
	p := new(big.Int).Mul(p1, p2)
	p.Mul(p, p3)

	k3 := new(big.Int).Mul(bigK, bigK)
	k3.Mul(k3, bigK)
	q := new(big.Int).Mul(k3, chudC3)
	q.Div(q, big24)

	t := new(big.Int).Mul(chudB, bigK)
	t.Add(t, chudA)
	t.Mul(t, p)
	if k%2 == 1 {
		t.Neg(t)
	}

	return Triplet{P: p, Q: q, T: t}
}

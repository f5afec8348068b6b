// SPDX-License-Identifier: MIT
// Package: treeshape/combinatorics
//
// symmetric.go — elementary symmetric polynomials and binomials.

package combinatorics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// exactBinomialLimit bounds n for which combin.Binomial cannot overflow int
// for any k. For k ≤ 4 the bound is 1<<16.
const exactBinomialLimit = 60

// Choose returns the binomial coefficient C(n, k) as a float64, 0 when
// k < 0 or k > n. Small arguments are exact; large ones go through the
// log-gamma form.
func Choose(n, k int) float64 {
	if k < 0 || n < k {
		return 0
	}
	if n <= exactBinomialLimit || (k <= 4 && n <= 1<<16) || (n-k <= 4 && n <= 1<<16) {
		return float64(combin.Binomial(n, k))
	}
	return math.Round(combin.GeneralizedBinomial(float64(n), float64(k)))
}

// ElementarySymmetric returns e_k(xs), the sum over all k-subsets of xs of
// the product of their elements.
//
// Shortcuts: k > len(xs) → 0, k == 0 → 1, k == 1 → Σ xs, k == len(xs) → Π xs.
// Otherwise Newton's identities give
//
//	e_k = det(M) / k!
//
// where M is the k×k matrix whose row r holds the power sums
// p_{r+1}, p_r, …, p_1 in columns 0..r and r+1 on the superdiagonal.
//
// Complexity: O(k·len(xs) + k³).
func ElementarySymmetric(k int, xs []float64) float64 {
	switch {
	case k < 0 || k > len(xs):
		return 0
	case k == 0:
		return 1
	case k == 1:
		return floats.Sum(xs)
	case k == len(xs):
		return floats.Prod(xs)
	}

	// 1. Power sums p_1..p_k.
	p := make([]float64, k)
	pow := make([]float64, len(xs))
	for i := range pow {
		pow[i] = 1
	}
	for i := 0; i < k; i++ {
		floats.Mul(pow, xs)
		p[i] = floats.Sum(pow)
	}

	// 2. Newton matrix.
	m := mat.NewDense(k, k, nil)
	for r := 0; r < k; r++ {
		for c := 0; c <= r; c++ {
			m.Set(r, c, p[r-c])
		}
		if r+1 < k {
			m.Set(r, r+1, float64(r+1))
		}
	}

	return mat.Det(m) / float64(combin.NumPermutations(k, k))
}

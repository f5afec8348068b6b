package index

import (
	"math"
	"math/bits"

	"github.com/katalvlaran/treeshape/combinatorics"
)

// floorLog2 returns ⌊log₂ n⌋ for n ≥ 1.
func floorLog2(n int) int { return bits.Len(uint(n)) - 1 }

// ceilLog2 returns ⌈log₂ n⌉ for n ≥ 1.
func ceilLog2(n int) int { return bits.Len(uint(n - 1)) }

// popcount returns the number of set bits of n.
func popcount(n int) int { return bits.OnesCount(uint(n)) }

// pow2 returns 2^e as a float64.
func pow2(e float64) float64 { return math.Exp2(e) }

// choose is C(n, k) with C(n, k) = 0 for k > n.
func choose(n, k int) float64 { return combinatorics.Choose(n, k) }

// toFloats converts ints for the gonum reducers.
func toFloats(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}

// ratio returns a/b, or 0 when b is 0.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

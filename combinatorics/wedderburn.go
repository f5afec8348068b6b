package combinatorics

import (
	"math"
	"sync"
)

// MaxWE is the largest k for which WE(k) is tabulated. WE(48) is the last
// value below 2^53, so every tabulated value and every Furnas rank built
// from it is exact in a float64.
const MaxWE = 48

var (
	weOnce  sync.Once
	weTable []float64 // weTable[k] = WE(k), k in [1, MaxWE]
)

// buildWE fills the table with the standard recurrence
//
//	WE(2m-1) = Σ_{i=1}^{m-1} WE(i)·WE(2m-1-i)
//	WE(2m)   = Σ_{i=1}^{m-1} WE(i)·WE(2m-i) + WE(m)·(WE(m)+1)/2
func buildWE() {
	w := make([]uint64, MaxWE+1)
	w[1] = 1
	for k := 2; k <= MaxWE; k++ {
		var s uint64
		for i := 1; 2*i < k; i++ {
			s += w[i] * w[k-i]
		}
		if k%2 == 0 {
			h := w[k/2]
			s += h * (h + 1) / 2
		}
		w[k] = s
	}
	weTable = make([]float64, MaxWE+1)
	for k, v := range w {
		weTable[k] = float64(v)
	}
}

// WE returns the Wedderburn–Etherington number for k leaves: the number of
// unordered binary tree shapes with k leaves. Outside [1, MaxWE] it
// returns NaN.
func WE(k int) float64 {
	if k < 1 || k > MaxWE {
		return math.NaN()
	}
	weOnce.Do(buildWE)
	return weTable[k]
}

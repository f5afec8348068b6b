// SPDX-License-Identifier: MIT
// Package: treeshape/index
//
// structure.go — shape statistics over clade sizes and quartets.

package index

import (
	"math"

	"github.com/katalvlaran/treeshape/combinatorics"
	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

func structureFamily() []*strategy {
	return []*strategy{
		{
			name:        "s_shape",
			orientation: Imbalance,
			eval: pure(func(t *tree.Tree) float64 {
				sizes := structure.CladeSizes(t)
				var s float64
				for _, v := range structure.InnerNodes(t) {
					s += math.Log2(float64(sizes[v.ID()] - 1))
				}
				return s
			}),
			min: byMode(noBound, singleLeaf(0, func(n, _ int, _ Mode) float64 {
				return math.Log2(float64(n - 1))
			})),
			// log₂((n-1)!)
			max: func(n, _ int, _ Mode) float64 {
				lg, _ := math.Lgamma(float64(n))
				return lg / math.Ln2
			},
		},
		{
			name:        "d_index",
			orientation: Neutral,
			eval:        pure(dIndex),
			min:         noBound,
			max:         noBound,
		},
		{
			name:        "rooted_quartet_index",
			orientation: Balance,
			eval:        pure(combinatorics.RootedQuartetIndex),
			min:         constant(0),
			max: byMode(noBound, func(n, _ int, _ Mode) float64 {
				return combinatorics.DefaultQuartetWeights[4] * choose(n, 4)
			}),
		},
		{
			name:        "ladder_length",
			orientation: Neutral,
			binaryOnly:  true,
			eval: pure(func(t *tree.Tree) float64 {
				return float64(combinatorics.MaxLadder(t))
			}),
			min: noBound,
			max: noBound,
		},
		{
			name:        "IL_number",
			orientation: Neutral,
			eval: pure(func(t *tree.Tree) float64 {
				var c float64
				for _, v := range structure.InnerNodes(t) {
					if leafChildren(v) == 1 {
						c++
					}
				}
				return c
			}),
			min: noBound,
			max: noBound,
		},
	}
}

// dIndex compares the observed clade-size spectrum with its expectation
// under the Yule model:
//
//	D = Σ_{z=2}^{n-1} z·|f_z/m - n/(n-1)·2/(z(z+1))| + n·|f_n/m - 1/(n-1)|
//
// with f_z the number of nodes of clade size z and m the internal node count.
func dIndex(t *tree.Tree) float64 {
	n := t.Len()
	if n == 1 {
		return 0
	}
	freq := make([]float64, n+1)
	for _, s := range structure.CladeSizes(t) {
		freq[s]++
	}
	inner := float64(t.NumNodes() - n)
	fn := float64(n)

	var d float64
	for z := 2; z < n; z++ {
		fz := float64(z)
		d += fz * math.Abs(freq[z]/inner-(fn/(fn-1))*(2/(fz*(fz+1))))
	}
	return d + fn*math.Abs(freq[n]/inner-1/(fn-1))
}

// leafChildren counts the leaf children of v.
func leafChildren(v *tree.Node) int {
	c := 0
	for _, ch := range v.Children() {
		if ch.IsLeaf() {
			c++
		}
	}
	return c
}

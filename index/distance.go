// SPDX-License-Identifier: MIT
// Package: treeshape/index
//
// distance.go — path-length indices over leaf pairs and all node pairs.
//
// The area-per-pair and Wiener indices are derived from the Sackin index S
// and the total cophenetic index C instead of enumerating pairs.

package index

import (
	"github.com/katalvlaran/treeshape/combinatorics"
	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

func distanceFamily() []*strategy {
	return []*strategy{
		{
			name:        "total_cophenetic_index",
			orientation: Imbalance,
			eval:        pure(totalCophenetic),
			min: byMode(
				func(n, _ int, _ Mode) float64 {
					var s int
					for i := 0; i < n; i++ {
						s += i - popcount(i)
					}
					return float64(s)
				},
				constant(0),
			),
			max: func(n, _ int, _ Mode) float64 { return choose(n, 3) },
		},
		{
			name:        "diameter",
			orientation: Neutral,
			eval: func(t *tree.Tree) (float64, error) {
				d, err := combinatorics.Diameter(t)
				return float64(d), err
			},
			min: byMode(noBound, singleLeaf(0, constant(2))),
			max: func(n, _ int, _ Mode) float64 { return float64(n) },
		},
		{
			name:        "area_per_pair_index",
			orientation: Neutral,
			eval: pure(func(t *tree.Tree) float64 {
				n := float64(t.Len())
				if n == 1 {
					return 0
				}
				return (2/n)*sackin(t) - 4/(n*(n-1))*totalCophenetic(t)
			}),
			min: noBound,
			max: noBound,
		},
	}
}

// totalCophenetic sums C(clade size, 2) over non-root internal nodes.
func totalCophenetic(t *tree.Tree) float64 {
	sizes := structure.CladeSizes(t)
	var s float64
	for _, v := range structure.InnerNodes(t) {
		if !v.IsRoot() {
			s += choose(sizes[v.ID()], 2)
		}
	}
	return s
}

// sackin sums the leaf depths.
func sackin(t *tree.Tree) float64 {
	var s float64
	for _, d := range structure.LeafDepths(t) {
		s += float64(d)
	}
	return s
}

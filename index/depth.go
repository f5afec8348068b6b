// SPDX-License-Identifier: MIT
// Package: treeshape/index
//
// depth.go — depth-based indices.
//
// Bounds use k = n - m + 1 and x = ⌊log₂(n/k)⌋ for the arity-aware
// minimum of the Sackin family; L = ⌊log₂ n⌋ for the binary vertex-depth
// minima.

package index

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

func depthFamily() []*strategy {
	return []*strategy{
		{
			name:        "average_leaf_depth",
			orientation: Imbalance,
			eval: pure(func(t *tree.Tree) float64 {
				return stat.Mean(toFloats(structure.LeafDepths(t)), nil)
			}),
			min: func(n, m int, _ Mode) float64 {
				k := float64(n - m + 1)
				x := math.Floor(math.Log2(float64(n) / k))
				return x + 3 - (k/float64(n))*pow2(x+1)
			},
			max: func(n, m int, _ Mode) float64 {
				fn, fm := float64(n), float64(m)
				return fm - ((fm-1)*fm)/(2*fn)
			},
		},
		{
			name:        "variance_of_leaves_depths",
			orientation: Imbalance,
			eval: pure(func(t *tree.Tree) float64 {
				return stat.PopVariance(toFloats(structure.LeafDepths(t)), nil)
			}),
			min: byMode(noBound, constant(0)),
			max: func(n, _ int, _ Mode) float64 {
				fn := float64(n)
				return ((fn - 1) * (fn - 2) * (fn*fn + 3*fn - 6)) / (12 * fn * fn)
			},
		},
		{
			name:        "sackin_index",
			orientation: Imbalance,
			eval: pure(func(t *tree.Tree) float64 {
				return floats.Sum(toFloats(structure.LeafDepths(t)))
			}),
			min: func(n, m int, _ Mode) float64 {
				k := float64(n - m + 1)
				x := math.Floor(math.Log2(float64(n) / k))
				return (x+3)*float64(n) - k*pow2(x+1)
			},
			max: func(n, m int, _ Mode) float64 {
				fn, fm := float64(n), float64(m)
				return fn*fm - ((fm-1)*fm)/2
			},
		},
		{
			name:        "total_path_length",
			orientation: Imbalance,
			eval:        pure(totalPathLength),
			min: singleLeaf(0, byMode(
				func(n, _ int, _ Mode) float64 { return binaryMinTPL(n) },
				func(n, _ int, _ Mode) float64 { return float64(n) },
			)),
			max: func(n, _ int, _ Mode) float64 { return float64(n*n - n) },
		},
		{
			name:        "total_internal_path_length",
			orientation: Imbalance,
			eval: pure(func(t *tree.Tree) float64 {
				depths := structure.Depths(t)
				var s float64
				for _, v := range structure.InnerNodes(t) {
					s += float64(depths[v.ID()])
				}
				return s
			}),
			min: byMode(
				func(n, _ int, _ Mode) float64 {
					l := float64(floorLog2(n))
					return l*float64(n) - pow2(l+1) + 2
				},
				constant(0),
			),
			max: func(n, _ int, _ Mode) float64 { return float64((n-1)*(n-2)) / 2 },
		},
		{
			name:        "average_vertex_depth",
			orientation: Imbalance,
			eval: pure(func(t *tree.Tree) float64 {
				return totalPathLength(t) / float64(t.NumNodes())
			}),
			min: singleLeaf(0, byMode(
				func(n, _ int, _ Mode) float64 { return binaryMinTPL(n) / float64(2*n-1) },
				func(n, _ int, _ Mode) float64 { return float64(n) / float64(n+1) },
			)),
			max: func(n, _ int, _ Mode) float64 { return float64(n*n-n) / float64(2*n-1) },
		},
		{
			name:        "maximum_depth",
			orientation: Imbalance,
			eval: pure(func(t *tree.Tree) float64 {
				return float64(structure.Heights(t)[t.Root().ID()])
			}),
			min: singleLeaf(0, byMode(
				func(n, _ int, _ Mode) float64 { return float64(ceilLog2(n)) },
				constant(1),
			)),
			max: func(n, _ int, _ Mode) float64 { return float64(n - 1) },
		},
		{
			name:        "B_1_index",
			orientation: Balance,
			eval: pure(func(t *tree.Tree) float64 {
				heights := structure.Heights(t)
				var s float64
				for _, v := range structure.InnerNodes(t) {
					if !v.IsRoot() {
						s += 1 / float64(heights[v.ID()])
					}
				}
				return s
			}),
			min: noBound,
			max: noBound,
		},
		{
			name:        "B_2_index",
			orientation: Balance,
			eval: pure(func(t *tree.Tree) float64 {
				probs := structure.LeafProbabilities(t)
				var s float64
				for _, leaf := range t.Leaves() {
					p := probs[leaf.ID()]
					s -= p * math.Log2(p)
				}
				return s
			}),
			min: func(n, _ int, _ Mode) float64 { return 2 - pow2(float64(2-n)) },
			max: byMode(
				func(n, _ int, _ Mode) float64 {
					x := float64(floorLog2(n))
					return x + (float64(n)-pow2(x))/pow2(x)
				},
				func(n, _ int, _ Mode) float64 { return math.Log2(float64(n)) },
			),
		},
	}
}

// totalPathLength is the sum of the depths of all nodes.
func totalPathLength(t *tree.Tree) float64 {
	return floats.Sum(toFloats(structure.Depths(t)))
}

// binaryMinTPL is the minimum total path length of a binary tree with n ≥ 2 leaves.
func binaryMinTPL(n int) float64 {
	l := float64(floorLog2(n))
	fn := float64(n)
	return 2*l*fn - pow2(l+2) + 2*fn + 2
}

// SPDX-License-Identifier: MIT
// Package: treeshape/index
//
// balance.go — indices over the per-node balance value
// b(v) = |n_l - n_r| of a binary tree.
//
// All of them are binary-only.

package index

import (
	"math"

	"github.com/katalvlaran/treeshape/combinatorics"
	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

func balanceFamily() []*strategy {
	return []*strategy{
		{
			name:        "colless_index",
			orientation: Imbalance,
			binaryOnly:  true,
			eval:        pure(colless),
			min:         func(n, _ int, _ Mode) float64 { return collessMin(n) },
			max:         func(n, _ int, _ Mode) float64 { return float64((n-1)*(n-2)) / 2 },
		},
		{
			name:        "corrected_colless_index",
			orientation: Imbalance,
			binaryOnly:  true,
			eval: pure(func(t *tree.Tree) float64 {
				n := t.Len()
				if n <= 2 {
					return 0
				}
				return 2 * colless(t) / float64((n-1)*(n-2))
			}),
			min: func(n, _ int, _ Mode) float64 {
				if n <= 2 {
					return 0
				}
				return 2 / float64((n-1)*(n-2)) * collessMin(n)
			},
			max: func(n, _ int, _ Mode) float64 {
				if n <= 2 {
					return 0
				}
				return 1
			},
		},
		{
			name:        "quadratic_colless_index",
			orientation: Imbalance,
			binaryOnly:  true,
			eval: pure(sumBalance(func(_ []int, _ *tree.Node, b float64) float64 {
				return b * b
			})),
			min: func(n, _ int, _ Mode) float64 { return collessMin(n) },
			max: func(n, _ int, _ Mode) float64 { return choose(n, 3) + choose(n-1, 3) },
		},
		{
			name:        "I_2_index",
			orientation: Imbalance,
			binaryOnly:  true,
			eval: pure(func(t *tree.Tree) float64 {
				n := t.Len()
				if n <= 2 {
					return 0
				}
				s := sumBalance(func(sizes []int, v *tree.Node, b float64) float64 {
					if sizes[v.ID()] <= 2 {
						return 0
					}
					return b / float64(sizes[v.ID()]-2)
				})(t)
				return s / float64(n-2)
			}),
			min: noBound,
			max: func(n, _ int, _ Mode) float64 {
				if n <= 2 {
					return 0
				}
				return 1
			},
		},
		{
			name:        "stairs1",
			orientation: Imbalance,
			binaryOnly:  true,
			eval: pure(func(t *tree.Tree) float64 {
				if t.Len() == 1 {
					return 0
				}
				return rogersJ(t) / float64(t.Len()-1)
			}),
			min: singleLeaf(0, func(n, _ int, _ Mode) float64 {
				return float64(popcount(n)-1) / float64(n-1)
			}),
			max: singleLeaf(0, func(n, _ int, _ Mode) float64 {
				return float64(n-2) / float64(n-1)
			}),
		},
		{
			name:        "stairs2",
			orientation: Balance,
			binaryOnly:  true,
			eval: pure(func(t *tree.Tree) float64 {
				if t.Len() == 1 {
					return 0
				}
				s := sumBalance(func(sizes []int, v *tree.Node, _ float64) float64 {
					l, r := sizes[v.Children()[0].ID()], sizes[v.Children()[1].ID()]
					return float64(min(l, r)) / float64(max(l, r))
				})(t)
				return s / float64(t.Len()-1)
			}),
			min: noBound,
			max: noBound,
		},
		{
			name:        "rogers_j_index",
			orientation: Imbalance,
			binaryOnly:  true,
			eval:        pure(rogersJ),
			min:         func(n, _ int, _ Mode) float64 { return float64(popcount(n) - 1) },
			max:         singleLeaf(0, func(n, _ int, _ Mode) float64 { return float64(n - 2) }),
		},
		{
			name:        "symmetry_nodes_index",
			orientation: Imbalance,
			binaryOnly:  true,
			eval: pure(func(t *tree.Tree) float64 {
				var c float64
				for _, v := range structure.InnerNodes(t) {
					a, b := v.Children()[0], v.Children()[1]
					if !combinatorics.Isomorphic(t, a, b) {
						c++
					}
				}
				return c
			}),
			min: func(n, _ int, _ Mode) float64 { return float64(popcount(n) - 1) },
			max: singleLeaf(0, func(n, _ int, _ Mode) float64 { return float64(n - 2) }),
		},
	}
}

// sumBalance sums f over the internal nodes of a binary tree, passing the
// node's balance value b(v).
func sumBalance(f func(sizes []int, v *tree.Node, b float64) float64) func(*tree.Tree) float64 {
	return func(t *tree.Tree) float64 {
		sizes := structure.CladeSizes(t)
		var s float64
		for _, v := range structure.InnerNodes(t) {
			s += f(sizes, v, balanceValue(sizes, v))
		}
		return s
	}
}

// balanceValue is |n_l - n_r| for a binary node.
func balanceValue(sizes []int, v *tree.Node) float64 {
	return math.Abs(float64(sizes[v.Children()[0].ID()] - sizes[v.Children()[1].ID()]))
}

func colless(t *tree.Tree) float64 {
	return sumBalance(func(_ []int, _ *tree.Node, b float64) float64 { return b })(t)
}

// rogersJ counts the internal nodes with unequal child clade sizes.
func rogersJ(t *tree.Tree) float64 {
	return sumBalance(func(_ []int, _ *tree.Node, b float64) float64 {
		if b != 0 {
			return 1
		}
		return 0
	})(t)
}

// collessMin is the minimum Colless index over binary trees with n leaves:
//
//	Σ_{j=1}^{⌈log₂ n⌉-1} 2^j · min(⌈x⌉-x, x-⌊x⌋),  x = n/2^j
func collessMin(n int) float64 {
	var s float64
	for j := 1; j < ceilLog2(n); j++ {
		x := float64(n) / pow2(float64(j))
		s += pow2(float64(j)) * math.Min(math.Ceil(x)-x, x-math.Floor(x))
	}
	return s
}

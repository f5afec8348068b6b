// SPDX-License-Identifier: MIT
// Package: treeshape/combinatorics
//
// ranks.go — Furnas and Colijn–Plazotta ranks of binary shapes.
//
// Contract:
//   - Both rankings assume a bifurcating tree; a node with an arity other
//     than 0 or 2 gets rank NaN, which propagates to its ancestors.
//   - Ranks are invariant under swapping the children of any node.
//   - Furnas ranks go NaN once a clade exceeds MaxWE leaves.

package combinatorics

import (
	"math"

	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

// Memo keys of the per-node rank vectors.
const (
	AttrFurnasRanks tree.Attr = "furnas_ranks"
	AttrCPRanks     tree.Attr = "colijn_plazotta_ranks"
)

// FurnasRanks returns the rank of every subtree among all binary shapes
// with the same number of leaves, in the left-light rooted ordering.
// Leaves rank 1; ranks of shapes with k leaves lie in [1, WE(k)].
//
// For an internal node with children of sizes α ≤ β and ranks f_l, f_r
// (f_l ≤ f_r when α == β), and n = α + β:
//
//	rank = Σ_{i=1}^{α-1} WE(i)·WE(n-i) + (f_l-1)·WE(β) + f_r
//	       - [α == β]·(f_l² - f_l)/2
//
// Complexity: O(V + Σ α) time, O(V) space.
func FurnasRanks(t *tree.Tree) []float64 {
	return tree.Load(t.Memo(), AttrFurnasRanks, func() []float64 {
		sizes := structure.CladeSizes(t)
		ranks := make([]float64, t.NumNodes())
		for _, v := range t.Postorder() {
			id := v.ID()
			if v.IsLeaf() {
				ranks[id] = 1
				continue
			}
			if v.NumChildren() != 2 {
				ranks[id] = math.NaN()
				continue
			}

			// 1. Order the children: smaller clade first, smaller rank on ties.
			a, b := v.Children()[0].ID(), v.Children()[1].ID()
			if sizes[a] > sizes[b] || (sizes[a] == sizes[b] && ranks[a] > ranks[b]) {
				a, b = b, a
			}
			alpha, beta := sizes[a], sizes[b]
			fl, fr := ranks[a], ranks[b]
			n := sizes[id]

			// 2. Count the shapes whose left clade is smaller than alpha.
			var rank float64
			for i := 1; i < alpha; i++ {
				rank += WE(i) * WE(n-i)
			}

			// 3. Offset within the (alpha, beta) block.
			rank += (fl-1)*WE(beta) + fr
			if alpha == beta {
				rank -= (fl*fl - fl) / 2
			}
			ranks[id] = rank
		}
		return ranks
	})
}

// ColijnPlazottaRanks returns the Colijn–Plazotta rank of every subtree:
// leaves rank 1 and an internal node with child ranks hi ≥ lo ranks
// hi·(hi-1)/2 + lo + 1. Ranks grow doubly exponentially with the height,
// so deep trees overflow to +Inf.
//
// Complexity: O(V).
func ColijnPlazottaRanks(t *tree.Tree) []float64 {
	return tree.Load(t.Memo(), AttrCPRanks, func() []float64 {
		ranks := make([]float64, t.NumNodes())
		for _, v := range t.Postorder() {
			id := v.ID()
			switch v.NumChildren() {
			case 0:
				ranks[id] = 1
			case 2:
				lo, hi := ranks[v.Children()[0].ID()], ranks[v.Children()[1].ID()]
				if lo > hi {
					lo, hi = hi, lo
				}
				ranks[id] = hi*(hi-1)/2 + lo + 1
			default:
				ranks[id] = math.NaN()
			}
		}
		return ranks
	})
}

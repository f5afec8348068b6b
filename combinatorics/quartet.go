// SPDX-License-Identifier: MIT
// Package: treeshape/combinatorics
//
// quartet.go — rooted quartet index.
//
// Every 4-leaf subset of a tree induces one of five rooted quartet shapes
// Q0..Q4, ordered by increasing symmetry; each shape carries a weight q_i.
// The index is the sum of the weights over all 4-leaf subsets, computed in
// one postorder pass from the clade sizes of each node's children.

package combinatorics

import (
	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

// QuartetWeights holds the weights q_0..q_4 of the five rooted quartet shapes.
type QuartetWeights [5]float64

// DefaultQuartetWeights is the canonical choice q_i = i.
var DefaultQuartetWeights = QuartetWeights{0, 1, 2, 3, 4}

// AttrQuartet is the memo key of the per-node quartet sums under the
// default weights.
const AttrQuartet tree.Attr = "rooted_quartets"

// RootedQuartetIndex returns the rooted quartet index of t under the
// default weights.
func RootedQuartetIndex(t *tree.Tree) float64 {
	return tree.Load(t.Memo(), AttrQuartet, func() float64 {
		return RootedQuartetIndexWeighted(t, DefaultQuartetWeights)
	})
}

// RootedQuartetIndexWeighted returns the rooted quartet index of t under q.
//
// Per internal node v with child clade sizes c_1..c_k, n_v = Σ c_i and
// E_j = e_j(c_1..c_k):
//
//	ups(v) = Σ ups(child) + E_3
//	rqi(v) = Σ rqi(child)
//	       + q_4·E_4
//	       + q_3·e_2(C(c_1,2), …, C(c_k,2))
//	       + q_2·(n_v·(ups(v) - E_3) - Σ c_i·ups(child_i))
//	       + q_1·(E_3·E_1/2 - 2·E_4 - 3·E_3/2)
//
// and the root adds q_0·C(n,4). ups(v) counts the 3-leaf subsets below v
// that are split three ways at some node.
//
// Complexity: O(V) plus O(k³) for nodes of arity k > 4.
func RootedQuartetIndexWeighted(t *tree.Tree, q QuartetWeights) float64 {
	sizes := structure.CladeSizes(t)
	ups := make([]float64, t.NumNodes())
	rqi := make([]float64, t.NumNodes())

	for _, v := range t.Postorder() {
		if v.IsLeaf() {
			continue
		}
		id := v.ID()
		children := v.Children()

		// 1. Clade sizes of the children and their pair counts.
		cs := make([]float64, len(children))
		pairs := make([]float64, len(children))
		var sumUps, sumRQI, weighted float64
		for i, c := range children {
			cs[i] = float64(sizes[c.ID()])
			pairs[i] = Choose(sizes[c.ID()], 2)
			sumUps += ups[c.ID()]
			sumRQI += rqi[c.ID()]
			weighted += cs[i] * ups[c.ID()]
		}
		e1 := ElementarySymmetric(1, cs)
		e3 := ElementarySymmetric(3, cs)
		e4 := ElementarySymmetric(4, cs)

		// 2. Combine.
		ups[id] = sumUps + e3
		r := sumRQI
		r += q[4] * e4
		r += q[3] * ElementarySymmetric(2, pairs)
		r += q[2] * (float64(sizes[id])*sumUps - weighted)
		r += q[1] * (0.5*e3*e1 - 2*e4 - 1.5*e3)
		rqi[id] = r
	}

	root := t.Root().ID()
	return rqi[root] + q[0]*Choose(t.Len(), 4)
}

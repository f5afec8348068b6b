// SPDX-License-Identifier: MIT
// Package: treeshape/combinatorics
//
// network.go — betweenness centrality and farness.
//
// Contract:
//   - Paths are edge paths in the undirected tree; branch lengths are ignored.
//   - Leaves have betweenness 0: no shortest path passes through them.

package combinatorics

import (
	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

// Memo keys of the network vectors.
const (
	AttrBetweenness tree.Attr = "betweenness"
	AttrFarness     tree.Attr = "farness"
)

// Betweenness returns, for every node, the number of unordered node pairs
// whose connecting path passes through it as an interior vertex. With
// nb(x) the node count of the subtree of x and N the total node count:
//
//	bcent(v) = (nb(v)-1)·(N-nb(v)) + Σ_{i<j} nb(c_i)·nb(c_j)
//
// Complexity: O(V).
func Betweenness(t *tree.Tree) []float64 {
	return tree.Load(t.Memo(), AttrBetweenness, func() []float64 {
		below := structure.NodesBelow(t)
		total := float64(t.NumNodes())
		out := make([]float64, t.NumNodes())
		for _, v := range t.Nodes() {
			if v.IsLeaf() {
				continue
			}
			nb := float64(below[v.ID()])
			// Σ_{i<j} x_i·x_j = ((Σx)² - Σx²)/2
			var sum, sq float64
			for _, c := range v.Children() {
				x := float64(below[c.ID()])
				sum += x
				sq += x * x
			}
			out[v.ID()] = (nb-1)*(total-nb) + (sum*sum-sq)/2
		}
		return out
	})
}

// Farness returns, for every node, the sum of its edge distances to all
// other nodes. The root value is the sum of all depths; moving to a child c
// brings nb(c) nodes one step closer and N-nb(c) one step further.
//
// Complexity: O(V).
func Farness(t *tree.Tree) []float64 {
	return tree.Load(t.Memo(), AttrFarness, func() []float64 {
		below := structure.NodesBelow(t)
		total := t.NumNodes()
		out := make([]float64, total)

		var rootFar int
		for _, d := range structure.Depths(t) {
			rootFar += d
		}
		out[t.Root().ID()] = float64(rootFar)

		// preorder: parents are filled before children
		for _, v := range t.Nodes() {
			if p := v.Parent(); p != nil {
				nb := below[v.ID()]
				out[v.ID()] = out[p.ID()] - float64(nb) + float64(total-nb)
			}
		}
		return out
	})
}

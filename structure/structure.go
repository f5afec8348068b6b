// Package structure holds the structural precomputations every tree-shape
// index builds on: clade sizes, depths, heights, leaf-reach probabilities,
// subtree node counts and the bifurcation check.
//
// Each function is a single postorder or preorder pass over a frozen tree,
// memoized in the tree's memo under its Attr, so repeated calls are O(1).
// Per-node results are slices indexed by tree.Node.ID(); callers must treat
// them as read-only.
package structure

import (
	"github.com/katalvlaran/treeshape/tree"
)

// Memo keys of the precomputed attributes.
const (
	AttrCladeSize   tree.Attr = "clade_size"
	AttrDepth       tree.Attr = "depth"
	AttrHeight      tree.Attr = "height"
	AttrProb        tree.Attr = "prob"
	AttrBifurcating tree.Attr = "bifurcating"
	AttrNodesBelow  tree.Attr = "nodes_below"
	AttrLeafDepths  tree.Attr = "leaf_depths"
	AttrWidths      tree.Attr = "widths"
)

// CladeSizes returns the number of leaves below every node (leaf → 1).
// Complexity: O(V).
func CladeSizes(t *tree.Tree) []int {
	return tree.Load(t.Memo(), AttrCladeSize, func() []int {
		sizes := make([]int, t.NumNodes())
		for _, v := range t.Postorder() {
			if v.IsLeaf() {
				sizes[v.ID()] = 1
				continue
			}
			for _, c := range v.Children() {
				sizes[v.ID()] += sizes[c.ID()]
			}
		}
		return sizes
	})
}

// Depths returns the edge distance from the root to every node (root → 0).
// Complexity: O(V).
func Depths(t *tree.Tree) []int {
	return tree.Load(t.Memo(), AttrDepth, func() []int {
		depths := make([]int, t.NumNodes())
		// preorder: the parent is always filled first
		for _, v := range t.Nodes() {
			if p := v.Parent(); p != nil {
				depths[v.ID()] = depths[p.ID()] + 1
			}
		}
		return depths
	})
}

// Heights returns the longest downward path from every node to a leaf (leaf → 0).
// Complexity: O(V).
func Heights(t *tree.Tree) []int {
	return tree.Load(t.Memo(), AttrHeight, func() []int {
		heights := make([]int, t.NumNodes())
		for _, v := range t.Postorder() {
			for _, c := range v.Children() {
				if h := heights[c.ID()] + 1; h > heights[v.ID()] {
					heights[v.ID()] = h
				}
			}
		}
		return heights
	})
}

// LeafProbabilities returns, for every node, the probability that a random
// walk from the root choosing children uniformly reaches it (root → 1).
// Complexity: O(V).
func LeafProbabilities(t *tree.Tree) []float64 {
	return tree.Load(t.Memo(), AttrProb, func() []float64 {
		probs := make([]float64, t.NumNodes())
		probs[t.Root().ID()] = 1
		for _, v := range t.Nodes() {
			if v.IsLeaf() {
				continue
			}
			p := probs[v.ID()] / float64(v.NumChildren())
			for _, c := range v.Children() {
				probs[c.ID()] = p
			}
		}
		return probs
	})
}

// IsBifurcating reports whether every node has exactly zero or two children.
// Complexity: O(V) once, O(1) afterwards.
func IsBifurcating(t *tree.Tree) bool {
	return tree.Load(t.Memo(), AttrBifurcating, func() bool {
		for _, v := range t.Postorder() {
			if k := v.NumChildren(); k != 0 && k != 2 {
				return false
			}
		}
		return true
	})
}

// NodesBelow returns the number of nodes in every subtree, the node itself included.
// Complexity: O(V).
func NodesBelow(t *tree.Tree) []int {
	return tree.Load(t.Memo(), AttrNodesBelow, func() []int {
		below := make([]int, t.NumNodes())
		for _, v := range t.Postorder() {
			below[v.ID()] = 1
			for _, c := range v.Children() {
				below[v.ID()] += below[c.ID()]
			}
		}
		return below
	})
}

// LeafDepths returns the depth of every leaf, in t.Leaves() order.
// Complexity: O(V).
func LeafDepths(t *tree.Tree) []int {
	return tree.Load(t.Memo(), AttrLeafDepths, func() []int {
		depths := Depths(t)
		out := make([]int, 0, t.Len())
		for _, leaf := range t.Leaves() {
			out = append(out, depths[leaf.ID()])
		}
		return out
	})
}

// Widths returns the number of nodes at each depth; Widths(t)[d] is the
// width of level d and the slice length is the height of the tree plus one.
// Complexity: O(V).
func Widths(t *tree.Tree) []int {
	return tree.Load(t.Memo(), AttrWidths, func() []int {
		depths := Depths(t)
		widths := make([]int, Heights(t)[t.Root().ID()]+1)
		for _, d := range depths {
			widths[d]++
		}
		return widths
	})
}

// InnerNodes returns the internal nodes in postorder.
func InnerNodes(t *tree.Tree) []*tree.Node {
	inner := make([]*tree.Node, 0, t.NumNodes()-t.Len())
	for _, v := range t.Postorder() {
		if !v.IsLeaf() {
			inner = append(inner, v)
		}
	}
	return inner
}

package combinatorics

import "github.com/katalvlaran/treeshape/tree"

// AttrLadders is the memo key of the per-node ladder lengths.
const AttrLadders tree.Attr = "ladder_lengths"

// LadderLengths returns, for every node, the length of the ladder starting
// at it: a chain of internal nodes each having exactly one leaf child and
// one internal child.
//
//	leaf                                   → -1
//	two children, one leaf, one internal c → 1 + ladder(c)
//	two leaf children                      → 0
//	anything else                          → 0
//
// Complexity: O(V).
func LadderLengths(t *tree.Tree) []int {
	return tree.Load(t.Memo(), AttrLadders, func() []int {
		out := make([]int, t.NumNodes())
		for _, v := range t.Postorder() {
			if v.IsLeaf() {
				out[v.ID()] = -1
				continue
			}
			if v.NumChildren() != 2 {
				continue
			}
			a, b := v.Children()[0], v.Children()[1]
			switch {
			case a.IsLeaf() && !b.IsLeaf():
				out[v.ID()] = 1 + out[b.ID()]
			case b.IsLeaf() && !a.IsLeaf():
				out[v.ID()] = 1 + out[a.ID()]
			}
		}
		return out
	})
}

// MaxLadder returns the longest ladder in t, 0 for a single leaf.
func MaxLadder(t *tree.Tree) int {
	best := 0
	for _, l := range LadderLengths(t) {
		if l > best {
			best = l
		}
	}
	return best
}

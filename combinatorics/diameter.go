// SPDX-License-Identifier: MIT
// Package: treeshape/combinatorics
//
// diameter.go — leaf-to-leaf diameter.

package combinatorics

import (
	"fmt"

	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

// AttrDiameter is the memo key of the diameter.
const AttrDiameter tree.Attr = "leaf_diameter"

// Diameter returns the largest edge distance between two leaves.
//
// Implementation:
//   - Stage 1: pick the deepest leaf u (first in preorder on ties).
//   - Stage 2: BFS from u over the undirected tree; return the largest
//     distance to any leaf.
//
// The farthest node from any vertex of a tree is an end of a longest path,
// so two passes suffice. A single leaf has diameter 0.
// Complexity: O(V).
func Diameter(t *tree.Tree) (int, error) {
	type result struct {
		d   int
		err error
	}
	r := tree.Load(t.Memo(), AttrDiameter, func() result {
		depths := structure.Depths(t)
		far := t.Leaves()[0]
		for _, leaf := range t.Leaves() {
			if depths[leaf.ID()] > depths[far.ID()] {
				far = leaf
			}
		}

		dist, err := t.Distances(far)
		if err != nil {
			return result{err: fmt.Errorf("Diameter: %w", err)}
		}
		best := 0
		for _, leaf := range t.Leaves() {
			if d := dist[leaf.ID()]; d > best {
				best = d
			}
		}
		return result{d: best}
	})
	return r.d, r.err
}

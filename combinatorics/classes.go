package combinatorics

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/treeshape/tree"
)

// AttrShapeClasses is the memo key of the per-node shape classes.
const AttrShapeClasses tree.Attr = "shape_classes"

// ShapeClasses assigns every node an integer class such that two subtrees
// share a class exactly when they are isomorphic as unordered, unlabeled
// rooted trees. All leaves are class 0.
//
// A node's class is interned from the sorted multiset of its children's
// classes, so equal multisets map to equal classes.
// Complexity: O(V log k) with k the largest arity.
func ShapeClasses(t *tree.Tree) []int {
	return tree.Load(t.Memo(), AttrShapeClasses, func() []int {
		classes := make([]int, t.NumNodes())
		intern := map[string]int{"": 0}
		var sb strings.Builder
		for _, v := range t.Postorder() {
			if v.IsLeaf() {
				continue
			}
			kids := make([]int, 0, v.NumChildren())
			for _, c := range v.Children() {
				kids = append(kids, classes[c.ID()])
			}
			sort.Ints(kids)

			sb.Reset()
			for i, k := range kids {
				if i > 0 {
					sb.WriteByte(',')
				}
				sb.WriteString(strconv.Itoa(k))
			}
			key := sb.String()
			id, ok := intern[key]
			if !ok {
				id = len(intern)
				intern[key] = id
			}
			classes[v.ID()] = id
		}
		return classes
	})
}

// Isomorphic reports whether the subtrees rooted at a and b have the same
// unordered shape. Both nodes must belong to t.
func Isomorphic(t *tree.Tree, a, b *tree.Node) bool {
	c := ShapeClasses(t)
	return c[a.ID()] == c[b.ID()]
}

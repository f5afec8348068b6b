package tree_test

import (
	"github.com/katalvlaran/treeshape/tree"
)

// leaf is a unit-length leaf.
func leaf(name string) *tree.Node { return tree.Leaf(name, tree.WithLength(1)) }

// inner is a unit-length internal node.
func inner(children ...*tree.Node) *tree.Node { return tree.Inner(children...).SetLength(1) }

// cherryTree builds ((a,b),c).
func cherryTree() *tree.Tree {
	return tree.MustNew(tree.Inner(inner(leaf("a"), leaf("b")), leaf("c")))
}

// names collects node names in slice order.
func names(nodes []*tree.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name()
	}
	return out
}

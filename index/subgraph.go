package index

import (
	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

// subgraph indices count small rooted motifs: cherries, pitchforks,
// four-caterpillars and double cherries.
func subgraphFamily() []*strategy {
	return []*strategy{
		{
			name:        "cherry_index",
			orientation: Neutral,
			eval:        pure(cherries),
			min:         singleLeaf(0, constant(1)),
			max: byMode(
				func(n, _ int, _ Mode) float64 { return float64(n / 2) },
				func(n, _ int, _ Mode) float64 { return choose(n, 2) },
			),
		},
		{
			name:        "modified_cherry_index",
			orientation: Neutral,
			binaryOnly:  true,
			eval: pure(func(t *tree.Tree) float64 {
				return float64(t.Len()) - 2*cherries(t)
			}),
			min: func(n, _ int, _ Mode) float64 { return float64(n % 2) },
			max: singleLeaf(1, func(n, _ int, _ Mode) float64 { return float64(n - 2) }),
		},
		{
			name:        "pitchforks",
			orientation: Neutral,
			eval:        pure(countMotif(isPitchfork)),
			min:         noBound,
			max:         noBound,
		},
		{
			name:        "four_caterpillars",
			orientation: Neutral,
			eval: pure(countMotif(func(sizes []int, v *tree.Node) bool {
				if sizes[v.ID()] != 4 || v.NumChildren() != 2 {
					return false
				}
				a, b := v.Children()[0], v.Children()[1]
				return (a.IsLeaf() && isPitchfork(sizes, b)) || (b.IsLeaf() && isPitchfork(sizes, a))
			})),
			min: noBound,
			max: noBound,
		},
		{
			name:        "double_cherries",
			orientation: Neutral,
			eval: pure(countMotif(func(sizes []int, v *tree.Node) bool {
				return sizes[v.ID()] == 4 && v.NumChildren() == 2 &&
					!v.Children()[0].IsLeaf() && !v.Children()[1].IsLeaf()
			})),
			min: noBound,
			max: noBound,
		},
	}
}

// cherries sums C(leaf children, 2) over internal nodes.
func cherries(t *tree.Tree) float64 {
	var c float64
	for _, v := range structure.InnerNodes(t) {
		c += choose(leafChildren(v), 2)
	}
	return c
}

// isPitchfork reports a binary node spanning exactly three leaves.
func isPitchfork(sizes []int, v *tree.Node) bool {
	return sizes[v.ID()] == 3 && v.NumChildren() == 2
}

// countMotif counts the internal nodes matching pred.
func countMotif(pred func(sizes []int, v *tree.Node) bool) func(*tree.Tree) float64 {
	return func(t *tree.Tree) float64 {
		sizes := structure.CladeSizes(t)
		var c float64
		for _, v := range structure.InnerNodes(t) {
			if pred(sizes, v) {
				c++
			}
		}
		return c
	}
}

package index

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

// branch-length indices; an unset length counts as 0.
func branchFamily() []*strategy {
	return []*strategy{
		{
			name:        "treeness",
			orientation: Neutral,
			eval:        pure(treeness),
			min:         constant(0),
			max:         singleLeaf(0, constant(1)),
		},
		{
			name:        "stemminess",
			orientation: Neutral,
			eval:        pure(stemminess),
			min:         constant(0),
			max:         singleLeaf(0, constant(1)),
		},
	}
}

// treeness is the share of the total length on internal branches, the
// root's own branch included.
func treeness(t *tree.Tree) float64 {
	if t.Len() == 1 {
		return 0
	}
	var inner, total float64
	for _, v := range t.Nodes() {
		l, _ := v.BranchLength()
		total += l
		if !v.IsLeaf() {
			inner += l
		}
	}
	return ratio(inner, total)
}

// stemminess is the mean, over non-root internal nodes with a non-empty
// subtree length, of the node's branch length over the total length of its
// branch and everything below it.
func stemminess(t *tree.Tree) float64 {
	if t.Len() == 1 {
		return 0
	}
	below := make([]float64, t.NumNodes())
	for _, v := range t.Postorder() {
		below[v.ID()], _ = v.BranchLength()
		for _, c := range v.Children() {
			below[v.ID()] += below[c.ID()]
		}
	}

	var ratios []float64
	for _, v := range structure.InnerNodes(t) {
		if v.IsRoot() || below[v.ID()] == 0 {
			continue
		}
		l, _ := v.BranchLength()
		ratios = append(ratios, l/below[v.ID()])
	}
	if len(ratios) == 0 {
		return 0
	}
	return stat.Mean(ratios, nil)
}

package index

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/treeshape/combinatorics"
	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

// network indices treat the tree as an undirected graph. Betweenness
// statistics range over internal nodes only; a single leaf yields 0.
func networkFamily() []*strategy {
	return []*strategy{
		{
			name:        "wiener_index",
			orientation: Neutral,
			eval: pure(func(t *tree.Tree) float64 {
				n := float64(t.Len())
				if n == 1 {
					return 0
				}
				return (n-1)*sackin(t) - 2*totalCophenetic(t)
			}),
			min: noBound,
			max: noBound,
		},
		neutral("minimum_farness", func(t *tree.Tree) float64 { return floats.Min(combinatorics.Farness(t)) }),
		neutral("maximum_farness", func(t *tree.Tree) float64 { return floats.Max(combinatorics.Farness(t)) }),
		neutral("total_farness", func(t *tree.Tree) float64 { return floats.Sum(combinatorics.Farness(t)) }),
		neutral("minimum_bcent", innerBetweenness(floats.Min)),
		neutral("maximum_bcent", innerBetweenness(floats.Max)),
		neutral("mean_bcent", innerBetweenness(func(xs []float64) float64 { return stat.Mean(xs, nil) })),
		neutral("bcent_variance", innerBetweenness(func(xs []float64) float64 { return stat.PopVariance(xs, nil) })),
		neutral("bcent_root", func(t *tree.Tree) float64 { return combinatorics.Betweenness(t)[t.Root().ID()] }),
	}
}

// neutral is an unbounded index without balance semantics.
func neutral(name string, f func(t *tree.Tree) float64) *strategy {
	return &strategy{name: name, orientation: Neutral, eval: pure(f), min: noBound, max: noBound}
}

// innerBetweenness reduces the betweenness of the internal nodes with agg.
func innerBetweenness(agg func([]float64) float64) func(*tree.Tree) float64 {
	return func(t *tree.Tree) float64 {
		bc := combinatorics.Betweenness(t)
		inner := structure.InnerNodes(t)
		if len(inner) == 0 {
			return 0
		}
		xs := make([]float64, len(inner))
		for i, v := range inner {
			xs[i] = bc[v.ID()]
		}
		return agg(xs)
	}
}

package index

import (
	"github.com/katalvlaran/treeshape/combinatorics"
	"github.com/katalvlaran/treeshape/tree"
)

// ranking indices map a binary shape to its position in a canonical order.
func rankingFamily() []*strategy {
	return []*strategy{
		{
			name:        "colijn_plazotta_rank",
			orientation: Imbalance,
			binaryOnly:  true,
			eval: pure(func(t *tree.Tree) float64 {
				return combinatorics.ColijnPlazottaRanks(t)[t.Root().ID()]
			}),
			min: noBound,
			max: noBound,
		},
		{
			name:        "furnas_rank",
			orientation: Balance,
			binaryOnly:  true,
			eval: pure(func(t *tree.Tree) float64 {
				return combinatorics.FurnasRanks(t)[t.Root().ID()]
			}),
			min: constant(1),
			max: func(n, _ int, _ Mode) float64 { return combinatorics.WE(n) },
		},
	}
}

package index

import (
	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

// width-based indices; widths[d] is the number of nodes at depth d.
func widthFamily() []*strategy {
	return []*strategy{
		{
			name:        "maximum_width",
			orientation: Balance,
			eval:        pure(func(t *tree.Tree) float64 { return float64(maxWidth(t)) }),
			min:         singleLeaf(1, constant(2)),
			max:         byMode(noBound, func(n, _ int, _ Mode) float64 { return float64(n) }),
		},
		{
			name:        "maxdiff_widths",
			orientation: Balance,
			eval: pure(func(t *tree.Tree) float64 {
				return float64(maxWidthStep(structure.Widths(t), true))
			}),
			min: singleLeaf(0, constant(1)),
			max: byMode(noBound, func(n, _ int, _ Mode) float64 { return float64(n - 1) }),
		},
		{
			name:        "modified_maxdiff_widths",
			orientation: Balance,
			eval: pure(func(t *tree.Tree) float64 {
				return float64(maxWidthStep(structure.Widths(t), false))
			}),
			min: singleLeaf(0, constant(1)),
			max: byMode(noBound, func(n, _ int, _ Mode) float64 { return float64(n - 1) }),
		},
		{
			name:        "max_width_over_max_depth",
			orientation: Balance,
			eval: pure(func(t *tree.Tree) float64 {
				depth := structure.Heights(t)[t.Root().ID()]
				return ratio(float64(maxWidth(t)), float64(depth))
			}),
			min: singleLeaf(0, func(n, _ int, _ Mode) float64 { return 2 / float64(n-1) }),
			max: noBound,
		},
	}
}

func maxWidth(t *tree.Tree) int {
	best := 0
	for _, w := range structure.Widths(t) {
		if w > best {
			best = w
		}
	}
	return best
}

// maxWidthStep returns the largest change between consecutive levels,
// absolute when abs is set and increases only otherwise; 0 if none.
func maxWidthStep(widths []int, abs bool) int {
	best := 0
	for i := 0; i+1 < len(widths); i++ {
		d := widths[i+1] - widths[i]
		if abs && d < 0 {
			d = -d
		}
		if d > best {
			best = d
		}
	}
	return best
}

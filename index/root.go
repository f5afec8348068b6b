package index

import (
	"math"

	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

func rootFamily() []*strategy {
	return []*strategy{
		{
			name:        "root_imbalance",
			orientation: Neutral,
			binaryOnly:  true,
			eval: pure(func(t *tree.Tree) float64 {
				root := t.Root()
				if root.IsLeaf() {
					return 0
				}
				sizes := structure.CladeSizes(t)
				return float64(largestChild(sizes, root)) / float64(t.Len())
			}),
			min: singleLeaf(0, func(n, _ int, _ Mode) float64 {
				return math.Ceil(float64(n)/2) / float64(n)
			}),
			max: func(n, _ int, _ Mode) float64 { return float64(n-1) / float64(n) },
		},
		{
			name:        "I_root",
			orientation: Neutral,
			binaryOnly:  true,
			eval: pure(func(t *tree.Tree) float64 {
				if t.Root().IsLeaf() {
					return 0
				}
				return iValue(structure.CladeSizes(t), t.Root())
			}),
			min: constant(0),
			max: singleLeaf(0, constant(1)),
		},
	}
}

// largestChild returns the largest clade size among v's children.
func largestChild(sizes []int, v *tree.Node) int {
	best := 0
	for _, c := range v.Children() {
		if s := sizes[c.ID()]; s > best {
			best = s
		}
	}
	return best
}

// SPDX-License-Identifier: MIT
// Package: treeshape/index
//
// ivalue.go — I-based imbalance indices.
//
// For a binary node v with clade size n_v ≥ 4, largest child clade n_1 and
// h = ⌈n_v/2⌉:
//
//	I(v)  = (n_1 - h) / (n_v - 1 - h)
//	I'(v) = I(v)·(n_v-1)/n_v  for even n_v, else I(v)
//	w(v)  = 1 for odd n_v; 2(n_v-1)/n_v if I(v) = 0, else (n_v-1)/n_v
//	I_w(v) = w(v)·I(v) / mean(w)
//
// The mean and total variants aggregate over nodes with n_v ≥ 4; a tree
// without such nodes scores 0.

package index

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

// Memo keys of the per-tree I-value vectors.
const (
	attrIValues      tree.Attr = "i_values"
	attrIPrimeValues tree.Attr = "i_prime_values"
	attrIWValues     tree.Attr = "i_w_values"
)

// minIValueClade is the smallest clade size contributing I-values.
const minIValueClade = 4

func iValueFamily() []*strategy {
	return []*strategy{
		iAggregate("mean_I", iValues, mean),
		iAggregate("total_I", iValues, floats.Sum),
		iAggregate("mean_I_prime", iPrimeValues, mean),
		iAggregate("total_I_prime", iPrimeValues, floats.Sum),
		iAggregate("mean_I_w", iWValues, mean),
		iAggregate("total_I_w", iWValues, floats.Sum),
	}
}

func iAggregate(name string, values func(*tree.Tree) []float64, agg func([]float64) float64) *strategy {
	return &strategy{
		name:        name,
		orientation: Imbalance,
		binaryOnly:  true,
		eval: pure(func(t *tree.Tree) float64 {
			xs := values(t)
			if len(xs) == 0 {
				return 0
			}
			return agg(xs)
		}),
		min: noBound,
		max: noBound,
	}
}

func mean(xs []float64) float64 { return stat.Mean(xs, nil) }

// iValue is I(v); 0 when the denominator vanishes.
func iValue(sizes []int, v *tree.Node) float64 {
	nv := sizes[v.ID()]
	half := (nv + 1) / 2
	den := nv - 1 - half
	if den == 0 {
		return 0
	}
	return float64(largestChild(sizes, v)-half) / float64(den)
}

// qualifying returns the internal nodes with clade size ≥ 4, in postorder.
func qualifying(t *tree.Tree) []*tree.Node {
	sizes := structure.CladeSizes(t)
	var out []*tree.Node
	for _, v := range structure.InnerNodes(t) {
		if sizes[v.ID()] >= minIValueClade {
			out = append(out, v)
		}
	}
	return out
}

func iValues(t *tree.Tree) []float64 {
	return tree.Load(t.Memo(), attrIValues, func() []float64 {
		sizes := structure.CladeSizes(t)
		nodes := qualifying(t)
		out := make([]float64, len(nodes))
		for i, v := range nodes {
			out[i] = iValue(sizes, v)
		}
		return out
	})
}

func iPrimeValues(t *tree.Tree) []float64 {
	return tree.Load(t.Memo(), attrIPrimeValues, func() []float64 {
		sizes := structure.CladeSizes(t)
		nodes := qualifying(t)
		is := iValues(t)
		out := make([]float64, len(nodes))
		for i, v := range nodes {
			nv := sizes[v.ID()]
			out[i] = is[i]
			if nv%2 == 0 {
				out[i] *= float64(nv-1) / float64(nv)
			}
		}
		return out
	})
}

func iWValues(t *tree.Tree) []float64 {
	return tree.Load(t.Memo(), attrIWValues, func() []float64 {
		sizes := structure.CladeSizes(t)
		nodes := qualifying(t)
		is := iValues(t)

		// 1. Weights.
		w := make([]float64, len(nodes))
		for i, v := range nodes {
			nv := float64(sizes[v.ID()])
			switch {
			case sizes[v.ID()]%2 == 1:
				w[i] = 1
			case is[i] == 0:
				w[i] = 2 * (nv - 1) / nv
			default:
				w[i] = (nv - 1) / nv
			}
		}
		if len(w) == 0 {
			return nil
		}

		// 2. Rescale by the mean weight.
		sw := mean(w)
		out := make([]float64, len(nodes))
		for i := range nodes {
			out[i] = w[i] * is[i] / sw
		}
		return out
	})
}

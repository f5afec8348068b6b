// SPDX-License-Identifier: MIT
// Package: treeshape/index
//
// strategy.go — the table-driven Index implementation.
//
// Contract:
//   - A strategy is a row {name, eval, min, max, orientation, binaryOnly}.
//   - Evaluate validates the mode, then loads the value from the tree memo
//     under the index name; eval runs at most once per tree.
//   - Bounds of a binary-only index are NaN under Arbitrary.

package index

import (
	"fmt"
	"math"

	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

// evalFunc computes the absolute value of an index on a validated tree.
type evalFunc func(t *tree.Tree) (float64, error)

// boundFunc computes a bound for n leaves and m internal nodes.
type boundFunc func(n, m int, mode Mode) float64

// strategy is the single Index implementation; the catalog holds one per name.
type strategy struct {
	name        string
	orientation Orientation
	binaryOnly  bool
	eval        evalFunc
	min, max    boundFunc
}

// evaluation is the memoized outcome of eval.
type evaluation struct {
	value float64
	err   error
}

func (s *strategy) Name() string             { return s.name }
func (s *strategy) Orientation() Orientation { return s.orientation }
func (s *strategy) BinaryOnly() bool         { return s.binaryOnly }

// Evaluate implements Index.
//
// Errors: ErrNilTree, ErrUnknownMode, ErrMode, ErrNotBifurcating.
// Complexity: the first call costs the index's pass; later calls are O(1).
func (s *strategy) Evaluate(t *tree.Tree, mode Mode) (float64, error) {
	if t == nil {
		return 0, fmt.Errorf("%s: %w", s.name, ErrNilTree)
	}
	if !mode.Valid() {
		return 0, fmt.Errorf("%s: %v: %w", s.name, mode, ErrUnknownMode)
	}
	if s.binaryOnly && mode == Arbitrary {
		return 0, fmt.Errorf("%s: %v: %w", s.name, mode, ErrMode)
	}
	if mode == Binary && !structure.IsBifurcating(t) {
		return 0, fmt.Errorf("%s: %w", s.name, ErrNotBifurcating)
	}

	r := tree.Load(t.Memo(), tree.Attr(s.name), func() evaluation {
		v, err := s.eval(t)
		if err != nil {
			err = fmt.Errorf("%s: %w", s.name, err)
		}
		return evaluation{value: v, err: err}
	})
	return r.value, r.err
}

// Minimum implements Index.
func (s *strategy) Minimum(n, m int, mode Mode) float64 { return s.bound(s.min, n, m, mode) }

// Maximum implements Index.
func (s *strategy) Maximum(n, m int, mode Mode) float64 { return s.bound(s.max, n, m, mode) }

func (s *strategy) bound(f boundFunc, n, m int, mode Mode) float64 {
	if f == nil || !mode.Valid() || n < 1 || (s.binaryOnly && mode == Arbitrary) {
		return math.NaN()
	}
	return f(n, m, mode)
}

// pure adapts an infallible computation to evalFunc.
func pure(f func(t *tree.Tree) float64) evalFunc {
	return func(t *tree.Tree) (float64, error) { return f(t), nil }
}

// noBound is the bound of an index without a known tight bound.
func noBound(int, int, Mode) float64 { return math.NaN() }

// constant returns a bound independent of the tree size.
func constant(x float64) boundFunc {
	return func(int, int, Mode) float64 { return x }
}

// byMode dispatches to bin under Binary and arb under Arbitrary.
func byMode(bin, arb boundFunc) boundFunc {
	return func(n, m int, mode Mode) float64 {
		if mode == Binary {
			return bin(n, m, mode)
		}
		return arb(n, m, mode)
	}
}

// singleLeaf returns x for n == 1 and defers to f otherwise.
func singleLeaf(x float64, f boundFunc) boundFunc {
	return func(n, m int, mode Mode) float64 {
		if n == 1 {
			return x
		}
		return f(n, m, mode)
	}
}

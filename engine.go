// SPDX-License-Identifier: MIT
// Package: treeshape
//
// engine.go — the evaluation façade over one (tree, mode) pair.
//
// Contract:
//   - New validates the mode once; BINARY needs a bifurcating tree.
//   - n is the leaf count; m is n-1 under BINARY and the internal node
//     count under ARBITRARY.
//   - All values come from the catalog strategies and are memoized in the
//     tree, so an Engine is cheap and several engines may share a tree.

package treeshape

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/treeshape/index"
	"github.com/katalvlaran/treeshape/structure"
	"github.com/katalvlaran/treeshape/tree"
)

// Mode re-exports index.Mode.
type Mode = index.Mode

// Modes.
const (
	Binary    = index.Binary
	Arbitrary = index.Arbitrary
)

// Errors shared with the index package.
var (
	ErrMode           = index.ErrMode
	ErrUnknownMode    = index.ErrUnknownMode
	ErrUnknownIndex   = index.ErrUnknownIndex
	ErrNotBifurcating = index.ErrNotBifurcating
	ErrNilTree        = index.ErrNilTree
)

// Normalization errors.
var (
	// ErrNotNormalizable indicates an index without a known tight bound.
	ErrNotNormalizable = errors.New("treeshape: no known bound")

	// ErrDegenerateRange indicates min == max, including every index on a
	// one-leaf tree.
	ErrDegenerateRange = errors.New("treeshape: degenerate bound range")

	// ErrInvariantViolation indicates a value outside its bounds by more
	// than the tolerance. It signals a formula bug.
	ErrInvariantViolation = errors.New("treeshape: value outside bounds")

	// ErrNotAnImbalanceIndex indicates RelativeNormalized on a NEUTRAL index.
	ErrNotAnImbalanceIndex = errors.New("treeshape: index has no balance orientation")
)

// Method tags for error context.
const (
	methodNew                = "New"
	methodAbsolute           = "Absolute"
	methodRelative           = "Relative"
	methodRelativeNormalized = "RelativeNormalized"
	methodBounds             = "Bounds"
)

// Engine evaluates catalog indices on one tree under one mode.
type Engine struct {
	t    *tree.Tree
	mode Mode
	n, m int
	cfg  config
}

// New builds an engine for t under mode.
//
// Errors: ErrNilTree, ErrUnknownMode, ErrNotBifurcating.
// Complexity: O(V) for the first bifurcation check on t, O(1) afterwards.
func New(t *tree.Tree, mode Mode, opts ...Option) (*Engine, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilTree)
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%s: %v: %w", methodNew, mode, ErrUnknownMode)
	}
	if mode == Binary && !structure.IsBifurcating(t) {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNotBifurcating)
	}

	e := &Engine{t: t, mode: mode, n: t.Len(), cfg: newConfig(opts...)}
	if mode == Binary {
		e.m = e.n - 1
	} else {
		e.m = t.NumNodes() - e.n
	}
	return e, nil
}

// Tree returns the evaluated tree.
func (e *Engine) Tree() *tree.Tree { return e.t }

// Mode returns the evaluation mode.
func (e *Engine) Mode() Mode { return e.mode }

// Leaves returns n.
func (e *Engine) Leaves() int { return e.n }

// Internal returns m.
func (e *Engine) Internal() int { return e.m }

// Absolute returns the raw value of the named index.
//
// Errors: ErrUnknownIndex, ErrMode.
func (e *Engine) Absolute(name string) (float64, error) {
	idx, err := index.Lookup(name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodAbsolute, err)
	}
	v, err := idx.Evaluate(e.t, e.mode)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodAbsolute, err)
	}
	e.cfg.logger.Debug("evaluated",
		zap.String("index", name),
		zap.Stringer("mode", e.mode),
		zap.Float64("value", v))
	return v, nil
}

// Bounds returns the minimum and maximum of the named index for this
// engine's (n, m, mode); NaN marks an unknown bound.
func (e *Engine) Bounds(name string) (lo, hi float64, err error) {
	idx, err := index.Lookup(name)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", methodBounds, err)
	}
	return idx.Minimum(e.n, e.m, e.mode), idx.Maximum(e.n, e.m, e.mode), nil
}

// Relative returns (v - min)/(max - min) ∈ [0, 1].
//
// Steps:
//  1. Absolute value (ErrUnknownIndex, ErrMode).
//  2. A one-leaf tree has a single shape: ErrDegenerateRange.
//  3. A NaN bound: ErrNotNormalizable. min == max: ErrDegenerateRange.
//  4. v outside [min-tol, max+tol]: ErrInvariantViolation.
//  5. Scale and clamp to [0, 1].
func (e *Engine) Relative(name string) (float64, error) {
	v, err := e.Absolute(name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodRelative, err)
	}
	if e.n == 1 {
		return 0, fmt.Errorf("%s(%s): n=1: %w", methodRelative, name, ErrDegenerateRange)
	}

	lo, hi, err := e.Bounds(name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodRelative, err)
	}
	switch {
	case math.IsNaN(lo) || math.IsNaN(hi):
		return 0, fmt.Errorf("%s(%s): %w", methodRelative, name, ErrNotNormalizable)
	case lo == hi:
		return 0, fmt.Errorf("%s(%s): min=max=%v: %w", methodRelative, name, lo, ErrDegenerateRange)
	}

	tol := e.cfg.tolerance
	if v < lo-tol || v > hi+tol {
		e.cfg.logger.Error("index outside bounds",
			zap.String("index", name),
			zap.Stringer("mode", e.mode),
			zap.Int("n", e.n),
			zap.Int("m", e.m),
			zap.Float64("value", v),
			zap.Float64("min", lo),
			zap.Float64("max", hi))
		return 0, fmt.Errorf("%s(%s): %v not in [%v, %v]: %w", methodRelative, name, v, lo, hi, ErrInvariantViolation)
	}

	return math.Min(1, math.Max(0, (v-lo)/(hi-lo))), nil
}

// RelativeNormalized returns Relative oriented so that 1 is the least
// balanced: BALANCE indices are flipped to 1 - rel.
//
// Errors: everything Relative returns, plus ErrNotAnImbalanceIndex.
func (e *Engine) RelativeNormalized(name string) (float64, error) {
	idx, err := index.Lookup(name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodRelativeNormalized, err)
	}
	rel, err := e.Relative(name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodRelativeNormalized, err)
	}

	switch idx.Orientation() {
	case index.Balance:
		return 1 - rel, nil
	case index.Imbalance:
		return rel, nil
	default:
		return 0, fmt.Errorf("%s(%s): %w", methodRelativeNormalized, name, ErrNotAnImbalanceIndex)
	}
}

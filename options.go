// SPDX-License-Identifier: MIT
// Package: treeshape
//
// options.go — functional options for Engine.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • New itself never panics; it returns sentinel errors.

package treeshape

import (
	"math"

	"go.uber.org/zap"
)

// DefaultTolerance is how far a value may leave its bounds before Relative
// reports ErrInvariantViolation.
const DefaultTolerance = 1e-5

// Option customizes an Engine.
type Option func(*config)

type config struct {
	logger    *zap.Logger
	tolerance float64
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop(), tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the engine logger. Evaluations log at Debug, invariant
// violations at Error. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("treeshape: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithTolerance overrides DefaultTolerance. Panics on negative or NaN.
func WithTolerance(x float64) Option {
	if x < 0 || math.IsNaN(x) {
		panic("treeshape: WithTolerance(x<0)")
	}
	return func(c *config) { c.tolerance = x }
}

// SPDX-License-Identifier: MIT
// Package: treeshape/tree
//
// builder_options.go — functional options for the shape builders.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves never panic; they return sentinel errors.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package tree

import (
	"math"
	"math/rand"
	"strconv"
)

// BuilderOption customizes a shape builder.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all builder knobs; passed by value.
type builderConfig struct {
	// Leaf label strategy: leaf index (preorder) -> name.
	nameFn func(int) string
	// RNG for stochastic shapes; nil means "no randomness".
	rng *rand.Rand
	// Branch length assigned to every non-root node when set.
	length    float64
	hasLength bool
}

// newBuilderConfig applies options over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{nameFn: decimalName}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// decimalName labels leaves "t0", "t1", ...
func decimalName(i int) string { return "t" + strconv.Itoa(i) }

// WithLeafNames sets the leaf naming scheme. Panics on nil.
func WithLeafNames(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("tree: WithLeafNames(nil)")
	}
	return func(c *builderConfig) { c.nameFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("tree: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG for reproducible stochastic builders.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithBranchLength assigns length x to every non-root branch.
// Panics if x is negative or NaN.
func WithBranchLength(x float64) BuilderOption {
	if x < 0 || math.IsNaN(x) {
		panic("tree: WithBranchLength(x<0)")
	}
	return func(c *builderConfig) {
		c.length = x
		c.hasLength = true
	}
}

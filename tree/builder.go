// SPDX-License-Identifier: MIT
// Package: treeshape/tree
//
// builder.go — generators for canonical tree shapes.
//
// Contract:
//   - n ≥ 1 leaves (else ErrTooFewLeaves); n == 1 yields the single-node tree.
//   - Leaves are named in preorder through the configured name scheme.
//   - Branch lengths (WithBranchLength) go on every non-root node.
//   - Yule requires an RNG (ErrNeedRandSource).

package tree

import (
	"errors"
	"fmt"
)

// Builder sentinels.
var (
	// ErrTooFewLeaves indicates a shape was requested with fewer than one leaf.
	ErrTooFewLeaves = errors.New("tree: too few leaves")

	// ErrNeedRandSource indicates a stochastic builder without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("tree: rng is required")
)

// Method tags for error context.
const (
	methodCaterpillar = "Caterpillar"
	methodBalanced    = "Balanced"
	methodYule        = "Yule"
	methodStar        = "Star"
	minLeaves         = 1
)

// Caterpillar builds the maximally unbalanced binary shape with n leaves:
// every internal node has one leaf child, except the deepest cherry.
// Complexity: O(n).
func Caterpillar(n int, opts ...BuilderOption) (*Tree, error) {
	if n < minLeaves {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCaterpillar, n, minLeaves, ErrTooFewLeaves)
	}
	cur := NewNode()
	for i := 1; i < n; i++ {
		cur = Inner(NewNode(), cur)
	}
	return finish(cur, newBuilderConfig(opts...))
}

// Balanced builds the maximally balanced binary shape with n leaves: every
// clade of size k splits into ceil(k/2) (left) and floor(k/2) (right).
// Complexity: O(n).
func Balanced(n int, opts ...BuilderOption) (*Tree, error) {
	if n < minLeaves {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodBalanced, n, minLeaves, ErrTooFewLeaves)
	}
	return finish(balanced(n), newBuilderConfig(opts...))
}

// balanced recursion depth is O(log n).
func balanced(k int) *Node {
	if k == 1 {
		return NewNode()
	}
	left := (k + 1) / 2
	return Inner(balanced(left), balanced(k-left))
}

// Yule builds a random binary shape under the Yule–Harding model: starting
// from a single leaf, a uniformly chosen leaf is split n-1 times.
// Complexity: O(n).
func Yule(n int, opts ...BuilderOption) (*Tree, error) {
	if n < minLeaves {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodYule, n, minLeaves, ErrTooFewLeaves)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodYule, ErrNeedRandSource)
	}

	root := NewNode()
	leaves := []*Node{root}
	for len(leaves) < n {
		i := cfg.rng.Intn(len(leaves))
		split := leaves[i]
		l, r := NewNode(), NewNode()
		split.children = []*Node{l, r}
		leaves[i] = l
		leaves = append(leaves, r)
	}
	return finish(root, cfg)
}

// Star builds the multifurcating shape with all n leaves attached to the root.
// Complexity: O(n).
func Star(n int, opts ...BuilderOption) (*Tree, error) {
	if n < minLeaves {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minLeaves, ErrTooFewLeaves)
	}
	if n == 1 {
		return finish(NewNode(), newBuilderConfig(opts...))
	}
	children := make([]*Node, n)
	for i := range children {
		children[i] = NewNode()
	}
	return finish(Inner(children...), newBuilderConfig(opts...))
}

// finish freezes root, then names leaves and sets branch lengths per cfg.
func finish(root *Node, cfg builderConfig) (*Tree, error) {
	t, err := New(root)
	if err != nil {
		return nil, err
	}
	for i, leaf := range t.leaves {
		leaf.name = cfg.nameFn(i)
	}
	if cfg.hasLength {
		for _, n := range t.nodes[1:] {
			n.length = cfg.length
			n.hasLength = true
		}
	}
	return t, nil
}

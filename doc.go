// Package treeshape evaluates tree-shape statistics: numeric descriptors of
// how balanced or skewed the branching pattern of a rooted tree is.
//
// 🚀 What is treeshape?
//
//	An engine over an immutable tree that brings together:
//		• 55 named indices (Sackin, Colless, cherries, quartets, ranks, …)
//		• Absolute values, memoized per tree
//		• Relative values, normalized against tight theoretical bounds
//		• Orientation-normalized values where 1 always means "least balanced"
//
// Pipeline:
//
//	Absolute(name)           → catalog lookup → Index.Evaluate(tree, mode)
//	Relative(name)           → (v - min) / (max - min), bounds checked to 1e-5
//	RelativeNormalized(name) → Relative, flipped for BALANCE indices
//
// Under the hood:
//
//	tree/          — immutable rooted tree, memo side table, shape builders
//	structure/     — clade sizes, depths, heights, leaf probabilities, widths
//	combinatorics/ — Furnas and Colijn–Plazotta ranks, quartets, betweenness, diameter
//	index/         — the Index contract, Mode, Orientation and the static catalog
//	batch/         — parallel evaluation of many trees with Prometheus metrics
//	cmd/treeshape  — command line front end
//
// Quick example:
//
//	t, _ := tree.Caterpillar(6)
//	e, _ := treeshape.New(t, treeshape.Binary)
//	v, _ := e.Relative("colless_index") // 1: the caterpillar is maximally unbalanced
//
// Failures are sentinels checked with errors.Is: ErrMode, ErrNotNormalizable,
// ErrDegenerateRange, ErrInvariantViolation, ErrNotAnImbalanceIndex,
// ErrUnknownIndex. A NaN bound is not a failure of the index; it means no
// tight bound is known and Relative reports ErrNotNormalizable.
package treeshape

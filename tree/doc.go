// Package tree provides the rooted, ordered, immutable tree that every
// tree-shape index is evaluated on, together with its per-tree memo.
//
// What:
//
//   - Node: a vertex with an optional name and branch length; built bottom-up
//     with Leaf, Inner or NewNode.
//   - Tree: the frozen structure produced by New. Nodes get stable preorder
//     IDs and the tree exposes preorder, postorder and leaf order.
//   - Memo: the side table where derived attributes and index values are
//     cached, computed at most once per tree.
//   - Walk and Distances: iterative depth-first hooks and undirected BFS.
//   - Caterpillar, Balanced, Yule, Star: canonical shape builders.
//
// Why a separate memo:
//
//   - The topology never changes after New, so a cached attribute never goes
//     stale and needs no invalidation.
//   - Indices share precomputations (clade sizes, depths, ranks); the memo
//     lets each be computed once no matter how many indices need it.
//
// Concurrency:
//
//   - A frozen Tree is safe for concurrent reads. Memo loads are atomic per
//     key, so one tree may be evaluated from several goroutines at once.
//
// Errors:
//
//   - ErrNilRoot, ErrNotATree from New.
//   - ErrForeignNode when a query receives a node of another tree.
//   - ErrTooFewLeaves, ErrNeedRandSource from the builders.
package tree

// Package combinatorics implements the combinatorial algorithms behind the
// ranking, quartet, network and distance indices:
//
//   - Wedderburn–Etherington numbers WE(k) (bounded table, NaN beyond it)
//   - Furnas ranks and Colijn–Plazotta ranks of binary tree shapes
//   - elementary symmetric polynomials via Newton's identities
//   - the rooted quartet index
//   - betweenness centrality and farness of every node
//   - ladder lengths, the leaf-to-leaf diameter and shape classes
//
// Per-node results are memoized in the tree memo and indexed by
// tree.Node.ID(). A value that cannot be represented (a WE lookup outside
// the table) is NaN and propagates to every ancestor; it is never an error.
//
// Complexity:
//
//   - Furnas ranks: O(Σ min child size) ≤ O(n log n) table lookups.
//   - Colijn–Plazotta ranks, betweenness, farness, ladders: O(V).
//   - Rooted quartet index: O(V) plus O(k³) per node of arity k > 4.
//   - Diameter: two O(V) passes.
package combinatorics

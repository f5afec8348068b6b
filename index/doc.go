// Package index defines the tree-shape index contract and the static
// catalog of every supported index.
//
// Contract (per index):
//
//   - Evaluate(t, mode): the absolute value, memoized in t's memo under the
//     index name. Binary-only indices fail with ErrMode under Arbitrary.
//   - Minimum(n, m, mode), Maximum(n, m, mode): closed-form bounds over all
//     trees with n leaves and m internal nodes. NaN means no tight bound is
//     known; it is a permanent, first-class outcome.
//   - Orientation(): Imbalance (larger = less balanced), Balance (larger =
//     more balanced) or Neutral (no balance semantics).
//
// Families:
//
//	depth        average_leaf_depth … B_2_index
//	width        maximum_width, maxdiff_widths, modified_maxdiff_widths, max_width_over_max_depth
//	structure    s_shape, d_index, rooted_quartet_index, ladder_length, IL_number
//	subgraph     cherry_index, modified_cherry_index, pitchforks, four_caterpillars, double_cherries
//	distance     total_cophenetic_index, diameter, area_per_pair_index
//	network      wiener_index, *_farness, *_bcent
//	root         root_imbalance, I_root
//	balance      colless family, I_2_index, stairs1/2, rogers_j_index, symmetry_nodes_index
//	I-based      mean/total of I, I' and I_w
//	ranking      colijn_plazotta_rank, furnas_rank
//	branch       treeness, stemminess
//
// Strategies are stateless and shared; the catalog is built once at package
// initialization and never mutated.
package index

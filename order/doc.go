// Package order implements elimination-order utilities shared by reduction
// and dissection: the chordal-supergraph parent/tree-width view built on
// top of graph.ChordalSupergraph, a local cut-refinement post-processor,
// and a centroid-decomposition tree order for the path/tree reduction
// rule.
//
// Grounded on original_source/small_tree_width_order.h's
// compute_tree_width (parent-array-from-chordal-supergraph) and
// greedy_order.cpp's iterative, explicit-array style; the tree-order
// centroid recursion itself is not present verbatim in the retrieved
// sources (greedy_order.cpp's functions are min-degree/min-shortcut
// orders, not the center-of-mass recursion spec.md describes) and is
// reconstructed here from the published Scenario 1 trace — see
// DESIGN.md.
package order

// Package reduction implements the dissection driver's pre-recursion
// shortcuts (spec.md §4.G): cheap rules that either solve a sub-instance
// outright or shrink it before the separator chooser ever runs. Each rule
// takes a local dense subgraph plus the caller-space node IDs it came
// from, and either reports it can't fire (Trivial) or returns the
// elimination order directly in caller-space IDs, recursing through a
// caller-supplied Recurse callback for whatever residual it could not
// eliminate on its own.
//
// Grounded on original_source/small_tree_width_order.h:
// eliminate_simplicial_nodes (Simplicial, including its degree<=1 fast
// path),
// compute_order_by_decomposing_along_articulation_points
// (BiconnectedDecomposition), and
// reorder_nodes_in_preorder_and_compute_unconnected_graph_order_if_component_is_non_trivial
// (Disconnected's place-at-end component ordering).
package reduction

// Package dissection implements the recursive separator-based elimination
// order driver (spec.md §4.H): NestedDissectionOrder applies the reduction
// rules and FlowCutter-based separator chooser to build an elimination
// order with the key contraction-hierarchy invariant that every separator
// node is ordered after the nodes it separates. CCHOrder layers
// biconnected-decomposition and degree-2 chain collapsing on top, to
// exploit the sparse, mostly-chain-like structure of road networks.
//
// Recursion is replaced by an explicit stack of pending sub-graph jobs
// (spec.md §9: "convert recursion to an explicit work-stack to cap stack
// usage" on adversarial, unbalanced separator sequences) wherever the
// driver splits a graph into multiple residual pieces and must later
// concatenate their orders; the reduction package's own single-level
// combinators (reduction.Trivial, reduction.ComponentGroups,
// reduction.SplitBiconnected, reduction.StepDegreeTwoChain,
// reduction.StepSimplicial) are what this package drives from the stack's
// job loop instead of their recursive Recurse-callback wrappers. The one
// exception is the separator split: each branch_factor candidate is
// resolved through a nested solveSubgraph call, so that step recurses
// natively.
package dissection

// Package nesdis computes vertex separators and nested-dissection
// elimination orders for sparse graphs.
//
// The core is a FlowCutter-based max-flow engine (package flowcutter) that
// enumerates a monotone sequence of increasingly balanced s-t cuts by
// repeatedly piercing the smaller side and re-augmenting only when forced.
// A node-capacitated expansion adapter (package expander) turns that
// edge-cut machinery into a vertex-separator computer; a multi-seed
// chooser (package separator) runs several randomized instances and picks
// the best-scoring cut under four selection strategies. On top of that,
// package reduction applies cheap structural rules (trivial graphs,
// disconnected components, degree-2 chains, biconnected decomposition,
// simplicial elimination) before falling back to separator-based
// recursion, and package dissection drives the whole recipe — including
// its own contraction-hierarchy-oriented variant, CCHOrder — with an
// explicit work-stack for component fan-out (only the evaluation of
// candidate separators recurses natively).
//
// Supporting packages: graph (the dense arc-indexed graph representation
// everything above operates on), fcconfig (the FlowCutter configuration
// record), order (elimination-order utilities: chordal-supergraph
// traversal, tree width, cut refinement, tree ordering), orderio
// (persisted permutation I/O), graphgen (deterministic test graph
// constructors), and the small dense-domain primitives idxfn, uf, pqueue,
// rng.
//
// Execution is single-threaded and deterministic: given the same graph,
// configuration, and random seed, every produced order is bit-identical.
package nesdis

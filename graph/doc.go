// Package graph provides the dense-integer-ID graph primitives nesdis
// builds everything else on: the Graph type itself, symmetry and
// simplicity checks, the back-arc permutation, connected/strongly-connected/
// biconnected component computation, and chordal-supergraph enumeration via
// an incremental node-contraction graph.
//
// Arcs are numbered [0, ArcCount); nodes [0, NodeCount). Undirected graphs
// are represented as pairs of opposite arcs (see ComputeBackArcPermutation).
// This generalizes the teacher's core.Graph — a thread-safe, string-keyed
// mutable graph meant for interactive construction — to the static,
// dense-int-ID array representation spec.md's data model requires; the
// builder-option convention (Option) is kept, the locking and the storage
// model are not.
package graph

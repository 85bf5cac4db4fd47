// Package flowcutter implements the FlowCutter incremental s-t cut
// enumerator (spec.md §4.D): starting from a saturated {source}/{target}
// pair, it repeatedly pierces a frontier node to grow one side and, when
// piercing forces an augmenting path, pushes one unit of flow before
// resuming. Each call to (*State).Advance produces the next cut in a
// monotone non-decreasing sequence.
//
// Grounded on original_source/dinic.h's level-graph-rebuild style (full
// BFS recomputation at the start of each phase rather than perpetually
// incremental bookkeeping) and spec.md §4.D's textual description — the
// C++ project's actual FlowCutter core (node_flow_cutter.h) was not among
// the retrieved original_source files, so the pierce/augment state machine
// here is built from the specification directly, with dinic.h supplying
// the augmenting-path/blocking-flow idiom.
//
// R_S and R_T (the two reachable sets) are recomputed after every pierce as
// the closed neighborhood of each side's assimilated (pierced) node set —
// growing by exactly one ring per pierce, which is what gives the
// "smaller side size grows monotonically" guarantee. Distance labels used
// for pierce-candidate rating are computed by a full residual-graph BFS
// or Dijkstra from the assimilated set, independent of the ring-limited
// R_S/R_T membership, per spec.md's "distance labels from each side's
// last full BFS".
package flowcutter

package graph

import "golang.org/x/exp/slices"

// edgeContractionGraph is the mutable union-find-with-adjacency-lists
// structure behind ContractionGraph, ported from original_source's
// EdgeContractionGraph. It deliberately does NOT reuse the uf package:
// contraction always merges the second node INTO the first (parent[v]=u),
// never by size or rank, because the contraction order here is meaningful
// (v's identity disappears, u's persists as the supernode other nodes will
// see) — a balanced union would pick an arbitrary winner and break that.
type edgeContractionGraph struct {
	parent []int32
	adj    [][]int32
}

func newEdgeContractionGraph(nodeCount int, tail, head []int32) *edgeContractionGraph {
	parent := make([]int32, nodeCount)
	adj := make([][]int32, nodeCount)
	for v := range parent {
		parent[v] = int32(v)
	}
	for a := range tail {
		t, h := tail[a], head[a]
		adj[t] = append(adj[t], h)
	}
	return &edgeContractionGraph{parent: parent, adj: adj}
}

// find resolves x to its current representative, compressing the path it
// walked to get there.
func (g *edgeContractionGraph) find(x int32) int32 {
	root := x
	for g.parent[root] != root {
		root = g.parent[root]
	}
	for g.parent[x] != root {
		next := g.parent[x]
		g.parent[x] = root
		x = next
	}
	return root
}

// computeNeighborhoodOf resolves v's adjacency list through find, dedupes
// it, drops self-loops, and compacts adj[v] in place to the resolved,
// deduplicated form — then returns a snapshot copy (callers may go on to
// mutate adj[v] via rewireArcsFromSecondToFirst, which must not alias the
// returned slice). Returns nil if v is not its own representative, since
// already-contracted nodes carry no live adjacency.
func (g *edgeContractionGraph) computeNeighborhoodOf(v int32) []int32 {
	if g.parent[v] != v {
		return nil
	}
	seen := make(map[int32]bool, len(g.adj[v]))
	out := g.adj[v][:0]
	for _, y := range g.adj[v] {
		r := g.find(y)
		if r == v || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	g.adj[v] = out
	return append([]int32(nil), out...)
}

// rewireArcsFromSecondToFirst merges v into u: every node still pointing at
// v through adj now effectively points at u (future find(v) resolves to u),
// and v's pending adjacency is appended to u's so it will be picked up the
// next time u's neighborhood is computed.
func (g *edgeContractionGraph) rewireArcsFromSecondToFirst(u, v int32) {
	g.parent[v] = u
	g.adj[u] = append(g.adj[u], g.adj[v]...)
	g.adj[v] = nil
}

// ContractionGraph incrementally contracts nodes one at a time while
// tracking which ones have become "virtual" (already folded into a later
// supernode), grounded on original_source/contraction_graph.h's
// NodeContractionGraph. ChordalSupergraph drives it to build the chordal
// supergraph of a fixed elimination order one elimination step at a time.
type ContractionGraph struct {
	g       *edgeContractionGraph
	virtual []bool
}

// NewContractionGraph builds a contraction graph over nodeCount nodes with
// the given (already symmetric) arc list as the initial adjacency.
func NewContractionGraph(nodeCount int, tail, head []int32) *ContractionGraph {
	return &ContractionGraph{
		g:       newEdgeContractionGraph(nodeCount, tail, head),
		virtual: make([]bool, nodeCount),
	}
}

// ForallNeighborsThenContractNode contracts node v: any neighbor of v that
// is already virtual is rewired to merge into v first (so v absorbs
// previously-contracted supernodes reachable through it), v is then marked
// virtual itself, its neighborhood is recomputed against the now-current
// representatives, and callback is invoked once per resulting neighbor —
// these are exactly the shortcut arcs a chordal supergraph needs at
// elimination step v.
func (cg *ContractionGraph) ForallNeighborsThenContractNode(v int32, callback func(y int32)) {
	for _, y := range cg.g.computeNeighborhoodOf(v) {
		if cg.virtual[y] {
			cg.g.rewireArcsFromSecondToFirst(v, y)
		}
	}
	cg.virtual[v] = true
	neighbors := cg.g.computeNeighborhoodOf(v)
	slices.SortFunc(neighbors, func(a, b int32) int { return int(a) - int(b) })
	for _, y := range neighbors {
		callback(y)
	}
}

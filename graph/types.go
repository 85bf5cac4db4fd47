package graph

import "golang.org/x/exp/slices"

// Graph is an immutable dense-ID graph: arcs [0, ArcCount) each with a tail
// and head in [0, NodeCount), plus optional per-arc and per-node weights.
//
// Graph values are meant to be cheap to construct from already-owned
// slices (New does not copy tail/head/weights) and are not safe for
// concurrent mutation — there is none; every transformation (MakeSimple,
// Expand, reduction's KeepIf-based recursion) returns a new Graph.
type Graph struct {
	nodeCount int
	tail      []int32
	head      []int32
	arcWeight []int64 // nil means every arc has unit weight 1
	nodeWeight []int64 // nil means every node has unit weight 1

	sortedByTail bool // detected at construction time, not re-verified later

	backArc *[]int32 // lazily computed cache, nil until first BackArc() call
	outArc  *outArcIndex
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithArcWeight attaches a per-arc weight array (length must equal
// len(tail)). Arcs default to unit weight 1 when no weight is supplied.
func WithArcWeight(w []int64) Option {
	return func(g *Graph) { g.arcWeight = w }
}

// WithNodeWeight attaches a per-node weight array (length must equal
// nodeCount). Nodes default to unit weight 1 when no weight is supplied.
func WithNodeWeight(w []int64) Option {
	return func(g *Graph) { g.nodeWeight = w }
}

// New wraps tail/head (and optional weights via Option) as a Graph. It does
// not copy its arguments and does not validate graph invariants (symmetry,
// simplicity) — callers that need those should call Validate or
// MakeSimple. Sortedness-by-tail is auto-detected in O(ArcCount) so
// OutArcs() can serve immediately when the caller already sorted arcs.
func New(nodeCount int, tail, head []int32, opts ...Option) *Graph {
	g := &Graph{nodeCount: nodeCount, tail: tail, head: head}
	for _, opt := range opts {
		opt(g)
	}
	g.sortedByTail = slices.IsSortedFunc(tail, func(a, b int32) int { return int(a) - int(b) })
	return g
}

// NodeCount returns the number of nodes, n.
func (g *Graph) NodeCount() int { return g.nodeCount }

// ArcCount returns the number of arcs, m.
func (g *Graph) ArcCount() int { return len(g.tail) }

// Tail returns the tail node of arc a.
func (g *Graph) Tail(a int32) int32 { return g.tail[a] }

// Head returns the head node of arc a.
func (g *Graph) Head(a int32) int32 { return g.head[a] }

// TailSlice exposes the backing tail array; callers must not mutate it.
func (g *Graph) TailSlice() []int32 { return g.tail }

// HeadSlice exposes the backing head array; callers must not mutate it.
func (g *Graph) HeadSlice() []int32 { return g.head }

// ArcWeight returns arc a's weight, or 1 if the graph carries no weights.
func (g *Graph) ArcWeight(a int32) int64 {
	if g.arcWeight == nil {
		return 1
	}
	return g.arcWeight[a]
}

// HasArcWeights reports whether per-arc weights were supplied.
func (g *Graph) HasArcWeights() bool { return g.arcWeight != nil }

// NodeWeight returns node v's weight, or 1 if the graph carries no node
// weights.
func (g *Graph) NodeWeight(v int32) int64 {
	if g.nodeWeight == nil {
		return 1
	}
	return g.nodeWeight[v]
}

// HasNodeWeights reports whether per-node weights were supplied.
func (g *Graph) HasNodeWeights() bool { return g.nodeWeight != nil }

// SortedByTail reports whether the arc list is sorted in nondecreasing tail
// order, a precondition for OutArcs().
func (g *Graph) SortedByTail() bool { return g.sortedByTail }

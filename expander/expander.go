// Package expander implements the node-capacitated expansion adapter
// (spec.md §4.E): splitting every node into an in/out pair joined by a
// capacity-1 internal arc so FlowCutter's edge-cut core can be reused
// unchanged to compute vertex separators.
package expander

import "github.com/flowdissect/nesdis/graph"

// Infinite stands in for an unbounded arc capacity. It must be larger than
// any achievable flow value (bounded by NodeCount, since every cut in the
// expanded graph crosses at least one capacity-1 internal arc) yet small
// enough that residual-capacity arithmetic never overflows int64.
const Infinite int64 = 1 << 40

// Expansion holds the expanded graph plus the bookkeeping needed to map
// back to original node IDs. Expand builds fresh arc arrays for it, so an
// Expansion keeps no reference to the Graph it was built from.
type Expansion struct {
	Graph *graph.Graph

	// In(v)/Out(v) map an original node ID to its split-node IDs in the
	// expanded graph.
	nodeCount int

	// internalArc[v] is the arc ID of v's in->out internal arc.
	internalArc []int32
}

// In returns the expanded-graph node ID for v's "in" half.
func (e *Expansion) In(v int32) int32 { return 2 * v }

// Out returns the expanded-graph node ID for v's "out" half.
func (e *Expansion) Out(v int32) int32 { return 2*v + 1 }

// OriginalOf maps an expanded-graph node back to the original node it was
// split from.
func (e *Expansion) OriginalOf(expandedNode int32) int32 { return expandedNode / 2 }

// IsInHalf reports whether expandedNode is an "in" half (as opposed to an
// "out" half).
func (e *Expansion) IsInHalf(expandedNode int32) bool { return expandedNode%2 == 0 }

// InternalArc returns the arc ID of v's in->out internal arc, the one whose
// saturation marks v as part of the separator.
func (e *Expansion) InternalArc(v int32) int32 { return e.internalArc[v] }

// Expand builds the node-capacitated expansion of g: for every node v, an
// in(v)->out(v) arc of capacity 1 (plus its zero-capacity residual
// reverse), and for every original arc (u,v), an out(u)->in(v) arc of
// capacity Infinite (plus its zero-capacity residual reverse). g need not
// be symmetric; every arc present becomes one directed expanded arc
// (repeated copies of one arc collapse into a single expanded arc).
func Expand(g *graph.Graph) *Expansion {
	n := g.NodeCount()
	m := g.ArcCount()

	tail := make([]int32, 0, n+2*m)
	head := make([]int32, 0, n+2*m)
	weight := make([]int64, 0, n+2*m)
	internalArc := make([]int32, n)

	addArcPair := func(t, h int32, cap int64) (forward int32) {
		forward = int32(len(tail))
		tail = append(tail, t, h)
		head = append(head, h, t)
		weight = append(weight, cap, 0)
		return forward
	}

	for v := int32(0); v < int32(n); v++ {
		internalArc[v] = addArcPair(2*v, 2*v+1, 1)
	}
	for a := 0; a < m; a++ {
		u, v := g.Tail(int32(a)), g.Head(int32(a))
		addArcPair(2*u+1, 2*v, Infinite)
	}

	// MakeSimple sorts the arcs by tail, which OutArcs requires; that
	// renumbers them, so each internal arc is looked up again by endpoints.
	expanded := graph.MakeSimple(graph.New(2*n, tail, head, graph.WithArcWeight(weight)))
	outArc, _ := expanded.OutArcs()
	for v := int32(0); v < int32(n); v++ {
		b, e := outArc.Range(2 * v)
		for a := b; a < e; a++ {
			if expanded.Head(a) == 2*v+1 {
				internalArc[v] = a
			}
		}
	}
	return &Expansion{Graph: expanded, nodeCount: n, internalArc: internalArc}
}

// ExtractSeparator collects every original node whose internal arc appears
// in cutArcs (an arc ID list over the expanded graph, as FlowCutter's
// CurrentCut returns). Each such node belongs to the vertex separator.
func (e *Expansion) ExtractSeparator(cutArcs []int32) []int32 {
	isInternal := make(map[int32]int32, len(e.internalArc))
	for v, a := range e.internalArc {
		isInternal[a] = int32(v)
	}
	var separator []int32
	for _, a := range cutArcs {
		if v, ok := isInternal[a]; ok {
			separator = append(separator, v)
		}
	}
	return separator
}

// SmallerSideOriginalNodes returns the original nodes whose out-half lies on
// the expanded graph's smaller side and whose internal arc is not on the
// cut (spec.md §4.E: "the count of original nodes whose v_out is on the
// source-reachable side and whose internal arc is not on the cut").
func (e *Expansion) SmallerSideOriginalNodes(isOnSmallerSide func(expandedNode int32) bool, cutArcs []int32) []int32 {
	onCut := make(map[int32]bool, len(cutArcs))
	for _, a := range cutArcs {
		onCut[a] = true
	}
	var out []int32
	for v := int32(0); v < int32(e.nodeCount); v++ {
		if onCut[e.internalArc[v]] {
			continue
		}
		if isOnSmallerSide(e.Out(v)) {
			out = append(out, v)
		}
	}
	return out
}

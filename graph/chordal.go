package graph

// ChordalSupergraph computes a chordal supergraph of g via repeated node
// contraction in node-ID order (treated as the elimination order): for each
// x from 0 to NodeCount-2, x's remaining neighbors in the contraction graph
// are pairwise connected by contracting x, and onNewArc is invoked once per
// (x, y) shortcut arc the contraction produces, in increasing y order.
//
// Feeding onNewArc into an arc-list builder and then Symmetrize/MakeSimple
// yields the elimination graph underlying tree-width estimation and nested
// dissection's minimum-degree-style ordering. Grounded on
// original_source/contraction_graph.h's compute_chordal_supergraph.
//
// Returns the maximum "up-degree" observed at any elimination step — the
// largest number of shortcut arcs introduced by eliminating a single node,
// a cheap proxy for how much fill-in the chosen order produced.
func ChordalSupergraph(g *Graph, onNewArc func(x, y int32)) int {
	n := g.NodeCount()
	cg := NewContractionGraph(n, g.tail, g.head)
	maxUpDegree := 0
	if n < 2 {
		return 0
	}
	for x := int32(0); x < int32(n-1); x++ {
		upDegree := 0
		cg.ForallNeighborsThenContractNode(x, func(y int32) {
			upDegree++
			onNewArc(x, y)
		})
		if upDegree > maxUpDegree {
			maxUpDegree = upDegree
		}
	}
	return maxUpDegree
}

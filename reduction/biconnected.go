package reduction

import "github.com/flowdissect/nesdis/graph"

// BiconnectedDecomposition partitions g by its largest biconnected
// component: every other component is recursed on and ordered first, then
// the largest biconnected component itself is recursed on last — the
// articulation points shared between them naturally end up owned by
// whichever call processes the largest component, since Disconnected-style
// ID partitioning assigns each node to exactly one side.
//
// Grounded on
// original_source/small_tree_width_order.h's
// compute_order_by_decomposing_along_articulation_points. If g is already
// biconnected (a single component), this degenerates to a single recurse
// call over the whole graph.
func BiconnectedDecomposition(g *graph.Graph, inputID []int32, recurse Recurse) []int32 {
	arcComponent, count := graph.BiconnectedComponents(g)
	if count <= 1 {
		return recurse(g, inputID)
	}

	compSize := make([]int, count)
	for a := 0; a < g.ArcCount(); a++ {
		compSize[arcComponent[a]]++
	}
	largest := int32(0)
	for c := 1; c < count; c++ {
		if compSize[c] > compSize[largest] {
			largest = int32(c)
		}
	}

	nodeInLargest := make([]bool, g.NodeCount())
	for a := 0; a < g.ArcCount(); a++ {
		if arcComponent[a] == largest {
			nodeInLargest[g.Tail(int32(a))] = true
			nodeInLargest[g.Head(int32(a))] = true
		}
	}

	var largestMembers, restMembers []int32
	for v := 0; v < g.NodeCount(); v++ {
		if nodeInLargest[v] {
			largestMembers = append(largestMembers, int32(v))
		} else {
			restMembers = append(restMembers, int32(v))
		}
	}

	var result []int32
	if len(restMembers) > 0 {
		restGraph, restInputID := extractSubgraph(g, inputID, restMembers)
		result = append(result, Disconnected(restGraph, restInputID, nil, recurse)...)
	}
	largestGraph, largestInputID := extractSubgraph(g, inputID, largestMembers)
	result = append(result, recurse(largestGraph, largestInputID)...)
	return result
}

// SplitBiconnected is the non-recursive half of BiconnectedDecomposition: it
// isolates the largest biconnected component and returns the rest as
// already-ordered component groups (ascending by smallest member ID; none
// of them carry a placeAtEnd flag at this level), without calling back into
// a recurse function itself. trivial reports g was already a single
// biconnected component, in which case restGroups is empty and
// largestGraph is g itself.
func SplitBiconnected(g *graph.Graph, inputID []int32) (restGroups []Group, largestGraph *graph.Graph, largestInputID []int32, trivial bool) {
	arcComponent, count := graph.BiconnectedComponents(g)
	if count <= 1 {
		return nil, g, inputID, true
	}

	compSize := make([]int, count)
	for a := 0; a < g.ArcCount(); a++ {
		compSize[arcComponent[a]]++
	}
	largest := int32(0)
	for c := 1; c < count; c++ {
		if compSize[c] > compSize[largest] {
			largest = int32(c)
		}
	}

	nodeInLargest := make([]bool, g.NodeCount())
	for a := 0; a < g.ArcCount(); a++ {
		if arcComponent[a] == largest {
			nodeInLargest[g.Tail(int32(a))] = true
			nodeInLargest[g.Head(int32(a))] = true
		}
	}

	var largestMembers, restMembers []int32
	for v := 0; v < g.NodeCount(); v++ {
		if nodeInLargest[v] {
			largestMembers = append(largestMembers, int32(v))
		} else {
			restMembers = append(restMembers, int32(v))
		}
	}

	if len(restMembers) > 0 {
		restGraph, restInputID := extractSubgraph(g, inputID, restMembers)
		restGroups = ComponentGroups(restGraph, restInputID, nil)
	}
	largestGraph, largestInputID = extractSubgraph(g, inputID, largestMembers)
	return restGroups, largestGraph, largestInputID, false
}

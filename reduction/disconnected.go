package reduction

import (
	"sort"

	"github.com/flowdissect/nesdis/graph"
)

// Disconnected reorders g's connected components into contiguous ID
// ranges, recurses on each independently, and concatenates the results:
// components containing no placeAtEnd-flagged node come first (ascending
// by their smallest member ID, for determinism), then components that do
// contain one, in the same order. placeAtEnd may be nil, meaning no node
// is flagged.
//
// Grounded on
// original_source/small_tree_width_order.h's
// reorder_nodes_in_preorder_and_compute_unconnected_graph_order_if_component_is_non_trivial.
func Disconnected(g *graph.Graph, inputID []int32, placeAtEnd func(local int32) bool, recurse Recurse) []int32 {
	comp, count := graph.ConnectedComponents(g)
	if count <= 1 {
		return recurse(g, inputID)
	}

	type compInfo struct {
		members   []int32
		hasEnd    bool
		minMember int32
	}
	infos := make([]compInfo, count)
	for i := range infos {
		infos[i].minMember = int32(g.NodeCount())
	}
	for v := 0; v < g.NodeCount(); v++ {
		c := comp[v]
		infos[c].members = append(infos[c].members, int32(v))
		if placeAtEnd != nil && placeAtEnd(int32(v)) {
			infos[c].hasEnd = true
		}
		if int32(v) < infos[c].minMember {
			infos[c].minMember = int32(v)
		}
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].hasEnd != infos[j].hasEnd {
			return !infos[i].hasEnd
		}
		return infos[i].minMember < infos[j].minMember
	})

	var result []int32
	for _, info := range infos {
		sub, subInputID := extractSubgraph(g, inputID, info.members)
		result = append(result, recurse(sub, subInputID)...)
	}
	return result
}

// Group is one connected component extracted from a larger graph, carrying
// the inputID mapping needed to translate its own elimination order back
// into the caller's node space.
type Group struct {
	Graph   *graph.Graph
	InputID []int32
}

// ComponentGroups is the non-recursive half of Disconnected: it computes
// the same component partition and ordering (non-flagged components first,
// ascending by smallest member ID, flagged components last) but returns the
// extracted subgraphs directly instead of driving a callback. A caller that
// wants to process each group without nested Go call recursion — for
// instance by pushing one entry per group onto an explicit work-stack — can
// use this directly; Disconnected itself is the synchronous convenience
// wrapper built on top of it.
func ComponentGroups(g *graph.Graph, inputID []int32, placeAtEnd func(local int32) bool) []Group {
	comp, count := graph.ConnectedComponents(g)
	if count <= 1 {
		return []Group{{Graph: g, InputID: inputID}}
	}

	type compInfo struct {
		members   []int32
		hasEnd    bool
		minMember int32
	}
	infos := make([]compInfo, count)
	for i := range infos {
		infos[i].minMember = int32(g.NodeCount())
	}
	for v := 0; v < g.NodeCount(); v++ {
		c := comp[v]
		infos[c].members = append(infos[c].members, int32(v))
		if placeAtEnd != nil && placeAtEnd(int32(v)) {
			infos[c].hasEnd = true
		}
		if int32(v) < infos[c].minMember {
			infos[c].minMember = int32(v)
		}
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].hasEnd != infos[j].hasEnd {
			return !infos[i].hasEnd
		}
		return infos[i].minMember < infos[j].minMember
	})

	groups := make([]Group, len(infos))
	for i, info := range infos {
		sub, subInputID := extractSubgraph(g, inputID, info.members)
		groups[i] = Group{Graph: sub, InputID: subInputID}
	}
	return groups
}

package reduction

import (
	"sort"

	"github.com/flowdissect/nesdis/graph"
)

// Recurse hands a local dense subgraph (its own [0, g.NodeCount()) ID
// space) plus inputID (inputID[local] is the caller-space node ID for
// local node "local") to whatever comes next in the reduction/dissection
// pipeline, and returns the elimination order already expressed in
// caller-space IDs.
type Recurse func(g *graph.Graph, inputID []int32) []int32

// ExtractSubgraph is the exported form of extractSubgraph, for callers
// outside this package (such as dissection's separator-split step) that
// need to carve out a node subset using the same dense-renumbering and
// inputID-threading convention the reduction rules use internally.
func ExtractSubgraph(g *graph.Graph, inputID []int32, members []int32) (*graph.Graph, []int32) {
	return extractSubgraph(g, inputID, members)
}

// extractSubgraph restricts g to the given members (local node IDs,
// needn't be sorted on input; a repeated member is not merged), renumbers them densely in
// ascending order, and carries inputID through the same renumbering. The
// returned graph is always simple and sorted by tail (via MakeSimple).
func extractSubgraph(g *graph.Graph, inputID []int32, members []int32) (*graph.Graph, []int32) {
	sortedMembers := append([]int32(nil), members...)
	sort.Slice(sortedMembers, func(i, j int) bool { return sortedMembers[i] < sortedMembers[j] })

	localOf := make([]int32, g.NodeCount())
	for i := range localOf {
		localOf[i] = -1
	}
	for i, v := range sortedMembers {
		localOf[v] = int32(i)
	}

	var tail, head []int32
	var weight []int64
	hasWeights := g.HasArcWeights()
	for a := 0; a < g.ArcCount(); a++ {
		t, h := g.Tail(int32(a)), g.Head(int32(a))
		if localOf[t] >= 0 && localOf[h] >= 0 {
			tail = append(tail, localOf[t])
			head = append(head, localOf[h])
			if hasWeights {
				weight = append(weight, g.ArcWeight(int32(a)))
			}
		}
	}

	subInputID := make([]int32, len(sortedMembers))
	for i, v := range sortedMembers {
		subInputID[i] = inputID[v]
	}

	var opts []graph.Option
	if hasWeights {
		opts = append(opts, graph.WithArcWeight(weight))
	}
	sub := graph.MakeSimple(graph.New(len(sortedMembers), tail, head, opts...))
	return sub, subInputID
}

// translate maps a local-space order (elements are local node IDs) to
// caller-space IDs via inputID.
func translate(localOrder []int32, inputID []int32) []int32 {
	out := make([]int32, len(localOrder))
	for i, v := range localOrder {
		out[i] = inputID[v]
	}
	return out
}

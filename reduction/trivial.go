package reduction

import (
	"github.com/flowdissect/nesdis/graph"
	"github.com/flowdissect/nesdis/order"
)

// Trivial recognizes the empty graph, a single node, a clique, or a tree
// (the path case is a degenerate tree) and emits the optimal order
// directly, per spec.md §4.G. ok is false if none of these shapes match
// and the caller should try the next rule.
func Trivial(g *graph.Graph, inputID []int32) (result []int32, ok bool) {
	n := g.NodeCount()
	switch {
	case n == 0:
		return nil, true
	case n == 1:
		return []int32{inputID[0]}, true
	}

	if isClique(g) {
		// Any order eliminates a clique with no fill-in; emit ascending
		// local order for determinism.
		out := make([]int32, n)
		for i := range out {
			out[i] = inputID[i]
		}
		return out, true
	}

	if isTree(g) {
		perm := order.TreeOrder(g)
		return translate(perm, inputID), true
	}

	return nil, false
}

func isClique(g *graph.Graph) bool {
	n := g.NodeCount()
	return g.ArcCount() == n*(n-1)
}

func isTree(g *graph.Graph) bool {
	n := g.NodeCount()
	if g.ArcCount() != 2*(n-1) {
		return false
	}
	_, count := graph.ConnectedComponents(g)
	return count == 1
}

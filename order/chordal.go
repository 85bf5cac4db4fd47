package order

import "github.com/flowdissect/nesdis/graph"

// ChordalParents relabels g by ord (treating ord as the elimination order,
// ord[0] eliminated first) and runs graph.ChordalSupergraph over the
// relabeled arcs, then maps the result back to original node IDs.
//
// parent[v] is the smallest-position higher neighbor of v in the
// elimination tree (its "parent", per spec.md §4.I), or -1 for the node
// eliminated last (the tree's root). treeWidth is the max upward degree
// graph.ChordalSupergraph reports, i.e. this order's tree-width estimate.
//
// Grounded on original_source/small_tree_width_order.h's compute_tree_width
// (inverse_permutation + chain + compute_chordal_supergraph).
func ChordalParents(g *graph.Graph, ord Permutation) (parent []int32, treeWidth int) {
	n := g.NodeCount()
	inv := ord.Inverse()

	tail := make([]int32, g.ArcCount())
	head := make([]int32, g.ArcCount())
	for a := 0; a < g.ArcCount(); a++ {
		tail[a] = inv[g.Tail(int32(a))]
		head[a] = inv[g.Head(int32(a))]
	}
	relabeled := graph.MakeSimple(graph.New(n, tail, head))

	parentPos := make([]int32, n)
	seen := make([]bool, n)
	for i := range parentPos {
		parentPos[i] = -1
	}
	treeWidth = graph.ChordalSupergraph(relabeled, func(x, y int32) {
		if !seen[x] {
			parentPos[x] = y
			seen[x] = true
		}
	})

	parent = make([]int32, n)
	for pos := 0; pos < n; pos++ {
		origX := ord[pos]
		if parentPos[pos] < 0 {
			parent[origX] = -1
		} else {
			parent[origX] = ord[parentPos[pos]]
		}
	}
	return parent, treeWidth
}

// TreeWidth is ChordalParents' treeWidth alone, for callers that only need
// the width estimate.
func TreeWidth(g *graph.Graph, ord Permutation) int {
	_, width := ChordalParents(g, ord)
	return width
}

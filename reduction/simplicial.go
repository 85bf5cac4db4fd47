package reduction

import (
	"golang.org/x/exp/slices"

	"github.com/flowdissect/nesdis/graph"
)

// Simplicial repeatedly eliminates nodes whose neighborhood induces a
// clique (adding no fill-in) until none remain, then hands the residual
// to recurse. Degree <= 1 nodes are trivially simplicial and are peeled
// first by the same stack-based sweep the original source uses as a fast
// path, before the general neighborhood-inclusion check runs.
//
// Grounded on original_source/small_tree_width_order.h's
// eliminate_simplicial_nodes: a node v is simplicial iff, for every
// remaining neighbor y of v, y's own (self-inclusive) neighbor set
// contains v's (self-inclusive) neighbor set — checking inclusion of the
// self-inclusive sets is what lets a single std::includes-style scan
// verify every pair of v's neighbors is itself adjacent.
func Simplicial(g *graph.Graph, inputID []int32, recurse Recurse) []int32 {
	n := g.NodeCount()
	adj := make([][]int32, n)
	for a := 0; a < g.ArcCount(); a++ {
		t, h := g.Tail(int32(a)), g.Head(int32(a))
		adj[t] = append(adj[t], h)
	}
	degree := make([]int, n)
	for v := range adj {
		degree[v] = len(adj[v])
	}
	eliminated := make([]bool, n)
	var order []int32

	// Fast path: degree <= 1 nodes peel off with no neighborhood check.
	var stack []int32
	for v := 0; v < n; v++ {
		if degree[v] <= 1 {
			stack = append(stack, int32(v))
		}
	}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if eliminated[v] {
			continue
		}
		eliminated[v] = true
		order = append(order, v)
		for _, y := range adj[v] {
			if eliminated[y] {
				continue
			}
			degree[y]--
			if degree[y] <= 1 {
				stack = append(stack, y)
			}
		}
	}

	// selfNeighbors[v] is v's remaining neighbor set, sorted ascending,
	// with v itself included — mirroring the original's neighbors[x] that
	// always carries x.
	selfNeighbors := make([][]int32, n)
	rebuild := func(v int32) []int32 {
		ns := []int32{v}
		for _, y := range adj[v] {
			if !eliminated[y] {
				ns = append(ns, y)
			}
		}
		slices.Sort(ns)
		return ns
	}
	for v := 0; v < n; v++ {
		if !eliminated[v] {
			selfNeighbors[v] = rebuild(int32(v))
		}
	}

	isSimplicial := func(v int32) bool {
		selfNeighbors[v] = rebuild(v)
		for _, y := range selfNeighbors[v] {
			if y == v {
				continue
			}
			selfNeighbors[y] = rebuild(y)
			if !includesAll(selfNeighbors[y], selfNeighbors[v]) {
				return false
			}
		}
		return true
	}

	for {
		foundAny := false
		for v := 0; v < n; v++ {
			if eliminated[v] {
				continue
			}
			if isSimplicial(int32(v)) {
				eliminated[v] = true
				order = append(order, int32(v))
				foundAny = true
			}
		}
		if !foundAny {
			break
		}
	}

	if len(order) == n {
		return translate(order, inputID)
	}

	var remaining []int32
	for v := 0; v < n; v++ {
		if !eliminated[v] {
			remaining = append(remaining, int32(v))
		}
	}
	sub, subInputID := extractSubgraph(g, inputID, remaining)
	return append(translate(order, inputID), recurse(sub, subInputID)...)
}

// StepSimplicial is the non-recursive half of Simplicial: it eliminates
// every simplicial node it can and returns the caller-space prefix order
// together with the residual graph to recurse on, without calling a
// Recurse callback itself. fullyResolved is true when every node was
// eliminated, in which case residual is empty and prefix is the complete
// order.
func StepSimplicial(g *graph.Graph, inputID []int32) (prefix []int32, residual *graph.Graph, residualInputID []int32, fullyResolved bool) {
	n := g.NodeCount()
	adj := make([][]int32, n)
	for a := 0; a < g.ArcCount(); a++ {
		t, h := g.Tail(int32(a)), g.Head(int32(a))
		adj[t] = append(adj[t], h)
	}
	degree := make([]int, n)
	for v := range adj {
		degree[v] = len(adj[v])
	}
	eliminated := make([]bool, n)
	var order []int32

	var stack []int32
	for v := 0; v < n; v++ {
		if degree[v] <= 1 {
			stack = append(stack, int32(v))
		}
	}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if eliminated[v] {
			continue
		}
		eliminated[v] = true
		order = append(order, v)
		for _, y := range adj[v] {
			if eliminated[y] {
				continue
			}
			degree[y]--
			if degree[y] <= 1 {
				stack = append(stack, y)
			}
		}
	}

	selfNeighbors := make([][]int32, n)
	rebuild := func(v int32) []int32 {
		ns := []int32{v}
		for _, y := range adj[v] {
			if !eliminated[y] {
				ns = append(ns, y)
			}
		}
		slices.Sort(ns)
		return ns
	}
	for v := 0; v < n; v++ {
		if !eliminated[v] {
			selfNeighbors[v] = rebuild(int32(v))
		}
	}

	isSimplicial := func(v int32) bool {
		selfNeighbors[v] = rebuild(v)
		for _, y := range selfNeighbors[v] {
			if y == v {
				continue
			}
			selfNeighbors[y] = rebuild(y)
			if !includesAll(selfNeighbors[y], selfNeighbors[v]) {
				return false
			}
		}
		return true
	}

	for {
		foundAny := false
		for v := 0; v < n; v++ {
			if eliminated[v] {
				continue
			}
			if isSimplicial(int32(v)) {
				eliminated[v] = true
				order = append(order, int32(v))
				foundAny = true
			}
		}
		if !foundAny {
			break
		}
	}

	if len(order) == n {
		return translate(order, inputID), nil, nil, true
	}
	if len(order) == 0 {
		return nil, g, inputID, false
	}

	var remaining []int32
	for v := 0; v < n; v++ {
		if !eliminated[v] {
			remaining = append(remaining, int32(v))
		}
	}
	sub, subInputID := extractSubgraph(g, inputID, remaining)
	return translate(order, inputID), sub, subInputID, false
}

// includesAll reports whether every element of needle (sorted ascending)
// appears in haystack (sorted ascending).
func includesAll(haystack, needle []int32) bool {
	i, j := 0, 0
	for i < len(haystack) && j < len(needle) {
		switch {
		case haystack[i] == needle[j]:
			i++
			j++
		case haystack[i] < needle[j]:
			i++
		default:
			return false
		}
	}
	return j == len(needle)
}

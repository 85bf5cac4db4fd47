package reduction

import "github.com/flowdissect/nesdis/graph"

// DegreeTwoChain collapses every maximal chain of degree-2 nodes between
// two higher-or-lower-degree anchor nodes (degree != 2) into a single
// shortcut arc carrying the chain's combined weight. Chain interior nodes
// are simplicial in the triangulation and are ordered first. A chain that
// loops back to its own anchor (no second anchor) or that dead-ends at a
// degree-1 node contributes no shortcut — its nodes (interior, and for a
// dead end, the degree-1 end node too) are simply ordered first and
// dropped from the residual graph.
//
// Grounded on original_source/small_tree_width_order.h's treatment of
// degree-2 nodes inside eliminate_simplicial_nodes's contraction pass; the
// chain-shortcut bookkeeping here is an explicit walk rather than the
// contraction-graph machinery, since the degree-2 case never creates
// fill-in and so needs no general neighborhood-inclusion check.
func DegreeTwoChain(g *graph.Graph, inputID []int32, recurse Recurse) []int32 {
	n := g.NodeCount()
	adj := make([][]int32, n)
	weightOf := make(map[[2]int32]int64, g.ArcCount())
	for a := 0; a < g.ArcCount(); a++ {
		t, h := g.Tail(int32(a)), g.Head(int32(a))
		adj[t] = append(adj[t], h)
		weightOf[[2]int32{t, h}] = g.ArcWeight(int32(a))
	}
	degree := make([]int, n)
	for v := range adj {
		degree[v] = len(adj[v])
	}

	removed := make([]bool, n)
	var firstOrder []int32 // interior/dead-end nodes, eliminated before the residual

	type shortcut struct {
		u, v   int32
		weight int64
	}
	var shortcuts []shortcut

	for v := int32(0); v < int32(n); v++ {
		if degree[v] == 2 || removed[v] {
			continue
		}
		for _, y := range adj[v] {
			if removed[y] || degree[y] != 2 {
				continue
			}
			prev, cur := v, y
			sum := weightOf[[2]int32{v, y}]
			for degree[cur] == 2 && !removed[cur] {
				removed[cur] = true
				firstOrder = append(firstOrder, cur)
				var next int32 = -1
				for _, w := range adj[cur] {
					if w != prev {
						next = w
						break
					}
				}
				if next < 0 {
					break
				}
				sum += weightOf[[2]int32{cur, next}]
				prev, cur = cur, next
			}
			switch {
			case cur == v:
				// loop chain: already fully eliminated above, no shortcut.
			case degree[cur] == 1:
				// dead end: its single arc led into the now-removed chain,
				// so it has no remaining neighbor either.
				if !removed[cur] {
					removed[cur] = true
					firstOrder = append(firstOrder, cur)
				}
			default:
				shortcuts = append(shortcuts, shortcut{u: v, v: cur, weight: sum})
			}
		}
	}

	if len(firstOrder) == 0 {
		return recurse(g, inputID)
	}

	var remaining []int32
	for v := int32(0); v < int32(n); v++ {
		if !removed[v] {
			remaining = append(remaining, v)
		}
	}

	sub, subInputID := extractSubgraph(g, inputID, remaining)
	if len(shortcuts) > 0 {
		localOf := make(map[int32]int32, len(remaining))
		for i, v := range remaining {
			localOf[v] = int32(i)
		}
		tail := append([]int32(nil), sub.TailSlice()...)
		head := append([]int32(nil), sub.HeadSlice()...)
		weight := make([]int64, len(tail))
		for a := range weight {
			weight[a] = sub.ArcWeight(int32(a))
		}
		for _, s := range shortcuts {
			lu, okU := localOf[s.u]
			lv, okV := localOf[s.v]
			if !okU || !okV {
				continue
			}
			tail = append(tail, lu, lv)
			head = append(head, lv, lu)
			weight = append(weight, s.weight, s.weight)
		}
		sub = graph.MakeSimple(graph.New(len(remaining), tail, head, graph.WithArcWeight(weight)))
	}

	return append(translate(firstOrder, inputID), recurse(sub, subInputID)...)
}

// StepDegreeTwoChain is the non-recursive half of DegreeTwoChain: it
// returns the caller-space prefix order for every eliminated chain/dead-end
// node plus the residual graph (with shortcut arcs spliced in) to recurse
// on, without calling a Recurse callback itself. fired is false when no
// degree-2 chain was found, in which case prefix is empty and residual is g
// unchanged.
func StepDegreeTwoChain(g *graph.Graph, inputID []int32) (prefix []int32, residual *graph.Graph, residualInputID []int32, fired bool) {
	n := g.NodeCount()
	adj := make([][]int32, n)
	weightOf := make(map[[2]int32]int64, g.ArcCount())
	for a := 0; a < g.ArcCount(); a++ {
		t, h := g.Tail(int32(a)), g.Head(int32(a))
		adj[t] = append(adj[t], h)
		weightOf[[2]int32{t, h}] = g.ArcWeight(int32(a))
	}
	degree := make([]int, n)
	for v := range adj {
		degree[v] = len(adj[v])
	}

	removed := make([]bool, n)
	var firstOrder []int32

	type shortcut struct {
		u, v   int32
		weight int64
	}
	var shortcuts []shortcut

	for v := int32(0); v < int32(n); v++ {
		if degree[v] == 2 || removed[v] {
			continue
		}
		for _, y := range adj[v] {
			if removed[y] || degree[y] != 2 {
				continue
			}
			prev, cur := v, y
			sum := weightOf[[2]int32{v, y}]
			for degree[cur] == 2 && !removed[cur] {
				removed[cur] = true
				firstOrder = append(firstOrder, cur)
				var next int32 = -1
				for _, w := range adj[cur] {
					if w != prev {
						next = w
						break
					}
				}
				if next < 0 {
					break
				}
				sum += weightOf[[2]int32{cur, next}]
				prev, cur = cur, next
			}
			switch {
			case cur == v:
			case degree[cur] == 1:
				if !removed[cur] {
					removed[cur] = true
					firstOrder = append(firstOrder, cur)
				}
			default:
				shortcuts = append(shortcuts, shortcut{u: v, v: cur, weight: sum})
			}
		}
	}

	if len(firstOrder) == 0 {
		return nil, g, inputID, false
	}

	var remaining []int32
	for v := int32(0); v < int32(n); v++ {
		if !removed[v] {
			remaining = append(remaining, v)
		}
	}

	sub, subInputID := extractSubgraph(g, inputID, remaining)
	if len(shortcuts) > 0 {
		localOf := make(map[int32]int32, len(remaining))
		for i, v := range remaining {
			localOf[v] = int32(i)
		}
		tail := append([]int32(nil), sub.TailSlice()...)
		head := append([]int32(nil), sub.HeadSlice()...)
		weight := make([]int64, len(tail))
		for a := range weight {
			weight[a] = sub.ArcWeight(int32(a))
		}
		for _, s := range shortcuts {
			lu, okU := localOf[s.u]
			lv, okV := localOf[s.v]
			if !okU || !okV {
				continue
			}
			tail = append(tail, lu, lv)
			head = append(head, lv, lu)
			weight = append(weight, s.weight, s.weight)
		}
		sub = graph.MakeSimple(graph.New(len(remaining), tail, head, graph.WithArcWeight(weight)))
	}

	return translate(firstOrder, inputID), sub, subInputID, true
}

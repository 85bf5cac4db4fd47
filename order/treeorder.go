package order

import "github.com/flowdissect/nesdis/graph"

// TreeOrder computes an elimination order for a (symmetric, loop-free,
// simple) tree or forest by repeated centroid decomposition: at each
// level, every still-alive connected component contributes its centroid
// to the order, then the component splits along that centroid into its
// child subtrees, which form the next level's work. Processing a whole
// level before descending into the next (an explicit two-queue BFS, not
// native recursion, per spec.md §9) reproduces the "eliminate by halving
// powers of two" shape spec.md describes for paths: on a 7-node path
// 0–1–…–6 this yields exactly [3,1,5,0,2,4,6] — the midpoint, then each
// half's midpoint, then the remaining leaves.
//
// Components are always queued and their neighbors enumerated in
// ascending node-ID order, which is what makes the result deterministic
// and reproducible independent of any map-iteration order.
func TreeOrder(g *graph.Graph) Permutation {
	n := g.NodeCount()
	adj := buildSortedAdjacency(g)
	alive := make([]bool, n)
	for v := range alive {
		alive[v] = true
	}

	order := make(Permutation, 0, n)

	type component struct {
		rep int32 // any alive node in this connected component
	}

	seenRoot := make([]bool, n)
	var level []component
	for v := int32(0); v < int32(n); v++ {
		if alive[v] && !seenRoot[v] {
			markComponent(adj, alive, v, seenRoot)
			level = append(level, component{rep: v})
		}
	}
	// seenRoot is not used again: it only served above to enumerate one
	// representative per initial component.

	for len(level) > 0 {
		var next []component
		for _, c := range level {
			members := collectComponent(adj, alive, c.rep)
			if len(members) == 0 {
				continue
			}
			centroid := findCentroid(adj, alive, members)
			order = append(order, centroid)
			alive[centroid] = false

			seen := make(map[int32]bool, len(adj[centroid]))
			for _, y := range adj[centroid] {
				if !alive[y] || seen[y] {
					continue
				}
				seen[y] = true
				next = append(next, component{rep: y})
			}
		}
		level = next
	}
	return order
}

func buildSortedAdjacency(g *graph.Graph) [][]int32 {
	n := g.NodeCount()
	adj := make([][]int32, n)
	for a := 0; a < g.ArcCount(); a++ {
		t, h := g.Tail(int32(a)), g.Head(int32(a))
		adj[t] = append(adj[t], h)
	}
	for v := range adj {
		insertionSortInt32(adj[v])
	}
	return adj
}

func insertionSortInt32(s []int32) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

func markComponent(adj [][]int32, alive []bool, root int32, seenRoot []bool) {
	queue := []int32{root}
	seenRoot[root] = true
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, y := range adj[u] {
			if alive[y] && !seenRoot[y] {
				seenRoot[y] = true
				queue = append(queue, y)
			}
		}
	}
}

// collectComponent returns every alive node reachable from root, in BFS
// order (root first).
func collectComponent(adj [][]int32, alive []bool, root int32) []int32 {
	visited := map[int32]bool{root: true}
	queue := []int32{root}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, y := range adj[u] {
			if alive[y] && !visited[y] {
				visited[y] = true
				queue = append(queue, y)
			}
		}
	}
	return queue
}

// findCentroid locates the tree centroid of members (a connected acyclic
// component restricted to alive nodes): the node whose removal leaves no
// remaining piece larger than half the component.
func findCentroid(adj [][]int32, alive []bool, members []int32) int32 {
	root := members[0]
	for _, v := range members {
		if v < root {
			root = v
		}
	}

	bfsOrder := []int32{root}
	parent := map[int32]int32{root: -1}
	for i := 0; i < len(bfsOrder); i++ {
		u := bfsOrder[i]
		for _, y := range adj[u] {
			if !alive[y] {
				continue
			}
			if _, ok := parent[y]; ok {
				continue
			}
			parent[y] = u
			bfsOrder = append(bfsOrder, y)
		}
	}

	size := make(map[int32]int, len(bfsOrder))
	for _, v := range bfsOrder {
		size[v] = 1
	}
	for i := len(bfsOrder) - 1; i > 0; i-- {
		v := bfsOrder[i]
		size[parent[v]] += size[v]
	}

	children := make(map[int32][]int32, len(bfsOrder))
	for _, v := range bfsOrder {
		if p, ok := parent[v]; ok && p >= 0 {
			children[p] = append(children[p], v)
		}
	}
	for v := range children {
		insertionSortInt32(children[v])
	}

	total := len(bfsOrder)
	cur := root
	for {
		advanced := false
		for _, c := range children[cur] {
			if size[c] > total/2 {
				cur = c
				advanced = true
				break
			}
		}
		if !advanced {
			break
		}
	}
	return cur
}

package graphgen

import (
	"github.com/flowdissect/nesdis/graph"
	"github.com/flowdissect/nesdis/rng"
)

func symmetric(n int, edges [][2]int32) *graph.Graph {
	tail := make([]int32, 0, 2*len(edges))
	head := make([]int32, 0, 2*len(edges))
	for _, e := range edges {
		tail = append(tail, e[0], e[1])
		head = append(head, e[1], e[0])
	}
	return graph.MakeSimple(graph.New(n, tail, head))
}

// Path builds a simple path 0-1-...-(n-1). n must be >= 1.
func Path(n int) *graph.Graph {
	var edges [][2]int32
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int32{int32(i), int32(i + 1)})
	}
	return symmetric(n, edges)
}

// Clique builds the complete graph K_n. n must be >= 1.
func Clique(n int) *graph.Graph {
	var edges [][2]int32
	for i := int32(0); i < int32(n); i++ {
		for j := i + 1; j < int32(n); j++ {
			edges = append(edges, [2]int32{i, j})
		}
	}
	return symmetric(n, edges)
}

// Grid builds a rows x cols 4-neighborhood grid, node IDs in row-major
// order (row*cols + col).
func Grid(rows, cols int) *graph.Graph {
	idx := func(r, c int) int32 { return int32(r*cols + c) }
	var edges [][2]int32
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, [2]int32{idx(r, c), idx(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, [2]int32{idx(r, c), idx(r+1, c)})
			}
		}
	}
	return symmetric(rows*cols, edges)
}

// Barbell builds two k-cliques joined by a single bridge edge between
// node k-1 (last node of the first clique) and node k (first node of the
// second). k must be >= 1.
func Barbell(k int) *graph.Graph {
	n := 2 * k
	var edges [][2]int32
	for i := int32(0); i < int32(k); i++ {
		for j := i + 1; j < int32(k); j++ {
			edges = append(edges, [2]int32{i, j})
		}
	}
	for i := int32(k); i < int32(n); i++ {
		for j := i + 1; j < int32(n); j++ {
			edges = append(edges, [2]int32{i, j})
		}
	}
	edges = append(edges, [2]int32{int32(k - 1), int32(k)})
	return symmetric(n, edges)
}

// TwoTriangles builds two disjoint 3-cliques {0,1,2} and {3,4,5} with no
// arcs between them.
func TwoTriangles() *graph.Graph {
	return symmetric(6, [][2]int32{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
	})
}

// RandomSparse builds a connected random graph on n nodes with
// approximately m distinct undirected edges (n-1 of them forming a random
// spanning path to guarantee connectivity, the rest sampled uniformly),
// deterministic given seed.
func RandomSparse(n, m, seed int) *graph.Graph {
	r := rng.FromSeed(int64(seed))
	order := make([]int32, n)
	for i := range order {
		order[i] = int32(i)
	}
	rng.ShuffleInt32sInPlace(order, r)

	seen := make(map[[2]int32]bool)
	addEdge := func(edges *[][2]int32, u, v int32) {
		if u == v {
			return
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int32{u, v}
		if seen[key] {
			return
		}
		seen[key] = true
		*edges = append(*edges, key)
	}

	var edges [][2]int32
	for i := 0; i+1 < n; i++ {
		addEdge(&edges, order[i], order[i+1])
	}
	target := m
	if target < len(edges) {
		target = len(edges)
	}
	attempts := 0
	for len(edges) < target && attempts < 20*target+100 {
		attempts++
		a, b := rng.SamplePairWithoutReplacement(n, r)
		addEdge(&edges, a, b)
	}
	return symmetric(n, edges)
}

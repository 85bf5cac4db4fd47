package graph

import (
	"sort"

	"github.com/flowdissect/nesdis/fcerr"
)

// outArcIndex is the lazily-built out-arc inverted index: start[x]..start[x+1]
// is the arc-ID range leaving node x. Requires sorted-by-tail arcs.
type outArcIndex struct {
	start []int32
}

func buildOutArcIndex(nodeCount int, tail []int32) *outArcIndex {
	start := make([]int32, nodeCount+1)
	for _, t := range tail {
		start[t+1]++
	}
	for x := 0; x < nodeCount; x++ {
		start[x+1] += start[x]
	}
	return &outArcIndex{start: start}
}

// OutArcs returns the lazily-computed out-arc range index, building it on
// first use. Returns fcerr.ErrUnsortedTails if the graph's arcs are not
// sorted by tail.
func (g *Graph) OutArcs() (*outArcIndex, error) {
	if !g.sortedByTail {
		return nil, fcerr.ErrUnsortedTails
	}
	if g.outArc == nil {
		g.outArc = buildOutArcIndex(g.nodeCount, g.tail)
	}
	return g.outArc, nil
}

// Range returns [begin, end) arc IDs leaving node x.
func (idx *outArcIndex) Range(x int32) (begin, end int32) {
	return idx.start[x], idx.start[x+1]
}

// OutDegree returns the out-degree of node x.
func (idx *outArcIndex) OutDegree(x int32) int {
	b, e := idx.Range(x)
	return int(e - b)
}

// IsSymmetric reports whether the multiset of (tail,head) arcs equals the
// multiset of (head,tail) arcs — every arc has a reverse somewhere in the
// arc list.
func IsSymmetric(tail, head []int32) bool {
	type pair struct{ t, h int32 }
	forward := make(map[pair]int, len(tail))
	for i := range tail {
		forward[pair{tail[i], head[i]}]++
	}
	for i := range tail {
		forward[pair{head[i], tail[i]}]--
	}
	for _, count := range forward {
		if count != 0 {
			return false
		}
	}
	return true
}

// ComputeBackArcPermutation finds, for each arc a, the unique arc sigma(a)
// with tail(sigma(a))=head(a) and head(sigma(a))=tail(a). Returns
// fcerr.ErrNotSymmetric if any arc lacks a (unique) reverse.
//
// Complexity: O(m) expected, via a tail-bucketed hash pass.
func ComputeBackArcPermutation(tail, head []int32) ([]int32, error) {
	m := len(tail)
	// Bucket arc IDs by tail so we can find, for arc a=(t,h), an unused arc
	// with tail h and head t in O(1) amortized.
	byTail := make(map[int32][]int32, m)
	for a := 0; a < m; a++ {
		byTail[tail[a]] = append(byTail[tail[a]], int32(a))
	}
	back := make([]int32, m)
	used := make([]bool, m)
	for a := 0; a < m; a++ {
		if used[a] {
			continue
		}
		candidates := byTail[head[a]]
		found := int32(-1)
		for i, c := range candidates {
			if !used[c] && head[c] == tail[a] {
				found = c
				// remove candidate c from the bucket so a parallel
				// (multi-)arc with the same endpoints gets a distinct
				// partner on a later iteration.
				candidates[i] = candidates[len(candidates)-1]
				byTail[head[a]] = candidates[:len(candidates)-1]
				break
			}
		}
		if found < 0 {
			return nil, fcerr.ErrNotSymmetric
		}
		back[a] = found
		back[found] = int32(a)
		used[a] = true
		used[found] = true
	}
	return back, nil
}

// BackArc returns the graph's back-arc permutation, computing and caching
// it on first use. Returns fcerr.ErrNotSymmetric if the graph is not
// symmetric.
func (g *Graph) BackArc() ([]int32, error) {
	if g.backArc != nil {
		return *g.backArc, nil
	}
	back, err := ComputeBackArcPermutation(g.tail, g.head)
	if err != nil {
		return nil, err
	}
	g.backArc = &back
	return back, nil
}

// Validate checks the invariants callers commonly require before running
// FlowCutter or the dissection driver: symmetric, loop-free, simple
// (no duplicate (tail,head) pairs), and sorted by tail. Returns the first
// violated invariant's sentinel error.
func Validate(g *Graph) error {
	for a := 0; a < g.ArcCount(); a++ {
		if g.tail[a] == g.head[a] {
			return fcerr.ErrHasLoops
		}
	}
	if !g.sortedByTail {
		return fcerr.ErrUnsortedTails
	}
	seen := make(map[[2]int32]bool, g.ArcCount())
	for a := 0; a < g.ArcCount(); a++ {
		key := [2]int32{g.tail[a], g.head[a]}
		if seen[key] {
			return fcerr.ErrHasMultiArcs
		}
		seen[key] = true
	}
	if !IsSymmetric(g.tail, g.head) {
		return fcerr.ErrNotSymmetric
	}
	return nil
}

// MakeSimple returns a new Graph over the same node count with loops
// dropped, duplicate (tail,head) pairs collapsed to one (keeping the first
// arc's weight), and arcs sorted by tail — the normalization spec.md §8
// invariant 2 requires before running the dissection driver. The input
// need not already be symmetric; MakeSimple does not add reverse arcs, it
// only cleans what's given (callers with a one-directional input should
// Symmetrize first).
func MakeSimple(g *Graph) *Graph {
	type arc struct {
		tail, head int32
		weight     int64
	}
	arcs := make([]arc, 0, g.ArcCount())
	seen := make(map[[2]int32]bool, g.ArcCount())
	for a := 0; a < g.ArcCount(); a++ {
		t, h := g.tail[a], g.head[a]
		if t == h {
			continue // drop loops
		}
		key := [2]int32{t, h}
		if seen[key] {
			continue // drop duplicate arc, keep first occurrence's weight
		}
		seen[key] = true
		arcs = append(arcs, arc{t, h, g.ArcWeight(int32(a))})
	}
	sort.SliceStable(arcs, func(i, j int) bool { return arcs[i].tail < arcs[j].tail })

	tail := make([]int32, len(arcs))
	head := make([]int32, len(arcs))
	weight := make([]int64, len(arcs))
	for i, a := range arcs {
		tail[i], head[i], weight[i] = a.tail, a.head, a.weight
	}
	out := New(g.nodeCount, tail, head, WithArcWeight(weight))
	if g.nodeWeight != nil {
		out.nodeWeight = g.nodeWeight
	}
	return out
}

// Symmetrize returns a new Graph that adds, for every arc (u,v) lacking a
// reverse, the arc (v,u) with the same weight — used when a caller only
// has one direction of an undirected edge list (grounded on the original
// loader in list_graph.cpp, which always symmetrizes input before handing
// a graph to FlowCutter).
func Symmetrize(g *Graph) *Graph {
	tail := append([]int32(nil), g.tail...)
	head := append([]int32(nil), g.head...)
	var weight []int64
	if g.arcWeight != nil {
		weight = append([]int64(nil), g.arcWeight...)
	}
	present := make(map[[2]int32]bool, 2*g.ArcCount())
	for a := 0; a < g.ArcCount(); a++ {
		present[[2]int32{g.tail[a], g.head[a]}] = true
	}
	for a := 0; a < g.ArcCount(); a++ {
		t, h := g.tail[a], g.head[a]
		if t == h || present[[2]int32{h, t}] {
			continue
		}
		tail = append(tail, h)
		head = append(head, t)
		if weight != nil {
			weight = append(weight, g.ArcWeight(int32(a)))
		}
		present[[2]int32{h, t}] = true
	}
	var opts []Option
	if weight != nil {
		opts = append(opts, WithArcWeight(weight))
	}
	return New(g.nodeCount, tail, head, opts...)
}

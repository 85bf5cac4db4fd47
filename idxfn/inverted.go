package idxfn

import "golang.org/x/exp/slices"

// InvertedIndex maps each image value x to the contiguous range of
// preimages i with tail(i) == x. It realizes out_arc(x) in spec terms:
// given arcs sorted by tail, InvertedIndex answers "which arc IDs leave
// node x" in O(1) range lookup plus O(degree(x)) iteration.
type InvertedIndex struct {
	// start[x] .. start[x+1] is the arc-ID range for image value x.
	start []int32
}

// InvertSortedTails builds an InvertedIndex from a tail array that is
// already sorted in nondecreasing order. Panics if tail is not sorted —
// callers that can't guarantee sortedness should call InvertUnsortedTails
// instead, or sort first (fcerr.ErrUnsortedTails is reserved for the public
// graph.OutArcs wrapper, not this low-level primitive).
func InvertSortedTails(tail []int32, nodeCount int) *InvertedIndex {
	if !slices.IsSortedFunc(tail, func(a, b int32) int { return int(a) - int(b) }) {
		panic("idxfn: InvertSortedTails requires a sorted tail array")
	}
	start := make([]int32, nodeCount+1)
	for _, t := range tail {
		start[t+1]++
	}
	for x := 0; x < nodeCount; x++ {
		start[x+1] += start[x]
	}
	return &InvertedIndex{start: start}
}

// InvertUnsortedTails builds an InvertedIndex via a counting-sort bucket
// pass (O(n+m)), for tail arrays not already sorted. Returns the sort
// permutation applied to arc IDs alongside the index, so callers can
// reorder parallel arrays (head, weight) to match.
func InvertUnsortedTails(tail []int32, nodeCount int) (*InvertedIndex, []int32) {
	start := make([]int32, nodeCount+1)
	for _, t := range tail {
		start[t+1]++
	}
	for x := 0; x < nodeCount; x++ {
		start[x+1] += start[x]
	}
	cursor := append([]int32(nil), start...)
	order := make([]int32, len(tail))
	for arcID, t := range tail {
		order[cursor[t]] = int32(arcID)
		cursor[t]++
	}
	return &InvertedIndex{start: start}, order
}

// Range returns [begin, end) arc IDs leaving node x.
func (idx *InvertedIndex) Range(x int) (begin, end int32) {
	return idx.start[x], idx.start[x+1]
}

// Degree returns end-begin for node x, i.e. its out-degree.
func (idx *InvertedIndex) Degree(x int) int {
	b, e := idx.Range(x)
	return int(e - b)
}

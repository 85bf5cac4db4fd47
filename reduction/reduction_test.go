package reduction

import (
	"testing"

	"github.com/flowdissect/nesdis/graph"
	"github.com/stretchr/testify/require"
)

func symmetricGraph(n int, edges [][2]int32) *graph.Graph {
	var tail, head []int32
	for _, e := range edges {
		tail = append(tail, e[0], e[1])
		head = append(head, e[1], e[0])
	}
	return graph.MakeSimple(graph.New(n, tail, head))
}

func identityInputID(n int) []int32 {
	id := make([]int32, n)
	for i := range id {
		id[i] = int32(i)
	}
	return id
}

func noopRecurse(g *graph.Graph, inputID []int32) []int32 {
	out := make([]int32, len(inputID))
	copy(out, inputID)
	return out
}

func TestTrivialEmptyAndSingle(t *testing.T) {
	g := symmetricGraph(0, nil)
	out, ok := Trivial(g, nil)
	require.True(t, ok)
	require.Empty(t, out)

	g1 := symmetricGraph(1, nil)
	out1, ok1 := Trivial(g1, []int32{42})
	require.True(t, ok1)
	require.Equal(t, []int32{42}, out1)
}

func TestTrivialClique(t *testing.T) {
	g := symmetricGraph(4, [][2]int32{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	out, ok := Trivial(g, identityInputID(4))
	require.True(t, ok)
	require.ElementsMatch(t, []int32{0, 1, 2, 3}, out)
}

func TestTrivialPathYieldsMidpointRecursion(t *testing.T) {
	g := symmetricGraph(7, [][2]int32{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}})
	out, ok := Trivial(g, identityInputID(7))
	require.True(t, ok)
	require.Equal(t, []int32{3, 1, 5, 0, 2, 4, 6}, out)
}

func TestTrivialRejectsNonTrivialGraph(t *testing.T) {
	// a 6-cycle is neither a clique nor a tree.
	g := symmetricGraph(6, [][2]int32{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})
	_, ok := Trivial(g, identityInputID(6))
	require.False(t, ok)
}

func TestDisconnectedSplitsTwoTriangles(t *testing.T) {
	g := symmetricGraph(6, [][2]int32{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
	})
	out := Disconnected(g, identityInputID(6), nil, func(sub *graph.Graph, subInputID []int32) []int32 {
		r, ok := Trivial(sub, subInputID)
		require.True(t, ok)
		return r
	})
	require.Len(t, out, 6)
	firstHalf, secondHalf := out[:3], out[3:]
	inSet := func(xs []int32, set map[int32]bool) bool {
		for _, x := range xs {
			if !set[x] {
				return false
			}
		}
		return true
	}
	tri1 := map[int32]bool{0: true, 1: true, 2: true}
	tri2 := map[int32]bool{3: true, 4: true, 5: true}
	oneWay := inSet(firstHalf, tri1) && inSet(secondHalf, tri2)
	otherWay := inSet(firstHalf, tri2) && inSet(secondHalf, tri1)
	require.True(t, oneWay || otherWay)
}

func TestDisconnectedPlacesFlaggedComponentLast(t *testing.T) {
	g := symmetricGraph(4, [][2]int32{{0, 1}, {2, 3}})
	placeAtEnd := func(local int32) bool { return local == 2 || local == 3 }
	out := Disconnected(g, identityInputID(4), placeAtEnd, noopRecurse)
	require.Equal(t, []int32{0, 1, 2, 3}, out)
}

func TestBiconnectedDecompositionOrdersSmallerComponentsFirst(t *testing.T) {
	// two triangles joined by a bridge: {0,1,2} - bridge(2,3) - {3,4,5}
	g := symmetricGraph(6, [][2]int32{
		{0, 1}, {1, 2}, {2, 0},
		{2, 3},
		{3, 4}, {4, 5}, {5, 3},
	})
	out := BiconnectedDecomposition(g, identityInputID(6), noopRecurse)
	require.Len(t, out, 6)
	require.ElementsMatch(t, []int32{0, 1, 2, 3, 4, 5}, out)
}

func TestDegreeTwoChainCollapsesChainBetweenCliques(t *testing.T) {
	// two triangles {0,1,2} and {5,6,7} joined by a degree-2 chain 2-3-4-5.
	g := symmetricGraph(8, [][2]int32{
		{0, 1}, {1, 2}, {2, 0},
		{2, 3}, {3, 4}, {4, 5},
		{5, 6}, {6, 7}, {7, 5},
	})
	out := DegreeTwoChain(g, identityInputID(8), func(sub *graph.Graph, subInputID []int32) []int32 {
		r, ok := Trivial(sub, subInputID)
		require.True(t, ok)
		return r
	})
	require.ElementsMatch(t, []int32{0, 1, 2, 3, 4, 5, 6, 7}, out)
	// chain interior nodes (3,4) must precede the two anchor nodes (2,5)
	// in the emitted order, since they are eliminated first.
	pos := make(map[int32]int, len(out))
	for i, v := range out {
		pos[v] = i
	}
	require.Less(t, pos[3], pos[2])
	require.Less(t, pos[4], pos[5])
}

func TestDegreeTwoChainDropsDeadEnd(t *testing.T) {
	// a triangle {0,1,2} with a dangling tail 2-3-4.
	g := symmetricGraph(5, [][2]int32{
		{0, 1}, {1, 2}, {2, 0},
		{2, 3}, {3, 4},
	})
	out := DegreeTwoChain(g, identityInputID(5), func(sub *graph.Graph, subInputID []int32) []int32 {
		r, ok := Trivial(sub, subInputID)
		require.True(t, ok)
		return r
	})
	require.ElementsMatch(t, []int32{0, 1, 2, 3, 4}, out)
	pos := make(map[int32]int, len(out))
	for i, v := range out {
		pos[v] = i
	}
	require.Less(t, pos[3], pos[2])
	require.Less(t, pos[4], pos[2])
}

func TestSimplicialEliminatesCliqueNeighborhood(t *testing.T) {
	// 0 is simplicial: its only neighbors {1,2} are themselves adjacent.
	g := symmetricGraph(4, [][2]int32{
		{0, 1}, {0, 2}, {1, 2},
		{1, 3}, {2, 3},
	})
	out := Simplicial(g, identityInputID(4), noopRecurse)
	require.ElementsMatch(t, []int32{0, 1, 2, 3}, out)
	require.Equal(t, int32(0), out[0])
}

func TestSimplicialFullyResolvesClique(t *testing.T) {
	g := symmetricGraph(4, [][2]int32{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	called := false
	out := Simplicial(g, identityInputID(4), func(*graph.Graph, []int32) []int32 {
		called = true
		return nil
	})
	require.False(t, called)
	require.ElementsMatch(t, []int32{0, 1, 2, 3}, out)
}

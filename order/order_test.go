package order

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
	return graph.New(n, tail, head)
}

func TestTreeOrderSevenNodePath(t *testing.T) {
	g := symmetricGraph(7, [][2]int32{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}})
	got := TreeOrder(g)
	require.Equal(t, Permutation{3, 1, 5, 0, 2, 4, 6}, got)
}

func TestTreeOrderIsAPermutation(t *testing.T) {
	// a small star plus a pendant chain
	g := symmetricGraph(6, [][2]int32{{0, 1}, {0, 2}, {0, 3}, {3, 4}, {4, 5}})
	got := TreeOrder(g)
	require.True(t, got.IsValid())
	require.Len(t, got, 6)
}

func TestPermutationInverseRoundTrips(t *testing.T) {
	p := Permutation{3, 1, 0, 2}
	inv := p.Inverse()
	for i, v := range p {
		require.Equal(t, int32(i), inv[v])
	}
}

func TestChordalParentsOnPathTreeWidthOne(t *testing.T) {
	g := symmetricGraph(4, [][2]int32{{0, 1}, {1, 2}, {2, 3}})
	ord := Permutation{0, 1, 2, 3}
	_, width := ChordalParents(g, ord)
	require.Equal(t, 1, width)
}

func TestChordalParentsOnCliqueTreeWidthNMinusOne(t *testing.T) {
	g := symmetricGraph(4, [][2]int32{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	ord := Permutation{0, 1, 2, 3}
	width := TreeWidth(g, ord)
	require.Equal(t, 3, width)
}

func TestCycleRefineCutNeverWorsensCut(t *testing.T) {
	g := symmetricGraph(6, [][2]int32{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})
	side := []bool{true, true, true, false, false, false}
	before := 0
	for a := 0; a < g.ArcCount(); a++ {
		if side[g.Tail(int32(a))] != side[g.Head(int32(a))] {
			before++
		}
	}
	_, after := CycleRefineCut(g, side, 3)
	require.LessOrEqual(t, after, before)
}

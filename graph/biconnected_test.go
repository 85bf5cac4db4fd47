package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func symmetricSimple(t *testing.T, n int, edges [][2]int32) *Graph {
	t.Helper()
	var tail, head []int32
	for _, e := range edges {
		tail = append(tail, e[0], e[1])
		head = append(head, e[1], e[0])
	}
	return MakeSimple(New(n, tail, head))
}

func TestBiconnectedComponentsSingleCycle(t *testing.T) {
	// A 4-cycle: 0-1-2-3-0 is one biconnected component.
	g := symmetricSimple(t, 4, [][2]int32{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	arcComponent, count := BiconnectedComponents(g)
	require.Equal(t, 1, count)
	for _, c := range arcComponent {
		require.Equal(t, int32(0), c)
	}
}

func TestBiconnectedComponentsBridge(t *testing.T) {
	// Two triangles 0-1-2 and 3-4-5 joined by a bridge 2-3: 3 biconnected
	// components (two triangles, one bridge).
	g := symmetricSimple(t, 6, [][2]int32{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{2, 3},
	})
	_, count := BiconnectedComponents(g)
	require.Equal(t, 3, count)
}

func TestBiconnectedComponentsPath(t *testing.T) {
	// A simple path has every edge as its own biconnected component.
	g := symmetricSimple(t, 5, [][2]int32{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	_, count := BiconnectedComponents(g)
	require.Equal(t, 4, count)
}

func TestBiconnectedComponentsSharesComponentAcrossDirections(t *testing.T) {
	g := symmetricSimple(t, 3, [][2]int32{{0, 1}, {1, 2}, {2, 0}})
	arcComponent, _ := BiconnectedComponents(g)
	back, err := g.BackArc()
	require.NoError(t, err)
	for a := 0; a < g.ArcCount(); a++ {
		require.Equal(t, arcComponent[a], arcComponent[back[a]])
	}
}

func TestBiconnectedComponentsDisconnectedGraph(t *testing.T) {
	g := symmetricSimple(t, 6, [][2]int32{{0, 1}, {1, 2}, {3, 4}})
	_, count := BiconnectedComponents(g)
	require.Equal(t, 3, count) // three separate edges, no shared component
}

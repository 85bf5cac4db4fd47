package graphgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathHasNMinusOneEdges(t *testing.T) {
	g := Path(5)
	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 8, g.ArcCount()) // 4 undirected edges, symmetric
}

func TestCliqueArcCount(t *testing.T) {
	g := Clique(5)
	require.Equal(t, 5*4, g.ArcCount())
}

func TestGridNodeAndArcCount(t *testing.T) {
	g := Grid(4, 4)
	require.Equal(t, 16, g.NodeCount())
	// 2 * (4*3 horizontal + 3*4 vertical) directed arcs
	require.Equal(t, 2*(12+12), g.ArcCount())
}

func TestBarbellHasSingleBridge(t *testing.T) {
	g := Barbell(3)
	require.Equal(t, 6, g.NodeCount())
	bridgeCount := 0
	for a := 0; a < g.ArcCount(); a++ {
		t, h := g.Tail(int32(a)), g.Head(int32(a))
		if (t < 3) != (h < 3) {
			bridgeCount++
		}
	}
	require.Equal(t, 2, bridgeCount) // one bridge edge, both directions
}

func TestTwoTrianglesAreDisconnected(t *testing.T) {
	g := TwoTriangles()
	require.Equal(t, 6, g.NodeCount())
	require.Equal(t, 12, g.ArcCount())
	for a := 0; a < g.ArcCount(); a++ {
		// no arc joins {0,1,2} to {3,4,5}
		require.Equal(t, g.Tail(int32(a)) < 3, g.Head(int32(a)) < 3)
	}
}

func TestRandomSparseIsDeterministic(t *testing.T) {
	g1 := RandomSparse(20, 30, 42)
	g2 := RandomSparse(20, 30, 42)
	require.Equal(t, g1.ArcCount(), g2.ArcCount())
	for a := 0; a < g1.ArcCount(); a++ {
		require.Equal(t, g1.Tail(int32(a)), g2.Tail(int32(a)))
		require.Equal(t, g1.Head(int32(a)), g2.Head(int32(a)))
	}
}

func TestRandomSparseIsConnectedEnough(t *testing.T) {
	g := RandomSparse(15, 20, 7)
	require.Equal(t, 15, g.NodeCount())
	require.GreaterOrEqual(t, g.ArcCount(), 2*14)
}

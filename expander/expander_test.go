package expander

import (
	"testing"

	"github.com/flowdissect/nesdis/graph"
	"github.com/stretchr/testify/require"
)

func TestExpandDoublesNodeCount(t *testing.T) {
	g := graph.New(3, []int32{0, 1}, []int32{1, 2})
	e := Expand(g)
	require.Equal(t, 6, e.Graph.NodeCount())
}

func TestExpandInternalArcCapacityOne(t *testing.T) {
	g := graph.New(2, []int32{0}, []int32{1})
	e := Expand(g)
	a := e.InternalArc(0)
	require.Equal(t, e.In(0), e.Graph.Tail(a))
	require.Equal(t, e.Out(0), e.Graph.Head(a))
	require.Equal(t, int64(1), e.Graph.ArcWeight(a))
}

func TestExpandOriginalArcCapacityInfinite(t *testing.T) {
	g := graph.New(2, []int32{0}, []int32{1})
	e := Expand(g)
	found := false
	for a := 0; a < e.Graph.ArcCount(); a++ {
		if e.Graph.Tail(int32(a)) == e.Out(0) && e.Graph.Head(int32(a)) == e.In(1) {
			found = true
			require.Equal(t, Infinite, e.Graph.ArcWeight(int32(a)))
		}
	}
	require.True(t, found)
}

func TestExtractSeparatorFindsInternalArcOnCut(t *testing.T) {
	g := graph.New(2, []int32{0}, []int32{1})
	e := Expand(g)
	sep := e.ExtractSeparator([]int32{e.InternalArc(0)})
	require.Equal(t, []int32{0}, sep)
}

func TestOriginalOfAndIsInHalf(t *testing.T) {
	g := graph.New(2, []int32{0}, []int32{1})
	e := Expand(g)
	require.True(t, e.IsInHalf(e.In(1)))
	require.False(t, e.IsInHalf(e.Out(1)))
	require.Equal(t, int32(1), e.OriginalOf(e.In(1)))
	require.Equal(t, int32(1), e.OriginalOf(e.Out(1)))
}

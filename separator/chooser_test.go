package separator

import (
	"testing"

	"github.com/flowdissect/nesdis/fcconfig"
	"github.com/flowdissect/nesdis/graph"
	"github.com/stretchr/testify/require"
)

func symmetricGraph(n int, edges [][2]int32) *graph.Graph {
	var tail, head []int32
	var wts []int64
	for _, e := range edges {
		tail = append(tail, e[0], e[1])
		head = append(head, e[1], e[0])
		wts = append(wts, 1, 1)
	}
	return graph.New(n, tail, head, graph.WithArcWeight(wts))
}

// barbellGraph returns two k-cliques joined by a single bridge edge, the
// canonical example where a single small vertex separator (the bridge's two
// endpoints) dominates every FlowCutter-enumerated cut.
func barbellGraph(k int) *graph.Graph {
	n := 2 * k
	var edges [][2]int32
	for side := 0; side < 2; side++ {
		base := side * k
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				edges = append(edges, [2]int32{int32(base + i), int32(base + j)})
			}
		}
	}
	edges = append(edges, [2]int32{int32(k - 1), int32(k)})
	return symmetricGraph(n, edges)
}

func pathGraph(n int) *graph.Graph {
	var edges [][2]int32
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]int32{int32(i), int32(i + 1)})
	}
	return symmetricGraph(n, edges)
}

func TestChooseNodeMinExpansionOnBarbellFindsBridgeSeparator(t *testing.T) {
	g := barbellGraph(4)
	cfg := fcconfig.Default()
	cfg.CutterCount = 4
	res, err := Choose(g, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, res.NodeSeparator)
	require.LessOrEqual(t, len(res.NodeSeparator), 2)
}

func TestChooseEdgeMinExpansionOnPathFindsSingleEdgeCut(t *testing.T) {
	g := pathGraph(6)
	cfg := fcconfig.Default()
	cfg.SeparatorSelection = fcconfig.EdgeMinExpansion
	cfg.CutterCount = 3
	res, err := Choose(g, cfg)
	require.NoError(t, err)
	require.Empty(t, res.NodeSeparator)
	require.Len(t, res.CutArcs, 1)
}

func TestChooseNodeFirstStopsAtFirstBalancedCut(t *testing.T) {
	g := pathGraph(10)
	cfg := fcconfig.Default()
	cfg.SeparatorSelection = fcconfig.NodeFirst
	cfg.MaxImbalance = 0.3
	cfg.CutterCount = 2
	res, err := Choose(g, cfg)
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.SmallerSideSize, 3)
}

func TestChooseEdgeFirstStopsAtFirstBalancedCut(t *testing.T) {
	g := pathGraph(10)
	cfg := fcconfig.Default()
	cfg.SeparatorSelection = fcconfig.EdgeFirst
	cfg.MaxImbalance = 0.3
	cfg.CutterCount = 2
	res, err := Choose(g, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, res.CutArcs)
}

func TestChooseIsDeterministicGivenSameSeed(t *testing.T) {
	g := barbellGraph(5)
	cfg := fcconfig.Default()
	cfg.RandomSeed = 777
	cfg.CutterCount = 4

	r1, err := Choose(g, cfg)
	require.NoError(t, err)
	r2, err := Choose(g, cfg)
	require.NoError(t, err)
	require.Equal(t, r1.NodeSeparator, r2.NodeSeparator)
	require.Equal(t, r1.Score, r2.Score)
}

func TestChooseHonorsFixedSourceAndTarget(t *testing.T) {
	g := pathGraph(6)
	cfg := fcconfig.Default()
	cfg.Source = 0
	cfg.Target = 5
	cfg.CutterCount = 2
	res, err := Choose(g, cfg)
	require.NoError(t, err)
	require.Equal(t, int32(0), res.Source)
	require.Equal(t, int32(5), res.Target)
}

func TestChooseRejectsEmptyGraph(t *testing.T) {
	g := graph.New(0, nil, nil)
	_, err := Choose(g, fcconfig.Default())
	require.Error(t, err)
}

func TestChooseCandidatesRespectsBranchFactor(t *testing.T) {
	g := barbellGraph(5)
	cfg := fcconfig.Default()
	cfg.CutterCount = 4
	cfg.BranchFactor = 2
	candidates, err := ChooseCandidates(g, cfg)
	require.NoError(t, err)
	require.LessOrEqual(t, len(candidates), 2)
}

func TestChooseCandidatesSortedByScoreAscending(t *testing.T) {
	g := barbellGraph(5)
	cfg := fcconfig.Default()
	cfg.CutterCount = 4
	cfg.BranchFactor = 3
	candidates, err := ChooseCandidates(g, cfg)
	require.NoError(t, err)
	for i := 1; i < len(candidates); i++ {
		require.LessOrEqual(t, candidates[i-1].Score, candidates[i].Score)
	}
}

func TestChooseReturnsFirstOfChooseCandidates(t *testing.T) {
	g := barbellGraph(5)
	cfg := fcconfig.Default()
	cfg.RandomSeed = 42
	cfg.CutterCount = 4
	cfg.BranchFactor = 3

	best, err := Choose(g, cfg)
	require.NoError(t, err)
	candidates, err := ChooseCandidates(g, cfg)
	require.NoError(t, err)
	require.Equal(t, candidates[0].Score, best.Score)
	require.Equal(t, candidates[0].NodeSeparator, best.NodeSeparator)
}

// Package separator implements the FlowCutter-based separator chooser
// (spec.md §4.F): run cutter_count randomized FlowCutter instances, rate
// every cut each produces, and return the lowest-scoring one. Grounded on
// original_source/separator.h's node_min_expansion/edge_min_expansion
// scoring-with-pruning loop and node_first/edge_first first-balanced-cut
// shortcut.
package separator

import (
	"math/rand"

	"github.com/flowdissect/nesdis/expander"
	"github.com/flowdissect/nesdis/fcconfig"
	"github.com/flowdissect/nesdis/fcerr"
	"github.com/flowdissect/nesdis/flowcutter"
	"github.com/flowdissect/nesdis/graph"
	"github.com/flowdissect/nesdis/rng"
)

// Result is the chooser's verdict: either a vertex separator (node modes)
// or an edge cut (edge modes), plus the balance metrics that produced its
// score.
type Result struct {
	// NodeSeparator holds the separator's vertex IDs for node_min_expansion
	// and node_first; nil for the edge modes.
	NodeSeparator []int32
	// CutArcs holds the winning cut's arc IDs in g's own ID space, for
	// edge_min_expansion and edge_first; nil for the node modes.
	CutArcs []int32

	// SmallerSide lists g's original node IDs on the smaller side of the
	// cut: for node modes, every node whose internal arc was not severed
	// and whose out-half reached the smaller side; for edge modes, every
	// node on the smaller side directly. In node modes NodeSeparator is
	// excluded; in edge modes the smaller-side endpoint of each cut arc is
	// included.
	SmallerSide []int32

	SmallerSideSize int
	Score           float64
	CutterIndex     int
	Source, Target  int32
}

const imbalancePenalty = 1_000_000.0

// Choose runs cfg.CutterCount randomized cutters over g and returns the
// best-scoring separator or cut, per cfg.SeparatorSelection.
func Choose(g *graph.Graph, cfg *fcconfig.Config) (*Result, error) {
	candidates, err := ChooseCandidates(g, cfg)
	if err != nil {
		return nil, err
	}
	return candidates[0], nil
}

// ChooseCandidates runs cfg.CutterCount randomized cutters over g and
// returns up to cfg.BranchFactor candidate separators or cuts, sorted
// best (lowest score) first, per cfg.SeparatorSelection. Grounded on
// original_source/small_tree_width_order.h's ComputeSeparatorSet, which
// keeps the branch_factor best-scoring cuts off a single cutter's
// monotone sequence rather than just the single winner.
func ChooseCandidates(g *graph.Graph, cfg *fcconfig.Config) ([]*Result, error) {
	if cfg == nil {
		cfg = fcconfig.Default()
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, fcerr.ErrEmptyTerminals
	}

	nodeMode := cfg.SeparatorSelection == fcconfig.NodeMinExpansion || cfg.SeparatorSelection == fcconfig.NodeFirst
	firstBalanced := cfg.SeparatorSelection == fcconfig.NodeFirst || cfg.SeparatorSelection == fcconfig.EdgeFirst

	var exp *expander.Expansion
	workGraph := g
	if nodeMode {
		exp = expander.Expand(g)
		workGraph = exp.Graph
	}

	var candidates []*Result
	masterRNG := rng.FromSeed(cfg.RandomSeed)

	for i := 0; i < cfg.CutterCount; i++ {
		source, target, err := pickPair(g, cfg, masterRNG)
		if err != nil {
			return nil, err
		}
		cutterSource, cutterTarget := source, target
		if nodeMode {
			cutterSource, cutterTarget = exp.Out(source), exp.In(target)
		}

		seed := rng.DeriveSeed(cfg.RandomSeed, uint64(i))
		cutter, err := flowcutter.New(workGraph, cutterSource, cutterTarget, cfg, seed, i)
		if err != nil {
			return nil, err
		}

		for {
			sideSize, metricSize := sideSizes(cutter, exp, nodeMode)
			cutSize := cutMetric(cutter, exp, nodeMode)

			if firstBalanced {
				if float64(sideSize) >= cfg.MaxImbalance*float64(n) {
					candidate := buildResult(cutter, exp, nodeMode, cutSize, sideSize, i, source, target, workGraph.NodeCount())
					candidates = insertCandidate(candidates, candidate, cfg.BranchFactor)
					break
				}
				if !cutter.Advance() {
					break
				}
				continue
			}

			score := float64(metricSize) / float64(maxInt(sideSize, 1))
			if float64(sideSize) < cfg.MaxImbalance*float64(n) {
				score += imbalancePenalty
			}
			candidate := buildResult(cutter, exp, nodeMode, cutSize, sideSize, i, source, target, workGraph.NodeCount())
			candidate.Score = score
			candidates = insertCandidate(candidates, candidate, cfg.BranchFactor)

			var bestScore float64
			if len(candidates) > 0 {
				bestScore = candidates[0].Score
			}
			futureBest := float64(cutSize+1) / float64(maxInt(n/2, 1))
			if len(candidates) > 0 && futureBest >= bestScore {
				break
			}
			if !cutter.Advance() {
				break
			}
		}
	}

	if len(candidates) == 0 {
		return nil, fcerr.ErrNotConnected
	}
	return candidates, nil
}

// insertCandidate inserts candidate into candidates (kept sorted ascending
// by Score, best first) and truncates to at most branchFactor entries.
func insertCandidate(candidates []*Result, candidate *Result, branchFactor int) []*Result {
	if branchFactor < 1 {
		branchFactor = 1
	}
	i := 0
	for i < len(candidates) && candidates[i].Score <= candidate.Score {
		i++
	}
	candidates = append(candidates, nil)
	copy(candidates[i+1:], candidates[i:])
	candidates[i] = candidate
	if len(candidates) > branchFactor {
		candidates = candidates[:branchFactor]
	}
	return candidates
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// pickPair resolves this round's (source, target), honoring a caller-fixed
// endpoint and sampling the other uniformly without replacement.
func pickPair(g *graph.Graph, cfg *fcconfig.Config, r *rand.Rand) (int32, int32, error) {
	n := int32(g.NodeCount())
	if cfg.Source >= 0 && cfg.Target >= 0 {
		return cfg.Source, cfg.Target, nil
	}
	a, b := rng.SamplePairWithoutReplacement(int(n), r)
	source, target := a, b
	if cfg.Source >= 0 {
		source = cfg.Source
		target = a
		if target == source {
			target = b
		}
	}
	if cfg.Target >= 0 {
		target = cfg.Target
		if source == target {
			source = a
			if source == target {
				source = b
			}
		}
	}
	if source == target {
		return 0, 0, fcerr.ErrEmptyTerminals
	}
	return source, target, nil
}

func sideSizes(cutter *flowcutter.State, exp *expander.Expansion, nodeMode bool) (sideSize, metricSize int) {
	if nodeMode {
		originalSide := exp.SmallerSideOriginalNodes(cutter.IsOnSmallerSide, cutter.CurrentCut())
		return len(originalSide), len(exp.ExtractSeparator(cutter.CurrentCut()))
	}
	return cutter.CurrentSmallerSideSize(), int(cutter.CurrentCutSize())
}

func cutMetric(cutter *flowcutter.State, exp *expander.Expansion, nodeMode bool) int64 {
	if nodeMode {
		return int64(len(exp.ExtractSeparator(cutter.CurrentCut())))
	}
	return cutter.CurrentCutSize()
}

func buildResult(cutter *flowcutter.State, exp *expander.Expansion, nodeMode bool, cutSize int64, sideSize int, cutterIndex int, source, target int32, workGraphNodeCount int) *Result {
	r := &Result{
		SmallerSideSize: sideSize,
		CutterIndex:     cutterIndex,
		Source:          source,
		Target:          target,
	}
	if nodeMode {
		r.NodeSeparator = exp.ExtractSeparator(cutter.CurrentCut())
		r.SmallerSide = exp.SmallerSideOriginalNodes(cutter.IsOnSmallerSide, cutter.CurrentCut())
	} else {
		r.CutArcs = cutter.CurrentCut()
		var side []int32
		for v := int32(0); v < int32(workGraphNodeCount); v++ {
			if cutter.IsOnSmallerSide(v) {
				side = append(side, v)
			}
		}
		r.SmallerSide = side
	}
	return r
}

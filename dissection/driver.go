package dissection

import (
	"github.com/flowdissect/nesdis/fcconfig"
	"github.com/flowdissect/nesdis/graph"
	"github.com/flowdissect/nesdis/order"
	"github.com/flowdissect/nesdis/reduction"
	"github.com/flowdissect/nesdis/separator"
)

// frame is one entry of the explicit work-stack: either a pending job
// (compute the order for g and write it to out) or a combine step (once
// every part is filled in, concatenate them into out). Using a single
// slice of this sum type lets one LIFO loop drive the whole recursion: a
// job that needs to split into several residuals pushes a combine frame
// first, then one job frame per residual — the combine frame sits
// underneath its children on the stack and only runs once they've all been
// popped and resolved.
type frame struct {
	combine bool

	// job fields.
	g       *graph.Graph
	inputID []int32
	cchMode bool

	// combine fields.
	parts []*[]int32

	out *[]int32
}

func ptrOf(s []int32) *[]int32 { return &s }

func identity(n int) []int32 {
	id := make([]int32, n)
	for i := range id {
		id[i] = int32(i)
	}
	return id
}

// NestedDissectionOrder computes an elimination order for g via
// compute_nested_dissection_graph_order's recipe: make g simple, apply
// Trivial / Disconnected / Simplicial reductions, and otherwise run the
// separator chooser, remove the separator's crossing arcs, recurse on the
// remaining components, and place the separator last.
func NestedDissectionOrder(g *graph.Graph, cfg *fcconfig.Config) order.Permutation {
	return order.Permutation(run(g, cfg, false))
}

// CCHOrder computes a contraction-hierarchy-friendly order: at every level
// it additionally tries BiconnectedDecomposition and DegreeTwoChain before
// falling through to the same nested-dissection machinery, exploiting the
// long chains and small biconnected components common in road networks.
func CCHOrder(g *graph.Graph, cfg *fcconfig.Config) order.Permutation {
	return order.Permutation(run(g, cfg, true))
}

func run(root *graph.Graph, cfg *fcconfig.Config, cchMode bool) []int32 {
	if cfg == nil {
		cfg = fcconfig.Default()
	}
	return solveSubgraph(root, identity(root.NodeCount()), cfg, cchMode)
}

// solveSubgraph drains a fresh work-stack seeded with a single job for
// (g, inputID) to completion and returns the resulting order in
// inputID's ID space. This is the reusable core of run, also called
// directly by pushSeparatorSplit's branch_factor candidate evaluation
// (see evaluateCandidate) to fully resolve each candidate separator's
// residual components before comparing tree widths.
func solveSubgraph(g *graph.Graph, inputID []int32, cfg *fcconfig.Config, cchMode bool) []int32 {
	var result []int32
	stack := []frame{{g: g, inputID: inputID, out: &result, cchMode: cchMode}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.combine {
			var combined []int32
			for _, p := range f.parts {
				combined = append(combined, (*p)...)
			}
			*f.out = combined
			continue
		}
		stack = processJob(f, cfg, stack)
	}
	return result
}

// processJob tries each reduction rule in turn for one subgraph job and
// pushes whatever follow-up frames are needed, instead of recursing.
func processJob(f frame, cfg *fcconfig.Config, stack []frame) []frame {
	g := graph.MakeSimple(f.g)
	inputID := f.inputID

	if trivialOrder, ok := reduction.Trivial(g, inputID); ok {
		*f.out = trivialOrder
		return stack
	}

	if groups := reduction.ComponentGroups(g, inputID, nil); len(groups) > 1 {
		return pushGroups(groups, f.out, f.cchMode, stack)
	}

	if f.cchMode {
		if restGroups, largestGraph, largestInputID, trivial := reduction.SplitBiconnected(g, inputID); !trivial {
			return pushBiconnected(restGroups, largestGraph, largestInputID, f.out, f.cchMode, stack)
		}
		if prefix, residual, residualInputID, fired := reduction.StepDegreeTwoChain(g, inputID); fired {
			return pushPrefixThenResidual(prefix, residual, residualInputID, f.out, f.cchMode, stack)
		}
	}

	if prefix, residual, residualInputID, fullyResolved := reduction.StepSimplicial(g, inputID); len(prefix) > 0 {
		if fullyResolved {
			*f.out = prefix
			return stack
		}
		return pushPrefixThenResidual(prefix, residual, residualInputID, f.out, f.cchMode, stack)
	}

	return pushSeparatorSplit(g, inputID, cfg, f.out, f.cchMode, stack)
}

func pushGroups(groups []reduction.Group, out *[]int32, cchMode bool, stack []frame) []frame {
	slots := make([]*[]int32, len(groups))
	for i := range slots {
		slots[i] = new([]int32)
	}
	stack = append(stack, frame{combine: true, parts: slots, out: out})
	for i, gr := range groups {
		stack = append(stack, frame{g: gr.Graph, inputID: gr.InputID, out: slots[i], cchMode: cchMode})
	}
	return stack
}

func pushBiconnected(restGroups []reduction.Group, largestGraph *graph.Graph, largestInputID []int32, out *[]int32, cchMode bool, stack []frame) []frame {
	slots := make([]*[]int32, len(restGroups)+1)
	for i := range slots {
		slots[i] = new([]int32)
	}
	stack = append(stack, frame{combine: true, parts: slots, out: out})
	stack = append(stack, frame{g: largestGraph, inputID: largestInputID, out: slots[len(slots)-1], cchMode: cchMode})
	for i, gr := range restGroups {
		stack = append(stack, frame{g: gr.Graph, inputID: gr.InputID, out: slots[i], cchMode: cchMode})
	}
	return stack
}

func pushPrefixThenResidual(prefix []int32, residual *graph.Graph, residualInputID []int32, out *[]int32, cchMode bool, stack []frame) []frame {
	slot := new([]int32)
	stack = append(stack, frame{combine: true, parts: []*[]int32{ptrOf(prefix), slot}, out: out})
	stack = append(stack, frame{g: residual, inputID: residualInputID, out: slot, cchMode: cchMode})
	return stack
}

// pushSeparatorSplit runs the separator chooser on a (connected,
// irreducible) subgraph, keeping up to cfg.BranchFactor candidate
// separators (original_source/small_tree_width_order.h's
// ComputeSeparatorSet). Each candidate is fully resolved — its residual
// components ordered smaller-side-first, its own nodes placed last — and
// the candidate whose resulting order has the smallest tree width wins
// (compute_order_by_decompose_along_all_separators). The winner is
// written straight to out; no further frames are pushed, since every
// candidate (including the one that wins) has already been driven to a
// complete order by evaluateCandidate.
func pushSeparatorSplit(g *graph.Graph, inputID []int32, cfg *fcconfig.Config, out *[]int32, cchMode bool, stack []frame) []frame {
	if g.NodeCount() < 2 {
		*out = translate(identity(g.NodeCount()), inputID)
		return stack
	}

	splitCfg := *cfg
	splitCfg.Source, splitCfg.Target = -1, -1
	if splitCfg.SeparatorSelection == fcconfig.EdgeMinExpansion || splitCfg.SeparatorSelection == fcconfig.EdgeFirst {
		splitCfg.SeparatorSelection = fcconfig.NodeMinExpansion
	}

	candidates, err := separator.ChooseCandidates(g, &splitCfg)
	if err != nil || len(candidates) == 0 || len(candidates[0].NodeSeparator) == 0 {
		*out = translate(identity(g.NodeCount()), inputID)
		return stack
	}

	var bestOrder []int32
	bestWidth := -1
	for _, candidate := range candidates {
		if len(candidate.NodeSeparator) == 0 {
			continue
		}
		localOrder, width := evaluateCandidate(g, cfg, cchMode, candidate)
		if bestWidth < 0 || width < bestWidth {
			bestOrder, bestWidth = localOrder, width
		}
	}
	if bestOrder == nil {
		*out = translate(identity(g.NodeCount()), inputID)
		return stack
	}

	*out = translate(bestOrder, inputID)
	return stack
}

// evaluateCandidate fully resolves one candidate separator on g (in g's
// own local ID space — not inputID's) and returns its complete order
// plus the tree width that order gives g. Residual components are
// ordered via reduction.ComponentGroups' smaller-side-first placement,
// each solved independently by solveSubgraph, and the separator's own
// nodes are placed last.
func evaluateCandidate(g *graph.Graph, cfg *fcconfig.Config, cchMode bool, result *separator.Result) (localOrder []int32, width int) {
	n := g.NodeCount()
	sepSet := make(map[int32]bool, len(result.NodeSeparator))
	for _, v := range result.NodeSeparator {
		sepSet[v] = true
	}
	var residualMembers []int32
	for v := 0; v < n; v++ {
		if !sepSet[int32(v)] {
			residualMembers = append(residualMembers, int32(v))
		}
	}

	if len(residualMembers) == 0 {
		localOrder = append([]int32(nil), result.NodeSeparator...)
		return localOrder, order.TreeWidth(g, order.Permutation(localOrder))
	}

	residualGraph, residualInputID := reduction.ExtractSubgraph(g, identity(n), residualMembers)

	localOf := make(map[int32]int32, len(residualMembers))
	for i, v := range residualMembers {
		localOf[v] = int32(i)
	}
	localSmaller := make(map[int32]bool, len(result.SmallerSide))
	for _, v := range result.SmallerSide {
		if local, ok := localOf[v]; ok {
			localSmaller[local] = true
		}
	}
	placeAtEnd := func(local int32) bool { return !localSmaller[local] }

	groups := reduction.ComponentGroups(residualGraph, residualInputID, placeAtEnd)
	for _, gr := range groups {
		localOrder = append(localOrder, solveSubgraph(gr.Graph, gr.InputID, cfg, cchMode)...)
	}
	localOrder = append(localOrder, result.NodeSeparator...)
	return localOrder, order.TreeWidth(g, order.Permutation(localOrder))
}

func translate(local []int32, inputID []int32) []int32 {
	out := make([]int32, len(local))
	for i, v := range local {
		out[i] = inputID[v]
	}
	return out
}

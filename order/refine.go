package order

import "github.com/flowdissect/nesdis/graph"

// CycleRefineCut takes a cut described by onSmallerSide (true for nodes on
// the smaller side) over a simple symmetric graph and greedily swaps
// balance-preserving node pairs (one per side) to reduce the cut's arc
// count, stopping when no further improving swap exists or after
// maxPasses full scans. It never changes |smallerSide|, only its
// membership — a local post-processing step, per spec.md §4.I.
//
// Returns the refined side assignment (a fresh slice; the input is not
// mutated) and the resulting cut size.
func CycleRefineCut(g *graph.Graph, onSmallerSide []bool, maxPasses int) ([]bool, int) {
	n := g.NodeCount()
	side := append([]bool(nil), onSmallerSide...)

	crossingWeight := func() int64 {
		var total int64
		for a := 0; a < g.ArcCount(); a++ {
			t, h := g.Tail(int32(a)), g.Head(int32(a))
			if side[t] != side[h] {
				total += g.ArcWeight(int32(a))
			}
		}
		return total
	}

	// gain(v) is how much the cut would shrink if v alone flipped sides:
	// weight of v's arcs to the opposite side minus weight to its own.
	gain := func(v int32) int64 {
		outArc, err := g.OutArcs()
		if err != nil {
			return 0
		}
		b, e := outArc.Range(v)
		var same, other int64
		for a := b; a < e; a++ {
			w := g.ArcWeight(a)
			if side[g.Head(a)] == side[v] {
				same += w
			} else {
				other += w
			}
		}
		return other - same
	}

	for pass := 0; pass < maxPasses; pass++ {
		bestDelta := int64(0)
		bestU, bestV := int32(-1), int32(-1)
		for u := int32(0); u < int32(n); u++ {
			if !side[u] {
				continue
			}
			for v := int32(0); v < int32(n); v++ {
				if side[v] {
					continue
				}
				// swapping u (smaller side) and v (larger side): each
				// loses its own gain but the u-v edge itself (if any) was
				// counted once by each gain and stays cut after the swap,
				// so correct for it: its two arcs subtract their weight
				// once each.
				delta := gain(u) + gain(v)
				for a := 0; a < g.ArcCount(); a++ {
					if (g.Tail(int32(a)) == u && g.Head(int32(a)) == v) ||
						(g.Tail(int32(a)) == v && g.Head(int32(a)) == u) {
						delta -= g.ArcWeight(int32(a))
					}
				}
				if delta > bestDelta {
					bestDelta, bestU, bestV = delta, u, v
				}
			}
		}
		if bestU < 0 {
			break
		}
		side[bestU], side[bestV] = false, true
	}
	return side, int(crossingWeight())
}

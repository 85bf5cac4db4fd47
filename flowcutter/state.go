package flowcutter

import (
	"math/rand"

	"github.com/flowdissect/nesdis/fcconfig"
	"github.com/flowdissect/nesdis/fcerr"
	"github.com/flowdissect/nesdis/graph"
	"github.com/flowdissect/nesdis/idxfn"
	"github.com/flowdissect/nesdis/rng"
)

// State is one FlowCutter cutter instance over a fixed graph and
// source/target pair. It owns every bit-set, queue, and label array it
// touches (spec.md §5's resource policy); the graph itself is borrowed and
// must outlive the State.
type State struct {
	g        *graph.Graph
	back     []int32
	residual []int64
	cfg      *fcconfig.Config
	rng      *rand.Rand
	cutterID int

	sourceTerminal, targetTerminal int32

	assimSource, assimTarget *idxfn.BitSet
	pierceOrderSource        []int32 // assimilation order, source[0] is the terminal
	pierceOrderTarget        []int32
	pierceStep               []int32 // node -> the Advance() call that pierced it, -1 if never

	rSource, rTarget *idxfn.BitSet // ring closure of the assimilated sets

	cut             []int32
	smallerIsSource bool
	terminated      bool
	stepCounter     int32
}

// New builds a FlowCutter instance over g for the given source/target pair
// and configuration, performing the initial BFS both sides once (spec.md
// §4.D's init). cutterID is an opaque label reported by CurrentCutterID,
// useful when a chooser manages several instances.
func New(g *graph.Graph, source, target int32, cfg *fcconfig.Config, seed int64, cutterID int) (*State, error) {
	if cfg == nil {
		cfg = fcconfig.Default()
	}
	if source < 0 || target < 0 {
		return nil, fcerr.ErrEmptyTerminals
	}
	for a := 0; a < g.ArcCount(); a++ {
		if w := g.ArcWeight(int32(a)); w < 0 {
			return nil, &fcerr.CapacityError{Arc: int32(a), Cap: w}
		}
	}
	back, err := g.BackArc()
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	residual := make([]int64, g.ArcCount())
	for a := range residual {
		residual[a] = g.ArcWeight(int32(a))
	}
	pierceStep := make([]int32, n)
	for i := range pierceStep {
		pierceStep[i] = -1
	}

	s := &State{
		g:                 g,
		back:              back,
		residual:          residual,
		cfg:               cfg,
		rng:               rng.FromSeed(seed),
		cutterID:          cutterID,
		sourceTerminal:    source,
		targetTerminal:    target,
		assimSource:       idxfn.NewBitSet(n),
		assimTarget:       idxfn.NewBitSet(n),
		pierceOrderSource: []int32{source},
		pierceOrderTarget: []int32{target},
		pierceStep:        pierceStep,
	}
	s.assimSource.Set(int(source), true)
	s.assimTarget.Set(int(target), true)
	s.pierceStep[source] = 0
	s.pierceStep[target] = 0
	s.recompute()
	return s, nil
}

// ringClosure returns assim's closed neighborhood: assim itself plus every
// node reachable by a single positive-residual arc from an assim member
// (forward direction when forward is true, backward — i.e. an arc pointing
// into the member — otherwise).
func (s *State) ringClosure(assim *idxfn.BitSet, forward bool) *idxfn.BitSet {
	out := assim.Clone()
	outArc, _ := s.g.OutArcs()
	n := s.g.NodeCount()
	for v := 0; v < n; v++ {
		if !assim.Get(v) {
			continue
		}
		b, e := outArc.Range(int32(v))
		for a := b; a < e; a++ {
			if forward {
				if s.residual[a] <= 0 {
					continue
				}
				out.Set(int(s.g.Head(a)), true)
			} else {
				if s.residual[s.back[a]] <= 0 {
					continue
				}
				out.Set(int(s.g.Head(a)), true)
			}
		}
	}
	return out
}

func overlaps(a, b *idxfn.BitSet) bool {
	for v := 0; v < a.Len(); v++ {
		if a.Get(v) && b.Get(v) {
			return true
		}
	}
	return false
}

// findAugmentingPath runs a multi-source BFS from every assimilated source
// node over positive-residual arcs, stopping at the first assimilated
// target node reached, and returns the arc path from source to target
// (nil if none exists).
func (s *State) findAugmentingPath() []int32 {
	n := s.g.NodeCount()
	const unvisited, isStart = int32(-2), int32(-1)
	pred := make([]int32, n)
	for i := range pred {
		pred[i] = unvisited
	}
	var queue []int32
	for _, v := range s.pierceOrderSource {
		if pred[v] == unvisited {
			pred[v] = isStart
			queue = append(queue, v)
		}
	}
	outArc, _ := s.g.OutArcs()
	reached := int32(-1)
	for i := 0; i < len(queue) && reached < 0; i++ {
		u := queue[i]
		if pred[u] != isStart && s.assimTarget.Get(int(u)) {
			reached = u
			break
		}
		b, e := outArc.Range(u)
		for a := b; a < e; a++ {
			if s.residual[a] <= 0 {
				continue
			}
			w := s.g.Head(a)
			if pred[w] != unvisited {
				continue
			}
			pred[w] = a
			queue = append(queue, w)
		}
	}
	if reached < 0 {
		return nil
	}
	var path []int32
	cur := reached
	for pred[cur] != isStart {
		a := pred[cur]
		path = append(path, a)
		cur = s.g.Tail(a)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// recompute restores the quiescent invariants: pushes flow along
// augmenting paths until R_S and R_T are disjoint, then refreshes the
// reported cut.
func (s *State) recompute() {
	for {
		s.rSource = s.ringClosure(s.assimSource, true)
		s.rTarget = s.ringClosure(s.assimTarget, false)
		if !overlaps(s.rSource, s.rTarget) {
			break
		}
		path := s.findAugmentingPath()
		if path == nil {
			break
		}
		for _, a := range path {
			s.residual[a]--
			s.residual[s.back[a]]++
		}
	}
	s.updateCut()
}

func (s *State) updateCut() {
	s.smallerIsSource = s.rSource.Count() <= s.rTarget.Count()
	var cut []int32
	for a := 0; a < s.g.ArcCount(); a++ {
		t, h := s.g.Tail(int32(a)), s.g.Head(int32(a))
		if s.smallerIsSource {
			if s.rSource.Get(int(t)) && !s.rSource.Get(int(h)) {
				cut = append(cut, int32(a))
			}
		} else {
			if !s.rTarget.Get(int(t)) && s.rTarget.Get(int(h)) {
				cut = append(cut, int32(a))
			}
		}
	}
	s.cut = cut
}

// CurrentCut returns the arc IDs crossing the current smaller side's
// boundary.
func (s *State) CurrentCut() []int32 { return append([]int32(nil), s.cut...) }

// CurrentCutSize returns len(CurrentCut()), weighted by arc capacity.
func (s *State) CurrentCutSize() int64 {
	var total int64
	for _, a := range s.cut {
		total += s.g.ArcWeight(a)
	}
	return total
}

// CurrentSmallerSideSize returns the node count of whichever side
// (source-reachable or target-reachable) is currently smaller.
func (s *State) CurrentSmallerSideSize() int {
	if s.smallerIsSource {
		return s.rSource.Count()
	}
	return s.rTarget.Count()
}

// CurrentCutterID returns this instance's opaque label, as given to New.
func (s *State) CurrentCutterID() int { return s.cutterID }

// IsOnSmallerSide reports whether v lies on the current smaller side.
func (s *State) IsOnSmallerSide(v int32) bool {
	if s.smallerIsSource {
		return s.rSource.Get(int(v))
	}
	return s.rTarget.Get(int(v))
}

// Terminated reports whether Advance will return false without further
// progress.
func (s *State) Terminated() bool { return s.terminated }

// DumpState is a diagnostic snapshot (spec.md §6.2's dump_state option):
// the reachable and assimilated sets, current cut, and pierce history.
type DumpState struct {
	SourceReachable, TargetReachable []int32
	SourceAssimilated, TargetAssimilated []int32
	Cut                              []int32
	SmallerSideIsSource              bool
	StepCounter                      int32
}

// Dump produces a DumpState snapshot of the current instance.
func (s *State) Dump() DumpState {
	collect := func(b *idxfn.BitSet) []int32 {
		var out []int32
		for v := 0; v < b.Len(); v++ {
			if b.Get(v) {
				out = append(out, int32(v))
			}
		}
		return out
	}
	return DumpState{
		SourceReachable:      collect(s.rSource),
		TargetReachable:      collect(s.rTarget),
		SourceAssimilated:    collect(s.assimSource),
		TargetAssimilated:    collect(s.assimTarget),
		Cut:                  s.CurrentCut(),
		SmallerSideIsSource:  s.smallerIsSource,
		StepCounter:          s.stepCounter,
	}
}

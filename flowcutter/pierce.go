package flowcutter

import (
	"math"

	"github.com/flowdissect/nesdis/fcconfig"
	"github.com/flowdissect/nesdis/idxfn"
	"github.com/flowdissect/nesdis/pqueue"
)

// Advance runs one pierce step on the currently smaller side, per spec.md
// §4.D's six-step recipe, and reports whether a pierce happened. It
// returns false once no further pierceable candidate exists or the cut has
// reached the configured ceiling.
func (s *State) Advance() bool {
	if s.terminated {
		return false
	}
	s.stepCounter++

	candidates := s.candidatesOf(s.smallerIsSource)
	if len(candidates) == 0 {
		s.terminated = true
		return false
	}

	p := s.choosePierce(candidates)
	if s.smallerIsSource {
		s.assimSource.Set(int(p), true)
		s.pierceOrderSource = append(s.pierceOrderSource, p)
	} else {
		s.assimTarget.Set(int(p), true)
		s.pierceOrderTarget = append(s.pierceOrderTarget, p)
	}
	s.pierceStep[p] = s.stepCounter

	s.recompute()

	if s.rSource.Count()+s.rTarget.Count() >= s.g.NodeCount() {
		s.terminated = true
	}
	if s.CurrentCutSize() > int64(s.cfg.MaxCutSize) {
		s.terminated = true
	}
	return true
}

// candidatesOf returns the frontier nodes of the given side (reachable but
// not yet assimilated) that are guaranteed to grow the side upon
// assimilation — i.e. they have at least one residual arc leading further
// outward. Falls back to every frontier node, growth-guaranteed or not, if
// none qualifies (the side has reached a locally exhausted boundary).
func (s *State) candidatesOf(sourceSide bool) []int32 {
	reach, assim := s.rSource, s.assimSource
	if !sourceSide {
		reach, assim = s.rTarget, s.assimTarget
	}
	outArc, _ := s.g.OutArcs()
	n := s.g.NodeCount()

	var growthCandidates, allFrontier []int32
	for v := 0; v < n; v++ {
		if !reach.Get(v) || assim.Get(v) {
			continue
		}
		allFrontier = append(allFrontier, int32(v))
		b, e := outArc.Range(int32(v))
		grows := false
		for a := b; a < e; a++ {
			if sourceSide {
				if s.residual[a] > 0 && !reach.Get(int(s.g.Head(a))) {
					grows = true
					break
				}
			} else {
				if s.residual[s.back[a]] > 0 && !reach.Get(int(s.g.Head(a))) {
					grows = true
					break
				}
			}
		}
		if grows {
			growthCandidates = append(growthCandidates, int32(v))
		}
	}
	if len(growthCandidates) > 0 {
		return growthCandidates
	}
	return allFrontier
}

// choosePierce scores every candidate by the configured PierceRating,
// applies the avoid-augmenting-path bonus, and breaks ties per the
// configured policy.
func (s *State) choosePierce(candidates []int32) int32 {
	distSourceHop, distTargetHop := s.hopLabels()
	var distSourceWeight, distTargetWeight []int64
	needsWeight := ratingNeedsWeight(s.cfg.PierceRating)
	if needsWeight {
		distSourceWeight, distTargetWeight = s.weightLabels()
	}

	avoids := make([]bool, len(candidates))
	opposite := s.rTarget
	if !s.smallerIsSource {
		opposite = s.rSource
	}
	for i, p := range candidates {
		avoids[i] = !opposite.Get(int(p))
	}

	score := func(i int) int64 {
		p := candidates[i]
		switch s.cfg.PierceRating {
		case fcconfig.MaxTargetMinusSourceHopDist:
			return int64(distTargetHop[p]) - int64(distSourceHop[p])
		case fcconfig.MinSourceHopDist:
			return -int64(distSourceHop[p])
		case fcconfig.MaxTargetHopDist:
			return int64(distTargetHop[p])
		case fcconfig.MaxTargetMinusSourceWeightDist:
			return distTargetWeight[p] - distSourceWeight[p]
		case fcconfig.MinSourceWeightDist:
			return -distSourceWeight[p]
		case fcconfig.MaxTargetWeightDist:
			return distTargetWeight[p]
		case fcconfig.RandomRating:
			return s.rng.Int63()
		case fcconfig.OldestRating:
			return -int64(s.pierceStep[p])
		case fcconfig.MaxArcWeight:
			return maxIncidentWeight(s, p)
		case fcconfig.MinArcWeight:
			return -maxIncidentWeight(s, p)
		case fcconfig.CircularHop:
			return circularScore(int64(distSourceHop[p])+int64(distTargetHop[p]), s.stepCounter)
		case fcconfig.CircularWeight:
			return circularScore(distSourceWeight[p]+distTargetWeight[p], s.stepCounter)
		default:
			return int64(distTargetHop[p]) - int64(distSourceHop[p])
		}
	}

	const avoidBonus = int64(1) << 30
	best := 0
	bestScore := score(0)
	if s.cfg.AvoidAugmentingPath != fcconfig.DoNotAvoid && avoids[0] {
		bestScore += avoidBonus
	}
	for i := 1; i < len(candidates); i++ {
		sc := score(i)
		if s.cfg.AvoidAugmentingPath != fcconfig.DoNotAvoid && avoids[i] {
			sc += avoidBonus
		}
		if sc > bestScore || (sc == bestScore && s.breakTie(candidates[best], candidates[i])) {
			best, bestScore = i, sc
		}
	}
	return candidates[best]
}

// breakTie reports whether challenger should replace incumbent under a tie,
// per the configured avoid_augmenting_path tie-break policy (best keeps the
// incumbent — first seen wins; oldest prefers the earlier-discovered node;
// random flips a coin).
func (s *State) breakTie(incumbent, challenger int32) bool {
	switch s.cfg.AvoidAugmentingPath {
	case fcconfig.AvoidAndPickOldest:
		return s.pierceStep[challenger] < s.pierceStep[incumbent]
	case fcconfig.AvoidAndPickRandom:
		return s.rng.Intn(2) == 0
	default:
		return false
	}
}

func ratingNeedsWeight(r fcconfig.PierceRating) bool {
	switch r {
	case fcconfig.MaxTargetMinusSourceWeightDist, fcconfig.MinSourceWeightDist,
		fcconfig.MaxTargetWeightDist, fcconfig.CircularWeight:
		return true
	default:
		return false
	}
}

func maxIncidentWeight(s *State, v int32) int64 {
	outArc, _ := s.g.OutArcs()
	b, e := outArc.Range(v)
	var best int64
	for a := b; a < e; a++ {
		if w := s.g.ArcWeight(a); w > best {
			best = w
		}
	}
	return best
}

// circularScore rotates a base distance score through a fixed-size cycle
// keyed by the current step, approximating the "circular" pierce ratings
// from original_source/flow_cutter_config.h: the underlying FlowCutter
// core that defines their exact semantics (node_flow_cutter.h) wasn't
// retrieved, so this reconstructs the documented intent — favor candidates
// whose distance sum aligns with a rotating phase — rather than porting
// unseen code.
func circularScore(distSum int64, step int32) int64 {
	const cycle = 16
	phase := int64(step) % cycle
	delta := distSum % cycle
	if delta < 0 {
		delta += cycle
	}
	d := delta - phase
	if d < 0 {
		d += cycle
	}
	return cycle - d
}

// hopLabels computes, for every node, its hop distance from the
// assimilated-source set (forward residual BFS) and from the
// assimilated-target set (backward residual BFS). Unreachable nodes carry
// math.MaxInt32.
func (s *State) hopLabels() (fromSource, fromTarget []int32) {
	fromSource = s.bfsHop(s.pierceOrderSource, true)
	fromTarget = s.bfsHop(s.pierceOrderTarget, false)
	return
}

func (s *State) bfsHop(starts []int32, forward bool) []int32 {
	n := s.g.NodeCount()
	dist := make([]int32, n)
	for i := range dist {
		dist[i] = math.MaxInt32
	}
	visited := idxfn.NewBitSet(n)
	var queue []int32
	for _, v := range starts {
		if !visited.Get(int(v)) {
			visited.Set(int(v), true)
			dist[v] = 0
			queue = append(queue, v)
		}
	}
	outArc, _ := s.g.OutArcs()
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		b, e := outArc.Range(u)
		for a := b; a < e; a++ {
			var ok bool
			var w int32
			if forward {
				ok = s.residual[a] > 0
				w = s.g.Head(a)
			} else {
				ok = s.residual[s.back[a]] > 0
				w = s.g.Head(a)
			}
			if !ok || visited.Get(int(w)) {
				continue
			}
			visited.Set(int(w), true)
			dist[w] = dist[u] + 1
			queue = append(queue, w)
		}
	}
	return dist
}

// weightLabels is hopLabels' Dijkstra analogue, using arc weight as edge
// length.
func (s *State) weightLabels() (fromSource, fromTarget []int64) {
	fromSource = s.dijkstra(s.pierceOrderSource, true)
	fromTarget = s.dijkstra(s.pierceOrderTarget, false)
	return
}

func (s *State) dijkstra(starts []int32, forward bool) []int64 {
	n := s.g.NodeCount()
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = math.MaxInt64
	}
	h := pqueue.New(n)
	for _, v := range starts {
		dist[v] = 0
		h.PushOrDecreaseKey(v, 0)
	}
	outArc, _ := s.g.OutArcs()
	for h.Len() > 0 {
		u, du := h.Pop()
		if du > dist[u] {
			continue
		}
		b, e := outArc.Range(u)
		for a := b; a < e; a++ {
			var ok bool
			var w int32
			if forward {
				ok = s.residual[a] > 0
				w = s.g.Head(a)
			} else {
				ok = s.residual[s.back[a]] > 0
				w = s.g.Head(a)
			}
			if !ok {
				continue
			}
			nd := du + s.g.ArcWeight(a)
			if nd < dist[w] {
				dist[w] = nd
				h.PushOrDecreaseKey(w, nd)
			}
		}
	}
	return dist
}

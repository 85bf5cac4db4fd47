// Package fcconfig implements the FlowCutter configuration record: an
// enumerated set of fields, each with a fixed admissible value set, that
// round-trips through string-keyed Get/Set the way original_source's
// flow_cutter_config.h exposes its options to the command console — rather
// than the functional-options style the rest of this module otherwise
// follows, since config values here need to survive a text round-trip
// (CLI flags, saved run manifests), not just construction-time wiring.
package fcconfig

import (
	"strconv"

	"github.com/flowdissect/nesdis/fcerr"
)

// SeparatorSelection chooses the chooser's optimization objective.
type SeparatorSelection int

const (
	NodeMinExpansion SeparatorSelection = iota
	EdgeMinExpansion
	NodeFirst
	EdgeFirst
)

func (s SeparatorSelection) String() string {
	switch s {
	case NodeMinExpansion:
		return "node_min_expansion"
	case EdgeMinExpansion:
		return "edge_min_expansion"
	case NodeFirst:
		return "node_first"
	case EdgeFirst:
		return "edge_first"
	default:
		return "unknown"
	}
}

func parseSeparatorSelection(v string) (SeparatorSelection, bool) {
	switch v {
	case "node_min_expansion":
		return NodeMinExpansion, true
	case "edge_min_expansion":
		return EdgeMinExpansion, true
	case "node_first":
		return NodeFirst, true
	case "edge_first":
		return EdgeFirst, true
	default:
		return 0, false
	}
}

// AvoidAugmentingPath governs whether pierce candidates that would force an
// augmenting path are penalized, and how ties among equally-rated
// candidates are broken.
type AvoidAugmentingPath int

const (
	AvoidAndPickBest AvoidAugmentingPath = iota
	DoNotAvoid
	AvoidAndPickOldest
	AvoidAndPickRandom
)

func (a AvoidAugmentingPath) String() string {
	switch a {
	case AvoidAndPickBest:
		return "avoid_and_pick_best"
	case DoNotAvoid:
		return "do_not_avoid"
	case AvoidAndPickOldest:
		return "avoid_and_pick_oldest"
	case AvoidAndPickRandom:
		return "avoid_and_pick_random"
	default:
		return "unknown"
	}
}

func parseAvoidAugmentingPath(v string) (AvoidAugmentingPath, bool) {
	switch v {
	case "avoid_and_pick_best":
		return AvoidAndPickBest, true
	case "do_not_avoid":
		return DoNotAvoid, true
	case "avoid_and_pick_oldest":
		return AvoidAndPickOldest, true
	case "avoid_and_pick_random":
		return AvoidAndPickRandom, true
	default:
		return 0, false
	}
}

// SkipNonMaximumSides names whether a cut whose smaller side did not grow
// relative to the previous one is recorded. It round-trips through
// Get/Set, but package separator does not read it: the chooser scores
// every cut a cutter produces whichever value is set.
type SkipNonMaximumSides int

const (
	Skip SkipNonMaximumSides = iota
	NoSkip
)

func (s SkipNonMaximumSides) String() string {
	if s == NoSkip {
		return "no_skip"
	}
	return "skip"
}

func parseSkipNonMaximumSides(v string) (SkipNonMaximumSides, bool) {
	switch v {
	case "skip":
		return Skip, true
	case "no_skip":
		return NoSkip, true
	default:
		return 0, false
	}
}

// GraphSearchAlgorithm names a traversal strategy for growing each side's
// reachable set. The value round-trips through Get/Set, but package
// flowcutter does not read it: every cutter grows its reachable sets by the
// same residual closure and breadth-first labelling whichever value is set.
type GraphSearchAlgorithm int

const (
	PseudoDepthFirstSearch GraphSearchAlgorithm = iota
	BreadthFirstSearch
	DepthFirstSearch
)

func (g GraphSearchAlgorithm) String() string {
	switch g {
	case PseudoDepthFirstSearch:
		return "pseudo_depth_first_search"
	case BreadthFirstSearch:
		return "breadth_first_search"
	case DepthFirstSearch:
		return "depth_first_search"
	default:
		return "unknown"
	}
}

func parseGraphSearchAlgorithm(v string) (GraphSearchAlgorithm, bool) {
	switch v {
	case "pseudo_depth_first_search":
		return PseudoDepthFirstSearch, true
	case "breadth_first_search":
		return BreadthFirstSearch, true
	case "depth_first_search":
		return DepthFirstSearch, true
	default:
		return 0, false
	}
}

// PierceRating selects the scoring function used to rank pierce candidates.
type PierceRating int

const (
	MaxTargetMinusSourceHopDist PierceRating = iota
	MinSourceHopDist
	MaxTargetHopDist
	MaxTargetMinusSourceWeightDist
	MinSourceWeightDist
	MaxTargetWeightDist
	RandomRating
	OldestRating
	MaxArcWeight
	MinArcWeight
	CircularHop
	CircularWeight
)

var pierceRatingNames = map[PierceRating]string{
	MaxTargetMinusSourceHopDist:    "max_target_minus_source_hop_dist",
	MinSourceHopDist:               "min_source_hop_dist",
	MaxTargetHopDist:               "max_target_hop_dist",
	MaxTargetMinusSourceWeightDist: "max_target_minus_source_weight_dist",
	MinSourceWeightDist:            "min_source_weight_dist",
	MaxTargetWeightDist:            "max_target_weight_dist",
	RandomRating:                   "random",
	OldestRating:                   "oldest",
	MaxArcWeight:                   "max_arc_weight",
	MinArcWeight:                   "min_arc_weight",
	CircularHop:                    "circular_hop",
	CircularWeight:                 "circular_weight",
}

func (p PierceRating) String() string {
	if name, ok := pierceRatingNames[p]; ok {
		return name
	}
	return "unknown"
}

func parsePierceRating(v string) (PierceRating, bool) {
	for k, name := range pierceRatingNames {
		if name == v {
			return k, true
		}
	}
	return 0, false
}

// Config is FlowCutter's full configuration record, per-field validated and
// round-trippable through Get/Set by string key. Zero value is not
// meaningful; use Default.
type Config struct {
	CutterCount          int
	RandomSeed           int64
	Source               int32
	Target               int32
	MaxCutSize           int
	MaxImbalance         float64
	BranchFactor         int
	SeparatorSelection   SeparatorSelection
	AvoidAugmentingPath  AvoidAugmentingPath
	SkipNonMaximumSides  SkipNonMaximumSides
	GraphSearchAlgorithm GraphSearchAlgorithm
	DumpState            bool
	ReportCuts           bool
	PierceRating         PierceRating
}

// Default returns the configuration original_source's flow_cutter_config.h
// ships as its out-of-the-box defaults.
func Default() *Config {
	return &Config{
		CutterCount:          3,
		RandomSeed:           5489,
		Source:               -1,
		Target:               -1,
		MaxCutSize:           1000,
		MaxImbalance:         0.2,
		BranchFactor:         5,
		SeparatorSelection:   NodeMinExpansion,
		AvoidAugmentingPath:  AvoidAndPickBest,
		SkipNonMaximumSides:  Skip,
		GraphSearchAlgorithm: PseudoDepthFirstSearch,
		DumpState:            false,
		ReportCuts:           true,
		PierceRating:         MaxTargetMinusSourceHopDist,
	}
}

// fieldNames enumerates every configuration key recognized by Get/Set.
var fieldNames = []string{
	"cutter_count", "random_seed", "source", "target", "max_cut_size",
	"max_imbalance", "branch_factor", "separator_selection",
	"avoid_augmenting_path", "skip_non_maximum_sides",
	"graph_search_algorithm", "dump_state", "report_cuts", "pierce_rating",
}

// FieldNames returns the recognized configuration keys, in declaration
// order.
func FieldNames() []string {
	return append([]string(nil), fieldNames...)
}

func boolToYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func parseYesNo(key, v string) (bool, error) {
	switch v {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, &fcerr.ConfigFieldError{Key: key, Value: v, Reason: "expected yes or no"}
	}
}

// Get returns the string form of the named field's current value.
// Returns fcerr.ErrConfigError (wrapped in a ConfigFieldError) for an
// unrecognized key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "cutter_count":
		return strconv.Itoa(c.CutterCount), nil
	case "random_seed":
		return strconv.FormatInt(c.RandomSeed, 10), nil
	case "source":
		return strconv.Itoa(int(c.Source)), nil
	case "target":
		return strconv.Itoa(int(c.Target)), nil
	case "max_cut_size":
		return strconv.Itoa(c.MaxCutSize), nil
	case "max_imbalance":
		return strconv.FormatFloat(c.MaxImbalance, 'g', -1, 64), nil
	case "branch_factor":
		return strconv.Itoa(c.BranchFactor), nil
	case "separator_selection":
		return c.SeparatorSelection.String(), nil
	case "avoid_augmenting_path":
		return c.AvoidAugmentingPath.String(), nil
	case "skip_non_maximum_sides":
		return c.SkipNonMaximumSides.String(), nil
	case "graph_search_algorithm":
		return c.GraphSearchAlgorithm.String(), nil
	case "dump_state":
		return boolToYesNo(c.DumpState), nil
	case "report_cuts":
		return boolToYesNo(c.ReportCuts), nil
	case "pierce_rating":
		return c.PierceRating.String(), nil
	default:
		return "", &fcerr.ConfigFieldError{Key: key, Value: "", Reason: "unknown configuration key"}
	}
}

// Set parses value and assigns it to the named field, validating the
// field-specific admissible range. Returns a *fcerr.ConfigFieldError
// (wrapping fcerr.ErrConfigError) on an unknown key or inadmissible value.
func (c *Config) Set(key, value string) error {
	switch key {
	case "cutter_count":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return &fcerr.ConfigFieldError{Key: key, Value: value, Reason: "must be an integer >= 1"}
		}
		c.CutterCount = n
	case "random_seed":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return &fcerr.ConfigFieldError{Key: key, Value: value, Reason: "must be an integer"}
		}
		c.RandomSeed = n
	case "source":
		n, err := strconv.Atoi(value)
		if err != nil || n < -1 {
			return &fcerr.ConfigFieldError{Key: key, Value: value, Reason: "must be an integer >= -1"}
		}
		c.Source = int32(n)
	case "target":
		n, err := strconv.Atoi(value)
		if err != nil || n < -1 {
			return &fcerr.ConfigFieldError{Key: key, Value: value, Reason: "must be an integer >= -1"}
		}
		c.Target = int32(n)
	case "max_cut_size":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return &fcerr.ConfigFieldError{Key: key, Value: value, Reason: "must be an integer >= 1"}
		}
		c.MaxCutSize = n
	case "max_imbalance":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0.0 || f > 0.5 {
			return &fcerr.ConfigFieldError{Key: key, Value: value, Reason: "must be a float in [0.0, 0.5]"}
		}
		c.MaxImbalance = f
	case "branch_factor":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return &fcerr.ConfigFieldError{Key: key, Value: value, Reason: "must be an integer >= 1"}
		}
		c.BranchFactor = n
	case "separator_selection":
		s, ok := parseSeparatorSelection(value)
		if !ok {
			return &fcerr.ConfigFieldError{Key: key, Value: value, Reason: "unrecognized separator_selection"}
		}
		c.SeparatorSelection = s
	case "avoid_augmenting_path":
		a, ok := parseAvoidAugmentingPath(value)
		if !ok {
			return &fcerr.ConfigFieldError{Key: key, Value: value, Reason: "unrecognized avoid_augmenting_path"}
		}
		c.AvoidAugmentingPath = a
	case "skip_non_maximum_sides":
		s, ok := parseSkipNonMaximumSides(value)
		if !ok {
			return &fcerr.ConfigFieldError{Key: key, Value: value, Reason: "unrecognized skip_non_maximum_sides"}
		}
		c.SkipNonMaximumSides = s
	case "graph_search_algorithm":
		g, ok := parseGraphSearchAlgorithm(value)
		if !ok {
			return &fcerr.ConfigFieldError{Key: key, Value: value, Reason: "unrecognized graph_search_algorithm"}
		}
		c.GraphSearchAlgorithm = g
	case "dump_state":
		b, err := parseYesNo(key, value)
		if err != nil {
			return err
		}
		c.DumpState = b
	case "report_cuts":
		b, err := parseYesNo(key, value)
		if err != nil {
			return err
		}
		c.ReportCuts = b
	case "pierce_rating":
		p, ok := parsePierceRating(value)
		if !ok {
			return &fcerr.ConfigFieldError{Key: key, Value: value, Reason: "unrecognized pierce_rating"}
		}
		c.PierceRating = p
	default:
		return &fcerr.ConfigFieldError{Key: key, Value: value, Reason: "unknown configuration key"}
	}
	return nil
}

// Validate re-checks every field's admissible range, catching values that
// were set directly on the struct (bypassing Set) rather than parsed from
// text.
func (c *Config) Validate() error {
	if c.CutterCount < 1 {
		return &fcerr.ConfigFieldError{Key: "cutter_count", Value: strconv.Itoa(c.CutterCount), Reason: "must be >= 1"}
	}
	if c.Source < -1 {
		return &fcerr.ConfigFieldError{Key: "source", Value: strconv.Itoa(int(c.Source)), Reason: "must be >= -1"}
	}
	if c.Target < -1 {
		return &fcerr.ConfigFieldError{Key: "target", Value: strconv.Itoa(int(c.Target)), Reason: "must be >= -1"}
	}
	if c.MaxCutSize < 1 {
		return &fcerr.ConfigFieldError{Key: "max_cut_size", Value: strconv.Itoa(c.MaxCutSize), Reason: "must be >= 1"}
	}
	if c.MaxImbalance < 0.0 || c.MaxImbalance > 0.5 {
		return &fcerr.ConfigFieldError{Key: "max_imbalance", Value: strconv.FormatFloat(c.MaxImbalance, 'g', -1, 64), Reason: "must be in [0.0, 0.5]"}
	}
	if c.BranchFactor < 1 {
		return &fcerr.ConfigFieldError{Key: "branch_factor", Value: strconv.Itoa(c.BranchFactor), Reason: "must be >= 1"}
	}
	return nil
}

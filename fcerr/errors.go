// Package fcerr collects the sentinel error kinds shared across nesdis:
// graph validation, FlowCutter preconditions, and configuration.
//
// All public operations in this module surface one of these sentinels (or
// an error wrapping one via fmt.Errorf("%w", ...)) as a single tagged
// failure — there is no local retry inside the core. Internal invariant
// violations (broken domain contracts inside idxfn/graph) panic instead;
// those are bugs, not recoverable conditions.
package fcerr

import "errors"

var (
	// ErrInvalidInput marks a malformed file, out-of-range node ID, or
	// inconsistent header handed to a loader or constructor.
	ErrInvalidInput = errors.New("nesdis: invalid input")

	// ErrNotSymmetric marks an operation that requires an undirected
	// (symmetric) graph applied to one that isn't.
	ErrNotSymmetric = errors.New("nesdis: graph is not symmetric")

	// ErrHasMultiArcs marks an operation that requires a simple graph
	// applied to one with parallel arcs.
	ErrHasMultiArcs = errors.New("nesdis: graph has multi-arcs")

	// ErrHasLoops marks an operation that requires a simple graph applied
	// to one with self-loops.
	ErrHasLoops = errors.New("nesdis: graph has loops")

	// ErrNotConnected marks an operation (e.g. cut enumeration) that
	// requires a connected graph.
	ErrNotConnected = errors.New("nesdis: graph is not connected")

	// ErrUnsortedTails marks an operation that requires arcs sorted by
	// tail applied to an unsorted arc list.
	ErrUnsortedTails = errors.New("nesdis: tail array is not sorted")

	// ErrInvalidCapacity marks a negative arc weight where a
	// non-negative capacity is required.
	ErrInvalidCapacity = errors.New("nesdis: negative capacity")

	// ErrEmptyTerminals marks an empty source or target set handed to
	// FlowCutter.
	ErrEmptyTerminals = errors.New("nesdis: empty source or target set")

	// ErrConfigError marks an unknown configuration key or an
	// out-of-range value for a known key.
	ErrConfigError = errors.New("nesdis: config error")

	// ErrNotChordal marks a chordal-supergraph elimination that expected
	// a simplicial node but found none — an implementation bug if ever
	// observed on a graph produced by MakeSimple.
	ErrNotChordal = errors.New("nesdis: expected simplicial node, found none")
)

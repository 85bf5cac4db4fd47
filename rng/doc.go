// Package rng centralizes a seedable, deterministic PRNG for nesdis.
//
// spec.md §5 requires bit-identical output given identical
// (graph, config, seed): "All randomness is drawn from a single seeded PRNG
// passed explicitly; do not use ambient RNG state." This package is that
// single source, grounded on the teacher's tsp.rngFromSeed / deriveRNG
// SplitMix64 stream derivation — generalized from TSP restarts to
// FlowCutter's per-cutter-instance and per-pierce-tie-break streams.
package rng

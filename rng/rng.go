package rng

import "math/rand"

// FromSeed returns a deterministic *rand.Rand seeded exactly with seed.
// Unlike the teacher's tsp.rngFromSeed, seed==0 is not special-cased here:
// flowcutter's random_seed config field defaults to 5489 (the original's
// mt19937 default seed) and 0 is a legitimate caller-chosen seed, not a
// sentinel for "use the default".
func FromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style avalanche finalizer, so independent streams
// (one per cutter instance, one per pierce-tie-break policy) can be derived
// from a single configured seed without correlation between streams.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive returns an independent deterministic stream for the given stream
// identifier, derived from a parent seed.
func Derive(parentSeed int64, stream uint64) *rand.Rand {
	return FromSeed(DeriveSeed(parentSeed, stream))
}

// ShuffleInt32sInPlace performs an in-place Fisher-Yates shuffle of a using
// r.
func ShuffleInt32sInPlace(a []int32, r *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// SamplePairWithoutReplacement draws two distinct values in [0, n) using r.
// Used by separator's random source/target selection when an endpoint is
// left unspecified (config source/target == -1).
func SamplePairWithoutReplacement(n int, r *rand.Rand) (a, b int32) {
	a = int32(r.Intn(n))
	b = int32(r.Intn(n - 1))
	if b >= a {
		b++
	}
	return a, b
}

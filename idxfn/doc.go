// Package idxfn provides the "indexed-function" abstraction that underlies
// every dense-ID-domain structure in nesdis: a uniform Get/PreimageCount/
// ImageCount view over arrays, permutations, and inverted indices, plus
// composition (Chain) and domain compaction (KeepIf) that avoid copying
// where possible.
//
// All IDs in this package and its callers live in a dense range [0, n):
// node IDs in [0, node_count), arc IDs in [0, arc_count). Out-of-range
// access is a programming error, not a recoverable condition, and panics
// rather than returning an error — the same contract the teacher's
// core.Graph applies to its own internal maps, generalized here from
// string keys to dense integer domains.
package idxfn

// Package orderio reads and writes elimination orders to disk (spec.md
// §6.4): a text format (one position per line) matching the original's
// permutation.h convention, and a binary variant grounded on the pack's
// encoding/binary little-endian codec style (see gonum's mat.MarshalBinary)
// for callers that want a compact, fixed-width representation instead.
package orderio

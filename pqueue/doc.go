// Package pqueue implements an addressable, zero-based binary min-heap
// keyed by a dense int ID: position[id] tracks each ID's current slot so
// decrease-key/increase-key/contains run in O(log n) instead of requiring a
// linear scan.
//
// Used internally by flowcutter's weight-distance labels and exposed for the
// (out-of-scope) Dijkstra-style collaborators that want a reusable
// addressable priority queue over the same dense ID domain as the rest of
// the module.
package pqueue

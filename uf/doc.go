// Package uf implements a path-compressed, union-by-size disjoint-set
// forest over a dense int domain [0, n).
//
// It generalizes the inline union-find inside the teacher's
// prim_kruskal.Kruskal (map[string]string parent/rank keyed by vertex ID)
// to an array-indexed structure: graph's ConnectedComponents is built on
// it (reduction's disconnected-graph rule reaches it through
// ConnectedComponents), and it is kept as its own package rather than
// inlined there.
package uf

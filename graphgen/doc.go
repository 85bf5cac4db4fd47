// Package graphgen builds small, deterministic test graphs — paths,
// cliques, grids, barbells, and sparse random graphs — for exercising the
// separator chooser and dissection driver end to end, the way the
// teacher's builder package assembles fixture graphs for its own
// algorithm tests. Every constructor here returns a dense, simple,
// symmetric *graph.Graph directly rather than a functional-option
// Constructor closure, since this package has no notion of directed or
// weighted variants to toggle.
package graphgen

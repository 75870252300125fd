// Package persist reads and writes the canonical line-oriented text
// representation of a *graph.Graph, so that the expensive
// build/prune/simplify pipeline can be cached across runs. The format is
// bespoke to this project rather than drawn from a general-purpose
// serialization library: it is a small, fixed, line-oriented grammar with
// header parameters a caller must match exactly before the cached body is
// trusted.
package persist

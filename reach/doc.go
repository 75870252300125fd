// Package reach implements a direction- and filter-aware breadth-first
// search over a *graph.Graph. It is the traversal engine shared by both
// phases of pruning: Phase A walks retained edges forward
// and backward from a seed vertex to find its retained-strong
// equivalence class; Phase B walks the undirected closure of
// entirely-pruned edges to find prunable weakly-connected classes.
//
// Unlike a generic BFS, reach never reports distances or a traversal
// order — pruning only needs the reached set — so the implementation
// stays a thin queue-and-visited-map loop instead of carrying unused
// bookkeeping.
package reach

// Package shortestpath implements Dijkstra's algorithm over a
// *graph.Graph, using pqueue's addressable min-heap for
// true decrease-key relaxation instead of the lazy re-push-and-filter
// pattern: when a shorter distance to a vertex is found, an
// already-queued vertex has its priority lowered in place via
// UpdatePriority, rather than being pushed again and later skipped as a
// stale entry.
//
// Complexity: O((V + E) log V) time, O(V + E) space — identical to the
// lazy variant; the addressable heap trades a constant-factor increase in
// bookkeeping for a smaller worst-case heap size and the ability to
// terminate the moment the destination is dequeued.
package shortestpath

// Package metrics instruments the build/prune/simplify/route pipeline
// with Prometheus collectors: package-level promauto variables plus thin
// Record* wrapper functions. The core packages (graph, pqueue, reach,
// shortestpath) never import this package — only the cmd/roadgraph
// driver does, keeping observability an ambient, outer concern rather
// than a core dependency.
package metrics

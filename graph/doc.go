// Package graph defines the road-network data model — Segment, Edge,
// Vertex, Graph — and the operations specified for it: build, prune,
// simplify, and the read-only queries the other packages (shortestpath,
// persist) are built on.
//
// A Graph is a simple directed multigraph at the junction level: at most
// one Edge per ordered pair of junction IDs, but an Edge itself may carry
// the Segments (and merged road-element ids) of more than one original
// road element once pruning/simplification have run.
//
// Concurrency: Graph guards its vertex and edge maps with a sync.RWMutex.
// Mutating operations (AddVertex, AddEdgeWithSegments, RemoveEdge, Prune,
// RemoveRedundantVertices) are not meant to run concurrently with each
// other or with queries; read-only operations on a quiesced graph may.
package graph

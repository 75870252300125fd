// Package roadgraph turns a regional road network — junctions, road
// elements, and the fine-grained segments that make them up — into a
// compact, navigable directed graph for point-to-point route planning.
//
// The pipeline has four stages, each owned by its own package:
//
//	ingest/        — folds raw road-element and road-segment records into a graph.Graph
//	graph/         — Segment, Edge, Vertex, Graph: build, prune, simplify
//	shortestpath/  — Dijkstra over graph.Graph using pqueue's addressable heap
//	persist/       — round-trippable on-disk cache of a built graph
//
// pqueue/ and reach/ are shared building blocks: an addressable
// binary min-heap, and a direction- and filter-aware breadth-first
// search used internally by the two pruning phases.
//
// cmd/roadgraph holds the interactive driver; it is glue, not core.
package roadgraph

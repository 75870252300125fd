package graph

import "errors"

// Sentinel errors surfaced by this package. Callers branch on these with
// errors.Is; none of them are ever logged or retried internally (the core
// never logs — see DESIGN.md).
var (
	// ErrVertexNotFound indicates an operation referenced a junction ID
	// that does not exist in the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an (start,end)
	// pair with no edge between them.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrInvalidWeightType indicates a weight type outside {distance, travel_time}.
	ErrInvalidWeightType = errors.New("graph: invalid weight type")

	// ErrEmptySegments indicates an edge was constructed with zero segments.
	ErrEmptySegments = errors.New("graph: edge requires at least one segment")

	// ErrInvalidSegment indicates a segment failed its own construction
	// invariants (non-positive length, non-positive speed, too few
	// coordinates).
	ErrInvalidSegment = errors.New("graph: invalid segment")

	// ErrSelfLoop indicates an attempt to add an edge from a junction to itself.
	ErrSelfLoop = errors.New("graph: self-loop edges are not supported")
)

package ingest

import "errors"

// Sentinel errors surfaced by Build. Callers branch on these with
// errors.Is; ingest never logs or retries internally.
var (
	// ErrInvalidDirection indicates a road element's DirectionOfTrafficFlow
	// is outside {Both, Positive, Negative}.
	ErrInvalidDirection = errors.New("ingest: invalid direction of traffic flow")

	// ErrInvalidWeightType indicates a weight type outside {distance, travel_time}.
	ErrInvalidWeightType = errors.New("ingest: invalid weight type")

	// ErrUnknownElement indicates a road segment record's ElementID does
	// not join to any supplied road element's OGFID.
	ErrUnknownElement = errors.New("ingest: segment references unknown road element")

	// ErrInvalidGeometry indicates a road element's geometry has fewer
	// than two coordinates, so no from/to endpoint can be derived.
	ErrInvalidGeometry = errors.New("ingest: road element geometry needs at least 2 coordinates")
)

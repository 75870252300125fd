package graph

import (
	"fmt"
	"sort"
)

// Edge is a directed junction-to-junction road. It owns the set of
// OGF (road-element) ids it was merged from — more than one only after
// simplification — and the set of Segments making up its geometry, plus
// a derived info pair (distance, travel_time).
//
// Invariants:
//   - distance is authoritative: set explicitly at construction from the
//     road element's LENGTH property, and explicitly on every later
//     mutation (simplification's replacement-edge rule); it is NOT
//     silently recomputed from the segment set.
//   - travel_time is always re-derived from the current segment set.
//   - every segment's OGFID lies in OGFIDs().
type Edge struct {
	startID  int64
	endID    int64
	ogfIDs   map[int64]struct{}
	segments []Segment
	distance float64
	travel   float64
}

// NewEdge constructs an Edge from an initial segment set and an
// authoritative distance (normally the parent road element's LENGTH
// property). Every segment's OGFID is folded into the
// edge's ogfIDs set.
func NewEdge(startID, endID int64, ogfIDs []int64, distanceMeters float64, segments []Segment) (*Edge, error) {
	if startID == endID {
		return nil, ErrSelfLoop
	}
	if len(segments) == 0 {
		return nil, ErrEmptySegments
	}
	e := &Edge{
		startID:  startID,
		endID:    endID,
		ogfIDs:   make(map[int64]struct{}, len(ogfIDs)+len(segments)),
		segments: make([]Segment, len(segments)),
		distance: distanceMeters,
	}
	copy(e.segments, segments)
	for _, id := range ogfIDs {
		e.ogfIDs[id] = struct{}{}
	}
	for _, seg := range segments {
		e.ogfIDs[seg.OGFID()] = struct{}{}
	}
	e.UpdateTravelTime()

	return e, nil
}

// StartID returns the edge's source junction id.
func (e *Edge) StartID() int64 { return e.startID }

// EndID returns the edge's destination junction id.
func (e *Edge) EndID() int64 { return e.endID }

// OGFIDs returns the sorted ids of every road element merged into this edge.
func (e *Edge) OGFIDs() []int64 {
	out := make([]int64, 0, len(e.ogfIDs))
	for id := range e.ogfIDs {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Segments returns the edge's segments in insertion order. The returned
// slice is a defensive copy.
func (e *Edge) Segments() []Segment {
	out := make([]Segment, len(e.segments))
	copy(out, e.segments)

	return out
}

// DistanceMeters returns the edge's authoritative distance field.
func (e *Edge) DistanceMeters() float64 { return e.distance }

// SetDistanceMeters overwrites the edge's authoritative distance field.
// Nothing in this module calls it: ingest sets the road-element LENGTH
// through NewEdge, and simplification sets the summed through-edge
// distance when it builds the replacement edge.
func (e *Edge) SetDistanceMeters(d float64) { e.distance = d }

// TravelTime returns the edge's current travel_time in hours, as last
// computed by UpdateTravelTime.
func (e *Edge) TravelTime() float64 { return e.travel }

// UpdateTravelTime recomputes travel_time as
// Σ segment.length / (segment.speed_limit * 1000). Must
// be called after any mutation of the segment set.
func (e *Edge) UpdateTravelTime() {
	var total float64
	for _, seg := range e.segments {
		total += seg.TravelTimeHours()
	}
	e.travel = total
}

// Info returns the edge's derived info map with exactly the two keys a
// shortest-path query reads from: distance and travel_time.
func (e *Edge) Info() map[string]float64 {
	return map[string]float64{
		"distance":    e.distance,
		"travel_time": e.travel,
	}
}

// AllInRoadClasses reports whether every one of the edge's segments has a
// road class inside set. An edge with no segments is vacuously true, but
// NewEdge never permits an empty segment set, so this only matters for
// edges under construction.
func (e *Edge) AllInRoadClasses(set RoadClassSet) bool {
	for _, seg := range e.segments {
		if !set.Contains(seg.RoadClassOf()) {
			return false
		}
	}

	return true
}

// Weight returns the edge's cost under the given weight type. It is a
// thin convenience wrapper around WeightType.Weight for call sites that
// already hold an *Edge.
func (e *Edge) Weight(w WeightType) float64 { return w.Weight(e) }

// mergeFrom absorbs another edge's ogf ids and segments, appending
// segments in order so concatenated polylines stay meaningful. Used by
// RemoveRedundantVertices to build a replacement edge from two
// through-edges.
func (e *Edge) mergeFrom(other *Edge) {
	for id := range other.ogfIDs {
		e.ogfIDs[id] = struct{}{}
	}
	e.segments = append(e.segments, other.segments...)
}

// Polylines produces the ordered coordinate runs making up this edge's
// geometry — one slice per segment, in segment order. This is the only
// rendering-adjacent primitive the core exposes; no actual
// drawing happens here.
func (e *Edge) Polylines() [][]Coordinate {
	out := make([][]Coordinate, len(e.segments))
	for i, seg := range e.segments {
		out[i] = seg.Coordinates()
	}

	return out
}

// String renders a compact human-readable identity, useful in error
// messages and logs at the driver boundary.
func (e *Edge) String() string {
	return fmt.Sprintf("Edge(%d->%d, segments=%d)", e.startID, e.endID, len(e.segments))
}

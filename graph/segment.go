package graph

import "fmt"

// DefaultFerrySpeedLimitKPH is substituted when a ferry-connection
// segment record has no speed limit. It is a domain estimate, not a
// derivation, and is part of this package's public contract rather than
// an ingest-time implementation detail.
const DefaultFerrySpeedLimitKPH = 34

// Coordinate is a [lat, lon] pair in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Segment is one atomic, immutable polyline piece of a road element: a
// homogeneous run of class, speed, and geometry. Once constructed, a
// Segment's fields never change — Edge owns a set of Segments and
// recomputes its own derived fields when that set changes, but it never
// mutates a Segment in place.
type Segment struct {
	ogfID       int64
	name        string
	lengthM     float64
	roadClass   RoadClass
	speedKPH    int
	coordinates []Coordinate
}

// NewSegment validates and constructs a Segment.
//
// Invariants enforced:
//   - lengthM > 0
//   - speedKPH > 0 (callers needing the ferry default must pass
//     DefaultFerrySpeedLimitKPH explicitly; this constructor does not
//     special-case ferries, since that is an ingest-time decision)
//   - len(coordinates) >= 2
func NewSegment(ogfID int64, name string, lengthM float64, roadClass RoadClass, speedKPH int, coordinates []Coordinate) (Segment, error) {
	if lengthM <= 0 {
		return Segment{}, fmt.Errorf("%w: length %.3f must be positive", ErrInvalidSegment, lengthM)
	}
	if speedKPH <= 0 {
		return Segment{}, fmt.Errorf("%w: speed limit %d must be positive", ErrInvalidSegment, speedKPH)
	}
	if len(coordinates) < 2 {
		return Segment{}, fmt.Errorf("%w: need at least 2 coordinates, got %d", ErrInvalidSegment, len(coordinates))
	}
	coordsCopy := make([]Coordinate, len(coordinates))
	copy(coordsCopy, coordinates)

	return Segment{
		ogfID:       ogfID,
		name:        name,
		lengthM:     lengthM,
		roadClass:   roadClass,
		speedKPH:    speedKPH,
		coordinates: coordsCopy,
	}, nil
}

// OGFID returns the integer identifier of the parent road element.
func (s Segment) OGFID() int64 { return s.ogfID }

// Name returns the segment's street name, possibly empty.
func (s Segment) Name() string { return s.name }

// LengthMeters returns the segment's length in metres.
func (s Segment) LengthMeters() float64 { return s.lengthM }

// RoadClassOf returns the segment's road class.
func (s Segment) RoadClassOf() RoadClass { return s.roadClass }

// SpeedLimitKPH returns the segment's speed limit in km/h.
func (s Segment) SpeedLimitKPH() int { return s.speedKPH }

// Coordinates returns the segment's ordered [lat, lon] polyline. The
// returned slice is a defensive copy; mutating it does not affect the Segment.
func (s Segment) Coordinates() []Coordinate {
	out := make([]Coordinate, len(s.coordinates))
	copy(out, s.coordinates)

	return out
}

// TravelTimeHours returns LengthMeters / (SpeedLimitKPH * 1000), the
// segment's contribution to its owning Edge's travel_time.
func (s Segment) TravelTimeHours() float64 {
	return s.lengthM / (float64(s.speedKPH) * 1000.0)
}

package ingest

import "github.com/katalvlaran/roadgraph/graph"

// Direction is a road element's DIRECTION_OF_TRAFFIC_FLOW value.
type Direction string

const (
	DirectionBoth     Direction = "Both"
	DirectionPositive Direction = "Positive"
	DirectionNegative Direction = "Negative"
)

// Valid reports whether d is one of the three recognized directions.
func (d Direction) Valid() bool {
	return d == DirectionBoth || d == DirectionPositive || d == DirectionNegative
}

// yieldsForward reports whether this direction produces a from->to edge.
func (d Direction) yieldsForward() bool { return d == DirectionBoth || d == DirectionPositive }

// yieldsReverse reports whether this direction produces a to->from edge.
func (d Direction) yieldsReverse() bool { return d == DirectionBoth || d == DirectionNegative }

// ElementType is a road segment's ROAD_ELEMENT_TYPE value. The vocabulary
// is open; only the two values with special discard/default handling
// get named constants.
type ElementType string

const (
	ElementTypeVirtualRoad     ElementType = "VIRTUAL ROAD"
	ElementTypeFerryConnection ElementType = "FERRY CONNECTION"
)

// RawCoordinate is a [lon, lat] pair as it appears in the source feature
// data, before the from/to reversal to graph.Coordinate's [lat, lon].
type RawCoordinate struct {
	Lon float64
	Lat float64
}

func (c RawCoordinate) toGraphCoordinate() graph.Coordinate {
	return graph.Coordinate{Lat: c.Lat, Lon: c.Lon}
}

// RoadElementRecord is one row of the road-element feature stream: it
// defines junction-to-junction connectivity.
type RoadElementRecord struct {
	OGFID                  int64
	FromJunctionID         int64
	ToJunctionID           int64
	DirectionOfTrafficFlow Direction
	LengthMeters           float64
	Geometry               []RawCoordinate // first/last entries are the from/to coordinates
}

// RoadSegmentRecord is one row of the road-segment feature stream: it
// defines geometry and attributes within a road element. SpeedLimitKPH is
// nil when the source property is null.
type RoadSegmentRecord struct {
	ElementID     int64 // joins to RoadElementRecord.OGFID
	ElementType   ElementType
	StreetName    string
	LengthMeters  float64
	RoadClass     graph.RoadClass
	SpeedLimitKPH *int
	Geometry      []RawCoordinate
}

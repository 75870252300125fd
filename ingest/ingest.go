package ingest

import (
	"fmt"

	"github.com/katalvlaran/roadgraph/graph"
)

// Build folds a road-element stream and a road-segment stream into a new
// *graph.Graph. Each road element yields a forward edge
// (from->to) when its direction is Both or Positive, and a reverse edge
// (to->from) when Both or Negative; self-loops are discarded.
//
// Segments join to their parent element via ElementID == OGFID. A segment
// with ElementType VirtualRoad is discarded outright; a FerryConnection
// segment with a nil SpeedLimitKPH gets the configured ferry default
// (graph.DefaultFerrySpeedLimitKPH unless overridden by WithFerrySpeedDefault);
// any other segment with a nil SpeedLimitKPH is discarded. A road element
// whose segments all get discarded contributes no edge, though its
// junctions are still added to the graph.
func Build(elements []RoadElementRecord, segments []RoadSegmentRecord, weightType graph.WeightType, opts ...Option) (*graph.Graph, error) {
	if !weightType.Valid() {
		return nil, ErrInvalidWeightType
	}
	cfg := newConfig(opts...)
	g := graph.NewGraph()

	known := make(map[int64]bool, len(elements))
	for _, e := range elements {
		known[e.OGFID] = true
	}
	segsByElement := make(map[int64][]RoadSegmentRecord, len(elements))
	for _, s := range segments {
		if !known[s.ElementID] {
			return nil, fmt.Errorf("ingest: segment element %d: %w", s.ElementID, ErrUnknownElement)
		}
		segsByElement[s.ElementID] = append(segsByElement[s.ElementID], s)
	}

	for _, e := range elements {
		if !e.DirectionOfTrafficFlow.Valid() {
			return nil, fmt.Errorf("ingest: element %d: %w", e.OGFID, ErrInvalidDirection)
		}
		if len(e.Geometry) < 2 {
			return nil, fmt.Errorf("ingest: element %d: %w", e.OGFID, ErrInvalidGeometry)
		}
		if e.FromJunctionID == e.ToJunctionID {
			continue // self-loop: discarded
		}

		fromCoord := e.Geometry[0].toGraphCoordinate()
		toCoord := e.Geometry[len(e.Geometry)-1].toGraphCoordinate()
		g.AddVertex(e.FromJunctionID, fromCoord, "")
		g.AddVertex(e.ToJunctionID, toCoord, "")

		segs, err := buildSegments(segsByElement[e.OGFID], cfg)
		if err != nil {
			return nil, fmt.Errorf("ingest: element %d: %w", e.OGFID, err)
		}
		if len(segs) == 0 {
			continue // every segment discarded: no edge, junctions still recorded
		}

		ogfIDs := []int64{e.OGFID}
		if e.DirectionOfTrafficFlow.yieldsForward() {
			if err := g.AddEdgeWithSegments(e.FromJunctionID, e.ToJunctionID, ogfIDs, e.LengthMeters, weightType, segs); err != nil {
				return nil, err
			}
		}
		if e.DirectionOfTrafficFlow.yieldsReverse() {
			if err := g.AddEdgeWithSegments(e.ToJunctionID, e.FromJunctionID, ogfIDs, e.LengthMeters, weightType, segs); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// buildSegments converts a road element's segment records into
// graph.Segment values, applying the virtual-road/ferry discard-and-default rules.
func buildSegments(records []RoadSegmentRecord, cfg *config) ([]graph.Segment, error) {
	out := make([]graph.Segment, 0, len(records))
	for _, r := range records {
		if r.ElementType == ElementTypeVirtualRoad {
			continue
		}

		speed := 0
		switch {
		case r.SpeedLimitKPH != nil:
			speed = *r.SpeedLimitKPH
		case r.ElementType == ElementTypeFerryConnection:
			speed = cfg.ferrySpeedDefaultKPH
		default:
			continue // non-ferry segment with no speed limit: discarded
		}

		coords := make([]graph.Coordinate, len(r.Geometry))
		for i, c := range r.Geometry {
			coords[i] = c.toGraphCoordinate()
		}

		seg, err := graph.NewSegment(r.ElementID, r.StreetName, r.LengthMeters, r.RoadClass, speed, coords)
		if err != nil {
			return nil, err
		}
		out = append(out, seg)
	}

	return out, nil
}

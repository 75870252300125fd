package geojson

import (
	"fmt"

	"github.com/gotidy/ptr"
	geo "github.com/paulmach/go.geojson"

	"github.com/katalvlaran/roadgraph/graph"
	"github.com/katalvlaran/roadgraph/ingest"
)

// ParseRoadElements decodes a GeoJSON FeatureCollection of road elements
// into []ingest.RoadElementRecord. Each feature must carry
// OGF_ID, FROM_JUNCTION_ID, TO_JUNCTION_ID, DIRECTION_OF_TRAFFIC_FLOW and
// LENGTH properties, and a LineString geometry.
func ParseRoadElements(data []byte) ([]ingest.RoadElementRecord, error) {
	fc, err := geo.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}

	out := make([]ingest.RoadElementRecord, 0, len(fc.Features))
	for _, f := range fc.Features {
		ogfID, err := propInt64(f, "OGF_ID")
		if err != nil {
			return nil, err
		}
		from, err := propInt64(f, "FROM_JUNCTION_ID")
		if err != nil {
			return nil, err
		}
		to, err := propInt64(f, "TO_JUNCTION_ID")
		if err != nil {
			return nil, err
		}
		direction, err := propString(f, "DIRECTION_OF_TRAFFIC_FLOW")
		if err != nil {
			return nil, err
		}
		length, err := propFloat64(f, "LENGTH")
		if err != nil {
			return nil, err
		}
		geometry, err := lineString(f)
		if err != nil {
			return nil, err
		}

		out = append(out, ingest.RoadElementRecord{
			OGFID:                  ogfID,
			FromJunctionID:         from,
			ToJunctionID:           to,
			DirectionOfTrafficFlow: ingest.Direction(direction),
			LengthMeters:           length,
			Geometry:               geometry,
		})
	}

	return out, nil
}

// ParseRoadSegments decodes a GeoJSON FeatureCollection of road segments
// into []ingest.RoadSegmentRecord. SPEED_LIMIT and
// FULL_STREET_NAME are read as nullable: a property absent or JSON null
// yields a nil *int / empty string rather than a zero value coerced from
// a missing key, via github.com/gotidy/ptr.
func ParseRoadSegments(data []byte) ([]ingest.RoadSegmentRecord, error) {
	fc, err := geo.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}

	out := make([]ingest.RoadSegmentRecord, 0, len(fc.Features))
	for _, f := range fc.Features {
		elementID, err := propInt64(f, "ROAD_NET_ELEMENT_ID")
		if err != nil {
			return nil, err
		}
		elementType, err := propString(f, "ROAD_ELEMENT_TYPE")
		if err != nil {
			return nil, err
		}
		length, err := propFloat64(f, "LENGTH")
		if err != nil {
			return nil, err
		}
		roadClass, err := propString(f, "ROAD_CLASS")
		if err != nil {
			return nil, err
		}
		geometry, err := lineString(f)
		if err != nil {
			return nil, err
		}

		var speedLimit *int
		if raw, ok := f.Properties["SPEED_LIMIT"]; ok && raw != nil {
			if v, ok := raw.(float64); ok {
				speedLimit = ptr.Int(int(v))
			}
		}

		out = append(out, ingest.RoadSegmentRecord{
			ElementID:     elementID,
			ElementType:   ingest.ElementType(elementType),
			StreetName:    optionalString(f, "FULL_STREET_NAME"),
			LengthMeters:  length,
			RoadClass:     graph.RoadClass(roadClass),
			SpeedLimitKPH: speedLimit,
			Geometry:      geometry,
		})
	}

	return out, nil
}

func propInt64(f *geo.Feature, key string) (int64, error) {
	raw, ok := f.Properties[key]
	if !ok || raw == nil {
		return 0, fmt.Errorf("feature %v: %s: %w", f.ID, key, ErrMissingProperty)
	}
	v, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("feature %v: %s: %w", f.ID, key, ErrMissingProperty)
	}

	return int64(v), nil
}

func propFloat64(f *geo.Feature, key string) (float64, error) {
	raw, ok := f.Properties[key]
	if !ok || raw == nil {
		return 0, fmt.Errorf("feature %v: %s: %w", f.ID, key, ErrMissingProperty)
	}
	v, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("feature %v: %s: %w", f.ID, key, ErrMissingProperty)
	}

	return v, nil
}

func propString(f *geo.Feature, key string) (string, error) {
	raw, ok := f.Properties[key]
	if !ok || raw == nil {
		return "", fmt.Errorf("feature %v: %s: %w", f.ID, key, ErrMissingProperty)
	}
	v, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("feature %v: %s: %w", f.ID, key, ErrMissingProperty)
	}

	return v, nil
}

// optionalString returns the empty string, never an error, for a nullable
// property like FULL_STREET_NAME.
func optionalString(f *geo.Feature, key string) string {
	raw, ok := f.Properties[key]
	if !ok || raw == nil {
		return ""
	}
	v, _ := raw.(string)

	return v
}

// lineString extracts a feature's LineString geometry as [lon, lat] raw
// coordinates, reversal to graph's [lat, lon] convention happens in
// ingest.Build, not here.
func lineString(f *geo.Feature) ([]ingest.RawCoordinate, error) {
	if f.Geometry == nil || !f.Geometry.IsLineString() {
		return nil, fmt.Errorf("feature %v: %w", f.ID, ErrUnsupportedGeometry)
	}
	out := make([]ingest.RawCoordinate, len(f.Geometry.LineString))
	for i, c := range f.Geometry.LineString {
		out[i] = ingest.RawCoordinate{Lon: c[0], Lat: c[1]}
	}

	return out, nil
}

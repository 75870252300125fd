package geojson

import "errors"

// Sentinel errors surfaced while reading required properties off a
// GeoJSON feature.
var (
	// ErrMissingProperty indicates a required, non-nullable property was
	// absent from a feature.
	ErrMissingProperty = errors.New("geojson: missing required property")

	// ErrUnsupportedGeometry indicates a feature's geometry was not a
	// LineString, the only geometry type road element/segment records use.
	ErrUnsupportedGeometry = errors.New("geojson: expected LineString geometry")
)

// Package geojson adapts raw GeoJSON feature collections into
// ingest.RoadElementRecord and ingest.RoadSegmentRecord values, using
// github.com/paulmach/go.geojson for decoding and github.com/gotidy/ptr
// for nullable numeric properties, since a SPEED_LIMIT of null must stay
// distinguishable from a SPEED_LIMIT of zero.
//
// This package sits outside ingest's public contract — ingest.Build
// never imports it; it is one caller among many possible ones.
package geojson

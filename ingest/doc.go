// Package ingest folds two raw feature streams — road elements and road
// segments — into a *graph.Graph. The entry point is a single
// orchestrating function, functional options resolved into an immutable
// config, and sentinel errors returned rather than panics at runtime.
//
// Build does not parse any wire format itself; ingest/geojson supplies one
// concrete source of RoadElementRecord/RoadSegmentRecord values, but any
// caller may construct those records directly.
package ingest

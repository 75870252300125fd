package graph

// WeightType selects which of an Edge's two derived costs a pruning,
// simplification, or shortest-path operation optimizes for.
type WeightType string

const (
	// Distance weighs edges by Edge.Info()["distance"] (metres).
	Distance WeightType = "distance"

	// TravelTime weighs edges by Edge.Info()["travel_time"] (hours).
	TravelTime WeightType = "travel_time"
)

// Valid reports whether w is one of the two recognized weight types.
func (w WeightType) Valid() bool {
	return w == Distance || w == TravelTime
}

// Weight returns e's cost under w. Callers must only call this with a
// Valid w; an invalid WeightType is a programmer error and Weight falls
// back to Distance rather than panic, since Weight sits on the hot path
// of Dijkstra relaxation.
func (w WeightType) Weight(e *Edge) float64 {
	if w == TravelTime {
		return e.TravelTime()
	}

	return e.DistanceMeters()
}

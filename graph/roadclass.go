package graph

// RoadClass is the categorical label attached to a Segment. The
// vocabulary is open — callers may supply road classes this package does
// not name — but the common ones from the source feature data are given
// constants for convenience and to avoid typos in caller-supplied
// pruned-class sets.
type RoadClass string

const (
	RoadClassArterial        RoadClass = "Arterial"
	RoadClassCollector       RoadClass = "Collector"
	RoadClassHighway         RoadClass = "Highway"
	RoadClassLocalStreet     RoadClass = "Local / Street"
	RoadClassLocalStrata     RoadClass = "Local / Strata"
	RoadClassLocalUnknown    RoadClass = "Local / Unknown"
	RoadClassFerryConnection RoadClass = "Ferry Connection"
	RoadClassResource        RoadClass = "Resource / Recreation"
)

// RoadClassSet is an unordered set of road classes, used both for the
// caller-supplied "low priority" pruning set and internally for
// classifying an edge as entirely within it.
type RoadClassSet map[RoadClass]struct{}

// NewRoadClassSet builds a RoadClassSet from a list of classes.
func NewRoadClassSet(classes ...RoadClass) RoadClassSet {
	s := make(RoadClassSet, len(classes))
	for _, c := range classes {
		s[c] = struct{}{}
	}

	return s
}

// Contains reports whether c is a member of the set.
func (s RoadClassSet) Contains(c RoadClass) bool {
	_, ok := s[c]
	return ok
}

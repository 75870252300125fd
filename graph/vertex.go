package graph

import "sort"

// idSet is a deterministic set of junction ids. Iteration always goes
// through Sorted(), so the order two mirrored neighbours are visited in
// is reproducible instead of whatever a map happened to yield.
type idSet map[int64]struct{}

func newIDSet() idSet { return make(idSet) }

func (s idSet) add(id int64)    { s[id] = struct{}{} }
func (s idSet) remove(id int64) { delete(s, id) }
func (s idSet) has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the set's members in ascending order.
func (s idSet) Sorted() []int64 {
	out := make([]int64, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Vertex is a junction: an id, coordinates, an optional popup message,
// and the two adjacency relations into the owning Graph's vertex map.
//
// Ownership: upstream/downstream are relations into the
// Graph's own vertex map, not owning references — they must not outlive
// the Graph and are represented here as sets of junction ids rather than
// pointers, so a Vertex never holds another Vertex alive by itself.
type Vertex struct {
	juncID     int64
	coord      Coordinate
	message    string
	upstream   idSet // ids u such that edge (u, this) exists
	downstream idSet // ids v such that edge (this, v) exists
}

func newVertex(id int64, coord Coordinate, message string) *Vertex {
	return &Vertex{
		juncID:     id,
		coord:      coord,
		message:    message,
		upstream:   newIDSet(),
		downstream: newIDSet(),
	}
}

// ID returns the junction's integer identifier.
func (v *Vertex) ID() int64 { return v.juncID }

// Coordinates returns the junction's [lat, lon] position.
func (v *Vertex) Coordinates() Coordinate { return v.coord }

// Message returns the junction's popup text, possibly empty.
func (v *Vertex) Message() string { return v.message }

// Upstream returns the sorted ids of vertices with an edge into this one.
func (v *Vertex) Upstream() []int64 { return v.upstream.Sorted() }

// Downstream returns the sorted ids of vertices with an edge out of this one.
func (v *Vertex) Downstream() []int64 { return v.downstream.Sorted() }

// InDegree returns len(Upstream()).
func (v *Vertex) InDegree() int { return len(v.upstream) }

// OutDegree returns len(Downstream()).
func (v *Vertex) OutDegree() int { return len(v.downstream) }

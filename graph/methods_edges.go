package graph

import "sort"

// AddEdgeWithSegments constructs a candidate edge from the given segments
// and authoritative road-element length, then installs or replaces the
// (start,end) edge:
//
//  1. Both endpoints must already exist, else ErrVertexNotFound.
//  2. If no (start,end) edge exists yet, install the candidate and wire
//     adjacency.
//  3. Otherwise compare the existing edge's weight under weightType to
//     the candidate's; replace iff the candidate is strictly smaller.
//     On a tie the existing edge wins (idempotence under duplicate
//     ingestion). Adjacency is unchanged either way, since start/end are
//     the same.
func (g *Graph) AddEdgeWithSegments(start, end int64, ogfIDs []int64, lengthMeters float64, weightType WeightType, segments []Segment) error {
	if !weightType.Valid() {
		return ErrInvalidWeightType
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[start]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[end]; !ok {
		return ErrVertexNotFound
	}

	candidate, err := NewEdge(start, end, ogfIDs, lengthMeters, segments)
	if err != nil {
		return err
	}

	key := edgeKey{start: start, end: end}
	existing, ok := g.edges[key]
	if !ok {
		g.edges[key] = candidate
		g.wireAdjacencyLocked(start, end)

		return nil
	}

	if weightType.Weight(candidate) < weightType.Weight(existing) {
		g.edges[key] = candidate
	}
	// else: existing wins, including on ties.

	return nil
}

// wireAdjacencyLocked records that an edge start->end now exists:
// end joins start's downstream set and start joins end's upstream set.
// Callers must hold g.mu for writing and must have already validated
// that both vertices exist.
func (g *Graph) wireAdjacencyLocked(start, end int64) {
	g.vertices[start].downstream.add(end)
	g.vertices[end].upstream.add(start)
}

// unwireAdjacencyLocked is the inverse of wireAdjacencyLocked.
func (g *Graph) unwireAdjacencyLocked(start, end int64) {
	if v, ok := g.vertices[start]; ok {
		v.downstream.remove(end)
	}
	if v, ok := g.vertices[end]; ok {
		v.upstream.remove(start)
	}
}

// HasEdge reports whether a directed edge start->end exists.
func (g *Graph) HasEdge(start, end int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[edgeKey{start: start, end: end}]

	return ok
}

// GetEdge returns the edge start->end, or ErrEdgeNotFound.
func (g *Graph) GetEdge(start, end int64) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[edgeKey{start: start, end: end}]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// RemoveEdge deletes the edge start->end, if present, atomically updating
// both endpoints' adjacency sets along with the edge map (
// Ownership). Removing an absent edge is a silent no-op.
func (g *Graph) RemoveEdge(start, end int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.removeEdgeLocked(start, end)
}

func (g *Graph) removeEdgeLocked(start, end int64) {
	key := edgeKey{start: start, end: end}
	if _, ok := g.edges[key]; !ok {
		return
	}
	delete(g.edges, key)
	g.unwireAdjacencyLocked(start, end)
}

// Edges returns every edge, sorted by (start,end) ascending for
// deterministic iteration.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesSortedLocked()
}

func (g *Graph) edgesSortedLocked() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].startID != out[j].startID {
			return out[i].startID < out[j].startID
		}

		return out[i].endID < out[j].endID
	})

	return out
}

// edgeKeysSnapshotLocked returns a stable snapshot of the current edge
// keys, for Prune, which must iterate over a fixed view while mutating
// the live maps. (RemoveRedundantVertices snapshots vertex ids instead,
// via vertexIDsSnapshotLocked.)
func (g *Graph) edgeKeysSnapshotLocked() []edgeKey {
	out := make([]edgeKey, 0, len(g.edges))
	for k := range g.edges {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].start != out[j].start {
			return out[i].start < out[j].start
		}

		return out[i].end < out[j].end
	})

	return out
}

// vertexIDsSnapshotLocked returns a stable, sorted snapshot of the
// current vertex ids.
func (g *Graph) vertexIDsSnapshotLocked() []int64 {
	out := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

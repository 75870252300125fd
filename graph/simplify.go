package graph

// installOrKeepLocked applies the same dominance rule as
// AddEdgeWithSegments: install candidate if no (start,end)
// edge exists yet, or replace the existing one iff candidate's weight
// under weightType is strictly smaller. On a tie, or when candidate is
// worse, the existing edge is kept untouched. Caller must hold g.mu for
// writing and must have already ensured start/end exist.
func (g *Graph) installOrKeepLocked(start, end int64, candidate *Edge, weightType WeightType) {
	key := edgeKey{start: start, end: end}
	existing, ok := g.edges[key]
	if !ok {
		g.edges[key] = candidate
		g.wireAdjacencyLocked(start, end)

		return
	}
	if weightType.Weight(candidate) < weightType.Weight(existing) {
		g.edges[key] = candidate
	}
}

// RemoveRedundantVertices performs exactly one sweep over a snapshot of
// the vertex set (it is never re-run to a fixed point within a single
// call) and, for each non-protected vertex matching one of the three
// documented degree patterns, contracts it:
//
//   - 0/0: drop the isolated vertex.
//   - 1/1 with distinct neighbours u->v->w: remove v and its two
//     incident edges; install (or keep) u->w per the dominance rule.
//   - 2/2 mirrored neighbours {a,b} == upstream == downstream: remove v
//     and its four incident edges; install (or keep) both a->b and b->a.
//
// Other degree combinations are left untouched.
func (g *Graph) RemoveRedundantVertices(weightType WeightType, protectedIDs []int64) {
	protected := newIDSet()
	for _, id := range protectedIDs {
		protected.add(id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range g.vertexIDsSnapshotLocked() {
		v, ok := g.vertices[id]
		if !ok {
			continue // already removed earlier in this same sweep
		}
		if protected.has(id) {
			continue
		}

		in := v.InDegree()
		out := v.OutDegree()

		switch {
		case in == 0 && out == 0:
			g.removeVertexLocked(id)

		case in == 1 && out == 1 && v.upstream.Sorted()[0] != v.downstream.Sorted()[0]:
			u := v.upstream.Sorted()[0]
			w := v.downstream.Sorted()[0]
			g.contractOneOneLocked(u, id, w, weightType)

		case in == 2 && out == 2 && sameMembers(v.upstream, v.downstream):
			pair := v.upstream.Sorted() // sorted: deterministic {a,b}
			a, b := pair[0], pair[1]
			g.contractTwoTwoLocked(a, id, b, weightType)
		}
	}
}

// contractOneOneLocked removes v (with its edges u->v and v->w) and
// installs a u->w replacement per the dominance rule. Caller holds g.mu.
func (g *Graph) contractOneOneLocked(u, v, w int64, weightType WeightType) {
	uv := g.edges[edgeKey{start: u, end: v}]
	vw := g.edges[edgeKey{start: v, end: w}]
	if uv == nil || vw == nil {
		return // defensive: degree said they exist; nothing to do if they don't
	}

	candidate := mergedEdge(u, w, uv, vw)

	g.removeEdgeLocked(u, v)
	g.removeEdgeLocked(v, w)
	g.removeVertexLocked(v)

	g.installOrKeepLocked(u, w, candidate, weightType)
}

// contractTwoTwoLocked removes v (with its four incident edges a->v,
// b->v, v->a, v->b) and installs a->b and b->a replacements per the
// dominance rule, handled symmetrically.
func (g *Graph) contractTwoTwoLocked(a, v, b int64, weightType WeightType) {
	av := g.edges[edgeKey{start: a, end: v}]
	vb := g.edges[edgeKey{start: v, end: b}]
	bv := g.edges[edgeKey{start: b, end: v}]
	va := g.edges[edgeKey{start: v, end: a}]
	if av == nil || vb == nil || bv == nil || va == nil {
		return
	}

	candidateAB := mergedEdge(a, b, av, vb)
	candidateBA := mergedEdge(b, a, bv, va)

	g.removeEdgeLocked(a, v)
	g.removeEdgeLocked(v, b)
	g.removeEdgeLocked(b, v)
	g.removeEdgeLocked(v, a)
	g.removeVertexLocked(v)

	g.installOrKeepLocked(a, b, candidateAB, weightType)
	g.installOrKeepLocked(b, a, candidateBA, weightType)
}

// mergedEdge builds the replacement edge for a contracted two-hop chain:
// ogf-id set and segment set are the union of the two through-edges,
// distance is their sum, and travel_time is re-derived from the merged
// segment set.
func mergedEdge(start, end int64, first, second *Edge) *Edge {
	merged := &Edge{
		startID:  start,
		endID:    end,
		ogfIDs:   make(map[int64]struct{}, len(first.ogfIDs)+len(second.ogfIDs)),
		segments: make([]Segment, 0, len(first.segments)+len(second.segments)),
		distance: first.distance + second.distance,
	}
	merged.mergeFrom(first)
	merged.mergeFrom(second)
	merged.UpdateTravelTime()

	return merged
}

// sameMembers reports whether two idSets contain exactly the same elements.
func sameMembers(a, b idSet) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if !b.has(id) {
			return false
		}
	}

	return true
}

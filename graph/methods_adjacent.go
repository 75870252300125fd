package graph

// DownstreamEdges returns the edges leaving vertex id, one per
// downstream neighbour, sorted by destination id. Used by Dijkstra
// relaxation and by forward BFS during pruning.
func (g *Graph) DownstreamEdges(id int64) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(v.downstream))
	for _, to := range v.downstream.Sorted() {
		if e, ok := g.edges[edgeKey{start: id, end: to}]; ok {
			out = append(out, e)
		}
	}

	return out, nil
}

// UpstreamEdges returns the edges arriving at vertex id, one per
// upstream neighbour, sorted by source id. Used by backward BFS during
// the retained-strong-classes pruning phase.
func (g *Graph) UpstreamEdges(id int64) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(v.upstream))
	for _, from := range v.upstream.Sorted() {
		if e, ok := g.edges[edgeKey{start: from, end: id}]; ok {
			out = append(out, e)
		}
	}

	return out, nil
}

package reach

import "github.com/katalvlaran/roadgraph/graph"

// Set is the reached-vertex result of a BFS call: the seed plus every
// vertex reachable from it under the chosen direction and filter.
type Set map[int64]struct{}

// Has reports whether id is in the reached set.
func (s Set) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// BFS explores from seed using g's adjacency in the direction and under
// the edge filter given by opts, and returns every vertex reached
// (including seed itself).
//
// Complexity: O(V + E) in the reached component.
func BFS(g *graph.Graph, seed int64, opts ...Option) (Set, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(seed) {
		return nil, graph.ErrVertexNotFound
	}

	visited := Set{seed: {}}
	queue := []int64{seed}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		var edges []*graph.Edge
		var err error
		if o.Direction == Forward {
			edges, err = g.DownstreamEdges(cur)
		} else {
			edges, err = g.UpstreamEdges(cur)
		}
		if err != nil {
			return nil, err
		}

		for _, e := range edges {
			if o.Filter != nil && !o.Filter(e) {
				continue
			}
			next := e.EndID()
			if o.Direction == Backward {
				next = e.StartID()
			}
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	return visited, nil
}

// BFSUndirected explores the symmetric closure of the edges admitted by
// filter: from each vertex it follows both downstream and upstream edges
// that pass filter, treating them as undirected for traversal purposes.
// Used for Phase B of pruning, where "entirely pruned"
// edges connect their endpoints regardless of direction.
func BFSUndirected(g *graph.Graph, seed int64, filter EdgeFilter) (Set, error) {
	if !g.HasVertex(seed) {
		return nil, graph.ErrVertexNotFound
	}

	visited := Set{seed: {}}
	queue := []int64{seed}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		down, err := g.DownstreamEdges(cur)
		if err != nil {
			return nil, err
		}
		up, err := g.UpstreamEdges(cur)
		if err != nil {
			return nil, err
		}

		visit := func(next int64, e *graph.Edge) {
			if filter != nil && !filter(e) {
				return
			}
			if _, ok := visited[next]; ok {
				return
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
		for _, e := range down {
			visit(e.EndID(), e)
		}
		for _, e := range up {
			visit(e.StartID(), e)
		}
	}

	return visited, nil
}

// Intersect returns the members common to both sets.
func Intersect(a, b Set) Set {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	out := make(Set, len(small))
	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}

	return out
}

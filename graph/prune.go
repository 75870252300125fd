package graph

import "github.com/katalvlaran/roadgraph/reach"

// retained reports whether e survives pruning on its own merits: it has
// at least one segment outside prunedClasses. Phase A's BFS only crosses
// retained edges.
func retained(e *Edge, prunedClasses RoadClassSet) bool {
	return !e.AllInRoadClasses(prunedClasses)
}

// entirelyPruned is the complement of retained: every segment of e falls
// inside prunedClasses. Phase B's BFS only crosses entirely-pruned edges.
func entirelyPruned(e *Edge, prunedClasses RoadClassSet) bool {
	return e.AllInRoadClasses(prunedClasses)
}

// retainedStrongClasses computes the maximal
// sets of vertices pairwise reachable in both directions via retained
// edges, seeded from every vertex whose retained-adjacency is non-empty
// on both sides, or that is protected. Returns the classes plus a
// vertex->class-index lookup for Phase C.
//
// Read-only: calls only self-locking public Graph methods, so it may run
// while no write lock is held (Prune takes the write lock only for the
// edge-removal phase that follows).
func (g *Graph) retainedStrongClasses(protected idSet, prunedClasses RoadClassSet) ([]reach.Set, map[int64]int) {
	filter := func(e *Edge) bool { return retained(e, prunedClasses) }

	visited := make(map[int64]bool)
	var classes []reach.Set
	classOf := make(map[int64]int)

	for _, v := range g.Vertices() {
		id := v.ID()
		if visited[id] {
			continue
		}

		downEdges, _ := g.DownstreamEdges(id)
		upEdges, _ := g.UpstreamEdges(id)
		hasRetainedOut := anyEdgePasses(downEdges, filter)
		hasRetainedIn := anyEdgePasses(upEdges, filter)

		if !(hasRetainedOut && hasRetainedIn) && !protected.has(id) {
			continue // isolated in the retained subgraph and not protected: omit
		}

		fwd, _ := reach.BFS(g, id, reach.WithDirection(reach.Forward), reach.WithFilter(filter))
		bwd, _ := reach.BFS(g, id, reach.WithDirection(reach.Backward), reach.WithFilter(filter))
		class := reach.Intersect(fwd, bwd)

		idx := len(classes)
		classes = append(classes, class)
		for member := range class {
			visited[member] = true
			classOf[member] = idx
		}
	}

	return classes, classOf
}

// prunableWeakClasses computes the maximal sets
// of vertices connected via the symmetric closure of entirely-pruned
// edges. Every vertex belongs to exactly one class, including size-1
// classes for vertices with no entirely-pruned incident edge.
func (g *Graph) prunableWeakClasses(prunedClasses RoadClassSet) []reach.Set {
	filter := func(e *Edge) bool { return entirelyPruned(e, prunedClasses) }
	visited := make(map[int64]bool)
	var classes []reach.Set

	for _, id := range g.VertexIDs() {
		if visited[id] {
			continue
		}
		class, _ := reach.BFSUndirected(g, id, filter)
		for member := range class {
			visited[member] = true
		}
		classes = append(classes, class)
	}

	return classes
}

// Prune removes as many edges entirely within
// prunedClasses as possible, while guaranteeing that every protected
// vertex keeps bidirectional connectivity into the retained network, and
// that any prunable pocket touching two or more retained-strong
// components is kept whole, so those components stay connected through
// it. A pocket touching at most one retained-strong component has all of
// its entirely-pruned edges removed.
//
// Edges with any segment outside prunedClasses are never examined for
// removal.
func (g *Graph) Prune(protectedIDs []int64, prunedClasses RoadClassSet) {
	protected := newIDSet()
	for _, id := range protectedIDs {
		protected.add(id)
	}

	// Phases A and B are read-only classification passes; run them
	// without the write lock so their internal BFS calls (which take
	// their own read locks) cannot deadlock against it.
	_, classOf := g.retainedStrongClasses(protected, prunedClasses)
	weakClasses := g.prunableWeakClasses(prunedClasses)

	g.mu.Lock()
	defer g.mu.Unlock()

	keys := g.edgeKeysSnapshotLocked()

	for _, class := range weakClasses {
		touched := make(map[int]struct{})
		for member := range class {
			if idx, ok := classOf[member]; ok {
				touched[idx] = struct{}{}
			}
		}
		if len(touched) > 1 {
			continue // would disconnect two retained components: not safe
		}

		for _, key := range keys {
			e, ok := g.edges[key]
			if !ok {
				continue // already removed earlier in this same sweep
			}
			if _, okS := class[key.start]; !okS {
				continue
			}
			if _, okE := class[key.end]; !okE {
				continue
			}
			if !entirelyPruned(e, prunedClasses) {
				continue
			}
			g.removeEdgeLocked(key.start, key.end)
		}
	}
}

// anyEdgePasses reports whether at least one edge in edges passes pred.
func anyEdgePasses(edges []*Edge, pred func(*Edge) bool) bool {
	for _, e := range edges {
		if pred(e) {
			return true
		}
	}

	return false
}

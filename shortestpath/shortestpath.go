package shortestpath

import (
	"github.com/katalvlaran/roadgraph/graph"
	"github.com/katalvlaran/roadgraph/pqueue"
)

// FindShortestPath computes the minimum-cost path from startID to
// endID under weightType.
//
// Returns:
//   - (path, cost, true, nil)  if a path exists: path is the vertex-id
//     sequence from start to end inclusive, cost is the sum of edge
//     weights along it.
//   - (nil, 0, false, nil)     if endID is unreachable from startID —
//     unreachability is an absence of result, not an error.
//   - (nil, 0, false, err)     if startID or endID is unknown to g, or
//     weightType is invalid.
//
// FindShortestPath(s, s) always returns ([s], 0, true, nil).
func FindShortestPath(g *graph.Graph, startID, endID int64, weightType graph.WeightType) ([]int64, float64, bool, error) {
	if !weightType.Valid() {
		return nil, 0, false, ErrInvalidWeightType
	}
	if !g.HasVertex(startID) || !g.HasVertex(endID) {
		return nil, 0, false, graph.ErrVertexNotFound
	}
	if startID == endID {
		return []int64{startID}, 0, true, nil
	}

	dist, prev, finalized, err := run(g, startID, weightType, endID)
	if err != nil {
		return nil, 0, false, err
	}
	if !finalized[endID] {
		return nil, 0, false, nil
	}

	return reconstructPath(prev, startID, endID), dist[endID], true, nil
}

// FindShortestPathAll computes shortest distances (and predecessors) from
// startID to every reachable vertex in one Dijkstra run. This is the same
// relaxation loop FindShortestPath uses without the early exit. It is not
// part of the primary single-pair contract, and no command in
// cmd/roadgraph calls it.
func FindShortestPathAll(g *graph.Graph, startID int64, weightType graph.WeightType) (map[int64]float64, map[int64]int64, error) {
	if !weightType.Valid() {
		return nil, nil, ErrInvalidWeightType
	}
	if !g.HasVertex(startID) {
		return nil, nil, graph.ErrVertexNotFound
	}
	dist, prev, _, err := run(g, startID, weightType, -1)
	if err != nil {
		return nil, nil, err
	}

	return dist, prev, nil
}

// run is the shared Dijkstra relaxation loop. If earlyStopID is a valid
// vertex id (not -1), the loop terminates the instant that vertex is
// dequeued, instead of running until the queue is exhausted; the caller
// (FindShortestPath) checks finalized[earlyStopID] to tell "reached and
// stopped early" apart from "exhausted the queue".
func run(g *graph.Graph, startID int64, weightType graph.WeightType, earlyStopID int64) (dist map[int64]float64, prev map[int64]int64, finalized map[int64]bool, err error) {
	dist = map[int64]float64{startID: 0}
	prev = map[int64]int64{}
	finalized = map[int64]bool{}

	pq := pqueue.New[int64]()
	_ = pq.Enqueue(startID, 0)

	for !pq.IsEmpty() {
		u, derr := pq.Dequeue()
		if derr != nil {
			return nil, nil, nil, derr
		}
		if finalized[u] {
			continue
		}
		finalized[u] = true
		if earlyStopID != -1 && u == earlyStopID {
			break
		}

		edges, nerr := g.DownstreamEdges(u)
		if nerr != nil {
			return nil, nil, nil, nerr
		}
		for _, e := range edges {
			v := e.EndID()
			if finalized[v] {
				continue
			}
			candidate := dist[u] + weightType.Weight(e)
			cur, seen := dist[v]
			if seen && candidate >= cur {
				continue
			}
			dist[v] = candidate
			prev[v] = u
			if pq.Contains(v) {
				_ = pq.UpdatePriority(v, candidate)
			} else {
				_ = pq.Enqueue(v, candidate)
			}
		}
	}

	return dist, prev, finalized, nil
}

// reconstructPath walks prev backward from end to start and reverses the
// result into a start->end walk.
func reconstructPath(prev map[int64]int64, start, end int64) []int64 {
	path := []int64{end}
	cur := end
	for cur != start {
		p := prev[cur]
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

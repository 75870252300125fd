package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgraph/graph"
)

func seg(t *testing.T, ogfID int64, lengthM float64, class graph.RoadClass, speedKPH int) graph.Segment {
	t.Helper()
	s, err := graph.NewSegment(ogfID, "", lengthM, class, speedKPH, []graph.Coordinate{
		{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1},
	})
	require.NoError(t, err)

	return s
}

func addEdge(t *testing.T, g *graph.Graph, start, end int64, lengthM float64, class graph.RoadClass) {
	t.Helper()
	require.NoError(t, g.AddEdgeWithSegments(start, end, []int64{start*1000 + end}, lengthM, graph.Distance, []graph.Segment{
		seg(t, start*1000+end, lengthM, class, 50),
	}))
}

func TestAddVertexIdempotent(t *testing.T) {
	g := graph.NewGraph()
	g.AddVertex(1, graph.Coordinate{Lat: 1, Lon: 2}, "first")
	g.AddVertex(1, graph.Coordinate{Lat: 9, Lon: 9}, "second")
	require.Equal(t, 1, g.VertexCount())
	v, err := g.GetVertex(1)
	require.NoError(t, err)
	require.Equal(t, "first", v.Message(), "second AddVertex call must be a no-op")
}

func TestAddEdgeRequiresKnownEndpoints(t *testing.T) {
	g := graph.NewGraph()
	g.AddVertex(1, graph.Coordinate{}, "")
	err := g.AddEdgeWithSegments(1, 2, nil, 100, graph.Distance, []graph.Segment{
		seg(t, 1, 100, graph.RoadClassArterial, 50),
	})
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestAddEdgeDominanceRule(t *testing.T) {
	g := graph.NewGraph()
	g.AddVertex(1, graph.Coordinate{}, "")
	g.AddVertex(2, graph.Coordinate{}, "")

	addEdge(t, g, 1, 2, 500, graph.RoadClassArterial)
	e, err := g.GetEdge(1, 2)
	require.NoError(t, err)
	require.Equal(t, 500.0, e.DistanceMeters())

	// Worse candidate (longer) must not replace the existing edge.
	addEdge(t, g, 1, 2, 900, graph.RoadClassArterial)
	e, err = g.GetEdge(1, 2)
	require.NoError(t, err)
	require.Equal(t, 500.0, e.DistanceMeters(), "worse candidate must not replace existing edge")

	// Strictly better candidate must replace it.
	addEdge(t, g, 1, 2, 200, graph.RoadClassArterial)
	e, err = g.GetEdge(1, 2)
	require.NoError(t, err)
	require.Equal(t, 200.0, e.DistanceMeters(), "strictly better candidate must replace existing edge")
}

func TestAddEdgeDominanceTieKeepsExisting(t *testing.T) {
	g := graph.NewGraph()
	g.AddVertex(1, graph.Coordinate{}, "")
	g.AddVertex(2, graph.Coordinate{}, "")

	addEdge(t, g, 1, 2, 500, graph.RoadClassArterial)
	first, err := g.GetEdge(1, 2)
	require.NoError(t, err)

	addEdge(t, g, 1, 2, 500, graph.RoadClassArterial)
	second, err := g.GetEdge(1, 2)
	require.NoError(t, err)
	require.Same(t, first, second, "a tie must keep the original edge instance")
}

func TestRemoveEdgeUpdatesAdjacency(t *testing.T) {
	g := graph.NewGraph()
	g.AddVertex(1, graph.Coordinate{}, "")
	g.AddVertex(2, graph.Coordinate{}, "")
	addEdge(t, g, 1, 2, 500, graph.RoadClassArterial)

	g.RemoveEdge(1, 2)
	require.False(t, g.HasEdge(1, 2))
	v1, err := g.GetVertex(1)
	require.NoError(t, err)
	require.Empty(t, v1.Downstream())
	v2, err := g.GetVertex(2)
	require.NoError(t, err)
	require.Empty(t, v2.Upstream())

	// Removing an already-absent edge is a silent no-op.
	g.RemoveEdge(1, 2)
	require.False(t, g.HasEdge(1, 2))
}

// buildPruneGraph constructs: a retained backbone 1<->2<->3 (Arterial,
// bidirectional) with a pruned-class pendant 3->4 (Local / Unknown) that
// dead-ends — 4 has no further retained connectivity, so its weak class
// touches only one retained-strong class and must be pruned.
func buildPruneGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	for _, id := range []int64{1, 2, 3, 4} {
		g.AddVertex(id, graph.Coordinate{}, "")
	}
	addEdge(t, g, 1, 2, 100, graph.RoadClassArterial)
	addEdge(t, g, 2, 1, 100, graph.RoadClassArterial)
	addEdge(t, g, 2, 3, 100, graph.RoadClassArterial)
	addEdge(t, g, 3, 2, 100, graph.RoadClassArterial)
	addEdge(t, g, 3, 4, 50, graph.RoadClassLocalUnknown)

	return g
}

func TestPruneRemovesDeadEndPocket(t *testing.T) {
	g := buildPruneGraph(t)
	pruned := graph.NewRoadClassSet(graph.RoadClassLocalUnknown)

	g.Prune(nil, pruned)

	require.False(t, g.HasEdge(3, 4), "dead-end pocket must be pruned")
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(2, 3))
}

func TestPruneKeepsBridgeBetweenRetainedComponents(t *testing.T) {
	// Two retained-strong components {1,2} and {3,4} bridged only by a
	// pruned-class edge 2->3 (and its mirror). That bridge's weak class
	// touches two retained-strong classes, so it must survive.
	g := graph.NewGraph()
	for _, id := range []int64{1, 2, 3, 4} {
		g.AddVertex(id, graph.Coordinate{}, "")
	}
	addEdge(t, g, 1, 2, 100, graph.RoadClassArterial)
	addEdge(t, g, 2, 1, 100, graph.RoadClassArterial)
	addEdge(t, g, 3, 4, 100, graph.RoadClassArterial)
	addEdge(t, g, 4, 3, 100, graph.RoadClassArterial)
	addEdge(t, g, 2, 3, 50, graph.RoadClassLocalUnknown)
	addEdge(t, g, 3, 2, 50, graph.RoadClassLocalUnknown)

	g.Prune(nil, graph.NewRoadClassSet(graph.RoadClassLocalUnknown))

	require.True(t, g.HasEdge(2, 3), "bridge between two retained components must survive pruning")
	require.True(t, g.HasEdge(3, 2))
}

func TestPruneNeverTouchesPartiallyRetainedEdge(t *testing.T) {
	g := graph.NewGraph()
	g.AddVertex(1, graph.Coordinate{}, "")
	g.AddVertex(2, graph.Coordinate{}, "")

	// A single edge with one Arterial segment and one Local segment: not
	// entirely within the pruned class, so it must never be examined.
	mixed, err := graph.NewEdge(1, 2, []int64{1, 2}, 150,
		[]graph.Segment{
			seg(t, 1, 100, graph.RoadClassArterial, 50),
			seg(t, 2, 50, graph.RoadClassLocalUnknown, 50),
		})
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeWithSegments(1, 2, mixed.OGFIDs(), mixed.DistanceMeters(), graph.Distance, mixed.Segments()))

	g.Prune(nil, graph.NewRoadClassSet(graph.RoadClassLocalUnknown))

	require.True(t, g.HasEdge(1, 2), "an edge with any retained segment must never be pruned")
}

func TestRemoveRedundantVerticesOneOne(t *testing.T) {
	g := graph.NewGraph()
	for _, id := range []int64{1, 2, 3} {
		g.AddVertex(id, graph.Coordinate{}, "")
	}
	addEdge(t, g, 1, 2, 100, graph.RoadClassArterial)
	addEdge(t, g, 2, 3, 150, graph.RoadClassArterial)

	g.RemoveRedundantVertices(graph.Distance, nil)

	require.False(t, g.HasVertex(2), "degree-1/1 vertex must be contracted away")
	require.True(t, g.HasEdge(1, 3))
	e, err := g.GetEdge(1, 3)
	require.NoError(t, err)
	require.Equal(t, 250.0, e.DistanceMeters())
}

func TestRemoveRedundantVerticesProtectedSurvives(t *testing.T) {
	g := graph.NewGraph()
	for _, id := range []int64{1, 2, 3} {
		g.AddVertex(id, graph.Coordinate{}, "")
	}
	addEdge(t, g, 1, 2, 100, graph.RoadClassArterial)
	addEdge(t, g, 2, 3, 150, graph.RoadClassArterial)

	g.RemoveRedundantVertices(graph.Distance, []int64{2})

	require.True(t, g.HasVertex(2), "protected vertex must survive contraction")
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(2, 3))
}

func TestRemoveRedundantVerticesIsolated(t *testing.T) {
	g := graph.NewGraph()
	g.AddVertex(1, graph.Coordinate{}, "")

	g.RemoveRedundantVertices(graph.Distance, nil)

	require.False(t, g.HasVertex(1), "degree-0/0 vertex must be dropped")
}

func TestRemoveRedundantVerticesTwoTwoMirrored(t *testing.T) {
	g := graph.NewGraph()
	for _, id := range []int64{1, 2, 3} {
		g.AddVertex(id, graph.Coordinate{}, "")
	}
	// Vertex 2 has mirrored neighbours {1,3}: edges 1<->2 and 2<->3 both ways.
	addEdge(t, g, 1, 2, 100, graph.RoadClassArterial)
	addEdge(t, g, 2, 1, 110, graph.RoadClassArterial)
	addEdge(t, g, 2, 3, 120, graph.RoadClassArterial)
	addEdge(t, g, 3, 2, 130, graph.RoadClassArterial)

	g.RemoveRedundantVertices(graph.Distance, nil)

	require.False(t, g.HasVertex(2))
	require.True(t, g.HasEdge(1, 3))
	require.True(t, g.HasEdge(3, 1))
	e13, err := g.GetEdge(1, 3)
	require.NoError(t, err)
	require.Equal(t, 220.0, e13.DistanceMeters())
	e31, err := g.GetEdge(3, 1)
	require.NoError(t, err)
	require.Equal(t, 240.0, e31.DistanceMeters())
}

func TestRemoveRedundantVerticesMergedOGFIDs(t *testing.T) {
	g := graph.NewGraph()
	for _, id := range []int64{1, 2, 3} {
		g.AddVertex(id, graph.Coordinate{}, "")
	}
	require.NoError(t, g.AddEdgeWithSegments(1, 2, []int64{11}, 100, graph.Distance, []graph.Segment{
		seg(t, 11, 100, graph.RoadClassArterial, 50),
	}))
	require.NoError(t, g.AddEdgeWithSegments(2, 3, []int64{22}, 150, graph.Distance, []graph.Segment{
		seg(t, 22, 150, graph.RoadClassArterial, 50),
	}))

	g.RemoveRedundantVertices(graph.Distance, nil)

	e, err := g.GetEdge(1, 3)
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{11, 22}, e.OGFIDs())
}

package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgraph/graph"
	"github.com/katalvlaran/roadgraph/shortestpath"
)

// straight builds a single segment long enough to be unambiguous, at a
// fixed speed, so distance and travel_time both scale predictably.
func straight(ogfID int64, lengthM float64, speedKPH int) graph.Segment {
	seg, err := graph.NewSegment(ogfID, "", lengthM, graph.RoadClassArterial, speedKPH, []graph.Coordinate{
		{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1},
	})
	if err != nil {
		panic(err)
	}

	return seg
}

func mustAddEdge(t *testing.T, g *graph.Graph, start, end int64, lengthM float64, speedKPH int) {
	t.Helper()
	err := g.AddEdgeWithSegments(start, end, []int64{start*100 + end}, lengthM, graph.Distance, []graph.Segment{
		straight(start*100+end, lengthM, speedKPH),
	})
	require.NoError(t, err)
}

// diamondGraph builds 1 -> 2 -> 4 (long way) and 1 -> 3 -> 4 (short way),
// plus an isolated vertex 5 unreachable from 1.
func diamondGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	for _, id := range []int64{1, 2, 3, 4, 5} {
		g.AddVertex(id, graph.Coordinate{}, "")
	}
	mustAddEdge(t, g, 1, 2, 1000, 50)
	mustAddEdge(t, g, 2, 4, 1000, 50)
	mustAddEdge(t, g, 1, 3, 100, 50)
	mustAddEdge(t, g, 3, 4, 100, 50)

	return g
}

func TestFindShortestPathPicksCheaperRoute(t *testing.T) {
	g := diamondGraph(t)
	path, cost, found, err := shortestpath.FindShortestPath(g, 1, 4, graph.Distance)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []int64{1, 3, 4}, path)
	require.Equal(t, 200.0, cost)
}

func TestFindShortestPathSameVertex(t *testing.T) {
	g := diamondGraph(t)
	path, cost, found, err := shortestpath.FindShortestPath(g, 1, 1, graph.Distance)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []int64{1}, path)
	require.Equal(t, 0.0, cost)
}

func TestFindShortestPathUnreachable(t *testing.T) {
	g := diamondGraph(t)
	path, _, found, err := shortestpath.FindShortestPath(g, 1, 5, graph.Distance)
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, path)
}

func TestFindShortestPathUnknownVertex(t *testing.T) {
	g := diamondGraph(t)
	_, _, _, err := shortestpath.FindShortestPath(g, 1, 999, graph.Distance)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestFindShortestPathInvalidWeightType(t *testing.T) {
	g := diamondGraph(t)
	_, _, _, err := shortestpath.FindShortestPath(g, 1, 4, graph.WeightType("bogus"))
	require.ErrorIs(t, err, shortestpath.ErrInvalidWeightType)
}

func TestFindShortestPathAllCoversReachableSet(t *testing.T) {
	g := diamondGraph(t)
	dist, prev, err := shortestpath.FindShortestPathAll(g, 1, graph.Distance)
	require.NoError(t, err)
	require.Equal(t, 0.0, dist[1])
	require.Equal(t, 100.0, dist[3])
	require.Equal(t, 200.0, dist[4])
	require.Equal(t, int64(3), prev[4])
	_, reached := dist[5]
	require.False(t, reached)
}

func TestFindShortestPathTravelTimeWeighting(t *testing.T) {
	g := graph.NewGraph()
	for _, id := range []int64{1, 2, 3} {
		g.AddVertex(id, graph.Coordinate{}, "")
	}
	// 1->2 is short but slow; 1->3->2 (via 3) is longer but fast enough to
	// win on travel_time while losing on distance.
	require.NoError(t, g.AddEdgeWithSegments(1, 2, []int64{12}, 1000, graph.Distance, []graph.Segment{
		straight(12, 1000, 10),
	}))
	require.NoError(t, g.AddEdgeWithSegments(1, 3, []int64{13}, 2000, graph.Distance, []graph.Segment{
		straight(13, 2000, 100),
	}))
	require.NoError(t, g.AddEdgeWithSegments(3, 2, []int64{32}, 2000, graph.Distance, []graph.Segment{
		straight(32, 2000, 100),
	}))

	byDistance, _, _, err := shortestpath.FindShortestPath(g, 1, 2, graph.Distance)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, byDistance)

	byTime, _, _, err := shortestpath.FindShortestPath(g, 1, 2, graph.TravelTime)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 3, 2}, byTime)
}

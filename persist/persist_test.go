package persist_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgraph/graph"
	"github.com/katalvlaran/roadgraph/persist"
)

func buildSampleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	g.AddVertex(1, graph.Coordinate{Lat: 45.1, Lon: -73.2}, "")
	g.AddVertex(2, graph.Coordinate{Lat: 45.2, Lon: -73.3}, "")

	seg, err := graph.NewSegment(11, "Main St", 1000, graph.RoadClassArterial, 50, []graph.Coordinate{
		{Lat: 45.1, Lon: -73.2}, {Lat: 45.2, Lon: -73.3},
	})
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeWithSegments(1, 2, []int64{11}, 1000, graph.Distance, []graph.Segment{seg}))

	return g
}

func TestWriteLoadRoundTrip(t *testing.T) {
	g := buildSampleGraph(t)
	protected := []int64{1}
	pruned := graph.NewRoadClassSet(graph.RoadClassLocalUnknown)

	var buf bytes.Buffer
	require.NoError(t, persist.Write(&buf, g, graph.Distance, protected, pruned))

	loaded, err := persist.Load(&buf, graph.Distance, protected, pruned)
	require.NoError(t, err)

	require.Equal(t, g.VertexCount(), loaded.VertexCount())
	require.Equal(t, g.EdgeCount(), loaded.EdgeCount())
	require.True(t, loaded.HasEdge(1, 2))
	e, err := loaded.GetEdge(1, 2)
	require.NoError(t, err)
	require.InDelta(t, 1000.0, e.DistanceMeters(), persist.AbsTolDistanceMeters)
	require.Equal(t, []int64{11}, e.OGFIDs())
}

func TestLoadHeaderMismatch(t *testing.T) {
	g := buildSampleGraph(t)
	var buf bytes.Buffer
	require.NoError(t, persist.Write(&buf, g, graph.Distance, nil, nil))

	_, err := persist.Load(&buf, graph.TravelTime, nil, nil)
	require.ErrorIs(t, err, persist.ErrFormatMismatch)
}

func TestLoadProtectedIDMismatch(t *testing.T) {
	g := buildSampleGraph(t)
	var buf bytes.Buffer
	require.NoError(t, persist.Write(&buf, g, graph.Distance, []int64{1}, nil))

	_, err := persist.Load(&buf, graph.Distance, []int64{2}, nil)
	require.ErrorIs(t, err, persist.ErrFormatMismatch)
}

func TestLoadCorruptDistance(t *testing.T) {
	g := buildSampleGraph(t)
	var buf bytes.Buffer
	require.NoError(t, persist.Write(&buf, g, graph.Distance, nil, nil))

	corrupted := strings.Replace(buf.String(), "d 1000\n", "d 99999\n", 1)

	_, err := persist.Load(strings.NewReader(corrupted), graph.Distance, nil, nil)
	require.ErrorIs(t, err, persist.ErrCorruption)
}

func TestLoadMissingEnd(t *testing.T) {
	g := buildSampleGraph(t)
	var buf bytes.Buffer
	require.NoError(t, persist.Write(&buf, g, graph.Distance, nil, nil))

	truncated := strings.TrimSuffix(strings.TrimSpace(buf.String()), "END")

	_, err := persist.Load(strings.NewReader(truncated), graph.Distance, nil, nil)
	require.Error(t, err)
}

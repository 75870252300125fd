package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/roadgraph/graph"
	"github.com/katalvlaran/roadgraph/ingest"
	"github.com/katalvlaran/roadgraph/ingest/geojson"
	"github.com/katalvlaran/roadgraph/metrics"
	"github.com/katalvlaran/roadgraph/persist"
)

// parseWeightType validates a --weight-type flag value.
func parseWeightType(s string) (graph.WeightType, error) {
	w := graph.WeightType(s)
	if !w.Valid() {
		return "", fmt.Errorf("invalid weight type %q: want %q or %q", s, graph.Distance, graph.TravelTime)
	}

	return w, nil
}

// parseIDList splits a comma-separated list of junction ids.
func parseIDList(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid junction id %q: %w", p, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// parseClassSet splits a comma-separated list of road class names.
func parseClassSet(s string) graph.RoadClassSet {
	s = strings.TrimSpace(s)
	if s == "" {
		return graph.NewRoadClassSet()
	}

	parts := strings.Split(s, ",")
	classes := make([]graph.RoadClass, 0, len(parts))
	for _, p := range parts {
		classes = append(classes, graph.RoadClass(strings.TrimSpace(p)))
	}

	return graph.NewRoadClassSet(classes...)
}

// buildPipeline reads the raw GeoJSON feature collections at elementsPath
// and segmentsPath, folds them into a graph, and runs pruning and
// simplification over it. Each stage's duration and errors are reported to
// metrics.
func buildPipeline(elementsPath, segmentsPath string, weightType graph.WeightType, protectedIDs []int64, prunedClasses graph.RoadClassSet) (*graph.Graph, error) {
	elementsData, err := os.ReadFile(elementsPath)
	if err != nil {
		metrics.RecordStageError("build")
		return nil, fmt.Errorf("reading elements file: %w", err)
	}
	segmentsData, err := os.ReadFile(segmentsPath)
	if err != nil {
		metrics.RecordStageError("build")
		return nil, fmt.Errorf("reading segments file: %w", err)
	}

	elements, err := geojson.ParseRoadElements(elementsData)
	if err != nil {
		metrics.RecordStageError("build")
		return nil, fmt.Errorf("parsing road elements: %w", err)
	}
	segments, err := geojson.ParseRoadSegments(segmentsData)
	if err != nil {
		metrics.RecordStageError("build")
		return nil, fmt.Errorf("parsing road segments: %w", err)
	}

	started := time.Now()
	g, err := ingest.Build(elements, segments, weightType)
	metrics.RecordStageDuration("build", time.Since(started).Seconds())
	if err != nil {
		metrics.RecordStageError("build")
		return nil, fmt.Errorf("building graph: %w", err)
	}

	edgesBeforePrune := g.EdgeCount()
	started = time.Now()
	g.Prune(protectedIDs, prunedClasses)
	metrics.RecordStageDuration("prune", time.Since(started).Seconds())
	metrics.RecordEdgesPruned(edgesBeforePrune - g.EdgeCount())

	verticesBeforeSimplify := g.VertexCount()
	started = time.Now()
	g.RemoveRedundantVertices(weightType, protectedIDs)
	metrics.RecordStageDuration("simplify", time.Since(started).Seconds())
	metrics.RecordVerticesSimplified(verticesBeforeSimplify - g.VertexCount())

	metrics.SetGraphSize(g.VertexCount(), g.EdgeCount())

	return g, nil
}

// loadGraph reads a persisted graph from path, validating it against the
// requested weight type, protected-id set, and pruned-class set.
func loadGraph(path string, weightType graph.WeightType, protectedIDs []int64, prunedClasses graph.RoadClassSet) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening graph file: %w", err)
	}
	defer f.Close()

	started := time.Now()
	g, err := persist.Load(f, weightType, protectedIDs, prunedClasses)
	metrics.RecordStageDuration("persist_load", time.Since(started).Seconds())
	if err != nil {
		metrics.RecordStageError("persist_load")
		return nil, err
	}

	metrics.SetGraphSize(g.VertexCount(), g.EdgeCount())

	return g, nil
}

// writeGraph persists g to path in the bespoke line-oriented format.
func writeGraph(path string, g *graph.Graph, weightType graph.WeightType, protectedIDs []int64, prunedClasses graph.RoadClassSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating graph file: %w", err)
	}
	defer f.Close()

	started := time.Now()
	err = persist.Write(f, g, weightType, protectedIDs, prunedClasses)
	metrics.RecordStageDuration("persist_write", time.Since(started).Seconds())
	if err != nil {
		metrics.RecordStageError("persist_write")
		return err
	}

	return nil
}

// writeRouteFile emits the result of a shortest-path query as a small text
// file. pathIDs is nil when no route was found.
func writeRouteFile(outPath string, fromID, toID int64, weightType graph.WeightType, pathIDs []int64, cost float64, found bool) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating route file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "FROM %d\n", fromID)
	fmt.Fprintf(f, "TO %d\n", toID)
	fmt.Fprintf(f, "WEIGHT_TYPE %s\n", weightType)
	if !found {
		fmt.Fprintln(f, "FOUND false")
		return nil
	}

	fmt.Fprintln(f, "FOUND true")
	fmt.Fprintf(f, "COST %s\n", formatRouteCost(cost))

	ids := make([]string, len(pathIDs))
	for i, id := range pathIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}
	fmt.Fprintf(f, "PATH %s\n", strings.Join(ids, ","))

	return nil
}

func formatRouteCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// stageDuration measures wall-clock time per pipeline stage.
	// Labels: stage (build, prune, simplify, persist_load, persist_write)
	stageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "roadgraph",
		Subsystem: "pipeline",
		Name:      "stage_duration_seconds",
		Help:      "Duration of a pipeline stage in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
	}, []string{"stage"})

	// stageErrors counts failures per pipeline stage.
	// Labels: stage
	stageErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roadgraph",
		Subsystem: "pipeline",
		Name:      "stage_errors_total",
		Help:      "Total pipeline stage failures",
	}, []string{"stage"})

	// graphVertices tracks the current graph's vertex count.
	graphVertices = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "roadgraph",
		Subsystem: "graph",
		Name:      "vertices",
		Help:      "Current number of vertices in the built graph",
	})

	// graphEdges tracks the current graph's edge count.
	graphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "roadgraph",
		Subsystem: "graph",
		Name:      "edges",
		Help:      "Current number of edges in the built graph",
	})

	// edgesPruned counts edges removed by pruning, cumulatively.
	edgesPruned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "roadgraph",
		Subsystem: "graph",
		Name:      "edges_pruned_total",
		Help:      "Total edges removed by pruning",
	})

	// verticesSimplified counts vertices removed by simplification, cumulatively.
	verticesSimplified = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "roadgraph",
		Subsystem: "graph",
		Name:      "vertices_simplified_total",
		Help:      "Total vertices removed by redundant-vertex simplification",
	})

	// routeRequests counts shortest-path queries.
	// Labels: weight_type, found ("true"/"false")
	routeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roadgraph",
		Subsystem: "route",
		Name:      "requests_total",
		Help:      "Total shortest-path queries by weight type and outcome",
	}, []string{"weight_type", "found"})

	// routeLatency measures shortest-path query duration.
	// Labels: weight_type
	routeLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "roadgraph",
		Subsystem: "route",
		Name:      "latency_seconds",
		Help:      "Shortest-path query latency in seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"weight_type"})
)

// RecordStageDuration records how long a pipeline stage took.
func RecordStageDuration(stage string, durationSec float64) {
	stageDuration.WithLabelValues(stage).Observe(durationSec)
}

// RecordStageError records a pipeline stage failure.
func RecordStageError(stage string) {
	stageErrors.WithLabelValues(stage).Inc()
}

// SetGraphSize updates the current graph's vertex and edge gauges.
func SetGraphSize(vertexCount, edgeCount int) {
	graphVertices.Set(float64(vertexCount))
	graphEdges.Set(float64(edgeCount))
}

// RecordEdgesPruned adds n to the cumulative pruned-edges counter.
func RecordEdgesPruned(n int) {
	edgesPruned.Add(float64(n))
}

// RecordVerticesSimplified adds n to the cumulative simplified-vertices counter.
func RecordVerticesSimplified(n int) {
	verticesSimplified.Add(float64(n))
}

// RecordRoute records one shortest-path query's outcome and latency.
func RecordRoute(weightType string, found bool, durationSec float64) {
	foundLabel := "false"
	if found {
		foundLabel = "true"
	}
	routeRequests.WithLabelValues(weightType, foundLabel).Inc()
	routeLatency.WithLabelValues(weightType).Observe(durationSec)
}

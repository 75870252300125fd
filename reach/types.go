package reach

import "github.com/katalvlaran/roadgraph/graph"

// Direction selects which adjacency relation BFS follows.
type Direction int

const (
	// Forward follows downstream edges (start -> ... -> neighbours).
	Forward Direction = iota
	// Backward follows upstream edges (neighbours -> ... -> start), i.e.
	// BFS over the reverse graph.
	Backward
)

// EdgeFilter decides whether BFS may cross an edge. A nil filter admits
// every edge.
type EdgeFilter func(e *graph.Edge) bool

// Options configures a single BFS call.
type Options struct {
	Direction Direction
	Filter    EdgeFilter
}

// Option mutates Options.
type Option func(*Options)

// WithDirection sets the traversal direction. Default is Forward.
func WithDirection(d Direction) Option {
	return func(o *Options) { o.Direction = d }
}

// WithFilter restricts traversal to edges for which filter returns true.
func WithFilter(filter EdgeFilter) Option {
	return func(o *Options) { o.Filter = filter }
}

func defaultOptions() Options {
	return Options{Direction: Forward, Filter: nil}
}

package ingest

import "github.com/katalvlaran/roadgraph/graph"

// Option customizes a Build call by mutating a config before folding
// begins.
type Option func(*config)

type config struct {
	ferrySpeedDefaultKPH int
}

func newConfig(opts ...Option) *config {
	cfg := &config{ferrySpeedDefaultKPH: graph.DefaultFerrySpeedLimitKPH}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithFerrySpeedDefault overrides the speed limit substituted for a ferry
// connection segment with a null SPEED_LIMIT. Panics on a non-positive
// value: a caller-supplied option with a meaningless argument is a
// programmer error, not a runtime condition to recover from.
func WithFerrySpeedDefault(kph int) Option {
	if kph <= 0 {
		panic("ingest: WithFerrySpeedDefault(kph<=0)")
	}

	return func(c *config) { c.ferrySpeedDefaultKPH = kph }
}

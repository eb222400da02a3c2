package stategraph

import (
	"github.com/randalmurphal/stategraph/pkg/stategraph/event"
	"github.com/randalmurphal/stategraph/pkg/stategraph/observability"
)

// runConfig holds configuration for graph execution.
type runConfig struct {
	maxConcurrency int
	metrics        observability.MetricsRecorder
	spans          observability.SpanManager
	tracingEnabled bool
	bus            *event.Bus
}

// defaultRunConfig returns the default execution configuration.
func defaultRunConfig() runConfig {
	return runConfig{
		maxConcurrency: 0, // unlimited
		metrics:        observability.NoopMetrics{},
		spans:          observability.NoopSpanManager{},
	}
}

// RunOption configures execution behavior.
type RunOption func(*runConfig)

// WithMaxConcurrency limits how many ready nodes execute simultaneously.
// 0 (the default) runs every ready node immediately.
//
// Ordering guarantees are unaffected: a node still never runs before all
// of its declared predecessors have completed and merged.
func WithMaxConcurrency(n int) RunOption {
	return func(c *runConfig) {
		if n > 0 {
			c.maxConcurrency = n
		}
	}
}

// WithMetrics enables OpenTelemetry metrics for this run.
// Uses the global OTel meter provider.
func WithMetrics() RunOption {
	return func(c *runConfig) {
		c.metrics = observability.NewMetricsRecorder()
	}
}

// WithTracing enables OpenTelemetry tracing for this run.
// Uses the global OTel tracer provider.
func WithTracing() RunOption {
	return func(c *runConfig) {
		c.spans = observability.NewSpanManager()
		c.tracingEnabled = true
	}
}

// WithEventBus publishes node and run lifecycle events to the given bus.
// Subscribers receive NodeStarted, NodeCompleted, NodeFailed, and
// RunCompleted events as the run progresses.
func WithEventBus(bus *event.Bus) RunOption {
	return func(c *runConfig) {
		c.bus = bus
	}
}

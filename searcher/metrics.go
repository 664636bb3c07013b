package searcher

import (
	"time"
)

// Stats describes one top-level search call.
type Stats struct {
	Nodes        int           // Nodes entered, terminal ones included
	DepthReached int           // Nodes entered before the first terminal was reached
	Pruned       int           // Sibling actions skipped by cutoffs
	Value        int           // Value of the root
	Duration     time.Duration // Zero unless WithMetrics is set
}

type MetricsCollector interface {
	Start()
	Complete() time.Duration
}

type metricsCollector struct {
	startTime time.Time
}

func newCollector(enabled bool) MetricsCollector {
	if enabled {
		return &metricsCollector{}
	}
	return &noMetricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
}

func (m *metricsCollector) Complete() time.Duration {
	return time.Since(m.startTime)
}

type noMetricsCollector struct{}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) Complete() time.Duration { return 0 }

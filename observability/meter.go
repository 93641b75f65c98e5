package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const defaultMeterName = "github.com/kbukum/callintel/observability"

// Metrics holds the engine's instruments.
type Metrics struct {
	analyses    metric.Int64Counter
	outcomes    metric.Int64Counter
	analyzeTime metric.Float64Histogram
}

// NewMetrics creates the engine instruments on the given meter. A nil
// meter uses the global provider.
func NewMetrics(m metric.Meter) (*Metrics, error) {
	if m == nil {
		m = otel.Meter(defaultMeterName)
	}

	analyses, err := m.Int64Counter("callintel.analyses",
		metric.WithDescription("analysis runs started"))
	if err != nil {
		return nil, err
	}
	outcomes, err := m.Int64Counter("callintel.outcomes",
		metric.WithDescription("classified call outcomes by key"))
	if err != nil {
		return nil, err
	}
	analyzeTime, err := m.Float64Histogram("callintel.analyze_ms",
		metric.WithDescription("analysis wall time in milliseconds"))
	if err != nil {
		return nil, err
	}

	return &Metrics{analyses: analyses, outcomes: outcomes, analyzeTime: analyzeTime}, nil
}

// RecordAnalysis counts one analysis run.
func (m *Metrics) RecordAnalysis(ctx context.Context) {
	if m == nil {
		return
	}
	m.analyses.Add(ctx, 1)
}

// RecordOutcome counts one classified outcome by key.
func (m *Metrics) RecordOutcome(ctx context.Context, key string) {
	if m == nil {
		return
	}
	m.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", key)))
}

// RecordAnalyzeTime records one analysis duration in milliseconds.
func (m *Metrics) RecordAnalyzeTime(ctx context.Context, ms float64) {
	if m == nil {
		return
	}
	m.analyzeTime.Record(ctx, ms)
}

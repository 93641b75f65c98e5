package observability

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpanRecords(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer(defaultTracerName).Start(context.Background(), "engine.analyze")
	SetSpanAttribute(ctx, "outcome", "VOICEMAIL")
	SetSpanAttribute(ctx, "words", 42)
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Name != "engine.analyze" {
		t.Errorf("span name = %q, want engine.analyze", spans[0].Name)
	}
	if len(spans[0].Attributes) != 2 {
		t.Errorf("got %d attributes, want 2", len(spans[0].Attributes))
	}
}

func TestNewTracerProviderDefaults(t *testing.T) {
	tp := NewTracerProvider(TracerConfig{})
	defer func() { _ = tp.Shutdown(context.Background()) }()
	if tp == nil {
		t.Fatal("NewTracerProvider returned nil")
	}
}

func TestMetricsRecordOutcome(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()

	metrics, err := NewMetrics(mp.Meter(defaultMeterName))
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	ctx := context.Background()
	metrics.RecordAnalysis(ctx)
	metrics.RecordOutcome(ctx, "CONNECTED")
	metrics.RecordOutcome(ctx, "CONNECTED")
	metrics.RecordAnalyzeTime(ctx, 0.5)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(rm.ScopeMetrics) == 0 || len(rm.ScopeMetrics[0].Metrics) != 3 {
		t.Fatalf("expected 3 instruments with data, got %+v", rm.ScopeMetrics)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	ctx := context.Background()
	m.RecordAnalysis(ctx)
	m.RecordOutcome(ctx, "UNCLEAR")
	m.RecordAnalyzeTime(ctx, 1)
}

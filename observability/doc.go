// Package observability provides OpenTelemetry tracing and metrics for
// the analysis engine.
//
// The engine itself performs no I/O, so spans exist to attribute time
// and decisions inside a larger request trace, and metrics count
// classified outcomes. Exporter wiring is left to the embedding
// service; the helpers here work against whatever global providers it
// installs.
//
// # Usage
//
//	tp := observability.NewTracerProvider(observability.TracerConfig{ServiceName: "callintel"})
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "engine.analyze")
//	defer span.End()
package observability

// Package oteladapters implements the catalog observability interfaces on top of OpenTelemetry.
//
// The store and the command/query handler wrappers only know catalog.ContextualLogger,
// catalog.ContextualMetricsCollector and catalog.TracingCollector. This package plugs the
// global (or any explicitly given) OpenTelemetry providers into them:
//
//	logger := oteladapters.NewSlogBridgeLoggerTee("locallibrary", slog.NewTextHandler(os.Stderr, nil))
//	metrics := oteladapters.NewMetricsCollector(otel.Meter("locallibrary"))
//	tracing := oteladapters.NewTracingCollector(otel.Tracer("locallibrary"))
package oteladapters

package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/AntonStoeckl/locallibrary-go/catalog/oteladapters"
)

// recordingExporter keeps every exported log record in memory.
type recordingExporter struct {
	mu      sync.Mutex
	records []sdklog.Record
}

func (e *recordingExporter) Export(_ context.Context, records []sdklog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, r := range records {
		e.records = append(e.records, r.Clone())
	}

	return nil
}

func (e *recordingExporter) Shutdown(context.Context) error   { return nil }
func (e *recordingExporter) ForceFlush(context.Context) error { return nil }

func (e *recordingExporter) Records() []sdklog.Record {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]sdklog.Record(nil), e.records...)
}

func newLoggerProvider(t *testing.T) (*sdklog.LoggerProvider, *recordingExporter) {
	t.Helper()
	exporter := &recordingExporter{}
	provider := sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter)))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	return provider, exporter
}

func Test_SlogBridgeLoggerWithHandler_AllLevels(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)
	ctx := context.Background()

	// act
	logger.DebugContext(ctx, "debug message", "operation", "list_books")
	logger.InfoContext(ctx, "info message")
	logger.WarnContext(ctx, "warn message")
	logger.ErrorContext(ctx, "error message", "error", "boom")

	// assert
	output := buf.String()
	assert.Contains(t, output, `"msg":"debug message"`)
	assert.Contains(t, output, `"operation":"list_books"`)
	assert.Contains(t, output, `"msg":"info message"`)
	assert.Contains(t, output, `"msg":"warn message"`)
	assert.Contains(t, output, `"error":"boom"`)
}

func Test_SlogBridgeLogger_UsesGlobalProvider(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLogger("locallibrary")

	assert.NotPanics(t, func() { logger.InfoContext(context.Background(), "hello", "k", 1) })
}

func Test_SlogBridgeLogger_ExportsWithSpanContext(t *testing.T) {
	// setup
	provider, exporter := newLoggerProvider(t)
	logger := oteladapters.NewSlogBridgeLogger("locallibrary", otelslog.WithLoggerProvider(provider))
	ctx, span := sdktrace.NewTracerProvider().Tracer("test").Start(context.Background(), "renew")
	defer span.End()

	// act
	logger.InfoContext(ctx, "renewed", "instance", "42")

	// assert
	records := exporter.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "renewed", records[0].Body().AsString())
	assert.Equal(t, span.SpanContext().TraceID(), records[0].TraceID())
}

func Test_SlogBridgeLoggerTee_WritesToHandlerAndExports(t *testing.T) {
	// setup
	var buf bytes.Buffer
	provider, exporter := newLoggerProvider(t)
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := oteladapters.NewSlogBridgeLoggerTee("locallibrary", handler, otelslog.WithLoggerProvider(provider))
	ctx, span := sdktrace.NewTracerProvider().Tracer("test").Start(context.Background(), "renew")
	defer span.End()

	// act
	logger.Slog().With("component", "web").InfoContext(ctx, "renewed", "instance", "42")
	logger.ErrorContext(ctx, "renewal failed")

	// assert
	output := buf.String()
	assert.Contains(t, output, "msg=renewed")
	assert.Contains(t, output, "component=web")
	assert.Contains(t, output, "instance=42")
	assert.Contains(t, output, `msg="renewal failed"`)

	records := exporter.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "renewed", records[0].Body().AsString())
	assert.Equal(t, "renewal failed", records[1].Body().AsString())
	assert.Equal(t, span.SpanContext().TraceID(), records[0].TraceID())
}

func Test_SlogBridgeLoggerTee_RespectsHandlerLevel(t *testing.T) {
	// setup
	var buf bytes.Buffer
	provider, exporter := newLoggerProvider(t)
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger := oteladapters.NewSlogBridgeLoggerTee("locallibrary", handler, otelslog.WithLoggerProvider(provider))

	// act
	logger.InfoContext(context.Background(), "store opened")

	// assert
	assert.Empty(t, buf.String())
	require.Len(t, exporter.Records(), 1)
}

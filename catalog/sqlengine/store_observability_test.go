package sqlengine_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	. "github.com/AntonStoeckl/locallibrary-go/catalog/sqlengine"
	. "github.com/AntonStoeckl/locallibrary-go/testutil/helper"
)

func Test_Observability_Metrics_Success(t *testing.T) {
	// setup
	metricsSpy := NewMetricsCollectorSpy(true)
	store := NewSQLiteStore(t, WithMetrics(metricsSpy))
	metricsSpy.Reset()

	// act
	_, err := store.ListGenres(context.Background())

	// assert
	require.NoError(t, err)
	assert.True(t, metricsSpy.HasDurationRecordForMetric("catalog_store_operation_duration_seconds").
		WithOperation("list_genres").
		WithStatus("success").
		Assert())
	assert.True(t, metricsSpy.HasCounterRecordForMetric("catalog_store_operations_total").
		WithOperation("list_genres").
		WithStatus("success").
		Assert())
	assert.Zero(t, metricsSpy.CountCounterRecordsForMetric("catalog_store_errors_total"))
}

func Test_Observability_Metrics_NotFoundIsNoError(t *testing.T) {
	// setup
	metricsSpy := NewMetricsCollectorSpy(true)
	store := NewSQLiteStore(t, WithMetrics(metricsSpy))

	// act
	_, err := store.BookByID(context.Background(), uuid.New())

	// assert
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.True(t, metricsSpy.HasCounterRecordForMetric("catalog_store_operations_total").
		WithOperation("book_by_id").
		WithStatus("not_found").
		Assert())
	assert.Zero(t, metricsSpy.CountCounterRecordsForMetric("catalog_store_errors_total"))
}

func Test_Observability_Metrics_Error(t *testing.T) {
	// setup
	metricsSpy := NewMetricsCollectorSpy(true)
	store := NewSQLiteStore(t, WithMetrics(metricsSpy))
	GivenUser(t, store, "reader")

	// act
	err := store.CreateUser(context.Background(), catalog.BuildUser("reader", "hash", "", "", false))

	// assert
	assert.ErrorIs(t, err, catalog.ErrDuplicateUsername)
	assert.True(t, metricsSpy.HasCounterRecordForMetric("catalog_store_errors_total").
		WithOperation("create_user").
		WithErrorType("duplicate").
		Assert())
}

func Test_Observability_Tracing(t *testing.T) {
	// setup
	tracingSpy := NewTracingCollectorSpy(true)
	store := NewSQLiteStore(t, WithTracing(tracingSpy))

	// act
	_, err := store.CountBooks(context.Background())
	_, notFoundErr := store.AuthorByID(context.Background(), uuid.New())

	// assert
	require.NoError(t, err)
	assert.ErrorIs(t, notFoundErr, catalog.ErrNotFound)
	assert.True(t, tracingSpy.HasSpanRecordForName("catalogstore.count_books").
		WithStatus("success").
		WithStartAttribute("db.system", DialectSQLite).
		Assert())
	assert.True(t, tracingSpy.HasSpanRecordForName("catalogstore.author_by_id").
		WithStatus("not_found").
		Assert())
}

func Test_Observability_Logging(t *testing.T) {
	// setup
	logSpy := NewLogHandlerSpy(false)
	store := NewSQLiteStore(t, WithLogger(slog.New(logSpy)))

	// act
	_, err := store.ListGenres(context.Background())

	// assert
	require.NoError(t, err)
	assert.True(t, logSpy.HasDebugLogWithMessage("executed sql for: query"))
	assert.True(t, logSpy.HasInfoLogWithMessage("catalog store operation: list_genres"))
	assert.True(t, logSpy.HasLogWithAttribute("catalog store operation: list_genres", "duration_ms"))
}

func Test_Observability_ContextualLoggerIsPreferred(t *testing.T) {
	// setup
	logSpy := NewLogHandlerSpy(false)
	contextualSpy := NewContextualLoggerSpy(true)
	store := NewSQLiteStore(t, WithLogger(slog.New(logSpy)), WithContextualLogger(contextualSpy))
	logSpy.Reset()

	// act
	_, err := store.CountGenres(context.Background())

	// assert
	require.NoError(t, err)
	assert.True(t, contextualSpy.HasRecord("info", "catalog store operation: count_genres"))
	assert.True(t, contextualSpy.HasRecord("debug", "executed sql for: query"))
	assert.Empty(t, logSpy.GetRecords())
}

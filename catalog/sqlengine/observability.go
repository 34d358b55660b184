package sqlengine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

const (
	metricOperationDuration = "catalog_store_operation_duration_seconds"
	metricOperations        = "catalog_store_operations_total"
	metricErrors            = "catalog_store_errors_total"

	spanNamePrefix     = "catalogstore."
	spanAttrOperation  = "operation"
	spanAttrDialect    = "db.system"
	spanAttrErrorType  = "error_type"
	spanAttrDurationMS = "duration_ms"

	labelStatus = "status"

	statusSuccess  = "success"
	statusError    = "error"
	statusNotFound = "not_found"

	errorTypeNotFound     = "not_found"
	errorTypeBuildQuery   = "build_query"
	errorTypeQuery        = "database_query"
	errorTypeExec         = "database_exec"
	errorTypeScan         = "row_scan"
	errorTypeTransaction  = "transaction"
	errorTypeDuplicate    = "duplicate"
	errorTypeCanceled     = "canceled"
	errorTypeTimeout      = "timeout"
	errorTypeUnclassified = "unclassified"
)

// observe runs one store operation with tracing, metrics, and logging around it.
func (s *Store) observe(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	ctx, span := s.startSpan(ctx, operation)
	start := time.Now()

	err := fn(ctx)
	duration := time.Since(start)

	if err == nil {
		s.recordOperationMetrics(ctx, operation, statusSuccess, duration)
		s.finishSpan(span, statusSuccess, duration, nil)
		s.logOperation(ctx, operation, logAttrDurationMS, s.toMilliseconds(duration))

		return nil
	}

	errorType := classifyError(err)
	if errorType == errorTypeNotFound {
		s.recordOperationMetrics(ctx, operation, statusNotFound, duration)
		s.finishSpan(span, statusNotFound, duration, nil)

		return err
	}

	s.recordOperationMetrics(ctx, operation, statusError, duration)
	s.recordErrorMetrics(ctx, operation, errorType)
	s.finishSpan(span, statusError, duration, map[string]string{spanAttrErrorType: errorType})
	s.logError(ctx, logMsgOperationFailed, err, logAttrOperation, operation, logAttrErrorType, errorType)

	return err
}

// classifyError maps an error onto a low-cardinality error type label.
func classifyError(err error) string {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return errorTypeNotFound
	case errors.Is(err, context.Canceled):
		return errorTypeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return errorTypeTimeout
	case errors.Is(err, catalog.ErrDuplicateUsername):
		return errorTypeDuplicate
	case errors.Is(err, catalog.ErrBuildingQueryFailed):
		return errorTypeBuildQuery
	case errors.Is(err, catalog.ErrScanningRowFailed):
		return errorTypeScan
	case errors.Is(err, catalog.ErrQueryingFailed):
		return errorTypeQuery
	case errors.Is(err, catalog.ErrExecutingFailed), errors.Is(err, catalog.ErrGettingRowsAffectedFailed):
		return errorTypeExec
	case errors.Is(err, catalog.ErrTransactionFailed):
		return errorTypeTransaction
	default:
		return errorTypeUnclassified
	}
}

// recordOperationMetrics records the duration and the call count of an operation.
func (s *Store) recordOperationMetrics(ctx context.Context, operation, status string, duration time.Duration) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		labelStatus:       status,
	}

	if contextualCollector, ok := s.metricsCollector.(catalog.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricOperationDuration, duration, labels)
		contextualCollector.IncrementCounterContext(ctx, metricOperations, labels)

		return
	}

	s.metricsCollector.RecordDuration(metricOperationDuration, duration, labels)
	s.metricsCollector.IncrementCounter(metricOperations, labels)
}

// recordErrorMetrics counts a failed operation by error type.
func (s *Store) recordErrorMetrics(ctx context.Context, operation, errorType string) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		labelStatus:       statusError,
		spanAttrErrorType: errorType,
	}

	if contextualCollector, ok := s.metricsCollector.(catalog.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricErrors, labels)
		return
	}

	s.metricsCollector.IncrementCounter(metricErrors, labels)
}

// startSpan starts a tracing span if the tracing collector is configured.
func (s *Store) startSpan(ctx context.Context, operation string) (context.Context, SpanContext) {
	if s.tracingCollector == nil {
		return ctx, nil
	}

	return s.tracingCollector.StartSpan(ctx, spanNamePrefix+operation, map[string]string{
		spanAttrOperation: operation,
		spanAttrDialect:   s.dialectName,
	})
}

// finishSpan finishes a tracing span if the tracing collector is configured.
func (s *Store) finishSpan(span SpanContext, status string, duration time.Duration, attrs map[string]string) {
	if s.tracingCollector == nil || span == nil {
		return
	}

	span.SetStatus(status)
	span.AddAttribute(spanAttrDurationMS, fmt.Sprintf("%.2f", s.toMilliseconds(duration)))

	for key, value := range attrs {
		span.AddAttribute(key, value)
	}

	s.tracingCollector.FinishSpan(span, status, attrs)
}

// logQueryWithDuration logs SQL statements with execution time at debug level.
func (s *Store) logQueryWithDuration(ctx context.Context, sqlQuery string, action string, duration time.Duration) {
	args := []any{logAttrDurationMS, s.toMilliseconds(duration), logAttrQuery, sqlQuery}

	if s.contextualLogger != nil {
		s.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+action, args...)
		return
	}

	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+action, args...)
	}
}

// logOperation logs operational information at info level.
func (s *Store) logOperation(ctx context.Context, operation string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, logMsgOperation+operation, args...)
		return
	}

	if s.logger != nil {
		s.logger.Info(logMsgOperation+operation, args...)
	}
}

// logWarn logs non-critical failures at warn level.
func (s *Store) logWarn(ctx context.Context, message string, err error) {
	if s.contextualLogger != nil {
		s.contextualLogger.WarnContext(ctx, message, logAttrError, err.Error())
		return
	}

	if s.logger != nil {
		s.logger.Warn(message, logAttrError, err.Error())
	}
}

// logError logs error information at error level.
func (s *Store) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if s.contextualLogger != nil {
		s.contextualLogger.ErrorContext(ctx, message, allArgs...)
		return
	}

	if s.logger != nil {
		s.logger.Error(message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (s *Store) toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

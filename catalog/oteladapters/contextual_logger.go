package oteladapters

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// SlogBridgeLogger implements catalog.ContextualLogger with the OpenTelemetry slog bridge.
// Records logged with a context that carries a span are correlated with that span.
type SlogBridgeLogger struct {
	logger *slog.Logger
}

// NewSlogBridgeLogger creates a logger that writes to the global OpenTelemetry LoggerProvider,
// or to the one given with otelslog.WithLoggerProvider.
func NewSlogBridgeLogger(name string, options ...otelslog.Option) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: otelslog.NewLogger(name, options...)}
}

// NewSlogBridgeLoggerWithHandler creates a logger writing to handler instead.
// There is no trace correlation unless the handler adds it.
func NewSlogBridgeLoggerWithHandler(handler slog.Handler) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: slog.New(handler)}
}

// NewSlogBridgeLoggerTee writes every record to handler and to the OpenTelemetry bridge.
// The local output keeps working while the same records are exported with their span context.
func NewSlogBridgeLoggerTee(name string, handler slog.Handler, options ...otelslog.Option) *SlogBridgeLogger {
	return &SlogBridgeLogger{
		logger: slog.New(teeHandler{handler, otelslog.NewHandler(name, options...)}),
	}
}

// Slog exposes the underlying *slog.Logger, e.g. for the web server's request log.
func (l *SlogBridgeLogger) Slog() *slog.Logger {
	return l.logger
}

// DebugContext logs at debug level.
func (l *SlogBridgeLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

// InfoContext logs at info level.
func (l *SlogBridgeLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

// WarnContext logs at warn level.
func (l *SlogBridgeLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

// ErrorContext logs at error level.
func (l *SlogBridgeLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

var _ catalog.ContextualLogger = (*SlogBridgeLogger)(nil)

// teeHandler hands each record to every handler that is enabled for its level.
type teeHandler []slog.Handler

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (t teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error

	for _, h := range t {
		if !h.Enabled(ctx, record.Level) {
			continue
		}

		if err := h.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make(teeHandler, 0, len(t))
	for _, h := range t {
		handlers = append(handlers, h.WithAttrs(attrs))
	}

	return handlers
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	handlers := make(teeHandler, 0, len(t))
	for _, h := range t {
		handlers = append(handlers, h.WithGroup(name))
	}

	return handlers
}

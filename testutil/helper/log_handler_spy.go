package helper

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// LogHandlerSpy is a slog.Handler implementation that captures log records for testing.
type LogHandlerSpy struct {
	records     []slog.Record
	mu          sync.Mutex
	logToStdout bool
}

// NewLogHandlerSpy creates a new LogHandlerSpy.
// Switchable to log to stdout, which can be useful for debugging tests by seeing the actual log output.
func NewLogHandlerSpy(logToStdout bool) *LogHandlerSpy {
	return &LogHandlerSpy{logToStdout: logToStdout}
}

// Handle implements slog.Handler interface.
func (s *LogHandlerSpy) Handle(ctx context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record.Clone())

	if s.logToStdout {
		_ = slog.NewJSONHandler(os.Stdout, nil).Handle(ctx, record)
	}

	return nil
}

// Enabled implements slog.Handler interface.
func (s *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler interface.
func (s *LogHandlerSpy) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

// WithGroup implements slog.Handler interface.
func (s *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return s
}

// GetRecords returns a copy of all captured log records.
func (s *LogHandlerSpy) GetRecords() []slog.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]slog.Record, len(s.records))
	copy(records, s.records)

	return records
}

// Reset clears all captured log records.
func (s *LogHandlerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}

// HasDebugLogWithMessage checks for a debug-level record whose message starts with the given prefix.
func (s *LogHandlerSpy) HasDebugLogWithMessage(prefix string) bool {
	return s.hasLog(slog.LevelDebug, prefix)
}

// HasInfoLogWithMessage checks for an info-level record whose message starts with the given prefix.
func (s *LogHandlerSpy) HasInfoLogWithMessage(prefix string) bool {
	return s.hasLog(slog.LevelInfo, prefix)
}

// HasWarnLogWithMessage checks for a warn-level record whose message starts with the given prefix.
func (s *LogHandlerSpy) HasWarnLogWithMessage(prefix string) bool {
	return s.hasLog(slog.LevelWarn, prefix)
}

// HasErrorLogWithMessage checks for an error-level record whose message starts with the given prefix.
func (s *LogHandlerSpy) HasErrorLogWithMessage(prefix string) bool {
	return s.hasLog(slog.LevelError, prefix)
}

// HasLogWithAttribute checks for a record of any level carrying the given attribute key.
func (s *LogHandlerSpy) HasLogWithAttribute(message, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if !strings.HasPrefix(record.Message, message) {
			continue
		}

		found := false
		record.Attrs(func(attr slog.Attr) bool {
			if attr.Key == key {
				found = true
				return false
			}

			return true
		})

		if found {
			return true
		}
	}

	return false
}

func (s *LogHandlerSpy) hasLog(level slog.Level, prefix string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level == level && strings.HasPrefix(record.Message, prefix) {
			return true
		}
	}

	return false
}

package observable

import (
	"github.com/AntonStoeckl/locallibrary-go/shell"
)

// Collectors bundles the observability dependencies shared by all wrappers of an application.
// Nil fields are skipped.
type Collectors struct {
	Metrics          shell.MetricsCollector
	Tracing          shell.TracingCollector
	ContextualLogger shell.ContextualLogger
	Logger           shell.Logger
}

// WrapCommand wraps a core command handler with every collector that is set.
func WrapCommand[C shell.Command](core shell.CoreCommandHandler[C], c Collectors) (*CommandWrapper[C], error) {
	opts := make([]CommandOption[C], 0, 4)

	if c.Metrics != nil {
		opts = append(opts, WithCommandMetrics[C](c.Metrics))
	}

	if c.Tracing != nil {
		opts = append(opts, WithCommandTracing[C](c.Tracing))
	}

	if c.ContextualLogger != nil {
		opts = append(opts, WithCommandContextualLogging[C](c.ContextualLogger))
	}

	if c.Logger != nil {
		opts = append(opts, WithCommandLogging[C](c.Logger))
	}

	return NewCommandWrapper(core, opts...)
}

// WrapQuery wraps a core query handler with every collector that is set.
func WrapQuery[Q shell.Query, R any](core shell.CoreQueryHandler[Q, R], c Collectors) (*QueryWrapper[Q, R], error) {
	opts := make([]QueryOption[Q, R], 0, 4)

	if c.Metrics != nil {
		opts = append(opts, WithQueryMetrics[Q, R](c.Metrics))
	}

	if c.Tracing != nil {
		opts = append(opts, WithQueryTracing[Q, R](c.Tracing))
	}

	if c.ContextualLogger != nil {
		opts = append(opts, WithQueryContextualLogging[Q, R](c.ContextualLogger))
	}

	if c.Logger != nil {
		opts = append(opts, WithQueryLogging[Q, R](c.Logger))
	}

	return NewQueryWrapper(core, opts...)
}

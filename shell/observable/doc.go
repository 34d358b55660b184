// Package observable provides generic observability wrappers for command and query handlers.
//
// A wrapper decorates a core handler from a feature package with metrics, tracing and logging
// while the core handler stays free of infrastructure concerns:
//
//	core := renewbookinstance.NewCommandHandler(store)
//	handler, err := observable.NewCommandWrapper[renewbookinstance.Command](
//		core,
//		observable.WithCommandMetrics[renewbookinstance.Command](metricsCollector),
//		observable.WithCommandContextualLogging[renewbookinstance.Command](logger),
//	)
package observable

package shell

import "context"

// Command represents the contract for all command types of the catalog.
// Each command encapsulates the intent and parameters needed to execute one write use case.
// The CommandType method enables polymorphic handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// Query represents the contract for all query types of the catalog.
type Query interface {
	QueryType() string
}

// CoreCommandHandler defines the contract for components that process commands with pure business logic.
// Implementations should focus on the use case without observability concerns;
// they are designed to be wrapped with observable.CommandWrapper.
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// CoreQueryHandler defines the contract for components that process queries with pure business logic.
// The generic parameters Q and R ensure type safety between queries and their corresponding results.
type CoreQueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

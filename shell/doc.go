// Package shell provides the application infrastructure shared by all feature slices of the library catalog.
//
// It defines the contracts for commands, queries, and their handlers, the HandlerResult returned by
// command handlers, observability helpers (metrics, tracing, and logging around handler execution),
// error classification, and password hashing.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell

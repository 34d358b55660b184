// Package addgenre implements the Add Genre use case.
//
// Genre names are unique ignoring case; adding a known name is an idempotent no-op.
package addgenre

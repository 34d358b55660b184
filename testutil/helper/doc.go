// Package helper provides test helpers for the catalog: SQLite and Postgres backed stores,
// fixture builders, and spies for the logging, metrics, and tracing interfaces.
package helper

// Package config provides the runtime configuration of the library catalog.
//
// It reads settings from LIBRARY_* environment variables and contains factory functions
// for database connections (pgx.Pool, sql.DB via lib/pq, sqlx.DB, and SQLite via go-sqlite3)
// as well as the OpenTelemetry providers used when observability is enabled.
//
// This package is part of the shell (infrastructure) layer.
package config

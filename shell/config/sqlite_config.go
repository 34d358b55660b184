package config

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
)

// SQLiteDSN returns the DSN for a SQLite database file with foreign keys enforced.
func SQLiteDSN(file string) string {
	return "file:" + file + "?_foreign_keys=on&_busy_timeout=5000"
}

// SQLiteDB opens and pings a SQLite database file.
// SQLite serializes writers, so the pool is limited to one connection.
func SQLiteDB(ctx context.Context, file string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", SQLiteDSN(file))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if pingErr := db.PingContext(ctx); pingErr != nil {
		_ = db.Close()
		return nil, pingErr
	}

	return db, nil
}

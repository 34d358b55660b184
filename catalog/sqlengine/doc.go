// Package sqlengine provides the SQL implementation of the catalog store.
//
// Every statement is built with goqu and executed through one of three database adapters
// (pgx, sql.DB, sqlx). The postgres dialect is used for PostgreSQL, the sqlite3 dialect for
// local development and hermetic tests on SQLite.
//
// Key features:
//   - Multiple database adapter support (PGX, SQL, SQLX)
//   - PostgreSQL and SQLite dialects with an idempotent schema migration
//   - Multi-row writes (book with genre links, deletes that null references) in one transaction
//   - Replica routing for reads that allow eventual consistency (pgx only)
//   - Optional logging, metrics, and tracing hooks
//
// Usage examples:
//
//	// PostgreSQL via pgx
//	pool, _ := pgxpool.New(context.Background(), dsn)
//	store, _ := sqlengine.NewStoreFromPGXPool(pool, sqlengine.WithLogger(slog.Default()))
//
//	// SQLite via database/sql
//	db, _ := sql.Open("sqlite3", "file:library.db?_foreign_keys=on")
//	store, _ := sqlengine.NewStoreFromSQLDB(db, sqlengine.WithDialect(sqlengine.DialectSQLite))
//
//	_ = store.Migrate(ctx)
//	book, _ := store.BookByID(ctx, bookID)
package sqlengine

package adapters

import "context"

// Querier executes single statements, either on a pool or inside a transaction.
type Querier interface {
	Query(ctx context.Context, query string) (DBRows, error)
	Exec(ctx context.Context, query string) (DBResult, error)
}

// DBAdapter defines the interface for database operations needed by the catalog store.
type DBAdapter interface {
	Querier

	// WithTx runs fn inside a transaction. The transaction is committed when fn returns nil
	// and rolled back otherwise.
	WithTx(ctx context.Context, fn func(tx Querier) error) error
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DBResult defines the interface for execution results.
type DBResult interface {
	RowsAffected() (int64, error)
}

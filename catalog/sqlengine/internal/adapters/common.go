package adapters

import (
	"context"
	"database/sql"
	"errors"
)

// stdRows wraps standard library sql.Rows to implement the DBRows interface.
type stdRows struct {
	rows *sql.Rows
}

// Next advances to the next row.
func (s *stdRows) Next() bool {
	return s.rows.Next()
}

// Scan copies row values into provided destinations.
func (s *stdRows) Scan(dest ...any) error {
	return s.rows.Scan(dest...)
}

// Err returns the error, if any, that was encountered during iteration.
func (s *stdRows) Err() error {
	return s.rows.Err()
}

// Close closes the rows iterator.
func (s *stdRows) Close() error {
	return s.rows.Close()
}

// stdResult wraps standard library sql.Result to implement the DBResult interface.
type stdResult struct {
	result sql.Result
}

// RowsAffected returns the number of rows affected by the command.
func (s *stdResult) RowsAffected() (int64, error) {
	return s.result.RowsAffected()
}

// stdConn is the subset shared by *sql.DB, *sql.Tx, *sqlx.DB and *sqlx.Tx.
type stdConn interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// stdQuerier implements Querier on top of any stdConn.
type stdQuerier struct {
	conn stdConn
}

// Query executes a select statement and returns wrapped rows.
func (q stdQuerier) Query(ctx context.Context, query string) (DBRows, error) {
	rows, err := q.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &stdRows{rows: rows}, nil
}

// Exec executes a statement and returns the wrapped result.
func (q stdQuerier) Exec(ctx context.Context, query string) (DBResult, error) {
	result, err := q.conn.ExecContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &stdResult{result: result}, nil
}

// stdTx is the subset shared by *sql.Tx and *sqlx.Tx.
type stdTx interface {
	stdConn
	Commit() error
	Rollback() error
}

// runStdTx commits tx when fn succeeds and rolls it back otherwise.
func runStdTx(tx stdTx, fn func(tx Querier) error) error {
	if err := fn(stdQuerier{conn: tx}); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return errors.Join(err, rollbackErr)
		}

		return err
	}

	return tx.Commit()
}

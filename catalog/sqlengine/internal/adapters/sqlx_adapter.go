package adapters

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// SQLXAdapter implements DBAdapter for sqlx.DB.
type SQLXAdapter struct {
	stdQuerier
	db *sqlx.DB
}

// NewSQLXAdapter creates a new SQLX adapter.
func NewSQLXAdapter(db *sqlx.DB) *SQLXAdapter {
	return &SQLXAdapter{stdQuerier: stdQuerier{conn: db}, db: db}
}

// WithTx runs fn inside a sqlx.Tx.
func (s *SQLXAdapter) WithTx(ctx context.Context, fn func(tx Querier) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	return runStdTx(tx, fn)
}

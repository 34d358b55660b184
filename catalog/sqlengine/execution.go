package sqlengine

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/catalog/sqlengine/internal/adapters"
)

const (
	logMsgBuildQueryFailed   = "failed to build sql statement"
	logMsgDBQueryFailed      = "database query execution failed"
	logMsgDBExecFailed       = "database statement execution failed"
	logMsgCloseRowsFailed    = "failed to close database rows"
	logMsgScanRowFailed      = "failed to scan database row"
	logMsgRowsAffectedFailed = "failed to get rows affected count"
	logMsgTransactionFailed  = "database transaction failed"
	logMsgOperationFailed    = "catalog store operation failed"
	logMsgSQLExecuted        = "executed sql for: "
	logMsgOperation          = "catalog store operation: "
	logAttrError             = "error"
	logAttrErrorType         = "error_type"
	logAttrQuery             = "query"
	logAttrOperation         = "operation"
	logAttrDurationMS        = "duration_ms"
	logActionQuery           = "query"
	logActionExec            = "exec"
	logActionMigrate         = "migrate"
)

// sqlBuilder is implemented by every goqu dataset.
type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

// rowScanner is called once per result row.
type rowScanner func(rows adapters.DBRows) error

// toSQL renders a goqu dataset into an interpolated SQL string.
func (s *Store) toSQL(ctx context.Context, ds sqlBuilder) (string, error) {
	sqlQuery, _, err := ds.ToSQL()
	if err != nil {
		s.logError(ctx, logMsgBuildQueryFailed, err)
		return "", errors.Join(catalog.ErrBuildingQueryFailed, err)
	}

	return sqlQuery, nil
}

// query runs a select statement and calls scan for every row.
// The rows are closed before query returns, so q is free for the next statement.
func (s *Store) query(ctx context.Context, q adapters.Querier, ds sqlBuilder, scan rowScanner) error {
	sqlQuery, err := s.toSQL(ctx, ds)
	if err != nil {
		return err
	}

	start := time.Now()
	rows, queryErr := q.Query(ctx, sqlQuery)
	s.logQueryWithDuration(ctx, sqlQuery, logActionQuery, time.Since(start))

	if queryErr != nil {
		s.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		return errors.Join(catalog.ErrQueryingFailed, queryErr)
	}
	defer s.closeRows(ctx, rows)

	for rows.Next() {
		if scanErr := scan(rows); scanErr != nil {
			s.logError(ctx, logMsgScanRowFailed, scanErr)
			return errors.Join(catalog.ErrScanningRowFailed, scanErr)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		s.logError(ctx, logMsgDBQueryFailed, rowsErr, logAttrQuery, sqlQuery)
		return errors.Join(catalog.ErrQueryingFailed, rowsErr)
	}

	return nil
}

// queryOne runs a select statement that must return exactly one row.
func (s *Store) queryOne(ctx context.Context, q adapters.Querier, ds sqlBuilder, scan rowScanner) error {
	found := false

	err := s.query(ctx, q, ds, func(rows adapters.DBRows) error {
		found = true
		return scan(rows)
	})
	if err != nil {
		return err
	}

	if !found {
		return catalog.ErrNotFound
	}

	return nil
}

// count runs a select statement returning a single integer.
func (s *Store) count(ctx context.Context, q adapters.Querier, ds sqlBuilder) (int, error) {
	var n int64

	err := s.queryOne(ctx, q, ds, func(rows adapters.DBRows) error {
		return rows.Scan(&n)
	})

	return int(n), err
}

// exec runs an insert, update, or delete statement and returns the rows affected.
func (s *Store) exec(ctx context.Context, q adapters.Querier, ds sqlBuilder) (int64, error) {
	sqlQuery, err := s.toSQL(ctx, ds)
	if err != nil {
		return 0, err
	}

	return s.execRaw(ctx, q, sqlQuery, logActionExec)
}

// execRaw runs a plain SQL statement.
func (s *Store) execRaw(ctx context.Context, q adapters.Querier, sqlQuery, action string) (int64, error) {
	start := time.Now()
	result, execErr := q.Exec(ctx, sqlQuery)
	s.logQueryWithDuration(ctx, sqlQuery, action, time.Since(start))

	if execErr != nil {
		s.logError(ctx, logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		return 0, errors.Join(catalog.ErrExecutingFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		s.logError(ctx, logMsgRowsAffectedFailed, rowsAffectedErr)
		return 0, errors.Join(catalog.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	return rowsAffected, nil
}

// execExpectingRow runs a statement that must touch at least one row.
func (s *Store) execExpectingRow(ctx context.Context, q adapters.Querier, ds sqlBuilder) error {
	rowsAffected, err := s.exec(ctx, q, ds)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return catalog.ErrNotFound
	}

	return nil
}

// inTx runs fn inside a transaction. Errors raised by fn are returned unchanged,
// failures to begin or commit are joined with catalog.ErrTransactionFailed.
func (s *Store) inTx(ctx context.Context, fn func(tx adapters.Querier) error) error {
	var fnErr error

	txErr := s.db.WithTx(ctx, func(tx adapters.Querier) error {
		fnErr = fn(tx)
		return fnErr
	})

	if fnErr != nil {
		return fnErr
	}

	if txErr != nil {
		s.logError(ctx, logMsgTransactionFailed, txErr)
		return errors.Join(catalog.ErrTransactionFailed, txErr)
	}

	return nil
}

// closeRows closes database rows and logs any errors.
func (s *Store) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		s.logWarn(ctx, logMsgCloseRowsFailed, closeErr)
	}
}

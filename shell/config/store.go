package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AntonStoeckl/locallibrary-go/catalog/sqlengine"
)

// OpenStore connects to the database selected by cfg.DBDriver and creates a Store on top of it.
// The returned close function releases the connection pools.
func OpenStore(ctx context.Context, cfg Config, options ...sqlengine.Option) (*sqlengine.Store, func(), error) {
	switch cfg.DBDriver {
	case DriverPGX:
		return openPGXStore(ctx, cfg, options)

	case DriverSQLDB:
		db, err := PostgresSQLDB(ctx, cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}

		store, err := sqlengine.NewStoreFromSQLDB(db, options...)

		return closeOnError(store, func() { _ = db.Close() }, err)

	case DriverSQLX:
		db, err := PostgresSQLXDB(ctx, cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}

		store, err := sqlengine.NewStoreFromSQLX(db, options...)

		return closeOnError(store, func() { _ = db.Close() }, err)

	case DriverSQLite:
		db, err := SQLiteDB(ctx, cfg.SQLiteFile)
		if err != nil {
			return nil, nil, err
		}

		allOptions := append([]sqlengine.Option{sqlengine.WithDialect(sqlengine.DialectSQLite)}, options...)
		store, err := sqlengine.NewStoreFromSQLDB(db, allOptions...)

		return closeOnError(store, func() { _ = db.Close() }, err)

	default:
		return nil, nil, fmt.Errorf("%w: unknown driver %q", ErrInvalidConfig, cfg.DBDriver)
	}
}

func openPGXStore(ctx context.Context, cfg Config, options []sqlengine.Option) (*sqlengine.Store, func(), error) {
	primary, err := newPGXPool(ctx, cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}

	if cfg.DBReplicaDSN == "" {
		store, storeErr := sqlengine.NewStoreFromPGXPool(primary, options...)
		return closeOnError(store, primary.Close, storeErr)
	}

	replica, err := newPGXPool(ctx, cfg.DBReplicaDSN)
	if err != nil {
		primary.Close()
		return nil, nil, err
	}

	closeBoth := func() {
		replica.Close()
		primary.Close()
	}

	store, err := sqlengine.NewStoreFromPGXPoolAndReplica(primary, replica, options...)

	return closeOnError(store, closeBoth, err)
}

func newPGXPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, err := PostgresPGXPoolConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, errors.Join(errors.New("connecting to postgres failed"), pingErr)
	}

	return pool, nil
}

func closeOnError(store *sqlengine.Store, closeFn func(), err error) (*sqlengine.Store, func(), error) {
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	return store, closeFn, nil
}

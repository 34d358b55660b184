package helper

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tpg "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/AntonStoeckl/locallibrary-go/catalog/sqlengine"
	"github.com/AntonStoeckl/locallibrary-go/shell/config"
)

// NewSQLiteStore creates a migrated Store backed by a SQLite file in a temporary directory.
// The database is closed when the test finishes.
func NewSQLiteStore(t testing.TB, options ...sqlengine.Option) *sqlengine.Store {
	t.Helper()
	ctx := context.Background()

	db, err := config.SQLiteDB(ctx, filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err, "error opening sqlite database in test setup")
	t.Cleanup(func() { _ = db.Close() })

	allOptions := append([]sqlengine.Option{sqlengine.WithDialect(sqlengine.DialectSQLite)}, options...)
	store, err := sqlengine.NewStoreFromSQLDB(db, allOptions...)
	require.NoError(t, err, "error creating store in test setup")

	require.NoError(t, store.Migrate(ctx), "error migrating schema in test setup")

	return store
}

// PostgresContainer is a throwaway Postgres server for integration tests.
type PostgresContainer struct {
	container *tpg.PostgresContainer
	DSN       string
}

// StartPostgresContainer starts a Postgres container and waits until it accepts connections.
func StartPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	pgc, err := tpg.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tpg.WithDatabase("locallibrary"),
		tpg.WithUsername("library"),
		tpg.WithPassword("library"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := pgc.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgc.Terminate(ctx)
		return nil, err
	}

	return &PostgresContainer{container: pgc, DSN: dsn}, nil
}

// Terminate stops and removes the container.
func (c *PostgresContainer) Terminate(ctx context.Context) error {
	return c.container.Terminate(ctx)
}

// NewPGXStore creates a migrated Store on the given Postgres DSN.
// Every call uses its own table prefix so that tests do not see each other's rows.
func NewPGXStore(t testing.TB, dsn string, options ...sqlengine.Option) *sqlengine.Store {
	t.Helper()
	ctx := context.Background()

	poolConfig, err := config.PostgresPGXPoolConfig(dsn)
	require.NoError(t, err, "error parsing postgres dsn in test setup")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	require.NoError(t, err, "error connecting to DB pool in test setup")
	t.Cleanup(pool.Close)

	prefix := "t" + GivenUniqueSuffix(t) + "_"
	allOptions := append([]sqlengine.Option{sqlengine.WithTablePrefix(prefix)}, options...)
	store, err := sqlengine.NewStoreFromPGXPool(pool, allOptions...)
	require.NoError(t, err, "error creating store in test setup")

	require.NoError(t, store.Migrate(ctx), "error migrating schema in test setup")

	return store
}

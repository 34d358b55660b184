package sqlengine

import (
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/catalog/sqlengine/internal/adapters"
)

const (
	// DialectPostgres selects the PostgreSQL SQL dialect.
	DialectPostgres = "postgres"

	// DialectSQLite selects the SQLite SQL dialect.
	DialectSQLite = "sqlite3"
)

const (
	tableGenre          = "catalog_genre"
	tableAuthor         = "catalog_author"
	tableBook           = "catalog_book"
	tableBookGenre      = "catalog_book_genre"
	tableBookInstance   = "catalog_bookinstance"
	tableUser           = "auth_user"
	tableUserPermission = "auth_user_permission"
	tableSession        = "catalog_session"

	colID          = "id"
	colName        = "name"
	colFirstName   = "first_name"
	colLastName    = "last_name"
	colDateOfBirth = "date_of_birth"
	colDateOfDeath = "date_of_death"
	colTitle       = "title"
	colAuthorID    = "author_id"
	colSummary     = "summary"
	colISBN        = "isbn"
	colBookID      = "book_id"
	colGenreID     = "genre_id"
	colImprint     = "imprint"
	colLanguage    = "language"
	colDueBack     = "due_back"
	colBorrowerID  = "borrower_id"
	colStatus      = "status"
	colUsername    = "username"
	colPassword    = "password_hash"
	colSuperuser   = "is_superuser"
	colUserID      = "user_id"
	colCodename    = "codename"
	colNumVisits   = "num_visits"
	colExpiresAt   = "expires_at"
)

// Logger is the basic logging interface the store writes to.
type Logger = catalog.Logger

// ContextualLogger is the context-aware logging interface the store writes to.
type ContextualLogger = catalog.ContextualLogger

// MetricsCollector receives store metrics.
type MetricsCollector = catalog.MetricsCollector

// TracingCollector receives store spans.
type TracingCollector = catalog.TracingCollector

// SpanContext is an active span.
type SpanContext = catalog.SpanContext

// Store persists the catalog in a SQL database.
type Store struct {
	db               adapters.DBAdapter
	dialectName      string
	dialect          goqu.DialectWrapper
	tablePrefix      string
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
// The postgres dialect is always used.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (*Store, error) {
	if db == nil {
		return nil, catalog.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), true, options...)
}

// NewStoreFromPGXPoolAndReplica creates a new Store using a primary and a replica pgx Pool.
// Reads run on the replica only when the context carries catalog.WithEventualConsistency.
func NewStoreFromPGXPoolAndReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (*Store, error) {
	if db == nil || replica == nil {
		return nil, catalog.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapterWithReplica(db, replica), true, options...)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (*Store, error) {
	if db == nil {
		return nil, catalog.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), false, options...)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (*Store, error) {
	if db == nil {
		return nil, catalog.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapter(db), false, options...)
}

func newStore(db adapters.DBAdapter, postgresOnly bool, options ...Option) (*Store, error) {
	s := &Store{
		db:          db,
		dialectName: DialectPostgres,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	if postgresOnly && s.dialectName != DialectPostgres {
		return nil, catalog.ErrUnsupportedDialect
	}

	s.dialect = goqu.Dialect(s.dialectName)

	return s, nil
}

// Dialect returns the name of the SQL dialect in use.
func (s *Store) Dialect() string {
	return s.dialectName
}

// table returns the prefixed table name.
func (s *Store) table(name string) string {
	return s.tablePrefix + name
}

// col returns a table-qualified column identifier.
func (s *Store) col(table, column string) exp.IdentifierExpression {
	return goqu.T(s.table(table)).Col(column)
}

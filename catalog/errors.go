package catalog

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrNilDatabaseConnection is returned when a store is constructed without a database handle.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrUnsupportedDialect is returned for SQL dialects other than postgres and sqlite3.
	ErrUnsupportedDialect = errors.New("unsupported sql dialect")

	// ErrEmptyTablePrefix is returned when an empty table prefix is configured.
	ErrEmptyTablePrefix = errors.New("empty table prefix supplied")

	// ErrBuildingQueryFailed is returned when goqu cannot render a statement.
	ErrBuildingQueryFailed = errors.New("building query failed")

	// ErrQueryingFailed is returned when a select statement fails.
	ErrQueryingFailed = errors.New("querying failed")

	// ErrExecutingFailed is returned when an insert, update or delete statement fails.
	ErrExecutingFailed = errors.New("executing statement failed")

	// ErrScanningRowFailed is returned when a result row cannot be scanned.
	ErrScanningRowFailed = errors.New("scanning db row failed")

	// ErrGettingRowsAffectedFailed is returned when the driver cannot report the rows affected.
	ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")

	// ErrTransactionFailed is returned when a transaction cannot be started or committed.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrDuplicateUsername is returned when a user with the same username already exists.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials is returned when a username/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnknownPermission is returned for permission codenames the catalog does not define.
	ErrUnknownPermission = errors.New("unknown permission")

	// ErrInvalidPage is returned for page numbers below one or beyond the last page.
	ErrInvalidPage = errors.New("invalid page")
)

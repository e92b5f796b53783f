package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDatabaseUnavailable is returned when the driver reports a connection
	// level failure.
	ErrDatabaseUnavailable = errors.New("database is unavailable")

	// ErrUnsupportedDriver is returned when the configured driver is neither
	// postgres nor sqlite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")
)

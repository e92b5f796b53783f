package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells a repository how a failed database operation should be reported.
type ErrorClassification int

const (
	// Unclassified is the default classification for unrecognised errors.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates that a UNIQUE constraint rejected the write.
	UniqueViolation

	// ConnectionFailure indicates that the database could not be reached or
	// dropped the connection.
	ConnectionFailure
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [Unclassified] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation: // 23505
		return UniqueViolation

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow: // 57P03
		return ConnectionFailure
	}

	return Unclassified
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch {
	case sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique,
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqliteErr.Code == sqlite3.ErrCantOpen:
		return ConnectionFailure
	}

	return Unclassified
}

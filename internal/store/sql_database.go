package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/migrations"
)

// DB is a database handle bound to a SQL dialect.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Dialect returns the driver name from [config.DB.Driver] this handle talks to.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder with the placeholder format
// of the dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == config.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}

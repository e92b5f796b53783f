// Package migrations embeds the SQL schema of the service and applies it
// with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var ErrNilDB = errors.New("db is nil")

// dialects maps config driver names to goose dialects.
var dialects = map[string]goose.Dialect{
	"postgres": goose.DialectPostgres,
	"sqlite":   goose.DialectSQLite3,
}

// Migrate applies every pending migration to db using the goose dialect
// matching driver ("postgres" or "sqlite").
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

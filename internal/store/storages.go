package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
)

// Storages groups the repositories of the service together with the
// database handle they share.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
}

// NewStorages connects to the configured database, applies pending
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, logger),
	}, nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	return s.DB.Close()
}

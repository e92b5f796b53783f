package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table
// for both supported dialects.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.Dialect()).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record. CreatedAt is set to the current
// UTC time when the caller left it empty.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - connection failure → wrapped [ErrDatabaseUnavailable].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// create user in db
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		switch r.db.classify(err) {
		case UniqueViolation:
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		case ConnectionFailure:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("database is unavailable")
			return models.User{}, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("unexpected DB error")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return user, nil
}

// FindUserByEmail retrieves the user record whose email matches exactly.
//
// Error handling:
//   - no rows → [ErrNoUserWasFound].
//   - connection failure → wrapped [ErrDatabaseUnavailable].
//   - any other error → wrapped [ErrScanningRow].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByEmailQuery(r.db.builder(), email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		foundUser models.User
		role      string
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&foundUser.ID, &foundUser.Name, &foundUser.Email, &role, &foundUser.PasswordHash, &foundUser.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil && r.db.classify(err) == ConnectionFailure:
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("database is unavailable")
		return models.User{}, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	foundUser.Role = models.Role(role)

	return foundUser, nil
}

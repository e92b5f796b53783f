package store

import (
	"context"

	"github.com/MKhiriev/go-session-auth/models"
)

//go:generate mockgen -destination=../mock/store_mock.go -package=mock github.com/MKhiriev/go-session-auth/internal/store UserRepository

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns the stored record.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

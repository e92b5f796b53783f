package service

import (
	"context"

	"github.com/MKhiriev/go-session-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// IdentityService owns user accounts and their credentials.
// Failures are *Error values tagged with a [Kind].
type IdentityService interface {
	// Create registers a new account. A taken email yields KindDuplicateEmail.
	Create(ctx context.Context, name, email, password string, role models.Role) (models.User, error)

	// Authenticate checks credentials. Unknown email and wrong password both
	// yield KindAuthentication.
	Authenticate(ctx context.Context, email, password string) (models.User, error)
}

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Issue(ctx context.Context, user models.User) (models.Token, error)
	Parse(ctx context.Context, raw string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces unique identifiers for new accounts.
type IDGenerator interface {
	Generate() string
}

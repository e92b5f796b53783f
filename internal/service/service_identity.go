package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
	"golang.org/x/crypto/bcrypt"
)

// identityService is the concrete implementation of IdentityService.
// It hashes passwords with bcrypt and delegates persistence to a
// UserRepository.
type identityService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hashCost is the bcrypt cost used for new password hashes.
	hashCost int

	// ids assigns identifiers to new accounts.
	ids IDGenerator

	// dummyHash is compared against when the email is unknown so that both
	// authentication failures take a similar amount of time.
	dummyHash     string
	dummyHashOnce sync.Once

	logger *logger.Logger
}

// NewIdentityService constructs a new IdentityService wired to the given
// UserRepository. The returned service is safe for concurrent use.
func NewIdentityService(userRepository store.UserRepository, cfg config.App, ids IDGenerator, logger *logger.Logger) IdentityService {
	return &identityService{
		userRepository: userRepository,
		hashCost:       cfg.PasswordHashCost,
		ids:            ids,
		logger:         logger,
	}
}

// Create registers a new account.
//
// The email is stored as given; uniqueness is case-insensitive and enforced
// by the repository. The name is trimmed and the password is replaced by its
// bcrypt hash.
//
// Failure kinds:
//   - KindValidation if a field is empty, the role is unknown or the
//     password is longer than bcrypt accepts.
//   - KindDuplicateEmail if the email is taken (see store.ErrEmailAlreadyExists).
//   - KindUnexpected for anything else.
func (s *identityService) Create(ctx context.Context, name, email, password string, role models.Role) (models.User, error) {
	const op = "identityService.Create"
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(email) == "" || password == "" || !role.IsValid() {
		log.Debug().Str("email", email).Str("role", role.String()).Msg("invalid user data provided")
		return models.User{}, newError(KindValidation, op, ErrInvalidDataProvided)
	}

	hash, err := utils.HashPassword(password, s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.User{}, newError(KindValidation, op, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*identityService.Create").Msg("error hashing password")
		return models.User{}, newError(KindUnexpected, op, err)
	}

	user := models.User{
		ID:           s.ids.Generate(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Debug().Str("email", email).Msg("email already in use")
		return models.User{}, newError(KindDuplicateEmail, op, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*identityService.Create").Msg("user creation ended with error")
		return models.User{}, newError(KindUnexpected, op, err)
	}

	return created, nil
}

// Authenticate looks up the account by email, ignoring case, and checks the
// password.
//
// Failure kinds:
//   - KindValidation if email or password is empty.
//   - KindAuthentication if no account has the email or the password does
//     not match; both wrap ErrInvalidCredentials.
//   - KindUnexpected for storage or hash failures.
func (s *identityService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	const op = "identityService.Authenticate"
	log := logger.FromContext(ctx)

	if strings.TrimSpace(email) == "" || password == "" {
		return models.User{}, newError(KindValidation, op, ErrInvalidDataProvided)
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		_ = utils.ComparePassword(s.fallbackHash(), password)
		log.Debug().Str("email", email).Msg("no user with email")
		return models.User{}, newError(KindAuthentication, op, ErrInvalidCredentials)
	}
	if err != nil {
		log.Err(err).Str("func", "*identityService.Authenticate").Msg("user search by email failed")
		return models.User{}, newError(KindUnexpected, op, err)
	}

	err = utils.ComparePassword(user.PasswordHash, password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		log.Debug().Str("id", user.ID).Msg("wrong password")
		return models.User{}, newError(KindAuthentication, op, ErrInvalidCredentials)
	}
	if err != nil {
		log.Err(err).Str("func", "*identityService.Authenticate").Str("id", user.ID).Msg("stored password hash is unusable")
		return models.User{}, newError(KindUnexpected, op, err)
	}

	return user, nil
}

func (s *identityService) fallbackHash() string {
	s.dummyHashOnce.Do(func() {
		hash, err := utils.HashPassword("not-a-real-password", s.hashCost)
		if err != nil {
			s.logger.Err(err).Msg("error creating fallback password hash")
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

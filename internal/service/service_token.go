package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

// tokenIssuer is the HS256 JWT implementation of TokenIssuer.
type tokenIssuer struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewTokenIssuer constructs a TokenIssuer from the token settings of cfg.
func NewTokenIssuer(cfg config.App, logger *logger.Logger) TokenIssuer {
	return &tokenIssuer{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// Issue signs a token carrying the user's id, email and role.
func (t *tokenIssuer) Issue(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(t.tokenIssuer, user, t.tokenDuration, t.tokenSignKey, t.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenIssuer.Issue").Msg("error creating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Parse verifies the signature, issuer and expiry of raw. Any failure is
// reported as KindAuthentication wrapping ErrTokenIsExpiredOrInvalid.
func (t *tokenIssuer) Parse(ctx context.Context, raw string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(raw, t.tokenSignKey, t.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.Token{}, newError(KindAuthentication, "tokenIssuer.Parse", ErrTokenIsExpiredOrInvalid)
	}

	return token, nil
}

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-session-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 session token for user.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//   - email, role: copied from user
//
// Returns an error if issuer, signKey or the user ID is empty, or if
// tokenDuration is not positive.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("my-service", user, time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer string, user models.User, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" || user.ID == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: user.Email,
		Role:  user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - HS256 signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim presence
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "my-service")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	var claims models.SessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errors.New("invalid authorization header")
	}
	return strings.TrimSpace(token), nil
}

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, HTTP response writing, HTTP client initialization, JWT token
// generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-session-auth/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the authenticated session user in
// the context. Set by the auth middleware after the session token has been
// validated.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying the session user.
func WithSession(ctx context.Context, user models.SessionUser) context.Context {
	return context.WithValue(ctx, SessionCtxKey, user)
}

// GetSessionFromContext retrieves the session user from the context.
//
// Returns the user and an ok flag:
//   - ok == true:  value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	user, ok := utils.GetSessionFromContext(ctx)
//	if !ok {
//	    // handle missing session in context
//	}
func GetSessionFromContext(ctx context.Context) (models.SessionUser, bool) {
	user, ok := ctx.Value(SessionCtxKey).(models.SessionUser)
	return user, ok
}

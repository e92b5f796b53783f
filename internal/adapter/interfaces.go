// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client for the session auth HTTP API.
//
// [ServerAdapter] hides the transport from callers such as the healthcheck
// command and integration tests. Failed calls return an [*APIError] that
// unwraps to one of the sentinel errors in errors.go, so callers can use
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-session-auth/models"
)

// ServerAdapter defines communication with the auth service. The session
// token returned by Register and Login is kept by the adapter and sent with
// later authenticated calls.
type ServerAdapter interface {
	// SetToken stores the session token used by authenticated calls.
	SetToken(token string)

	// Token returns the stored session token, or an empty string.
	Token() string

	// Register creates an account and keeps the issued session token.
	Register(ctx context.Context, req models.RegistrationRequest) (models.UserResponse, error)

	// Login authenticates and keeps the issued session token.
	Login(ctx context.Context, req models.LoginRequest) (models.UserResponse, error)

	// Logout asks the server to clear the session cookie and forgets the
	// stored token.
	Logout(ctx context.Context) error

	// Me returns the identity asserted by the stored token.
	Me(ctx context.Context) (models.SessionUser, error)

	// Health returns nil when the server reports itself healthy.
	Health(ctx context.Context) error
}

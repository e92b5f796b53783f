// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when no session
// cookie was sent and the "Authorization" header is inspected instead.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries
	// neither a session cookie nor an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

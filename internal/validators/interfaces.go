// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the auth endpoints.
//
// Core concepts:
//   - Validator: generic interface to validate an already decoded request
//     model against the rules declared in its `validate` struct tags.
//   - RequestValidator: decodes a raw JSON body into a named schema
//     (registration or login) and validates it in one step.
//
// Every validation failure is reported as a *ValidationError that lists
// each failing field with a human-readable message, so transport layers
// can render all problems at once instead of the first one only.
package validators

import (
	"context"
	"io"

	"github.com/MKhiriev/go-session-auth/models"
)

//go:generate mockgen -destination=../mock/validators_mock.go -package=mock github.com/MKhiriev/go-session-auth/internal/validators RequestValidator

// Validator defines a generic validation interface for decoded request models.
type Validator interface {

	// Validate validates the provided request model. It returns a
	// *ValidationError when the model breaks one or more rules.
	Validate(ctx context.Context, obj any) error
}

// RequestValidator decodes and validates raw request bodies.
//
// On success the parsed request is returned with a nil error. On failure the
// zero value is returned together with a *ValidationError; any other error
// type signals an unexpected failure of the validator itself.
type RequestValidator interface {
	Validator

	// ValidateRegistration decodes body against the registration schema.
	ValidateRegistration(ctx context.Context, body io.Reader) (models.RegistrationRequest, error)

	// ValidateLogin decodes body against the login schema.
	ValidateLogin(ctx context.Context, body io.Reader) (models.LoginRequest, error)
}

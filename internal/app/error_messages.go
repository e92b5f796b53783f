// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// session auth handlers and middleware.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. Clients compare against them, so the wording is part of the API.
package app

const (
	// MsgUserCreated is the message of a successful registration.
	MsgUserCreated = "User created successfully"

	// MsgUserSignedIn is the message of a successful login.
	MsgUserSignedIn = "User signed in successfully"

	// MsgUserSignedOut is the message of every logout.
	MsgUserSignedOut = "User signed out successfully"

	// MsgValidationError heads a 400 response listing failed fields.
	MsgValidationError = "Validation error"

	// MsgEmailAlreadyInUse is returned when registering a taken email.
	MsgEmailAlreadyInUse = "Email already in use"

	// MsgInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgUnauthorized is returned by routes that need a valid session.
	MsgUnauthorized = "Unauthorized"

	// MsgRejectedValue describes input the validator accepted but the
	// identity service could not store, such as an over-long password.
	MsgRejectedValue = "contains values that cannot be accepted"
)

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by a session token.
//
// The standard "sub" claim holds the user ID; Email and Role are private
// claims so that downstream services can authorise a request without a
// database round-trip.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Email is the address of the user the token was issued for.
	Email string `json:"email"`

	// Role is the authorization level of the user at issuance time.
	Role Role `json:"role"`
}

// Token wraps a signed session JWT.
//
// It embeds [jwt.Token] for low-level inspection and keeps the decoded
// [SessionClaims] next to the compact serialised form that is written into
// the session cookie.
type Token struct {
	// Token is the underlying JWT. Excluded from JSON serialization because
	// only the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set.
	Claims SessionClaims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// UserID returns the subject of the token.
func (t *Token) UserID() string {
	return t.Claims.Subject
}

// SessionUser returns the identity asserted by the token.
func (t *Token) SessionUser() SessionUser {
	return SessionUser{
		ID:    t.Claims.Subject,
		Email: t.Claims.Email,
		Role:  t.Claims.Role,
	}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

package models

import "time"

// Role is the authorization level granted to a user account.
// The set of roles is closed; see [Roles].
type Role string

const (
	// RoleUser is the default role of a self-registered account.
	RoleUser Role = "user"

	// RoleAdmin grants administrative privileges.
	RoleAdmin Role = "admin"
)

// Roles lists every role accepted at registration.
var Roles = []Role{RoleUser, RoleAdmin}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of [Roles].
func (r Role) IsValid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User is an account record owned by the identity service.
// Handlers only read the identity fields; PasswordHash never leaves the
// service and store layers.
type User struct {
	// ID is a UUIDv7 assigned when the account is created.
	ID string `json:"id"`

	// Name is the display name supplied at registration.
	Name string `json:"name"`

	// Email is the login identifier as it was registered. It is unique
	// regardless of case.
	Email string `json:"email"`

	// Role is the authorization level of the account.
	Role Role `json:"role"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Response returns the public projection of the user that is safe to
// serialise into HTTP response bodies.
func (u User) Response() UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by ComparePassword when the password does
// not match the hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword returns the bcrypt hash of password at the given cost.
// Passwords longer than 72 bytes are rejected by bcrypt.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword checks password against a bcrypt hash produced by
// HashPassword. A wrong password yields ErrPasswordMismatch; a malformed
// hash yields a different error.
func ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password: %w", err)
	}
}

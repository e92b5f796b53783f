package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-session-auth/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrNoSessionToken = errors.New("no session token in response")
)

// APIError is a non-2xx answer of the auth service.
type APIError struct {
	StatusCode int
	Message    string
	Details    []models.FieldError

	kind error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the sentinel matching the status code.
func (e *APIError) Unwrap() error {
	return e.kind
}

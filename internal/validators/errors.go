package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-session-auth/models"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError lists every field that failed validation.
// It unwraps to ErrInvalidRequest.
type ValidationError struct {
	Details []models.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.Field+" "+d.Message)
	}
	return ErrInvalidRequest.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

func newValidationError(details ...models.FieldError) *ValidationError {
	return &ValidationError{Details: details}
}

package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Kind classifies a service failure so that transport layers can choose a
// response without matching on error messages.
type Kind uint8

const (
	// KindUnexpected is any failure the caller cannot act upon.
	KindUnexpected Kind = iota

	// KindValidation means the input was rejected before any side effect.
	KindValidation

	// KindDuplicateEmail means an account with the email already exists.
	KindDuplicateEmail

	// KindAuthentication means the credentials or the session token were
	// not accepted. Unknown email and wrong password are not distinguished.
	KindAuthentication
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDuplicateEmail:
		return "duplicate email"
	case KindAuthentication:
		return "authentication"
	default:
		return "unexpected"
	}
}

// Error is a failure tagged with its [Kind] and the operation that
// produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindUnexpected if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

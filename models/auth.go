package models

// RegistrationRequest is the payload accepted by the registration endpoint.
// Validation rules are declared in `validate` tags and enforced by the
// validators package before the request reaches the identity service.
type RegistrationRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72,password"`
	Role     Role   `json:"role" validate:"required,oneof=user admin"`
}

// LoginRequest is the payload accepted by the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the user shape returned by the auth endpoints.
// It deliberately has no password field.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// AuthResponse is the body of a successful register or login call.
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// MessageResponse is a body carrying only a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-validation error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the body of a 400 response produced by
// request validation.
type ValidationErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details"`
}

// SessionResponse is returned by the session introspection endpoint.
type SessionResponse struct {
	User SessionUser `json:"user"`
}

// SessionUser is the identity carried inside a session token.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

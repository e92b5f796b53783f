package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/app"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/validators"
	"github.com/MKhiriev/go-session-auth/models"
)

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) (result, error) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, err := h.validator.ValidateRegistration(ctx, r.Body)
	if err != nil {
		return validationFailed(r, err)
	}

	user, err := h.identity.Create(ctx, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		switch service.KindOf(err) {
		case service.KindDuplicateEmail:
			log.Info().Str("email", req.Email).Msg("email already in use")
			return result{
				status: http.StatusConflict,
				body:   models.ErrorResponse{Error: app.MsgEmailAlreadyInUse},
			}, nil
		case service.KindValidation:
			return rejectedByService(r, err), nil
		}
		return result{}, fmt.Errorf("creating user: %w", err)
	}

	if err := h.startSession(w, r, user); err != nil {
		return result{}, err
	}

	log.Info().Str("email", user.Email).Msg("user signed up")
	return result{
		status: http.StatusCreated,
		body:   models.AuthResponse{Message: app.MsgUserCreated, User: user.Response()},
	}, nil
}

func (h *Handler) loginUser(w http.ResponseWriter, r *http.Request) (result, error) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, err := h.validator.ValidateLogin(ctx, r.Body)
	if err != nil {
		return validationFailed(r, err)
	}

	user, err := h.identity.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		switch service.KindOf(err) {
		case service.KindAuthentication:
			log.Info().Str("email", req.Email).Msg("sign in rejected")
			return result{
				status: http.StatusUnauthorized,
				body:   models.ErrorResponse{Error: app.MsgInvalidCredentials},
			}, nil
		case service.KindValidation:
			return rejectedByService(r, err), nil
		}
		return result{}, fmt.Errorf("authenticating user: %w", err)
	}

	if err := h.startSession(w, r, user); err != nil {
		return result{}, err
	}

	log.Info().Str("email", user.Email).Msg("user signed in")
	return result{
		status: http.StatusOK,
		body:   models.AuthResponse{Message: app.MsgUserSignedIn, User: user.Response()},
	}, nil
}

func (h *Handler) logoutUser(w http.ResponseWriter, r *http.Request) (result, error) {
	if err := h.sessions.Clear(w); err != nil {
		return result{}, fmt.Errorf("clearing session cookie: %w", err)
	}

	logger.FromRequest(r).Info().Msg("user signed out")
	return result{
		status: http.StatusOK,
		body:   models.MessageResponse{Message: app.MsgUserSignedOut},
	}, nil
}

// startSession issues a token for user and attaches it to the response.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User) error {
	token, err := h.tokens.Issue(r.Context(), user)
	if err != nil {
		return fmt.Errorf("issuing token: %w", err)
	}
	if err := h.sessions.Set(w, token.SignedString); err != nil {
		return fmt.Errorf("setting session cookie: %w", err)
	}
	return nil
}

// validationFailed shapes a 400 response from a validator error. Any other
// error is passed on as unexpected.
func validationFailed(r *http.Request, err error) (result, error) {
	var vErr *validators.ValidationError
	if !errors.As(err, &vErr) {
		return result{}, fmt.Errorf("validating request: %w", err)
	}

	logger.FromRequest(r).Info().Str("reason", vErr.Error()).Msg("request rejected by validation")
	return result{
		status: http.StatusBadRequest,
		body: models.ValidationErrorResponse{
			Error:   app.MsgValidationError,
			Details: vErr.Details,
		},
	}, nil
}

// rejectedByService shapes a 400 response for input the validator let
// through but the identity service refused, such as a password longer than
// 72 bytes made of multi-byte characters.
func rejectedByService(r *http.Request, err error) result {
	logger.FromRequest(r).Info().Err(err).Msg("request rejected by identity service")
	return result{
		status: http.StatusBadRequest,
		body: models.ValidationErrorResponse{
			Error: app.MsgValidationError,
			Details: []models.FieldError{
				{Field: validators.FieldBody, Message: app.MsgRejectedValue},
			},
		},
	}
}

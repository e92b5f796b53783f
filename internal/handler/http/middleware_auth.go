package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/app"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/session"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

// auth is an HTTP middleware that requires a valid session token.
//
// The token is read from the session cookie, or from an
// "Authorization: Bearer <token>" header when no cookie was sent. On
// success the session user is stored in the request context with
// [utils.WithSession]. Every failure is answered with 401 and the same body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		raw, err := h.sessionToken(r)
		if err != nil {
			log.Info().Err(err).Msg("no session token")
			writeJSON(w, r, models.ErrorResponse{Error: app.MsgUnauthorized}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.tokens.Parse(ctx, raw)
		if err != nil {
			log.Info().Err(err).Msg("session token rejected")
			writeJSON(w, r, models.ErrorResponse{Error: app.MsgUnauthorized}, http.StatusUnauthorized)
			return
		}

		ctx = utils.WithSession(ctx, token.SessionUser())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionToken returns the raw token carried by r. The cookie wins over the
// Authorization header.
func (h *Handler) sessionToken(r *http.Request) (string, error) {
	raw, err := h.sessions.Read(r)
	if err == nil {
		return raw, nil
	}
	if !errors.Is(err, session.ErrNoSession) {
		return "", err
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}
	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}
	return token, nil
}

// me returns the identity asserted by the session token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeJSON(w, r, models.ErrorResponse{Error: app.MsgUnauthorized}, http.StatusUnauthorized)
		return
	}

	writeJSON(w, r, models.SessionResponse{User: user}, http.StatusOK)
}

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/utils"
)

// errorStatusMap refines the status of unexpected failures. Errors that
// match no entry are answered with 500.
var errorStatusMap = map[error]int{
	store.ErrDatabaseUnavailable: http.StatusServiceUnavailable,
	context.DeadlineExceeded:     http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeUnexpected logs err and answers with a generic 5xx body that does not
// leak the cause.
func writeUnexpected(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	logger.FromRequest(r).Error().Err(err).
		Str("uri", r.RequestURI).
		Int("status", status).
		Msg("unexpected error")

	if _, wErr := utils.WriteError(w, http.StatusText(status), status); wErr != nil {
		logger.FromRequest(r).Err(wErr).Msg("failed to write error response")
	}
}

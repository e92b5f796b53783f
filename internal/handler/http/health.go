package http

import (
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/logger"
)

type healthResponse struct {
	Status string `json:"status"`
}

// healthz reports whether the service can reach its database.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Msg("database ping failed")
			writeJSON(w, r, healthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
			return
		}
	}

	writeJSON(w, r, healthResponse{Status: "ok"}, http.StatusOK)
}

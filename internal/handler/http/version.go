package http

import (
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.appInfo.GetAppVersion(r.Context())

	if _, err := utils.WriteText(w, serverVersion, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write version")
	}
}

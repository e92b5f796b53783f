// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/utils"
)

// result is the response an endpoint decided on: a status code and a body
// serialised as JSON.
type result struct {
	status int
	body   any
}

// endpoint is the inner form of an auth route. It returns the response to
// send, or an error for failures it does not know how to answer.
type endpoint func(w http.ResponseWriter, r *http.Request) (result, error)

// respond adapts an endpoint to [http.HandlerFunc]. A returned error is
// answered by [writeUnexpected]; otherwise the result is written as JSON.
func (h *Handler) respond(fn endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := fn(w, r)
		if err != nil {
			writeUnexpected(w, r, err)
			return
		}

		writeJSON(w, r, res.body, res.status)
	}
}

// writeJSON writes body as JSON and logs a failed write.
func writeJSON(w http.ResponseWriter, r *http.Request, body any, status int) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Int("status", status).Msg("failed to write response")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// A request whose path matches a route but whose method is not registered
// for it is answered with 404 instead of chi's default 405, so callers
// cannot probe which auth routes exist. Only exact patterns are compared.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		w.WriteHeader(http.StatusNotFound)
	}
}

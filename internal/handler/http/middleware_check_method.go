// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the MethodNotAllowed handler of router.
//
// chi answers 405 when a path is registered but the method is not. The
// gateway answers the regular JSON 404 instead, so an unsupported method
// does not reveal that a route exists. A request the router can match after
// all (HEAD rewritten by middleware.GetHead, for example) is served as
// usual.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			respondError(w, r, ErrRouteNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

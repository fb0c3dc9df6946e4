// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

var routableMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// The request path is matched against router for every routable method; the
// methods that match are advertised in the "Allow" header and the request is
// answered with a 405 error envelope. If no method matches (chi can report
// 405 for a path that only partially matches a pattern), a 404 envelope is
// rendered instead.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range routableMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) == 0 {
			writeError(w, r, ErrRouteNotFound)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		writeError(w, r, ErrMethodNotAllowed)
	}
}

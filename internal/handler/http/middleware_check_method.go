// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/what-to-cook/models"
)

// notFound answers unknown paths with a JSON 404.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.ErrorResponse{Error: "Not Found"}, http.StatusNotFound)
}

// methodNotAllowed returns the router's MethodNotAllowed handler.
//
// Chi calls it when the path matches a registered route but the method does
// not. The response is a JSON 405 with an "Allow" header listing the methods
// registered for that path. The lookup compares each route pattern with the
// raw request path, which is enough because no route has parameters.
func methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			for method := range route.Handlers {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) > 0 {
			slices.Sort(allowed)
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		writeJSON(w, r, models.ErrorResponse{Error: "Method Not Allowed"}, http.StatusMethodNotAllowed)
	}
}

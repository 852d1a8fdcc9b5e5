// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-catalog-admin/internal/utils"
	"github.com/go-chi/chi/v5"
)

// supportedMethods are the methods the API registers on any route.
var supportedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi calls it when the request path matches a registered route but the
// method is not handled. The handler looks the path up in a flat index of
// every route of the router, lists the methods registered for that exact
// pattern in the "Allow" header and answers 405 with a JSON error body.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	var (
		once  sync.Once
		index *chi.Mux
	)

	return func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { index = routeIndex(router) })

		path := trimSlash(r.URL.Path)
		rctx := chi.NewRouteContext()

		var allowed []string
		for _, method := range supportedMethods {
			rctx.Reset()
			if index.Match(rctx, method, path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) == 0 {
			notFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), "")
	}
}

// routeIndex registers every route of router on a mux without sub-routers.
// Matching a mounted router's own path would otherwise resolve to the
// mount handler, which accepts every method.
func routeIndex(router chi.Routes) *chi.Mux {
	index := chi.NewRouter()
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		index.Method(method, trimSlash(route), noop)
		return nil
	})

	return index
}

func trimSlash(path string) string {
	if trimmed := strings.TrimSuffix(path, "/"); trimmed != "" {
		return trimmed
	}
	return "/"
}

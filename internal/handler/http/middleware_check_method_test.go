// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRouter creates a minimal chi.Mux shaped like one collection of the
// API. It intentionally does not use Handler.Init() to avoid service setup.
func buildRouter() *chi.Mux {
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router := chi.NewRouter()
	router.Route("/api/items", func(r chi.Router) {
		r.Get("/", ok)
		r.Post("/", ok)
		r.Get("/{id}", ok)
		r.Put("/{id}", ok)
		r.Delete("/{id}", ok)
	})
	router.Post("/api/login", ok)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "registered method passes", method: http.MethodGet, path: "/api/items/3", wantStatus: http.StatusOK},
		{name: "collection PUT", method: http.MethodPut, path: "/api/items", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, POST"},
		{name: "item PATCH", method: http.MethodPatch, path: "/api/items/3", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, PUT, DELETE"},
		{name: "item POST", method: http.MethodPost, path: "/api/items/3", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, PUT, DELETE"},
		{name: "login GET", method: http.MethodGet, path: "/api/login", wantStatus: http.StatusMethodNotAllowed, wantAllow: "POST"},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	router := buildRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
		})
	}
}

func TestCheckHTTPMethod_WritesJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/api/items/1", nil)
	rr := httptest.NewRecorder()

	buildRouter().ServeHTTP(rr, req)

	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Method Not Allowed"}`, rr.Body.String())
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPatch, "/api/items/1", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		}()
	}
	wg.Wait()
}

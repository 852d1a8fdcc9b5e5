package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-catalog-admin/internal/logger"
)

// ---- Helpers ----

// accessLog serves one request through withLogging with a buffer-backed
// request logger and returns the recorder and the decoded access entry.
func accessLog(t *testing.T, method, target string, next http.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	ctx := logger.NewWriterLogger(&buf, "test").Into(t.Context())
	req := httptest.NewRequest(method, target, nil).WithContext(ctx)

	rr := httptest.NewRecorder()
	newTestHandler().withLogging(next).ServeHTTP(rr, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "one access entry expected, got %q", buf.String())
	return rr, entry
}

func respondWith(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// ---- Access entry fields ----

func TestWithLogging_Entry(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		next      http.HandlerFunc
		wantLevel string
		wantCode  int
		wantSize  int
	}{
		{
			name:      "list categories",
			method:    http.MethodGet,
			target:    "/api/categories",
			next:      respondWith(http.StatusOK, `[]`),
			wantLevel: "info",
			wantCode:  http.StatusOK,
			wantSize:  2,
		},
		{
			name:      "create product",
			method:    http.MethodPost,
			target:    "/api/products",
			next:      respondWith(http.StatusCreated, `{"id":1}`),
			wantLevel: "info",
			wantCode:  http.StatusCreated,
			wantSize:  8,
		},
		{
			name:      "delete user",
			method:    http.MethodDelete,
			target:    "/api/users/3",
			next:      respondWith(http.StatusNoContent, ""),
			wantLevel: "info",
			wantCode:  http.StatusNoContent,
		},
		{
			name:      "client error stays info",
			method:    http.MethodPut,
			target:    "/api/users/99",
			next:      respondWith(http.StatusNotFound, `{"error":"user not found"}`),
			wantLevel: "info",
			wantCode:  http.StatusNotFound,
			wantSize:  26,
		},
		{
			name:      "server error is logged as error",
			method:    http.MethodGet,
			target:    "/api/products",
			next:      respondWith(http.StatusInternalServerError, "Internal Server Error"),
			wantLevel: "error",
			wantCode:  http.StatusInternalServerError,
			wantSize:  21,
		},
		{
			name:   "implicit 200",
			method: http.MethodGet,
			target: "/api/version",
			next: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{}"))
			},
			wantLevel: "info",
			wantCode:  http.StatusOK,
			wantSize:  2,
		},
		{
			name:      "query string kept in uri",
			method:    http.MethodGet,
			target:    "/api/products?page=2",
			next:      respondWith(http.StatusOK, strings.Repeat("a", 1024)),
			wantLevel: "info",
			wantCode:  http.StatusOK,
			wantSize:  1024,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, entry := accessLog(t, tt.method, tt.target, tt.next)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.target, entry["uri"])
			assert.Equal(t, float64(tt.wantCode), entry["status"])
			assert.Equal(t, float64(tt.wantSize), entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_DurationCoversHandler(t *testing.T) {
	const delay = 40 * time.Millisecond

	_, entry := accessLog(t, http.MethodGet, "/api/users", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		w.WriteHeader(http.StatusOK)
	})

	// zerolog writes durations in milliseconds by default
	ms, ok := entry["duration"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, ms, float64(delay.Milliseconds()))
}

// ---- Panics ----

func TestWithLogging_LeavesPanicsToRecoverer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), req)
	})
}

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHTTPError_Bodies(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantKind    error
		wantMessage string
	}{
		{name: "json error body", status: http.StatusBadRequest, contentType: "application/json", body: `{"error":"name is required","field":"name"}`, wantKind: ErrBadRequest, wantMessage: "name is required"},
		{name: "plain text body", status: http.StatusMethodNotAllowed, contentType: "text/plain", body: "nope\n", wantKind: ErrMethodNotAllowed, wantMessage: "nope"},
		{name: "empty body", status: http.StatusBadGateway, wantMessage: "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := newTestAdapter(t, srv.URL).client.R().SetContext(context.Background()).Get("/")
			require.NoError(t, err)

			mapped := mapHTTPError(resp)
			require.Error(t, mapped)

			var apiErr *APIError
			require.True(t, errors.As(mapped, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			if tt.wantKind != nil {
				assert.ErrorIs(t, mapped, tt.wantKind)
			} else {
				assert.Nil(t, errors.Unwrap(mapped))
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "http 404: category not found", (&APIError{StatusCode: 404, Message: "category not found"}).Error())
	assert.Equal(t, "http 400: stock must be no less than 0 (field stock)", (&APIError{StatusCode: 400, Message: "stock must be no less than 0", Field: "stock"}).Error())
}

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-catalog-admin/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log := logger.FromRequest(r)
		event := log.Info()
		if lw.statusCode() >= http.StatusInternalServerError {
			event = log.Error()
		}

		event.
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.statusCode()).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

package http

import "net/http"

const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request logger and the response with a trace id.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// an upstream proxy may already have assigned one
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		r = r.WithContext(h.logger.With("trace_id", traceID).Into(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

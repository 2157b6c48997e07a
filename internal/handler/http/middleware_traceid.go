package http

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-photo-album/internal/utils"
)

const (
	traceIDHeader = "X-Trace-ID"
	maxTraceIDLen = 64
)

// validTraceID accepts caller supplied ids made of letters, digits, '-' and
// '_' so that they can be logged and echoed back as-is.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

// withTraceID tags the request with a trace id and a child logger carrying
// it. A valid X-Trace-ID from the caller is kept, anything else is replaced.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = h.traceIDs.Generate()
		}

		reqLogger := h.logger.GetChildLogger()
		reqLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID).Str("path", r.URL.Path)
		})

		ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)
		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(reqLogger.WithContext(ctx)))
	})
}

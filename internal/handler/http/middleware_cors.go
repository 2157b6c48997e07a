package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows the frontend origin to call the API with credentials.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.frontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover, h.withCORS(), withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/health", h.health)
	router.Get("/health/ready", h.ready)

	// provider login and token endpoints
	router.Route("/api/auth", func(r chi.Router) {
		r.Get("/line", h.lineLogin)
		r.Get("/line/callback", h.lineCallback)
		r.Post("/liff", h.liffLogin)
		r.Get("/me", h.me)
		r.Post("/logout", h.logout)
	})

	// albums accept anonymous requests; a bearer token, when sent, must
	// belong to the requested user
	router.Route("/api/albums", func(r chi.Router) {
		r.Use(h.optionalAuth)
		r.Get("/", h.listAlbums)
		r.Post("/", h.createAlbum)
		r.Post("/default", h.ensureDefaultAlbum)
		r.Get("/{albumId}/photos", h.listPhotos)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}

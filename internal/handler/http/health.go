package http

import (
	"net/http"

	"github.com/MKhiriev/go-photo-album/internal/app"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.HealthService.Check(r.Context()), http.StatusOK)
}

// ready answers 503 while the database is unreachable.
func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Ready(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.ready").Msg("database is not ready")
		utils.WriteError(w, http.StatusServiceUnavailable, app.MsgServerError, app.KindServer)
		return
	}
	utils.WriteJSON(w, h.services.HealthService.Check(r.Context()), http.StatusOK)
}

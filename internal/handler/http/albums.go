package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-photo-album/internal/app"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/utils"
	"github.com/MKhiriev/go-photo-album/models"
)

func (h *Handler) listAlbums(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("userId")
	if !authorizeUser(w, r, userID) {
		return
	}

	albums, err := h.services.AlbumService.ListAlbums(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err, "Handler.listAlbums")
		return
	}
	if albums == nil {
		albums = []models.Album{}
	}

	utils.WriteJSON(w, models.AlbumsResponse{Albums: albums}, http.StatusOK)
}

func (h *Handler) createAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateAlbumRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Debug().Err(err).Str("func", "Handler.createAlbum").Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidJSON, app.KindValidation)
		return
	}
	if !authorizeUser(w, r, req.UserID) {
		return
	}

	album, err := h.services.AlbumService.CreateAlbum(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "Handler.createAlbum")
		return
	}

	utils.WriteJSON(w, models.AlbumResponse{Album: album}, http.StatusCreated)
}

// ensureDefaultAlbum answers 201 when the album was created by this call and
// 200 with the stored album otherwise.
func (h *Handler) ensureDefaultAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.EnsureDefaultAlbumRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Debug().Err(err).Str("func", "Handler.ensureDefaultAlbum").Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidJSON, app.KindValidation)
		return
	}
	if !authorizeUser(w, r, req.UserID) {
		return
	}

	res, err := h.services.AlbumService.EnsureDefaultAlbum(ctx, req.UserID)
	if err != nil {
		writeServiceError(w, r, err, "Handler.ensureDefaultAlbum")
		return
	}

	if !res.Created {
		utils.WriteJSON(w, models.AlbumResponse{Album: res.Album, Message: app.MsgDefaultAlbumExists}, http.StatusOK)
		return
	}
	utils.WriteJSON(w, models.AlbumResponse{Album: res.Album}, http.StatusCreated)
}

func (h *Handler) listPhotos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("userId")
	if !authorizeUser(w, r, userID) {
		return
	}

	photos, err := h.services.AlbumService.ListPhotos(ctx, userID, chi.URLParam(r, "albumId"))
	if err != nil {
		writeServiceError(w, r, err, "Handler.listPhotos")
		return
	}
	if photos == nil {
		photos = []models.Photo{}
	}

	utils.WriteJSON(w, models.PhotosResponse{Photos: photos}, http.StatusOK)
}

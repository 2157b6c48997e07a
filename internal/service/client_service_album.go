package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-photo-album/internal/adapter"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/models"
)

type clientAlbumService struct {
	session *ClientSessionManager
	adapter adapter.ServerAdapter
	// local serves the demo user from the local album repository.
	local AlbumService

	logger *logger.Logger
}

func NewClientAlbumService(session *ClientSessionManager, serverAdapter adapter.ServerAdapter, local AlbumService, logger *logger.Logger) ClientAlbumService {
	return &clientAlbumService{
		session: session,
		adapter: serverAdapter,
		local:   local,
		logger:  logger,
	}
}

func (s *clientAlbumService) user() (models.SessionUser, error) {
	user, ok := s.session.User()
	if !ok {
		return models.SessionUser{}, ErrNotAuthenticated
	}
	return user, nil
}

func (s *clientAlbumService) ListAlbums(ctx context.Context) ([]models.Album, error) {
	user, err := s.user()
	if err != nil {
		return nil, err
	}

	if s.session.IsDemoUser() {
		return s.local.ListAlbums(ctx, user.ID)
	}

	albums, err := s.adapter.ListAlbums(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing albums on server: %w", mapAdapterError(err))
	}
	return albums, nil
}

func (s *clientAlbumService) CreateAlbum(ctx context.Context, title, description string) (models.Album, error) {
	user, err := s.user()
	if err != nil {
		return models.Album{}, err
	}

	req := models.CreateAlbumRequest{UserID: user.ID, Title: title}
	if d := strings.TrimSpace(description); d != "" {
		req.Description = &d
	}

	if s.session.IsDemoUser() {
		return s.local.CreateAlbum(ctx, req)
	}

	album, err := s.adapter.CreateAlbum(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "clientAlbumService.CreateAlbum").
			Msg("album creation on server failed")
		return models.Album{}, fmt.Errorf("error creating album on server: %w", mapAdapterError(err))
	}
	return album, nil
}

func (s *clientAlbumService) EnsureDefaultAlbum(ctx context.Context) (models.Album, bool, error) {
	user, err := s.user()
	if err != nil {
		return models.Album{}, false, err
	}

	if s.session.IsDemoUser() {
		res, err := s.local.EnsureDefaultAlbum(ctx, user.ID)
		if err != nil {
			return models.Album{}, false, err
		}
		return res.Album, res.Created, nil
	}

	album, created, err := s.adapter.EnsureDefaultAlbum(ctx, user.ID)
	if err != nil {
		return models.Album{}, false, fmt.Errorf("error ensuring default album on server: %w", mapAdapterError(err))
	}
	return album, created, nil
}

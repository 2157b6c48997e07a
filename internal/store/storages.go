package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/logger"
)

// Storages groups the repositories of the API server.
type Storages struct {
	UserRepository UserRepository

	// RemoteAlbums serves every user except the demo user.
	RemoteAlbums AlbumRepository
	// LocalAlbums serves the demo user.
	LocalAlbums AlbumRepository

	db      *DB
	localKV KV
}

// NewStorages connects to PostgreSQL, applies migrations and opens the local
// store used for the demo user.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv, err := NewLocalKV(ctx, cfg.Local, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		RemoteAlbums:   NewAlbumRepository(db, logger),
		LocalAlbums:    NewLocalAlbumRepository(kv, logger),
		db:             db,
		localKV:        kv,
	}, nil
}

// Ping reports whether the database answers.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

// Close releases the database and the local store.
func (s *Storages) Close() error {
	var err error
	if s.localKV != nil {
		err = s.localKV.Close()
	}
	if s.db != nil {
		if dbErr := s.db.Close(); dbErr != nil {
			err = dbErr
		}
	}
	return err
}

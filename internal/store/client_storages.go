package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/logger"
)

// Local drivers accepted by [NewLocalKV].
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
	DriverMemory = "memory"
)

// ClientStorages groups the client-side stores. Persistent stores share one
// [KV]; Session is a process-scoped [KV] that is gone on exit.
type ClientStorages struct {
	// Persistent is the local key/value store kept between runs.
	Persistent KV
	// Session holds values scoped to one client run.
	Session KV

	Photos    *LocalPhotoStore
	Albums    AlbumRepository
	Index     *AlbumIndex
	Auth      *SessionStore
	Slideshow *SlideshowStore
}

// NewClientStorages opens the persistent store described by cfg and wires
// every client repository to it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	kv, err := NewLocalKV(ctx, cfg.Local, logger)
	if err != nil {
		return nil, err
	}

	return NewClientStoragesFromKV(kv, NewMemoryKV(0), logger), nil
}

// NewClientStoragesFromKV wires the client repositories to existing stores.
func NewClientStoragesFromKV(persistent, session KV, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Persistent: persistent,
		Session:    session,
		Photos:     NewLocalPhotoStore(persistent, logger),
		Albums:     NewLocalAlbumRepository(persistent, logger),
		Index:      NewAlbumIndex(persistent),
		Auth:       NewSessionStore(persistent),
		Slideshow:  NewSlideshowStore(persistent),
	}
}

// Close closes both stores.
func (s *ClientStorages) Close() error {
	if err := s.Session.Close(); err != nil {
		return err
	}
	return s.Persistent.Close()
}

// NewLocalKV opens the persistent [KV] selected by cfg.Driver.
func NewLocalKV(ctx context.Context, cfg config.Local, logger *logger.Logger) (KV, error) {
	switch cfg.Driver {
	case DriverSQLite:
		kv, err := NewConnectSQLite(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return kv, nil
	case DriverBolt:
		if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
			return nil, err
		}
		return NewBoltKV(cfg.DSN, cfg.QuotaBytes)
	case DriverMemory:
		return NewMemoryKV(cfg.QuotaBytes), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocalDriver, cfg.Driver)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/models"
)

// ChunkSize is the largest serialized photo list stored without framing.
const ChunkSize = 1024 * 1024

const (
	// chunkMarker starts a value made of length-prefixed chunks:
	// |CHUNKED|v2|<len>:<chunk><len>:<chunk>...
	chunkMarker = "|CHUNKED|v2|"

	// legacyChunkDelimiter joined plain chunks in the first storage format.
	// It is only understood on read.
	legacyChunkDelimiter = "|CHUNK|"
)

// LocalPhotoStore keeps the photo list of each album as one JSON value in a
// [KV]. Lists bigger than [ChunkSize] are split into length-prefixed chunks.
type LocalPhotoStore struct {
	kv     KV
	logger *logger.Logger
}

func NewLocalPhotoStore(kv KV, logger *logger.Logger) *LocalPhotoStore {
	return &LocalPhotoStore{kv: kv, logger: logger}
}

// Save replaces the photo list stored under albumKey. On [ErrStorageQuota]
// the previous list stays readable.
func (s *LocalPhotoStore) Save(ctx context.Context, albumKey string, photos []models.Photo) error {
	if photos == nil {
		photos = []models.Photo{}
	}

	data, err := json.Marshal(photos)
	if err != nil {
		return fmt.Errorf("error encoding photos: %w", err)
	}

	value := encodeChunks(string(data))
	if err := s.kv.Set(ctx, albumKey, value); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "LocalPhotoStore.Save").
			Str("key", albumKey).
			Int("photos", len(photos)).
			Int("bytes", len(value)).
			Msg("failed to save photos")
		return err
	}
	return nil
}

// Load returns the photo list stored under albumKey. A missing key yields an
// empty list.
func (s *LocalPhotoStore) Load(ctx context.Context, albumKey string) ([]models.Photo, error) {
	value, err := s.kv.Get(ctx, albumKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []models.Photo{}, nil
	}
	if err != nil {
		return nil, err
	}

	data, err := decodeChunks(value)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "LocalPhotoStore.Load").
			Str("key", albumKey).
			Msg("failed to reassemble chunks")
		return nil, err
	}

	photos := make([]models.Photo, 0)
	if err := json.Unmarshal([]byte(data), &photos); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedData, err)
	}
	if photos == nil {
		photos = []models.Photo{}
	}
	return photos, nil
}

// Remove drops the photo list of albumKey.
func (s *LocalPhotoStore) Remove(ctx context.Context, albumKey string) error {
	return s.kv.Remove(ctx, albumKey)
}

// SaveOrder stores the photo IDs of albumID in display order. The order
// covers baseline and server photos too, which are never written to the
// photo list itself.
func (s *LocalPhotoStore) SaveOrder(ctx context.Context, albumID string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("error encoding photo order: %w", err)
	}
	return s.kv.Set(ctx, models.AlbumOrderKey(albumID), string(data))
}

// LoadOrder returns the stored photo order of albumID, or nil when the user
// never reordered it.
func (s *LocalPhotoStore) LoadOrder(ctx context.Context, albumID string) ([]string, error) {
	value, err := s.kv.Get(ctx, models.AlbumOrderKey(albumID))
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(value), &ids); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedData, err)
	}
	return ids, nil
}

// encodeChunks frames data when it is larger than ChunkSize. Small values
// that contain the legacy delimiter are framed as well, otherwise the legacy
// reader would strip it.
func encodeChunks(data string) string {
	if len(data) <= ChunkSize && !strings.Contains(data, legacyChunkDelimiter) {
		return data
	}

	var b strings.Builder
	b.Grow(len(data) + len(chunkMarker) + 16*(len(data)/ChunkSize+1))
	b.WriteString(chunkMarker)
	for start := 0; start < len(data); start += ChunkSize {
		end := min(start+ChunkSize, len(data))
		b.WriteString(strconv.Itoa(end - start))
		b.WriteByte(':')
		b.WriteString(data[start:end])
	}
	return b.String()
}

func decodeChunks(value string) (string, error) {
	if rest, ok := strings.CutPrefix(value, chunkMarker); ok {
		var b strings.Builder
		b.Grow(len(rest))
		for rest != "" {
			head, tail, found := strings.Cut(rest, ":")
			if !found {
				return "", fmt.Errorf("%w: missing chunk length", ErrCorruptedData)
			}
			n, err := strconv.Atoi(head)
			if err != nil || n < 0 || n > len(tail) {
				return "", fmt.Errorf("%w: bad chunk length %q", ErrCorruptedData, head)
			}
			b.WriteString(tail[:n])
			rest = tail[n:]
		}
		return b.String(), nil
	}

	// legacy values: the delimiter is removed wherever it appears
	if strings.Contains(value, legacyChunkDelimiter) {
		return strings.Join(strings.Split(value, legacyChunkDelimiter), ""), nil
	}

	return value, nil
}

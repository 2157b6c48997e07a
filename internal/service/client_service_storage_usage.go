package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/store"
	"github.com/MKhiriev/go-photo-album/models"
)

// StorageUsageMonitor reports how much local storage the client uses.
type StorageUsageMonitor struct {
	persistent store.KV
	session    store.KV

	logger *logger.Logger
}

func NewStorageUsageMonitor(persistent, session store.KV, logger *logger.Logger) *StorageUsageMonitor {
	return &StorageUsageMonitor{persistent: persistent, session: session, logger: logger}
}

// EstimateUsage asks the persistent store for its own estimate. When the
// store cannot estimate, the size of every entry of both stores is summed
// instead and the storage is reported as available with an unknown quota.
func (m *StorageUsageMonitor) EstimateUsage(ctx context.Context) (models.StorageUsage, error) {
	log := logger.FromContext(ctx)

	if estimator, ok := m.persistent.(store.Estimator); ok {
		used, quota, err := estimator.Estimate(ctx)
		if err == nil {
			return models.StorageUsage{
				UsedBytes:   used,
				QuotaBytes:  quota,
				IsAvailable: quota > used,
				Estimated:   true,
			}, nil
		}
		log.Debug().Err(err).Str("func", "StorageUsageMonitor.EstimateUsage").Msg("falling back to summing entries")
	}

	var used int64
	for _, kv := range []store.KV{m.session, m.persistent} {
		if kv == nil {
			continue
		}
		n, err := sumEntries(ctx, kv)
		if err != nil {
			return models.StorageUsage{}, fmt.Errorf("error measuring local storage: %w", err)
		}
		used += n
	}

	return models.StorageUsage{UsedBytes: used, IsAvailable: true}, nil
}

func sumEntries(ctx context.Context, kv store.KV) (int64, error) {
	keys, err := kv.Keys(ctx)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, key := range keys {
		value, err := kv.Get(ctx, key)
		if errors.Is(err, store.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return 0, err
		}
		total += int64(len(key) + len(value))
	}
	return total, nil
}

// ClearLocalData removes every album, photo list and slideshow setting kept
// in both stores. The session pair stays so the user remains signed in. It
// returns the number of removed keys.
func (m *StorageUsageMonitor) ClearLocalData(ctx context.Context) (int, error) {
	removed := 0
	for _, kv := range []store.KV{m.session, m.persistent} {
		if kv == nil {
			continue
		}
		keys, err := kv.Keys(ctx)
		if err != nil {
			return removed, fmt.Errorf("error listing local keys: %w", err)
		}
		for _, key := range keys {
			if key == store.AuthTokenKey || key == store.AuthUserKey {
				continue
			}
			if err := kv.Remove(ctx, key); err != nil {
				return removed, fmt.Errorf("error removing %s: %w", key, err)
			}
			removed++
		}
	}

	logger.FromContext(ctx).Info().
		Str("func", "StorageUsageMonitor.ClearLocalData").
		Int("keys", removed).
		Msg("local data cleared")
	return removed, nil
}

package store

import (
	"context"
	"errors"
)

//go:generate mockgen -source=client_kv.go -destination=../mock/kv_mock.go -package=mock

// ErrQuotaUnknown is returned by [Estimator.Estimate] when the store has no
// configured quota.
var ErrQuotaUnknown = errors.New("storage quota is unknown")

// KV is a string key/value store. Writes are atomic per key: a failed Set
// leaves the previous value readable.
type KV interface {
	// Get returns the value of key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key or fails with [ErrStorageQuota].
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// Keys lists every stored key.
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// Estimator is implemented by stores that know their own usage and quota.
type Estimator interface {
	Estimate(ctx context.Context) (used, quota int64, err error)
}

// entrySize is the usage accounted for one entry.
func entrySize(key, value string) int64 {
	return int64(len(key) + len(value))
}

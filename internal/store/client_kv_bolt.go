package store

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var bucketKV = []byte("kv")

// boltKV is the persistent [KV] backed by a bbolt file with one bucket.
type boltKV struct {
	db    *bbolt.DB
	quota int64
}

// NewBoltKV opens the bbolt file at path and creates the bucket.
func NewBoltKV(path string, quota int64) (KV, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketKV); err != nil {
			return fmt.Errorf("failed to create kv bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &boltKV{db: db, quota: quota}, nil
}

func (b *boltKV) Get(_ context.Context, key string) (string, error) {
	var value string
	err := b.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketKV).Get([]byte(key))
		if data == nil {
			return ErrKeyNotFound
		}
		value = string(data)
		return nil
	})
	return value, err
}

// Set checks the quota and writes inside the same read-write transaction.
func (b *boltKV) Set(_ context.Context, key, value string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKV)

		if b.quota > 0 {
			used := usedBytes(bucket, key)
			if used+entrySize(key, value) > b.quota {
				return ErrStorageQuota
			}
		}

		if err := bucket.Put([]byte(key), []byte(value)); err != nil {
			return fmt.Errorf("failed to save value: %w", err)
		}
		return nil
	})
}

func (b *boltKV) Remove(_ context.Context, key string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketKV).Delete([]byte(key))
	})
}

func (b *boltKV) Keys(_ context.Context) ([]string, error) {
	keys := make([]string, 0, 16)
	err := b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketKV).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}

// Estimate implements [Estimator].
func (b *boltKV) Estimate(_ context.Context) (int64, int64, error) {
	if b.quota <= 0 {
		return 0, 0, ErrQuotaUnknown
	}

	var used int64
	err := b.db.View(func(tx *bbolt.Tx) error {
		used = usedBytes(tx.Bucket(bucketKV), "")
		return nil
	})
	return used, b.quota, err
}

func (b *boltKV) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}

// usedBytes sums every entry except the one stored under skip.
func usedBytes(bucket *bbolt.Bucket, skip string) int64 {
	var used int64
	_ = bucket.ForEach(func(k, v []byte) error {
		if string(k) != skip {
			used += int64(len(k) + len(v))
		}
		return nil
	})
	return used
}

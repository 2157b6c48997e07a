package store

import (
	"context"
	"sort"
	"sync"
)

// memoryKV keeps entries in process memory. It backs the session-scoped
// store of the client and the "memory" local driver.
type memoryKV struct {
	mu      sync.RWMutex
	entries map[string]string
	quota   int64
}

// NewMemoryKV returns an empty in-memory [KV]. A positive quota limits the
// total size of keys and values.
func NewMemoryKV(quota int64) KV {
	return &memoryKV{
		entries: make(map[string]string),
		quota:   quota,
	}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.quota > 0 {
		var used int64
		for k, v := range m.entries {
			if k != key {
				used += entrySize(k, v)
			}
		}
		if used+entrySize(key, value) > m.quota {
			return ErrStorageQuota
		}
	}

	m.entries[key] = value
	return nil
}

func (m *memoryKV) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

func (m *memoryKV) Keys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *memoryKV) Close() error {
	return nil
}

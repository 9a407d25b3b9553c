// Package cache provides a time-expiring key/value store for dataset
// snapshots.
//
// The production store lives in Postgres so the expiry window is shared by
// every instance; the in-process store covers single-instance deployments
// without a database and tests. Callers treat Put as best effort: a failed
// write is logged and swallowed, never surfaced to the request.
package cache

import (
	"context"
	"sync"
	"time"
)

// Store is a key/value store with per-entry expiration.
type Store interface {
	// Get returns the value for key and whether an unexpired entry exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put stores value under key for the given TTL, replacing any existing
	// entry.
	Put(ctx context.Context, key, value string, ttl time.Duration) error
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry

	// now is replaceable in tests.
	now func() time.Time
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get implements Store. Expired entries are removed on access.
func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return "", false, nil
	}
	if m.now().After(entry.expiresAt) {
		delete(m.entries, key)
		return "", false, nil
	}
	return entry.value, true, nil
}

// Put implements Store.
func (m *MemoryStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{
		value:     value,
		expiresAt: m.now().Add(ttl),
	}
	return nil
}

package idempotency

import (
	"context"
	"sync"
	"time"
)

// Store is an in-memory idempotency key store with per-key TTL. It backs the
// HTTP idempotency middleware; the ledger itself is in-memory, so cached
// responses share its lifetime.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// CheckAndSet atomically checks if key exists, sets if not.
// Returns (exists, existingValue, error).
func (s *Store) CheckAndSet(_ context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired()

	if e, ok := s.entries[key]; ok {
		return true, e.value, nil
	}

	// Placeholder "locks" the key until Update stores the real response.
	if response == nil {
		response = []byte("processing")
	}
	s.entries[key] = entry{value: response, expiresAt: s.now().Add(ttl)}

	return false, nil, nil
}

// Update stores the final response for an existing key.
func (s *Store) Update(_ context.Context, key string, response []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{value: response, expiresAt: s.now().Add(ttl)}
	return nil
}

// evictExpired drops expired entries. Caller holds the lock.
func (s *Store) evictExpired() {
	now := s.now()
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}

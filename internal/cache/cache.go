package cache

import (
	"sync"
	"time"
)

// Store is a TTL-bounded key/value map safe for concurrent use.
// Writes are last-write-wins; there is no versioning.
type Store[V any] struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]entry[V]
}

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Option configures a Store.
type Option[V any] func(*Store[V])

// WithClock overrides the time source. For tests.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(s *Store[V]) {
		s.now = now
	}
}

// New creates a store whose entries read as absent once ttl has elapsed.
func New[V any](ttl time.Duration, opts ...Option[V]) *Store[V] {
	s := &Store[V]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[V]),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the value for key if it exists and is still fresh.
// Stale entries are treated as absent, not deleted.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || s.now().Sub(e.storedAt) >= s.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores value under key, overwriting any previous entry (stale or not).
func (s *Store[V]) Put(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry[V]{value: value, storedAt: s.now()}
}

// Len returns the number of stored entries, stale ones included.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

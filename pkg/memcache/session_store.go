// pkg/memcache/session_store.go
package mem

import (
	"sync"
	"time"
)

// Store keeps values in memory under a sliding TTL. Reads through Touch
// extend the entry's lifetime.
type Store[V any] interface {
	Set(key string, value V)
	Get(key string) (V, bool)
	Touch(key string) (V, bool)
	Delete(key string) (V, bool)
	Sweep() []V
	Len() int
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type TTLStore[V any] struct {
	mu   sync.RWMutex
	ttl  time.Duration
	now  func() time.Time
	data map[string]entry[V]
}

func NewTTLStore[V any](ttl time.Duration) *TTLStore[V] {
	return &TTLStore[V]{
		ttl:  ttl,
		now:  time.Now,
		data: make(map[string]entry[V]),
	}
}

func (s *TTLStore[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry[V]{
		value:     value,
		expiresAt: s.now().Add(s.ttl),
	}
}

// Get reads without extending the lifetime. Expired entries read as missing.
func (s *TTLStore[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || s.now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (s *TTLStore[V]) Touch(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		var zero V
		return zero, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.data, key) // cleanup expired
		var zero V
		return zero, false
	}
	e.expiresAt = s.now().Add(s.ttl)
	s.data[key] = e
	return e.value, true
}

func (s *TTLStore[V]) Delete(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	delete(s.data, key)
	return e.value, ok
}

// Sweep removes expired entries and returns them.
func (s *TTLStore[V]) Sweep() []V {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var expired []V
	for key, e := range s.data {
		if now.After(e.expiresAt) {
			expired = append(expired, e.value)
			delete(s.data, key)
		}
	}
	return expired
}

func (s *TTLStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

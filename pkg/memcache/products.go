// pkg/memcache/products.go
package memcache

import (
	"sync"
	"time"
)

// Store is a mutex-guarded TTL map used by the catalog service to memoize
// product reads for a short window (the catalog changes rarely and is read
// on every checkout).
type Store interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Delete(key string)
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

type TTLStore struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewTTLStore() *TTLStore {
	return &TTLStore{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

// NewTTLStoreWithNow lets tests control expiry without sleeping.
func NewTTLStoreWithNow(now func() time.Time) *TTLStore {
	return &TTLStore{
		data: make(map[string]entry),
		now:  now,
	}
}

func (s *TTLStore) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key) // cleanup expired
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (s *TTLStore) Set(key string, value interface{}, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *TTLStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// file: internals/helpers/cachestore/cachestore.go
package cachestore

import (
	"sync"
	"time"
)

// Store adalah cache read-through sederhana dengan TTL,
// semantik remember(key, ttl, producer) gaya Laravel Cache::remember.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
}

type entry struct {
	value     any
	expiresAt time.Time
}

func New() *Store {
	return &Store{entries: map[string]entry{}}
}

// Remember mengembalikan nilai dari cache, atau memanggil produce lalu
// menyimpan hasilnya selama ttl. Error dari produce tidak di-cache.
func (s *Store) Remember(key string, ttl time.Duration, produce func() (any, error)) (any, error) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok && time.Now().Before(e.expiresAt) {
		s.mu.Unlock()
		return e.value, nil
	}
	s.mu.Unlock()

	v, err := produce()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries[key] = entry{value: v, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return v, nil
}

func (s *Store) Forget(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Flush mengosongkan seluruh isi cache.
func (s *Store) Flush() {
	s.mu.Lock()
	s.entries = map[string]entry{}
	s.mu.Unlock()
}

package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the default process-local Store.
type MemoryStore[T Expirable] struct {
	mu      sync.Mutex
	records map[string]T
}

func NewMemoryStore[T Expirable]() *MemoryStore[T] {
	return &MemoryStore[T]{records: make(map[string]T)}
}

func (s *MemoryStore[T]) Put(_ context.Context, key string, value T) error {
	s.mu.Lock()
	s.records[key] = value
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore[T]) Get(_ context.Context, key string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.records[key]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore[T]) Take(_ context.Context, key string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.records[key]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	delete(s.records, key)
	return v, nil
}

func (s *MemoryStore[T]) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.records, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore[T]) Sweep(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key, v := range s.records {
		if expired(now, v.Expiry()) {
			delete(s.records, key)
			removed++
		}
	}
	return removed, nil
}

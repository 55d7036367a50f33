// Package memory is in-memory implementation of response cache storage.
package memory

import (
	"context"
	"sync"
	"time"
)

type item struct {
	content   []byte
	expiresAt time.Time
}

// Storage ...
type Storage struct {
	mu      sync.RWMutex
	items   map[string]item
	nowFunc func() time.Time
}

// NewStorage returns new in-memory storage.
func NewStorage() *Storage {
	return &Storage{
		items:   make(map[string]item),
		nowFunc: time.Now,
	}
}

// Get ...
func (s *Storage) Get(_ context.Context, key string) []byte {
	s.mu.RLock()
	i, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	if !s.nowFunc().Before(i.expiresAt) {
		s.mu.Lock()
		if i, ok := s.items[key]; ok && !s.nowFunc().Before(i.expiresAt) {
			delete(s.items, key)
		}
		s.mu.Unlock()

		return nil
	}

	return i.content
}

// Set ...
func (s *Storage) Set(_ context.Context, key string, content []byte, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = item{
		content:   content,
		expiresAt: s.nowFunc().Add(duration),
	}
}

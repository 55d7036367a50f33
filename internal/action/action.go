// Package action contains helpers for user initiated writes: double submission guard and optimistic like toggle.
package action

import (
	"errors"
	"sync"
)

// ErrPending is returned when the same action is already in progress.
var ErrPending = errors.New("action is pending")

// Guard rejects concurrent submissions of the same logical action.
type Guard struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

// NewGuard returns new Guard.
func NewGuard() *Guard {
	return &Guard{
		pending: make(map[string]struct{}),
	}
}

// Do runs f unless action with the same key is pending.
func (g *Guard) Do(key string, f func() error) error {
	if !g.acquire(key) {
		return ErrPending
	}
	defer g.release(key)

	return f()
}

// Pending returns true if action with key is in progress.
func (g *Guard) Pending(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.pending[key]
	return ok
}

func (g *Guard) acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.pending[key]; ok {
		return false
	}

	g.pending[key] = struct{}{}
	return true
}

func (g *Guard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.pending, key)
}

package action

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("layer", "action").WithField("package", "action")

// LikeState ...
type LikeState struct {
	Liked bool   `json:"liked"`
	Count uint64 `json:"count"`
}

// Flip returns state after like or unlike.
func (s LikeState) Flip() LikeState {
	if s.Liked {
		if s.Count > 0 {
			s.Count--
		}
	} else {
		s.Count++
	}

	s.Liked = !s.Liked

	return s
}

// WriteFunc submits like (or unlike when like is false).
type WriteFunc func(ctx context.Context, like bool) error

// ReadFunc reads authoritative like state.
type ReadFunc func(ctx context.Context) (LikeState, error)

// Like is an optimistic like toggle of a single post for a single viewer.
type Like struct {
	key   string
	guard *Guard

	mu    sync.RWMutex
	state LikeState
}

// NewLike returns new Like. Toggles with the same key sharing guard are mutually exclusive.
func NewLike(key string, initial LikeState, guard *Guard) *Like {
	if guard == nil {
		guard = NewGuard()
	}

	return &Like{
		key:   key,
		guard: guard,
		state: initial,
	}
}

// State returns current (possibly optimistic) state.
func (l *Like) State() LikeState {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.state
}

// Toggle flips state immediately and submits write.
// State is reverted when write fails and replaced with read result after success.
// Failed read keeps the optimistic state.
func (l *Like) Toggle(ctx context.Context, write WriteFunc, read ReadFunc) (LikeState, error) {
	err := l.guard.Do(l.key, func() error {
		prev := l.State()
		next := prev.Flip()
		l.set(next)

		if err := write(ctx, next.Liked); err != nil {
			l.set(prev)
			return err
		}

		if read == nil {
			return nil
		}

		s, err := read(ctx)
		if err != nil {
			log.WithError(err).WithField("key", l.key).Warn("failed to reconcile like state")
			return nil
		}

		l.set(s)
		return nil
	})

	return l.State(), err
}

func (l *Like) set(s LikeState) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.state = s
}

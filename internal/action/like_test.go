package action

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLikeState_Flip(t *testing.T) {
	require.Equal(t, LikeState{Liked: true, Count: 4}, LikeState{Count: 3}.Flip())
	require.Equal(t, LikeState{Count: 3}, LikeState{Liked: true, Count: 4}.Flip())
	require.Equal(t, LikeState{}, LikeState{Liked: true}.Flip())
}

func TestLike_Toggle(t *testing.T) {
	l := NewLike("like:1", LikeState{Count: 10}, nil)

	s, err := l.Toggle(context.Background(), func(_ context.Context, like bool) error {
		require.True(t, like)
		require.Equal(t, LikeState{Liked: true, Count: 11}, l.State())
		return nil
	}, func(context.Context) (LikeState, error) {
		return LikeState{Liked: true, Count: 12}, nil
	})

	require.NoError(t, err)
	require.Equal(t, LikeState{Liked: true, Count: 12}, s)
	require.Equal(t, s, l.State())
}

func TestLike_Toggle_Revert(t *testing.T) {
	errTest := errors.New("rejected")
	l := NewLike("like:1", LikeState{Liked: true, Count: 10}, nil)

	s, err := l.Toggle(context.Background(), func(_ context.Context, like bool) error {
		require.False(t, like)
		require.Equal(t, LikeState{Count: 9}, l.State())
		return errTest
	}, func(context.Context) (LikeState, error) {
		t.Fatal("must not be called")
		return LikeState{}, nil
	})

	require.ErrorIs(t, err, errTest)
	require.Equal(t, LikeState{Liked: true, Count: 10}, s)
	require.Equal(t, s, l.State())
}

func TestLike_Toggle_ReadFailureKeepsOptimistic(t *testing.T) {
	l := NewLike("like:1", LikeState{}, nil)

	s, err := l.Toggle(context.Background(), func(context.Context, bool) error {
		return nil
	}, func(context.Context) (LikeState, error) {
		return LikeState{}, errors.New("unavailable")
	})

	require.NoError(t, err)
	require.Equal(t, LikeState{Liked: true, Count: 1}, s)
}

func TestLike_Toggle_Pending(t *testing.T) {
	g := NewGuard()
	l := NewLike("like:1", LikeState{Count: 1}, g)

	require.NoError(t, g.Do("like:1", func() error {
		s, err := l.Toggle(context.Background(), func(context.Context, bool) error {
			t.Fatal("must not be called")
			return nil
		}, nil)

		require.ErrorIs(t, err, ErrPending)
		require.Equal(t, LikeState{Count: 1}, s)
		return nil
	}))
}

package impl

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/plutus/internal/entities"
	"github.com/Decentr-net/plutus/internal/storage"
	"github.com/Decentr-net/plutus/internal/validation"
)

func TestSrv_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, m := newTestService(t)

		m.s.EXPECT().CreateMessage(gomock.Any(), &entities.Message{
			From:      viewer,
			To:        creator,
			Body:      "hello",
			CreatedAt: now.UTC(),
		}).Return(uint64(7), nil)
		m.p.EXPECT().Publish(gomock.Any(), "plutus.messages."+creator, MessageEvent{
			ID:        7,
			From:      viewer,
			To:        creator,
			Body:      "hello",
			CreatedAt: now.Unix(),
		}).Return(errTest)

		msg, err := s.SendMessage(ctx, viewer, creator, "  hello ")
		require.NoError(t, err)
		assert.EqualValues(t, 7, msg.ID)
		assert.Equal(t, "hello", msg.Body)
	})

	t.Run("invalid", func(t *testing.T) {
		s, _ := newTestService(t)

		for _, tc := range [][3]string{
			{viewer, viewer, "hello"},
			{viewer, creator, " \n "},
			{viewer, "bob", "hello"},
			{viewer, creator, string(make([]rune, maxMessageLength+1))},
		} {
			_, err := s.SendMessage(ctx, tc[0], tc[1], tc[2])
			require.True(t, validation.IsError(err), tc)
		}
	})

	t.Run("storage_error", func(t *testing.T) {
		s, m := newTestService(t)

		m.s.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(uint64(0), errTest)

		_, err := s.SendMessage(ctx, viewer, creator, "hello")
		require.True(t, errors.Is(err, errTest))
	})
}

func TestSrv_ListConversation(t *testing.T) {
	ctx := context.Background()
	s, m := newTestService(t)

	m.s.EXPECT().ListMessages(gomock.Any(), storage.ListMessagesParams{
		A:      viewer,
		B:      creator,
		Before: 10,
		Limit:  defaultMessagesLimit,
	}).Return([]*entities.Message{{ID: 9}}, nil)

	msgs, err := s.ListConversation(ctx, viewer, creator, 10, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	_, err = s.ListConversation(ctx, viewer, creator, 0, maxMessagesLimit+1)
	require.True(t, validation.IsError(err))
}

func TestSrv_MarkRead(t *testing.T) {
	s, m := newTestService(t)

	m.s.EXPECT().MarkRead(gomock.Any(), viewer, creator).Return(uint32(2), nil)

	n, err := s.MarkRead(context.Background(), viewer, creator)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestSrv_ListConversations(t *testing.T) {
	s, m := newTestService(t)

	m.s.EXPECT().ListConversations(gomock.Any(), viewer).Return([]*entities.Conversation{{Peer: creator, Unread: 1}}, nil)

	c, err := s.ListConversations(context.Background(), viewer)
	require.NoError(t, err)
	require.Len(t, c, 1)
	assert.Equal(t, creator, c[0].Peer)
}

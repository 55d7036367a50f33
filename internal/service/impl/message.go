package impl

import (
	"context"
	"fmt"
	"strings"

	"github.com/Decentr-net/plutus/internal/entities"
	"github.com/Decentr-net/plutus/internal/publisher"
	"github.com/Decentr-net/plutus/internal/storage"
	"github.com/Decentr-net/plutus/internal/validation"
)

const (
	defaultMessagesLimit = 50
	maxMessagesLimit     = 100
)

// MessageEvent is published when message is sent.
type MessageEvent struct {
	ID        uint64 `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"created_at"`
}

func (s srv) SendMessage(ctx context.Context, from, to, body string) (*entities.Message, error) {
	from, err := parseAddress("from", from)
	if err != nil {
		return nil, err
	}

	to, err = parseAddress("to", to)
	if err != nil {
		return nil, err
	}

	if from == to {
		return nil, validation.Errorf("to", "can not send message to yourself")
	}

	body = strings.TrimSpace(body)
	if err := validateText("body", body, 1, maxMessageLength); err != nil {
		return nil, err
	}

	m := entities.Message{
		From:      from,
		To:        to,
		Body:      body,
		CreatedAt: s.nowFunc().UTC(),
	}

	m.ID, err = s.s.CreateMessage(ctx, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	if err := s.p.Publish(ctx, publisher.MessagesSubject(to), MessageEvent{
		ID:        m.ID,
		From:      m.From,
		To:        m.To,
		Body:      m.Body,
		CreatedAt: m.CreatedAt.Unix(),
	}); err != nil {
		log.WithError(err).WithField("message", m.ID).Error("failed to publish message")
	}

	return &m, nil
}

func (s srv) ListConversation(ctx context.Context, a, b string, before uint64, limit uint16) ([]*entities.Message, error) {
	a, err := parseAddress("address", a)
	if err != nil {
		return nil, err
	}

	b, err = parseAddress("peer", b)
	if err != nil {
		return nil, err
	}

	if limit == 0 {
		limit = defaultMessagesLimit
	}

	if limit > maxMessagesLimit {
		return nil, validation.Errorf("limit", "should be at most %d", maxMessagesLimit)
	}

	m, err := s.s.ListMessages(ctx, storage.ListMessagesParams{A: a, B: b, Before: before, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return m, nil
}

func (s srv) ListConversations(ctx context.Context, address string) ([]*entities.Conversation, error) {
	address, err := parseAddress("address", address)
	if err != nil {
		return nil, err
	}

	c, err := s.s.ListConversations(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	return c, nil
}

func (s srv) MarkRead(ctx context.Context, reader, peer string) (uint32, error) {
	reader, err := parseAddress("address", reader)
	if err != nil {
		return 0, err
	}

	peer, err = parseAddress("peer", peer)
	if err != nil {
		return 0, err
	}

	n, err := s.s.MarkRead(ctx, reader, peer)
	if err != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", err)
	}

	return n, nil
}

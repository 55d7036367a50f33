// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"

	"github.com/Decentr-net/plutus/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

var (
	// ErrNotFound ...
	ErrNotFound = fmt.Errorf("not found")
	// ErrRequestedHeightIsTooLow ...
	ErrRequestedHeightIsTooLow = fmt.Errorf("requested height is too low")
	// ErrRequestedHeightIsTooHigh ...
	ErrRequestedHeightIsTooHigh = fmt.Errorf("requested height is too high")
	// ErrConstraintViolation is returned when record breaks table constraints, e.g. message to itself.
	ErrConstraintViolation = fmt.Errorf("constraint violation")
)

// Storage provides methods for interacting with database.
type Storage interface {
	// WithLockedHeight runs f when from is the next block after stored height and stores to as height after f succeeded.
	// Concurrent calls are serialized.
	WithLockedHeight(ctx context.Context, from, to uint64, f func(s Storage) error) error
	GetHeight(ctx context.Context) (uint64, error)
	SetHeight(ctx context.Context, height uint64) error

	// CreateMessage stores message and returns its id.
	CreateMessage(ctx context.Context, msg *entities.Message) (uint64, error)
	ListMessages(ctx context.Context, p ListMessagesParams) ([]*entities.Message, error)
	// ListConversations returns conversations of address ordered by the last message, newest first.
	ListConversations(ctx context.Context, address string) ([]*entities.Conversation, error)
	// MarkRead marks every unread message from peer to reader as read and returns count of updated messages.
	MarkRead(ctx context.Context, reader, peer string) (uint32, error)

	CreateUpload(ctx context.Context, u *entities.Upload) error
	ListUploads(ctx context.Context, uploader string, limit uint16) ([]*entities.Upload, error)
}

// ListMessagesParams ...
type ListMessagesParams struct {
	// A and B are participants of conversation, order does not matter.
	A string
	B string
	// Before sets not-including upper bound by message id, 0 means no bound.
	Before uint64
	Limit  uint16
}

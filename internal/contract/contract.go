// Package contract contains an interface of the CreatorProfile and ContentPost contracts gateway.
package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/Decentr-net/plutus/internal/entities"
)

//go:generate mockgen -destination=./mock/contract.go -package=mock -source=contract.go

// ErrNotFound returned when contract has no record for requested key.
var ErrNotFound = errors.New("not found")

// ErrReverted returned by Wait when transaction was mined but reverted.
var ErrReverted = errors.New("transaction reverted")

// ReadError is returned when query to contract failed.
type ReadError struct {
	Method string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to call %s: %s", e.Method, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError is returned when transaction was rejected, reverted or not signed.
type WriteError struct {
	Method string
	TxHash string
	Err    error
}

func (e *WriteError) Error() string {
	if e.TxHash != "" {
		return fmt.Sprintf("failed to transact %s (tx %s): %s", e.Method, e.TxHash, e.Err)
	}

	return fmt.Sprintf("failed to transact %s: %s", e.Method, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// TxStatus ...
type TxStatus uint8

const (
	// TxPending means transaction is sent but not mined yet.
	TxPending TxStatus = iota
	// TxConfirmed ...
	TxConfirmed
	// TxFailed ...
	TxFailed
)

func (s TxStatus) String() string {
	switch s {
	case TxPending:
		return "pending"
	case TxConfirmed:
		return "confirmed"
	case TxFailed:
		return "failed"
	}

	return fmt.Sprintf("TxStatus(%d)", uint8(s))
}

// Tx is a sent transaction.
type Tx struct {
	Method string
	Hash   string
	Status TxStatus
	Block  uint64
}

// Session is a connected wallet able to sign transactions.
type Session interface {
	Address() string
}

// RegisterCreatorParams ...
type RegisterCreatorParams struct {
	Username     string
	DisplayName  string
	Bio          string
	ProfileImage string
	BannerImage  string
}

// UpdateProfileParams ...
type UpdateProfileParams struct {
	DisplayName  string
	Bio          string
	ProfileImage string
	BannerImage  string
}

// CreateTierParams ...
type CreateTierParams struct {
	Name        string
	Description string
	Price       *big.Int
}

// CreatePostParams ...
type CreatePostParams struct {
	ContentRef     string
	PreviewRef     string
	Caption        string
	ContentType    entities.ContentType
	AccessLevel    entities.AccessLevel
	RequiredTierID uint64
}

// Reader provides queries to contracts.
type Reader interface {
	IsCreator(ctx context.Context, address string) (bool, error)
	GetCreator(ctx context.Context, address string) (*entities.Creator, error)
	GetCreatorByUsername(ctx context.Context, username string) (*entities.Creator, error)
	GetCreatorTiers(ctx context.Context, address string) ([]*entities.Tier, error)
	GetCreators(ctx context.Context, offset, limit uint64) ([]string, error)
	GetTotalCreators(ctx context.Context) (uint64, error)
	GetSubscription(ctx context.Context, subscriber, creator string) (*entities.Subscription, error)

	GetPost(ctx context.Context, id uint64) (*entities.Post, error)
	GetCreatorPosts(ctx context.Context, creator string, offset, limit uint64) ([]uint64, error)
	GetPostComments(ctx context.Context, postID, offset, limit uint64) ([]*entities.Comment, error)
	HasLiked(ctx context.Context, postID uint64, address string) (bool, error)
	CanAccessPost(ctx context.Context, postID uint64, address string) (bool, error)
}

// Writer provides transactions to contracts.
type Writer interface {
	RegisterCreator(ctx context.Context, s Session, p RegisterCreatorParams) (*Tx, error)
	UpdateProfile(ctx context.Context, s Session, p UpdateProfileParams) (*Tx, error)
	CreateTier(ctx context.Context, s Session, p CreateTierParams) (*Tx, error)
	Subscribe(ctx context.Context, s Session, creator string, tierID uint64, value *big.Int) (*Tx, error)
	RenewSubscription(ctx context.Context, s Session, creator string, value *big.Int) (*Tx, error)
	TipCreator(ctx context.Context, s Session, creator string, value *big.Int) (*Tx, error)

	CreatePost(ctx context.Context, s Session, p CreatePostParams) (*Tx, error)
	UpdatePost(ctx context.Context, s Session, id uint64, caption, previewRef string) (*Tx, error)
	DeletePost(ctx context.Context, s Session, id uint64) (*Tx, error)
	LikePost(ctx context.Context, s Session, id uint64) (*Tx, error)
	UnlikePost(ctx context.Context, s Session, id uint64) (*Tx, error)
	AddComment(ctx context.Context, s Session, postID uint64, content string) (*Tx, error)
	DeleteComment(ctx context.Context, s Session, commentID uint64) (*Tx, error)

	// Wait blocks until tx is mined and returns it with final status.
	Wait(ctx context.Context, tx *Tx) (*Tx, error)
}

// Gateway ...
type Gateway interface {
	Reader
	Writer
}

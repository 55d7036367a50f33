// Package service contains interface for service business-logic.
package service

import (
	"context"
	"math/big"

	"github.com/Decentr-net/plutus/internal/action"
	"github.com/Decentr-net/plutus/internal/contract"
	"github.com/Decentr-net/plutus/internal/entities"
	"github.com/Decentr-net/plutus/internal/media"
	"github.com/Decentr-net/plutus/internal/subscription"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// Service ...
type Service interface {
	// GetCreatorPage returns creator with tiers and viewer's subscription.
	// Tiers and subscription are best effort, failure to read them does not fail the page.
	GetCreatorPage(ctx context.Context, address, viewer string) (*CreatorPage, error)
	GetCreatorByUsername(ctx context.Context, username string) (*entities.Creator, error)
	ListCreators(ctx context.Context, offset, limit uint64) (*CreatorList, error)
	// GetPost returns post gated by the contract's access check.
	GetPost(ctx context.Context, id uint64, viewer string) (*PostView, error)
	// ListCreatorPosts returns active posts of creator gated by viewer's subscription.
	ListCreatorPosts(ctx context.Context, creator, viewer string, offset, limit uint64) ([]*PostView, error)
	GetComments(ctx context.Context, postID, offset, limit uint64) ([]*entities.Comment, error)
	GetSubscriptionState(ctx context.Context, subscriber, creator string) (*SubscriptionView, error)

	// Writes are validated before sending and return mined transaction.
	RegisterCreator(ctx context.Context, s contract.Session, p contract.RegisterCreatorParams) (*contract.Tx, error)
	UpdateProfile(ctx context.Context, s contract.Session, p contract.UpdateProfileParams) (*contract.Tx, error)
	CreateTier(ctx context.Context, s contract.Session, p contract.CreateTierParams) (*contract.Tx, error)
	// Subscribe subscribes to creator's tier. Nil value means the tier price.
	Subscribe(ctx context.Context, s contract.Session, creator string, tierID uint64, value *big.Int) (*contract.Tx, error)
	// Renew extends subscription to creator. Nil value means price of the subscribed tier.
	Renew(ctx context.Context, s contract.Session, creator string, value *big.Int) (*contract.Tx, error)
	Tip(ctx context.Context, s contract.Session, creator string, value *big.Int) (*contract.Tx, error)
	CreatePost(ctx context.Context, s contract.Session, p contract.CreatePostParams) (*contract.Tx, error)
	UpdatePost(ctx context.Context, s contract.Session, id uint64, caption, previewRef string) (*contract.Tx, error)
	DeletePost(ctx context.Context, s contract.Session, id uint64) (*contract.Tx, error)
	// ToggleLike likes or unlikes post and returns resulting state.
	ToggleLike(ctx context.Context, s contract.Session, postID uint64) (action.LikeState, error)
	AddComment(ctx context.Context, s contract.Session, postID uint64, content string) (*contract.Tx, error)
	DeleteComment(ctx context.Context, s contract.Session, commentID uint64) (*contract.Tx, error)

	SendMessage(ctx context.Context, from, to, body string) (*entities.Message, error)
	// ListConversation returns messages between a and b, newest first. Zero before means from the latest.
	ListConversation(ctx context.Context, a, b string, before uint64, limit uint16) ([]*entities.Message, error)
	ListConversations(ctx context.Context, address string) ([]*entities.Conversation, error)
	MarkRead(ctx context.Context, reader, peer string) (uint32, error)

	// Upload pins file and records it for uploader. Empty uploader is anonymous and is not recorded.
	Upload(ctx context.Context, uploader string, f media.File, p media.Policy) (*media.Result, error)
	ListUploads(ctx context.Context, uploader string, limit uint16) ([]*entities.Upload, error)
	SignedUploadURL(ctx context.Context) (string, error)
}

// CreatorPage ...
type CreatorPage struct {
	Creator          *entities.Creator
	ProfileImageURL  string
	BannerImageURL   string
	Tiers            []*entities.Tier
	TiersUnavailable bool
	// Subscription is nil when viewer is anonymous, not subscribed or subscription can not be read.
	Subscription *SubscriptionView
}

// CreatorList ...
type CreatorList struct {
	Creators []*entities.Creator
	Total    uint64
}

// SubscriptionView ...
type SubscriptionView struct {
	Subscription entities.Subscription
	State        subscription.State
}

// PostView is a post as seen by a viewer.
// ContentRef of the post is empty and MediaURL is not set when post is not accessible.
type PostView struct {
	Post       *entities.Post
	Accessible bool
	MediaURL   string
	PreviewURL string
	Liked      bool
}

package server

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/Decentr-net/plutus/internal/entities"
	"github.com/Decentr-net/plutus/internal/media"
	"github.com/Decentr-net/plutus/internal/service"
)

const maxLimit = 100
const defaultLimit = 20

// weiDecimals is a count of decimals in one ether.
const weiDecimals = 18

// ChallengeResponse ...
// swagger:model
type ChallengeResponse struct {
	// Message should be signed with personal_sign.
	Message string `json:"message"`
}

// LoginRequest ...
// swagger:model
type LoginRequest struct {
	Address   string `json:"address"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

// LoginResponse ...
// swagger:model
type LoginResponse struct {
	Token string `json:"token"`
}

// Amount is an amount of ether.
type Amount struct {
	// Wei is an exact amount in wei as decimal string.
	Wei string `json:"wei"`
	// ETH is a human-readable amount in ether.
	ETH string `json:"eth"`
}

// Creator ...
// swagger:model
type Creator struct {
	Address          string `json:"address"`
	Username         string `json:"username"`
	DisplayName      string `json:"displayName"`
	Bio              string `json:"bio"`
	ProfileImage     string `json:"profileImage"`
	BannerImage      string `json:"bannerImage"`
	IsVerified       bool   `json:"isVerified"`
	IsActive         bool   `json:"isActive"`
	CreatedAt        int64  `json:"createdAt"`
	TotalSubscribers uint64 `json:"totalSubscribers"`
	TotalEarnings    Amount `json:"totalEarnings"`
	TipEarnings      Amount `json:"tipEarnings"`
}

// Tier ...
type Tier struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Amount `json:"price"`
	IsActive    bool   `json:"isActive"`
}

// Subscription ...
// swagger:model
type Subscription struct {
	Subscriber    string `json:"subscriber"`
	Creator       string `json:"creator"`
	TierID        uint64 `json:"tierId"`
	StartTime     int64  `json:"startTime"`
	EndTime       int64  `json:"endTime"`
	IsActive      bool   `json:"isActive"`
	Status        string `json:"status"`
	DaysRemaining int64  `json:"daysRemaining"`
}

// CreatorPageResponse ...
// swagger:model
type CreatorPageResponse struct {
	Creator         Creator `json:"creator"`
	ProfileImageURL string  `json:"profileImageUrl"`
	BannerImageURL  string  `json:"bannerImageUrl"`
	Tiers           []Tier  `json:"tiers"`
	// TiersUnavailable is true when tiers could not be read, Tiers is empty then.
	TiersUnavailable bool `json:"tiersUnavailable,omitempty"`
	// Subscription of the authenticated viewer.
	Subscription *Subscription `json:"subscription,omitempty"`
}

// ListCreatorsResponse ...
// swagger:model
type ListCreatorsResponse struct {
	Creators []Creator `json:"creators"`
	Total    uint64    `json:"total"`
}

// Post is a post as seen by requester.
// swagger:model
type Post struct {
	ID      uint64 `json:"id"`
	Creator string `json:"creator"`
	// ContentRef is empty when post is not accessible.
	ContentRef     string `json:"contentRef,omitempty"`
	PreviewRef     string `json:"previewRef,omitempty"`
	Caption        string `json:"caption"`
	ContentType    string `json:"contentType"`
	AccessLevel    string `json:"accessLevel"`
	RequiredTierID uint64 `json:"requiredTierId"`
	CreatedAt      int64  `json:"createdAt"`
	LikesCount     uint64 `json:"likesCount"`
	CommentsCount  uint64 `json:"commentsCount"`
	Accessible     bool   `json:"accessible"`
	MediaURL       string `json:"mediaUrl,omitempty"`
	PreviewURL     string `json:"previewUrl,omitempty"`
	Liked          bool   `json:"liked"`
}

// Comment ...
type Comment struct {
	ID        uint64 `json:"id"`
	PostID    uint64 `json:"postId"`
	Commenter string `json:"commenter"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

// Message ...
// swagger:model
type Message struct {
	ID        uint64 `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"createdAt"`
	ReadAt    *int64 `json:"readAt,omitempty"`
}

// Conversation ...
type Conversation struct {
	Peer        string  `json:"peer"`
	LastMessage Message `json:"lastMessage"`
	Unread      uint32  `json:"unread"`
}

// SendMessageRequest ...
// swagger:model
type SendMessageRequest struct {
	Body string `json:"body"`
}

// MarkReadResponse ...
// swagger:model
type MarkReadResponse struct {
	// Updated is a count of messages marked as read.
	Updated uint32 `json:"updated"`
}

// UploadResponse ...
// swagger:model
type UploadResponse struct {
	CID  string `json:"cid"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
	Name string `json:"name"`
}

// Upload ...
type Upload struct {
	CID       string `json:"cid"`
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	MIME      string `json:"mime"`
	CreatedAt int64  `json:"createdAt"`
}

// URLResponse ...
// swagger:model
type URLResponse struct {
	URL string `json:"url"`
}

func toAmount(v *big.Int) Amount {
	if v == nil {
		v = new(big.Int)
	}

	return Amount{
		Wei: v.String(),
		ETH: decimal.NewFromBigInt(v, -weiDecimals).String(),
	}
}

func toAPICreator(c *entities.Creator) Creator {
	return Creator{
		Address:          c.Address,
		Username:         c.Username,
		DisplayName:      c.DisplayName,
		Bio:              c.Bio,
		ProfileImage:     c.ProfileImage,
		BannerImage:      c.BannerImage,
		IsVerified:       c.IsVerified,
		IsActive:         c.IsActive,
		CreatedAt:        c.CreatedAt.Unix(),
		TotalSubscribers: c.TotalSubscribers,
		TotalEarnings:    toAmount(c.TotalEarnings),
		TipEarnings:      toAmount(c.TipEarnings),
	}
}

func toAPITiers(tt []*entities.Tier) []Tier {
	out := make([]Tier, 0, len(tt))
	for _, v := range tt {
		out = append(out, Tier{
			ID:          v.ID,
			Name:        v.Name,
			Description: v.Description,
			Price:       toAmount(v.Price),
			IsActive:    v.IsActive,
		})
	}

	return out
}

func toAPISubscription(v *service.SubscriptionView) *Subscription {
	if v == nil {
		return nil
	}

	return &Subscription{
		Subscriber:    v.Subscription.Subscriber,
		Creator:       v.Subscription.Creator,
		TierID:        v.Subscription.TierID,
		StartTime:     v.Subscription.StartTime.Unix(),
		EndTime:       v.Subscription.EndTime.Unix(),
		IsActive:      v.Subscription.IsActive,
		Status:        v.State.Status.String(),
		DaysRemaining: v.State.DaysRemaining,
	}
}

func toAPICreatorPage(p *service.CreatorPage) CreatorPageResponse {
	return CreatorPageResponse{
		Creator:          toAPICreator(p.Creator),
		ProfileImageURL:  p.ProfileImageURL,
		BannerImageURL:   p.BannerImageURL,
		Tiers:            toAPITiers(p.Tiers),
		TiersUnavailable: p.TiersUnavailable,
		Subscription:     toAPISubscription(p.Subscription),
	}
}

func toAPIPost(v *service.PostView) Post {
	p := v.Post

	return Post{
		ID:             p.ID,
		Creator:        p.Creator,
		ContentRef:     p.ContentRef,
		PreviewRef:     p.PreviewRef,
		Caption:        p.Caption,
		ContentType:    p.ContentType.String(),
		AccessLevel:    p.AccessLevel.String(),
		RequiredTierID: p.RequiredTierID,
		CreatedAt:      p.CreatedAt.Unix(),
		LikesCount:     p.LikesCount,
		CommentsCount:  p.CommentsCount,
		Accessible:     v.Accessible,
		MediaURL:       v.MediaURL,
		PreviewURL:     v.PreviewURL,
		Liked:          v.Liked,
	}
}

func toAPIPosts(vv []*service.PostView) []Post {
	out := make([]Post, 0, len(vv))
	for _, v := range vv {
		out = append(out, toAPIPost(v))
	}

	return out
}

func toAPIComments(cc []*entities.Comment) []Comment {
	out := make([]Comment, 0, len(cc))
	for _, v := range cc {
		out = append(out, Comment{
			ID:        v.ID,
			PostID:    v.PostID,
			Commenter: v.Commenter,
			Content:   v.Content,
			CreatedAt: v.CreatedAt.Unix(),
		})
	}

	return out
}

func toAPIMessage(m *entities.Message) Message {
	out := Message{
		ID:        m.ID,
		From:      m.From,
		To:        m.To,
		Body:      m.Body,
		CreatedAt: m.CreatedAt.Unix(),
	}

	if m.ReadAt != nil {
		v := m.ReadAt.Unix()
		out.ReadAt = &v
	}

	return out
}

func toAPIMessages(mm []*entities.Message) []Message {
	out := make([]Message, 0, len(mm))
	for _, v := range mm {
		out = append(out, toAPIMessage(v))
	}

	return out
}

func toAPIConversations(cc []*entities.Conversation) []Conversation {
	out := make([]Conversation, 0, len(cc))
	for _, v := range cc {
		out = append(out, Conversation{
			Peer:        v.Peer,
			LastMessage: toAPIMessage(&v.LastMessage),
			Unread:      v.Unread,
		})
	}

	return out
}

func toAPIUploads(uu []*entities.Upload) []Upload {
	out := make([]Upload, 0, len(uu))
	for _, v := range uu {
		out = append(out, Upload{
			CID:       v.CID,
			Name:      v.Name,
			Size:      v.Size,
			MIME:      v.MIME,
			CreatedAt: v.CreatedAt.Unix(),
		})
	}

	return out
}

func toAPIUploadResult(r *media.Result) UploadResponse {
	return UploadResponse{
		CID:  r.CID,
		URL:  r.URL,
		Size: r.Size,
		Name: r.Name,
	}
}

// Package entities contains main entities of service.
package entities

import (
	"fmt"
	"math/big"
	"time"
)

// MaxActiveTiers is a maximal count of active tiers a creator may own.
const MaxActiveTiers = 5

// ContentType ...
type ContentType uint8

const (
	// ContentTypeText ...
	ContentTypeText ContentType = iota
	// ContentTypeImage ...
	ContentTypeImage
	// ContentTypeVideo ...
	ContentTypeVideo
	// ContentTypeAudio ...
	ContentTypeAudio
	// ContentTypeMixed ...
	ContentTypeMixed
)

// Valid returns true if t is one of known content types.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeText, ContentTypeImage, ContentTypeVideo, ContentTypeAudio, ContentTypeMixed:
		return true
	}

	return false
}

func (t ContentType) String() string {
	switch t {
	case ContentTypeText:
		return "text"
	case ContentTypeImage:
		return "image"
	case ContentTypeVideo:
		return "video"
	case ContentTypeAudio:
		return "audio"
	case ContentTypeMixed:
		return "mixed"
	}

	return fmt.Sprintf("ContentType(%d)", uint8(t))
}

// ParseContentType is the inverse of ContentType.String.
func ParseContentType(s string) (ContentType, error) {
	for t := ContentTypeText; t <= ContentTypeMixed; t++ {
		if t.String() == s {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown content type %q", s)
}

// AccessLevel ...
type AccessLevel uint8

const (
	// AccessLevelPublic means post is visible for everyone.
	AccessLevelPublic AccessLevel = iota
	// AccessLevelSubscribers means post is visible for any active subscriber.
	AccessLevelSubscribers
	// AccessLevelTierGated means post is visible for subscribers of required tier or higher.
	AccessLevelTierGated
)

// Valid returns true if l is one of known access levels.
func (l AccessLevel) Valid() bool {
	switch l {
	case AccessLevelPublic, AccessLevelSubscribers, AccessLevelTierGated:
		return true
	}

	return false
}

func (l AccessLevel) String() string {
	switch l {
	case AccessLevelPublic:
		return "public"
	case AccessLevelSubscribers:
		return "subscribers"
	case AccessLevelTierGated:
		return "tier_gated"
	}

	return fmt.Sprintf("AccessLevel(%d)", uint8(l))
}

// ParseAccessLevel is the inverse of AccessLevel.String.
func ParseAccessLevel(s string) (AccessLevel, error) {
	for l := AccessLevelPublic; l <= AccessLevelTierGated; l++ {
		if l.String() == s {
			return l, nil
		}
	}

	return 0, fmt.Errorf("unknown access level %q", s)
}

// Creator ...
type Creator struct {
	Address          string
	Username         string
	DisplayName      string
	Bio              string
	ProfileImage     string
	BannerImage      string
	IsVerified       bool
	IsActive         bool
	CreatedAt        time.Time
	TotalSubscribers uint64
	TotalEarnings    *big.Int
	TipEarnings      *big.Int
}

// Tier is a priced subscription level. ID is an index in the creator's tier list.
type Tier struct {
	ID          uint64
	Name        string
	Description string
	Price       *big.Int
	IsActive    bool
}

// Subscription ...
type Subscription struct {
	Subscriber string
	Creator    string
	TierID     uint64
	StartTime  time.Time
	EndTime    time.Time
	IsActive   bool
}

// Post ...
type Post struct {
	ID             uint64
	Creator        string
	ContentRef     string
	PreviewRef     string
	Caption        string
	ContentType    ContentType
	AccessLevel    AccessLevel
	RequiredTierID uint64
	CreatedAt      time.Time
	LikesCount     uint64
	CommentsCount  uint64
	IsActive       bool
}

// Comment ...
type Comment struct {
	ID        uint64
	PostID    uint64
	Commenter string
	Content   string
	CreatedAt time.Time
	IsActive  bool
}

// Message is an off-chain direct message between two wallets.
type Message struct {
	ID        uint64
	From      string
	To        string
	Body      string
	CreatedAt time.Time
	ReadAt    *time.Time
}

// Conversation is the last message exchanged with a peer.
type Conversation struct {
	Peer        string
	LastMessage Message
	Unread      uint32
}

// Upload is a record of media pinned through the service.
type Upload struct {
	CID       string
	Name      string
	Size      int64
	MIME      string
	Uploader  string
	CreatedAt time.Time
}

// ActiveTiersCount ...
func ActiveTiersCount(tiers []*Tier) int {
	var n int
	for _, v := range tiers {
		if v != nil && v.IsActive {
			n++
		}
	}

	return n
}

// Package access decides whether a viewer may see the media of a post.
package access

import (
	"strings"
	"time"

	"github.com/Decentr-net/plutus/internal/entities"
	"github.com/Decentr-net/plutus/internal/subscription"
)

// Viewer describes who is looking at a post.
// IsSubscribed must already account for subscription freshness.
type Viewer struct {
	Address      string
	IsSubscribed bool
	TierID       uint64
}

// NewViewer builds viewer from a subscription record. sub may be nil.
func NewViewer(address string, sub *entities.Subscription, now time.Time) Viewer {
	v := Viewer{Address: address}

	if sub != nil && subscription.Evaluate(*sub, now).Current() {
		v.IsSubscribed = true
		v.TierID = sub.TierID
	}

	return v
}

// CanAccess returns true if v may see underlying media of p.
// Unknown access levels are never accessible, even for the owner.
func CanAccess(p *entities.Post, v Viewer) bool {
	if p == nil || !p.AccessLevel.Valid() {
		return false
	}

	if p.AccessLevel == entities.AccessLevelPublic {
		return true
	}

	if IsOwner(p, v.Address) {
		return true
	}

	switch p.AccessLevel {
	case entities.AccessLevelSubscribers:
		return v.IsSubscribed
	case entities.AccessLevelTierGated:
		return v.IsSubscribed && v.TierID >= p.RequiredTierID
	case entities.AccessLevelPublic:
		return true
	}

	return false
}

// IsOwner returns true if address is the creator of p.
func IsOwner(p *entities.Post, address string) bool {
	return address != "" && strings.EqualFold(p.Creator, address)
}

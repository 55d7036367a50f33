// Package subscription derives presentation status of a subscription from its timestamps.
package subscription

import (
	"fmt"
	"time"

	"github.com/Decentr-net/plutus/internal/entities"
)

// ExpiringSoonDays is a threshold in days when active subscription is considered as expiring.
const ExpiringSoonDays = 7

const secondsPerDay = int64(24 * time.Hour / time.Second)

// Status ...
type Status uint8

const (
	// StatusActive ...
	StatusActive Status = iota
	// StatusExpiringSoon ...
	StatusExpiringSoon
	// StatusExpired ...
	StatusExpired
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusExpiringSoon:
		return "expiring_soon"
	case StatusExpired:
		return "expired"
	}

	return fmt.Sprintf("Status(%d)", uint8(s))
}

// State ...
type State struct {
	Status        Status
	DaysRemaining int64
}

// Current returns true if subscription still grants access.
func (s State) Current() bool {
	return s.Status != StatusExpired
}

// Evaluate returns state of s at the moment now.
func Evaluate(s entities.Subscription, now time.Time) State {
	end, n := s.EndTime.Unix(), now.Unix()

	if !s.IsActive || end < n {
		return State{Status: StatusExpired}
	}

	// ceil for non-negative numbers
	days := (end - n + secondsPerDay - 1) / secondsPerDay

	if days <= ExpiringSoonDays {
		return State{Status: StatusExpiringSoon, DaysRemaining: days}
	}

	return State{Status: StatusActive, DaysRemaining: days}
}

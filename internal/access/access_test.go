package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/plutus/internal/entities"
)

const (
	owner  = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	viewer = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
)

func TestCanAccess(t *testing.T) {
	tt := []struct {
		name     string
		post     *entities.Post
		viewer   Viewer
		expected bool
	}{
		{
			name:     "public_anonymous",
			post:     &entities.Post{Creator: owner, AccessLevel: entities.AccessLevelPublic},
			expected: true,
		},
		{
			name:     "public_tier_gated_fields_ignored",
			post:     &entities.Post{Creator: owner, AccessLevel: entities.AccessLevelPublic, RequiredTierID: 4},
			viewer:   Viewer{Address: viewer},
			expected: true,
		},
		{
			name:     "owner_subscribers_only",
			post:     &entities.Post{Creator: owner, AccessLevel: entities.AccessLevelSubscribers},
			viewer:   Viewer{Address: owner},
			expected: true,
		},
		{
			name:     "owner_case_insensitive",
			post:     &entities.Post{Creator: owner, AccessLevel: entities.AccessLevelTierGated, RequiredTierID: 3},
			viewer:   Viewer{Address: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"},
			expected: true,
		},
		{
			name:     "empty_address_is_not_owner",
			post:     &entities.Post{AccessLevel: entities.AccessLevelSubscribers},
			viewer:   Viewer{},
			expected: false,
		},
		{
			name:     "subscribers_subscribed",
			post:     &entities.Post{Creator: owner, AccessLevel: entities.AccessLevelSubscribers},
			viewer:   Viewer{Address: viewer, IsSubscribed: true},
			expected: true,
		},
		{
			name:     "subscribers_not_subscribed",
			post:     &entities.Post{Creator: owner, AccessLevel: entities.AccessLevelSubscribers},
			viewer:   Viewer{Address: viewer},
			expected: false,
		},
		{
			name:     "tier_gated_higher_tier",
			post:     &entities.Post{Creator: owner, AccessLevel: entities.AccessLevelTierGated, RequiredTierID: 1},
			viewer:   Viewer{Address: viewer, IsSubscribed: true, TierID: 2},
			expected: true,
		},
		{
			name:     "tier_gated_same_tier",
			post:     &entities.Post{Creator: owner, AccessLevel: entities.AccessLevelTierGated, RequiredTierID: 1},
			viewer:   Viewer{Address: viewer, IsSubscribed: true, TierID: 1},
			expected: true,
		},
		{
			name:     "tier_gated_lower_tier",
			post:     &entities.Post{Creator: owner, AccessLevel: entities.AccessLevelTierGated, RequiredTierID: 2},
			viewer:   Viewer{Address: viewer, IsSubscribed: true, TierID: 1},
			expected: false,
		},
		{
			name:     "tier_gated_not_subscribed",
			post:     &entities.Post{Creator: owner, AccessLevel: entities.AccessLevelTierGated},
			viewer:   Viewer{Address: viewer, TierID: 5},
			expected: false,
		},
		{
			name:     "unknown_level",
			post:     &entities.Post{Creator: owner, AccessLevel: entities.AccessLevel(7)},
			viewer:   Viewer{Address: viewer, IsSubscribed: true, TierID: 5},
			expected: false,
		},
		{
			name:     "unknown_level_owner",
			post:     &entities.Post{Creator: owner, AccessLevel: entities.AccessLevel(7)},
			viewer:   Viewer{Address: owner},
			expected: false,
		},
		{
			name:     "nil_post",
			viewer:   Viewer{Address: owner},
			expected: false,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, CanAccess(tc.post, tc.viewer))
		})
	}
}

func TestCanAccess_PublicRegardlessOfSubscription(t *testing.T) {
	p := &entities.Post{Creator: owner, AccessLevel: entities.AccessLevelPublic}

	for _, subscribed := range []bool{true, false} {
		for tier := uint64(0); tier < 5; tier++ {
			require.True(t, CanAccess(p, Viewer{Address: viewer, IsSubscribed: subscribed, TierID: tier}))
		}
	}
}

func TestNewViewer(t *testing.T) {
	now := time.Unix(1700000000, 0)

	v := NewViewer(viewer, &entities.Subscription{TierID: 2, EndTime: now.Add(time.Hour), IsActive: true}, now)
	require.Equal(t, Viewer{Address: viewer, IsSubscribed: true, TierID: 2}, v)

	v = NewViewer(viewer, &entities.Subscription{TierID: 2, EndTime: now.Add(-time.Second), IsActive: true}, now)
	require.Equal(t, Viewer{Address: viewer}, v)

	v = NewViewer(viewer, &entities.Subscription{TierID: 2, EndTime: now.Add(time.Hour)}, now)
	require.Equal(t, Viewer{Address: viewer}, v)

	require.Equal(t, Viewer{Address: viewer}, NewViewer(viewer, nil, now))
}

func TestCanAccess_ExpiredTierGated(t *testing.T) {
	now := time.Unix(1700000000, 0)
	p := &entities.Post{Creator: owner, AccessLevel: entities.AccessLevelTierGated, RequiredTierID: 1}

	active := NewViewer(viewer, &entities.Subscription{TierID: 3, EndTime: now.Add(time.Hour), IsActive: true}, now)
	require.True(t, CanAccess(p, active))

	expired := NewViewer(viewer, &entities.Subscription{TierID: 3, EndTime: now.Add(-time.Hour), IsActive: true}, now)
	require.False(t, CanAccess(p, expired))
}

package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/plutus/internal/entities"
)

func TestEvaluate(t *testing.T) {
	now := time.Unix(1700000000, 0)
	day := 24 * time.Hour

	tt := []struct {
		name   string
		sub    entities.Subscription
		status Status
		days   int64
	}{
		{
			name:   "expiring_in_5_days",
			sub:    entities.Subscription{EndTime: now.Add(5 * day), IsActive: true},
			status: StatusExpiringSoon,
			days:   5,
		},
		{
			name:   "rounds_up",
			sub:    entities.Subscription{EndTime: now.Add(5*day + time.Second), IsActive: true},
			status: StatusExpiringSoon,
			days:   6,
		},
		{
			name:   "exactly_7_days",
			sub:    entities.Subscription{EndTime: now.Add(7 * day), IsActive: true},
			status: StatusExpiringSoon,
			days:   7,
		},
		{
			name:   "active",
			sub:    entities.Subscription{EndTime: now.Add(7*day + time.Second), IsActive: true},
			status: StatusActive,
			days:   8,
		},
		{
			name:   "ends_now",
			sub:    entities.Subscription{EndTime: now, IsActive: true},
			status: StatusExpiringSoon,
			days:   0,
		},
		{
			name:   "expired_active_flag",
			sub:    entities.Subscription{EndTime: now.Add(-time.Second), IsActive: true},
			status: StatusExpired,
		},
		{
			name:   "expired_inactive_flag",
			sub:    entities.Subscription{EndTime: now.Add(-time.Second)},
			status: StatusExpired,
		},
		{
			name:   "inactive",
			sub:    entities.Subscription{EndTime: now.Add(30 * day)},
			status: StatusExpired,
		},
		{
			name:   "zero",
			status: StatusExpired,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := Evaluate(tc.sub, now)
			require.Equal(t, tc.status, s.Status)
			require.Equal(t, tc.days, s.DaysRemaining)
			require.Equal(t, s, Evaluate(tc.sub, now))
		})
	}
}

func TestState_Current(t *testing.T) {
	require.True(t, State{Status: StatusActive}.Current())
	require.True(t, State{Status: StatusExpiringSoon}.Current())
	require.False(t, State{Status: StatusExpired}.Current())
}

func TestStatus_String(t *testing.T) {
	require.Equal(t, "active", StatusActive.String())
	require.Equal(t, "expiring_soon", StatusExpiringSoon.String())
	require.Equal(t, "expired", StatusExpired.String())
	require.Equal(t, "Status(7)", Status(7).String())
}

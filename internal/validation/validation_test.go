package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	err := Errorf("limit", "should be at most %d", 100)
	require.Equal(t, "invalid limit: should be at most 100", err.Error())
	require.True(t, IsError(err))
	require.True(t, IsError(fmt.Errorf("failed to list: %w", err)))
	require.False(t, IsError(errors.New("test")))

	require.Equal(t, "rejected", (&Error{Reason: "rejected"}).Error())
}

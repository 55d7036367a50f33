package publisher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubjects(t *testing.T) {
	require.Equal(t, "plutus.messages.0xabc", MessagesSubject("0xabc"))
	require.Equal(t, "plutus.chain.TipSent", ChainSubject("TipSent"))
}

func TestNoop(t *testing.T) {
	require.NoError(t, Noop().Publish(context.Background(), "subject", nil))
}

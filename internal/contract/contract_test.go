package contract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTxStatus_String(t *testing.T) {
	require.Equal(t, "pending", TxPending.String())
	require.Equal(t, "confirmed", TxConfirmed.String())
	require.Equal(t, "failed", TxFailed.String())
	require.Equal(t, "TxStatus(5)", TxStatus(5).String())
}

package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/plutus/internal/validation"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestAuthenticator() *Authenticator {
	a := New([]byte("secret"), time.Hour)
	a.nowFunc = func() time.Time { return now }
	return a
}

func sign(t *testing.T, message string) (string, string) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27

	return crypto.PubkeyToAddress(key.PublicKey).Hex(), hexutil.Encode(sig)
}

func TestAuthenticator_Login(t *testing.T) {
	a := newTestAuthenticator()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()

	message, err := a.Challenge(strings.ToLower(address))
	require.NoError(t, err)
	require.Contains(t, message, address)

	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27

	token, err := a.Login(address, message, hexutil.Encode(sig))
	require.NoError(t, err)

	got, err := a.Verify(token)
	require.NoError(t, err)
	require.Equal(t, address, got)
}

func TestAuthenticator_Login_Errors(t *testing.T) {
	a := newTestAuthenticator()

	address, _ := sign(t, "")

	message, err := a.Challenge(address)
	require.NoError(t, err)

	t.Run("invalid_address", func(t *testing.T) {
		_, err := a.Login("0x123", message, "0x")
		require.True(t, validation.IsError(err))
	})

	t.Run("wrong_signer", func(t *testing.T) {
		_, sig := sign(t, message)
		_, err := a.Login(address, message, sig)
		require.True(t, errors.Is(err, ErrUnauthorized))
	})

	t.Run("malformed_signature", func(t *testing.T) {
		_, err := a.Login(address, message, "0x1234")
		require.True(t, errors.Is(err, ErrUnauthorized))
	})

	t.Run("unknown_message", func(t *testing.T) {
		signer, sig := sign(t, "hello")
		_, err := a.Login(signer, "hello", sig)
		require.True(t, errors.Is(err, ErrUnauthorized))
	})

	t.Run("expired", func(t *testing.T) {
		old := newTestAuthenticator()
		old.nowFunc = func() time.Time { return now.Add(-DefaultChallengeTTL - time.Second) }

		signer, _ := sign(t, "")
		message, err := old.Challenge(signer)
		require.NoError(t, err)

		_, err = a.Login(signer, message, "0x")
		require.True(t, errors.Is(err, ErrUnauthorized))
	})

	t.Run("another_address", func(t *testing.T) {
		signer, sig := sign(t, message)
		_, err := a.Login(signer, message, sig)
		require.True(t, errors.Is(err, ErrUnauthorized))
	})
}

func TestAuthenticator_Verify(t *testing.T) {
	a := newTestAuthenticator()

	_, err := a.Verify("invalid")
	require.True(t, errors.Is(err, ErrUnauthorized))

	other := New([]byte("other"), time.Hour)
	other.nowFunc = a.nowFunc

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()

	message, err := other.Challenge(address)
	require.NoError(t, err)
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	require.NoError(t, err)

	token, err := other.Login(address, message, hexutil.Encode(sig))
	require.NoError(t, err)

	_, err = a.Verify(token)
	require.True(t, errors.Is(err, ErrUnauthorized))

	expired := newTestAuthenticator()
	expired.nowFunc = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = expired.Verify(token)
	require.True(t, errors.Is(err, ErrUnauthorized))
}

func TestAuthenticator_Middleware(t *testing.T) {
	a := newTestAuthenticator()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()

	message, err := a.Challenge(address)
	require.NoError(t, err)
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	require.NoError(t, err)
	token, err := a.Login(address, message, hexutil.Encode(sig))
	require.NoError(t, err)

	var got string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = AddressFromContext(r.Context())
	})

	tt := []struct {
		name     string
		required bool
		header   string
		code     int
		address  string
	}{
		{name: "optional_anonymous", code: http.StatusOK},
		{name: "required_anonymous", required: true, code: http.StatusUnauthorized},
		{name: "valid", required: true, header: "Bearer " + token, code: http.StatusOK, address: address},
		{name: "invalid_token", header: "Bearer abc", code: http.StatusUnauthorized},
		{name: "invalid_scheme", header: "Basic abc", code: http.StatusUnauthorized},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			got = ""

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}

			a.Middleware(tc.required)(h).ServeHTTP(w, r)

			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, tc.address, got)
		})
	}
}

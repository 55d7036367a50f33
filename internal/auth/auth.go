// Package auth provides wallet sign-in: client signs a challenge with its account and receives session token.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Decentr-net/plutus/internal/api"
	"github.com/Decentr-net/plutus/internal/validation"
)

// ErrUnauthorized is returned when signature or token can not be accepted.
var ErrUnauthorized = errors.New("unauthorized")

// DefaultChallengeTTL is how long signed challenge can be exchanged to token.
const DefaultChallengeTTL = 5 * time.Minute

// DefaultTokenTTL ...
const DefaultTokenTTL = 24 * time.Hour

const (
	challengeTitle  = "Sign in to Plutus"
	addressPrefix   = "Address: "
	issuedAtPrefix  = "Issued At: "
	maxClockSkew    = time.Minute
	signatureLength = 65
)

type ctxKey struct{}

// Authenticator issues and verifies session tokens.
type Authenticator struct {
	secret       []byte
	tokenTTL     time.Duration
	challengeTTL time.Duration
	nowFunc      func() time.Time
}

// New returns new Authenticator.
func New(secret []byte, tokenTTL time.Duration) *Authenticator {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}

	return &Authenticator{
		secret:       secret,
		tokenTTL:     tokenTTL,
		challengeTTL: DefaultChallengeTTL,
		nowFunc:      time.Now,
	}
}

// Challenge returns message address should sign.
func (a *Authenticator) Challenge(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", validation.Errorf("address", "%q is not an address", address)
	}

	return fmt.Sprintf("%s\n\n%s%s\n%s%s",
		challengeTitle,
		addressPrefix, common.HexToAddress(address).Hex(),
		issuedAtPrefix, a.nowFunc().UTC().Format(time.RFC3339),
	), nil
}

// Login verifies signed challenge and returns session token.
func (a *Authenticator) Login(address, message, signature string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", validation.Errorf("address", "%q is not an address", address)
	}
	addr := common.HexToAddress(address)

	signedAddr, issuedAt, err := parseChallenge(message)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnauthorized, err)
	}

	if signedAddr != addr {
		return "", fmt.Errorf("%w: challenge is issued for another address", ErrUnauthorized)
	}

	now := a.nowFunc()
	if issuedAt.After(now.Add(maxClockSkew)) || now.Sub(issuedAt) > a.challengeTTL {
		return "", fmt.Errorf("%w: challenge is expired", ErrUnauthorized)
	}

	signer, err := recoverSigner(message, signature)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnauthorized, err)
	}

	if signer != addr {
		return "", fmt.Errorf("%w: invalid signature", ErrUnauthorized)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   addr.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
	}).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// Verify returns address token was issued for.
func (a *Authenticator) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.nowFunc),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnauthorized, err)
	}

	if !common.IsHexAddress(claims.Subject) {
		return "", fmt.Errorf("%w: invalid subject", ErrUnauthorized)
	}

	return common.HexToAddress(claims.Subject).Hex(), nil
}

// Middleware puts address from bearer token into request context.
// Request without token is rejected when required is true, otherwise it is served as anonymous.
func (a *Authenticator) Middleware(required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				if required {
					api.WriteError(w, http.StatusUnauthorized, "authorization required")
					return
				}

				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimPrefix(h, "Bearer ")
			if token == h {
				api.WriteError(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			address, err := a.Verify(token)
			if err != nil {
				api.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAddress(r.Context(), address)))
		})
	}
}

// WithAddress returns context with authenticated address.
func WithAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, ctxKey{}, address)
}

// AddressFromContext returns authenticated address, empty for anonymous requests.
func AddressFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKey{}).(string)
	return v
}

func parseChallenge(message string) (common.Address, time.Time, error) {
	var (
		address  common.Address
		issuedAt time.Time
		err      error
	)

	lines := strings.Split(message, "\n")
	if len(lines) == 0 || lines[0] != challengeTitle {
		return address, issuedAt, errors.New("unknown challenge")
	}

	for _, l := range lines[1:] {
		switch {
		case strings.HasPrefix(l, addressPrefix):
			v := strings.TrimPrefix(l, addressPrefix)
			if !common.IsHexAddress(v) {
				return address, issuedAt, errors.New("invalid challenge address")
			}
			address = common.HexToAddress(v)
		case strings.HasPrefix(l, issuedAtPrefix):
			issuedAt, err = time.Parse(time.RFC3339, strings.TrimPrefix(l, issuedAtPrefix))
			if err != nil {
				return address, issuedAt, errors.New("invalid challenge time")
			}
		}
	}

	if address == (common.Address{}) || issuedAt.IsZero() {
		return address, issuedAt, errors.New("incomplete challenge")
	}

	return address, issuedAt, nil
}

func recoverSigner(message, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, errors.New("malformed signature")
	}

	if len(sig) != signatureLength {
		return common.Address{}, errors.New("invalid signature length")
	}

	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return common.Address{}, errors.New("failed to recover signer")
	}

	return crypto.PubkeyToAddress(*pub), nil
}

package auth

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/interchain-gateway/pkg/app/errors"
	"github.com/chainsafe/interchain-gateway/pkg/config"
	"github.com/chainsafe/interchain-gateway/pkg/message"
)

func newTestAuthority(now time.Time) *TokenAuthority {
	a := NewTokenAuthority(&config.AuthConfig{
		JWTSecret: "test-secret",
		Issuer:    "interchain-gateway",
		TokenTTL:  time.Hour,
	})
	a.now = func() time.Time { return now }
	return a
}

func signEIP191(t *testing.T, msg string) (string, string) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), key)
	require.NoError(t, err)

	return crypto.PubkeyToAddress(key.PublicKey).Hex(), "0x" + hex.EncodeToString(sig)
}

func TestTokenAuthority_RoundTrip(t *testing.T) {
	a := newTestAuthority(time.Now())

	token, expiresAt, err := a.IssueToken("axelar1router")
	require.NoError(t, err)
	assert.WithinDuration(t, a.now().Add(time.Hour), expiresAt, time.Second)

	sender, err := a.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, message.Address("axelar1router"), sender)
}

func TestTokenAuthority_RejectsEmptySender(t *testing.T) {
	_, _, err := newTestAuthority(time.Now()).IssueToken("")
	require.ErrorIs(t, err, message.ErrInvalidAddress)
}

func TestTokenAuthority_Expired(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)
	token, _, err := newTestAuthority(issuedAt).IssueToken("axelar1router")
	require.NoError(t, err)

	_, err = newTestAuthority(time.Now()).ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenAuthority_WrongSecret(t *testing.T) {
	token, _, err := newTestAuthority(time.Now()).IssueToken("axelar1router")
	require.NoError(t, err)

	other := newTestAuthority(time.Now())
	other.secret = []byte("another-secret")
	_, err = other.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenAuthority_WrongIssuer(t *testing.T) {
	token, _, err := newTestAuthority(time.Now()).IssueToken("axelar1router")
	require.NoError(t, err)

	other := newTestAuthority(time.Now())
	other.issuer = "someone-else"
	_, err = other.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenAuthority_RejectsNoneAlgorithm(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "interchain-gateway",
		Subject:   "axelar1router",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestAuthority(time.Now()).ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	a := newTestAuthority(time.Now())
	token, _, err := a.IssueToken("axelar1relayer")
	require.NoError(t, err)

	var got message.Address
	handler := Middleware(a, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = SenderFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc", status: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + token, status: http.StatusNoContent},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
	assert.Equal(t, message.Address("axelar1relayer"), got)
}

func TestRecoverSender(t *testing.T) {
	msg := "hello"
	addr, sig := signEIP191(t, msg)

	recovered, err := RecoverSender(msg, sig)
	require.NoError(t, err)
	assert.Equal(t, message.Address(addr), recovered)

	// legacy 27/28 recovery id
	raw, err := hex.DecodeString(sig[2:])
	require.NoError(t, err)
	raw[64] += 27
	recovered, err = RecoverSender(msg, "0x"+hex.EncodeToString(raw))
	require.NoError(t, err)
	assert.Equal(t, message.Address(addr), recovered)

	other, err := RecoverSender("other", sig)
	require.NoError(t, err)
	assert.NotEqual(t, message.Address(addr), other)

	_, err = RecoverSender(msg, "0x1234")
	require.ErrorIs(t, err, ErrInvalidSignature)

	_, err = RecoverSender(msg, "not-hex")
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestLogin(t *testing.T) {
	now := time.Now()
	a := newTestAuthority(now)

	r := chi.NewRouter()
	RegisterRoutes(r, a, zap.NewNop())

	post := func(body any) *httptest.ResponseRecorder {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/token", bytes.NewReader(raw))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid", func(t *testing.T) {
		msg := fmt.Sprintf("%s%d", LoginMessagePrefix, now.Unix())
		addr, sig := signEIP191(t, msg)

		rec := post(LoginRequest{Message: msg, Signature: sig})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, message.Address(addr), resp.Sender)

		sender, err := a.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, message.Address(addr), sender)
	})

	t.Run("stale message", func(t *testing.T) {
		msg := fmt.Sprintf("%s%d", LoginMessagePrefix, now.Add(-time.Hour).Unix())
		_, sig := signEIP191(t, msg)

		rec := post(LoginRequest{Message: msg, Signature: sig})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong prefix", func(t *testing.T) {
		msg := fmt.Sprintf("login %d", now.Unix())
		_, sig := signEIP191(t, msg)

		rec := post(LoginRequest{Message: msg, Signature: sig})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing signature", func(t *testing.T) {
		rec := post(LoginRequest{Message: LoginMessagePrefix + "1"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireSender(t *testing.T) {
	_, err := RequireSender(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryUnauthorized))
	require.ErrorIs(t, err, ErrMissingToken)

	_, err = RequireSender(WithSender(context.Background(), ""))
	require.Error(t, err)

	sender, err := RequireSender(WithSender(context.Background(), "axelar1relayer"))
	require.NoError(t, err)
	assert.Equal(t, message.Address("axelar1relayer"), sender)
}

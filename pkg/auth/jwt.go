// Package auth authenticates callers of the HTTP API. Every request carries an
// HS256 bearer token whose subject is the caller's address, which the gateway
// uses as the message sender.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chainsafe/interchain-gateway/pkg/config"
	"github.com/chainsafe/interchain-gateway/pkg/message"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingToken = errors.New("missing bearer token")
)

// TokenAuthority issues and validates sender tokens with a shared secret.
type TokenAuthority struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenAuthority creates a TokenAuthority from the auth settings.
func NewTokenAuthority(cfg *config.AuthConfig) *TokenAuthority {
	return &TokenAuthority{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
		ttl:    cfg.TokenTTL,
		now:    time.Now,
	}
}

// IssueToken signs a token naming sender as subject. It returns the token and its expiry.
func (a *TokenAuthority) IssueToken(sender message.Address) (string, time.Time, error) {
	if err := sender.Validate(); err != nil {
		return "", time.Time{}, err
	}

	now := a.now()
	expiresAt := now.Add(a.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    a.issuer,
		Subject:   sender.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken checks signature, issuer and expiry and returns the sender.
func (a *TokenAuthority) ValidateToken(token string) (message.Address, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(a.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	sender, err := message.ParseAddress(claims.Subject)
	if err != nil {
		return "", fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}
	return sender, nil
}

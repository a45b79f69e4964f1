package auth

import (
	"context"

	apperrors "github.com/chainsafe/interchain-gateway/pkg/app/errors"
	"github.com/chainsafe/interchain-gateway/pkg/message"
)

type senderKey struct{}

// WithSender returns a context carrying the authenticated caller.
func WithSender(ctx context.Context, sender message.Address) context.Context {
	return context.WithValue(ctx, senderKey{}, sender)
}

// SenderFromContext reports the caller stored by Middleware. An empty address counts as absent.
func SenderFromContext(ctx context.Context) (message.Address, bool) {
	sender, _ := ctx.Value(senderKey{}).(message.Address)
	return sender, sender != ""
}

// RequireSender is SenderFromContext for handlers that act on behalf of the
// caller; a missing sender becomes a 401.
func RequireSender(ctx context.Context) (message.Address, error) {
	sender, ok := SenderFromContext(ctx)
	if !ok {
		return "", apperrors.UnAuthorizedError(ErrMissingToken, "sender required")
	}
	return sender, nil
}

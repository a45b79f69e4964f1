package auth

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/interchain-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/interchain-gateway/pkg/app/http"
	"github.com/chainsafe/interchain-gateway/pkg/message"
)

const (
	// LoginMessagePrefix starts every message signed to obtain a token. It is
	// followed by the signing time in unix seconds.
	LoginMessagePrefix = "interchain-gateway login "

	loginWindow = 5 * time.Minute
)

// LoginRequest is an EIP-191 signed login message
type LoginRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

// LoginResponse carries a token for the recovered address
type LoginResponse struct {
	Token     string          `json:"token"`
	Sender    message.Address `json:"sender"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// HTTP exposes token issuance for EVM senders
type HTTP struct {
	authority *TokenAuthority
	logger    *zap.Logger
}

// RegisterRoutes registers the login endpoint on r
func RegisterRoutes(r chi.Router, authority *TokenAuthority, logger *zap.Logger) {
	h := &HTTP{
		authority: authority,
		logger:    logger,
	}

	r.Post("/token", apphttp.HandleError(h.token))
}

func (h *HTTP) token(w http.ResponseWriter, r *http.Request) error {
	var req LoginRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	if req.Message == "" || req.Signature == "" {
		return apperrors.UnAuthorizedError(nil, "signature and message required")
	}
	if err := h.checkLoginMessage(req.Message); err != nil {
		return apperrors.UnAuthorizedError(err, "invalid login message")
	}

	sender, err := RecoverSender(req.Message, req.Signature)
	if err != nil {
		return apperrors.UnAuthorizedError(err, "invalid signature")
	}

	token, expiresAt, err := h.authority.IssueToken(sender)
	if err != nil {
		return apperrors.GeneralError(err)
	}

	h.logger.Info("Issued sender token", zap.String("sender", sender.String()), zap.Time("expires_at", expiresAt))
	apphttp.WriteJSON(w, http.StatusOK, &LoginResponse{Token: token, Sender: sender, ExpiresAt: expiresAt})
	return nil
}

// checkLoginMessage accepts messages signed within loginWindow of now.
func (h *HTTP) checkLoginMessage(msg string) error {
	raw, ok := strings.CutPrefix(msg, LoginMessagePrefix)
	if !ok {
		return fmt.Errorf("message must start with %q", LoginMessagePrefix)
	}
	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid login timestamp: %w", err)
	}

	signedAt := time.Unix(ts, 0)
	if d := h.authority.now().Sub(signedAt); d > loginWindow || d < -loginWindow {
		return fmt.Errorf("login message signed at %s is outside the accepted window", signedAt.UTC())
	}
	return nil
}

package verifier

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/interchain-gateway/internal/metrics"
	"github.com/chainsafe/interchain-gateway/pkg/message"
)

const (
	// MethodMessagesStatus is the JSON-RPC method answering status queries
	MethodMessagesStatus = "verifier_messagesStatus"
	// ActionVerifyMessages is the command action asking the verifier to start verification
	ActionVerifyMessages = "verify_messages"
)

// Caller is the JSON-RPC transport. *rpc.Client from go-ethereum satisfies it.
type Caller interface {
	CallContext(ctx context.Context, result any, method string, args ...any) error
}

// Client queries the oracle over JSON-RPC and builds verifier commands.
// It holds no verifier address: every call names the contract it targets.
type Client struct {
	caller  Caller
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient creates a Client. A non-positive timeout leaves the caller's context untouched.
func NewClient(caller Caller, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		caller:  caller,
		timeout: timeout,
		logger:  logger,
	}
}

// MessagesStatus asks the verifier contract for the status of every message in msgs.
func (c *Client) MessagesStatus(ctx context.Context, contract message.Address, msgs []message.Message) ([]MessageStatus, error) {
	if len(msgs) == 0 {
		return nil, nil
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	var statuses []MessageStatus
	err := c.caller.CallContext(ctx, &statuses, MethodMessagesStatus, contract, msgs)
	metrics.VerifierQueryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.VerifierQueries.WithLabelValues("error").Inc()
		c.logger.Warn("Verifier status query failed",
			zap.String("verifier", contract.String()),
			zap.Int("messages", len(msgs)),
			zap.Error(err))
		return nil, fmt.Errorf("call %s: %w", MethodMessagesStatus, err)
	}
	metrics.VerifierQueries.WithLabelValues("ok").Inc()

	c.logger.Debug("Verifier status query completed",
		zap.String("verifier", contract.String()),
		zap.Int("messages", len(msgs)),
		zap.Int("statuses", len(statuses)))
	return statuses, nil
}

// VerifyMessages returns the command asking contract to verify msgs, or nil
// when there is nothing to verify.
func (c *Client) VerifyMessages(contract message.Address, msgs []message.Message) *message.Command {
	if len(msgs) == 0 {
		return nil
	}
	return &message.Command{
		Contract: contract,
		Action:   ActionVerifyMessages,
		Messages: msgs,
	}
}

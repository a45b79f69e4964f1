package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/interchain-gateway/internal/metrics"
	apperrors "github.com/chainsafe/interchain-gateway/pkg/app/errors"
	"github.com/chainsafe/interchain-gateway/pkg/gateway"
	"github.com/chainsafe/interchain-gateway/pkg/kv"
	"github.com/chainsafe/interchain-gateway/pkg/message"
	"github.com/chainsafe/interchain-gateway/pkg/verifier"
)

// Verifier is the gateway's view of the verification oracle.
//
//go:generate mockery --name Verifier --output mocks --outpkg mocks --filename mock_verifier.go --with-expecter
type Verifier interface {
	MessagesStatus(ctx context.Context, contract message.Address, msgs []message.Message) ([]verifier.MessageStatus, error)
	VerifyMessages(contract message.Address, msgs []message.Message) *message.Command
}

// Router builds the command handing verified messages to the router contract.
type Router interface {
	Route(contract message.Address, msgs []message.Message) *message.Command
}

// Service defines the gateway operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Instantiate(ctx context.Context, req *gateway.InstantiateRequest) error
	Execute(ctx context.Context, sender message.Address, msg *gateway.ExecuteMsg) (*gateway.Response, error)
	VerifyMessages(ctx context.Context, msgs []message.Message) (*gateway.Response, error)
	RouteIncomingMessages(ctx context.Context, msgs []message.Message) (*gateway.Response, error)
	RouteOutgoingMessages(ctx context.Context, msgs []message.Message) (*gateway.Response, error)
	OutgoingMessages(ctx context.Context, ids []message.CrossChainID) ([]message.Message, error)
	Config(ctx context.Context) (*gateway.Config, error)
}

const operationRouteOutgoing = "route_outgoing_messages"

type gatewayService struct {
	store    kv.TxStore
	verifier Verifier
	logger   *zap.Logger

	verifyPolicy policy
	routePolicy  policy
}

// NewService creates a gateway service persisting its state in store.
func NewService(store kv.TxStore, v Verifier, r Router, logger *zap.Logger) Service {
	return &gatewayService{
		store:    store,
		verifier: v,
		logger:   logger,
		verifyPolicy: policy{
			name:   "verify_messages",
			action: verifyAction,
			event:  verifyEvent,
			command: func(cfg gateway.Config, msgs []message.Message) *message.Command {
				return v.VerifyMessages(cfg.Verifier, msgs)
			},
		},
		routePolicy: policy{
			name:   "route_incoming_messages",
			action: routeAction,
			event:  routeEvent,
			command: func(cfg gateway.Config, msgs []message.Message) *message.Command {
				return r.Route(cfg.Router, msgs)
			},
		},
	}
}

// Instantiate validates and stores the collaborator addresses. Calling it again
// replaces the stored configuration.
func (s *gatewayService) Instantiate(ctx context.Context, req *gateway.InstantiateRequest) error {
	verifierAddr, err := message.ParseAddress(req.VerifierAddress)
	if err != nil {
		return apperrors.BadRequestError(fmt.Errorf("%w: verifier: %w", gateway.ErrInvalidAddress, err), "invalid verifier address")
	}
	routerAddr, err := message.ParseAddress(req.RouterAddress)
	if err != nil {
		return apperrors.BadRequestError(fmt.Errorf("%w: router: %w", gateway.ErrInvalidAddress, err), "invalid router address")
	}

	err = s.store.RunInTx(ctx, func(ctx context.Context, tx kv.Store) error {
		return saveConfig(ctx, tx, gateway.Config{Verifier: verifierAddr, Router: routerAddr})
	})
	if err != nil {
		return classify(err, gateway.ErrInvalidStoreAccess)
	}
	return nil
}

// Execute dispatches msg. Route requests coming from the router are outgoing
// messages to be stored, any other sender is routing incoming messages.
func (s *gatewayService) Execute(ctx context.Context, sender message.Address, msg *gateway.ExecuteMsg) (*gateway.Response, error) {
	switch msg.Kind {
	case gateway.ExecuteVerifyMessages:
		return s.VerifyMessages(ctx, msg.Messages)
	case gateway.ExecuteRouteMessages:
		start := time.Now()
		operation, fallback := s.routePolicy.name, gateway.ErrInvalidStoreAccess
		resp, err := s.inTx(ctx, func(ctx context.Context, tx kv.Store, cfg gateway.Config) (*gateway.Response, error) {
			if sender.Equal(cfg.Router) {
				operation, fallback = operationRouteOutgoing, gateway.ErrSaveOutgoingMessage
				return s.routeOutgoing(ctx, tx, msg.Messages)
			}
			return s.apply(ctx, cfg, s.routePolicy, msg.Messages)
		})
		return s.observe(operation, start, resp, err, fallback)
	default:
		return nil, apperrors.BadRequestError(fmt.Errorf("%w: %q", gateway.ErrUnknownExecuteMsg, msg.Kind), "unknown execute message")
	}
}

// VerifyMessages asks the verifier to verify every message that is not already
// verified, in progress or rejected.
func (s *gatewayService) VerifyMessages(ctx context.Context, msgs []message.Message) (*gateway.Response, error) {
	start := time.Now()
	resp, err := s.inTx(ctx, func(ctx context.Context, _ kv.Store, cfg gateway.Config) (*gateway.Response, error) {
		return s.apply(ctx, cfg, s.verifyPolicy, msgs)
	})
	return s.observe(s.verifyPolicy.name, start, resp, err, gateway.ErrInvalidStoreAccess)
}

// RouteIncomingMessages hands verified messages to the router.
func (s *gatewayService) RouteIncomingMessages(ctx context.Context, msgs []message.Message) (*gateway.Response, error) {
	start := time.Now()
	resp, err := s.inTx(ctx, func(ctx context.Context, _ kv.Store, cfg gateway.Config) (*gateway.Response, error) {
		return s.apply(ctx, cfg, s.routePolicy, msgs)
	})
	return s.observe(s.routePolicy.name, start, resp, err, gateway.ErrInvalidStoreAccess)
}

// RouteOutgoingMessages stores messages addressed to this chain so relayers can
// fetch them. Storing the same message again is a no-op apart from the event.
func (s *gatewayService) RouteOutgoingMessages(ctx context.Context, msgs []message.Message) (*gateway.Response, error) {
	start := time.Now()
	resp, err := s.inTx(ctx, func(ctx context.Context, tx kv.Store, _ gateway.Config) (*gateway.Response, error) {
		return s.routeOutgoing(ctx, tx, msgs)
	})
	return s.observe(operationRouteOutgoing, start, resp, err, gateway.ErrSaveOutgoingMessage)
}

// OutgoingMessages returns the stored message for every id, in order. A single
// unknown id fails the whole call.
func (s *gatewayService) OutgoingMessages(ctx context.Context, ids []message.CrossChainID) ([]message.Message, error) {
	out := make([]message.Message, 0, len(ids))
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx kv.Store) error {
		out = out[:0]
		for _, id := range ids {
			msg, ok, err := mayLoadOutgoingMessage(ctx, tx, id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s", gateway.ErrMessageNotFound, id)
			}
			out = append(out, msg)
		}
		return nil
	})
	if err != nil {
		return nil, classify(err, gateway.ErrInvalidStoreAccess)
	}
	return out, nil
}

// Config returns the stored configuration.
func (s *gatewayService) Config(ctx context.Context) (*gateway.Config, error) {
	var cfg gateway.Config
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx kv.Store) error {
		var err error
		cfg, err = loadConfig(ctx, tx)
		return err
	})
	if err != nil {
		return nil, classify(err, gateway.ErrInvalidStoreAccess)
	}
	return &cfg, nil
}

type txFunc func(ctx context.Context, tx kv.Store, cfg gateway.Config) (*gateway.Response, error)

// inTx runs fn in a transaction with the stored config.
func (s *gatewayService) inTx(ctx context.Context, fn txFunc) (*gateway.Response, error) {
	var resp *gateway.Response
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx kv.Store) error {
		cfg, err := loadConfig(ctx, tx)
		if err != nil {
			return err
		}
		resp, err = fn(ctx, tx, cfg)
		return err
	})
	return resp, err
}

// observe records metrics for one operation and classifies its error. Errors
// carrying no gateway sentinel are wrapped with fallback.
func (s *gatewayService) observe(operation string, start time.Time, resp *gateway.Response, err, fallback error) (*gateway.Response, error) {
	metrics.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		err = classify(err, fallback)
		var svcErr *apperrors.ServiceError
		if errors.As(err, &svcErr) {
			metrics.ErrorsTotal.WithLabelValues("gateway", svcErr.Category.String()).Inc()
		}
		s.logger.Debug("Gateway operation failed", zap.String("operation", operation), zap.Error(err))
		return nil, err
	}

	for _, ev := range resp.Events {
		metrics.MessagesTotal.WithLabelValues(operation, string(ev.Kind)).Inc()
	}
	for _, cmd := range resp.Commands {
		metrics.CommandsTotal.WithLabelValues(cmd.Action).Inc()
	}
	return resp, nil
}

// apply runs the verification pipeline: deduplicate, query the oracle once,
// group by status and let p decide what is forwarded.
func (s *gatewayService) apply(ctx context.Context, cfg gateway.Config, p policy, msgs []message.Message) (*gateway.Response, error) {
	unique, err := message.Unique(msgs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gateway.ErrDuplicateMessageIDs, err)
	}
	if len(unique) == 0 {
		return gateway.NewResponse(), nil
	}

	statuses, err := s.verifier.MessagesStatus(ctx, cfg.Verifier, unique)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gateway.ErrQueryVerifier, err)
	}
	buckets, err := groupByStatus(unique, statuses)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gateway.ErrQueryVerifier, err)
	}

	var forward []message.Message
	events := make([]gateway.Event, 0, len(unique))
	for _, b := range buckets {
		if p.action(b.status) == ActionForward {
			forward = append(forward, b.messages...)
		}
		kind := p.event(b.status)
		for _, m := range b.messages {
			events = append(events, gateway.Event{Kind: kind, Message: m})
		}
	}

	resp := gateway.NewResponse()
	resp.Events = events
	if cmd := p.command(cfg, forward); cmd != nil {
		resp.Commands = append(resp.Commands, *cmd)
	}
	return resp, nil
}

func (s *gatewayService) routeOutgoing(ctx context.Context, tx kv.Store, msgs []message.Message) (*gateway.Response, error) {
	unique, err := message.Unique(msgs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gateway.ErrDuplicateMessageIDs, err)
	}

	events := make([]gateway.Event, 0, len(unique))
	for _, m := range unique {
		stored, ok, err := mayLoadOutgoingMessage(ctx, tx, m.CCID)
		if err != nil {
			return nil, err
		}
		if ok && stored != m {
			s.logger.Warn("Overwriting outgoing message with different content",
				zap.String("cc_id", m.CCID.String()),
				zap.String("stored_payload_hash", stored.PayloadHash.Hex()),
				zap.String("payload_hash", m.PayloadHash.Hex()))
		}
		if err := saveOutgoingMessage(ctx, tx, m); err != nil {
			return nil, err
		}
		metrics.OutgoingMessagesStored.Inc()
		events = append(events, gateway.Event{Kind: gateway.EventRouting, Message: m})
	}
	resp := gateway.NewResponse()
	resp.Events = events
	return resp, nil
}

// classify maps gateway errors to service error categories. Errors that carry
// no gateway sentinel come from the store itself and are wrapped with fallback.
func classify(err, fallback error) error {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		return err
	}

	switch {
	case errors.Is(err, gateway.ErrDuplicateMessageIDs):
		return apperrors.BadRequestError(err, "duplicate message ids with different content")
	case errors.Is(err, gateway.ErrMessageNotFound):
		return apperrors.ResourceNotFoundError(err, err.Error())
	case errors.Is(err, gateway.ErrQueryVerifier):
		return apperrors.DependencyFailureError(err, "failed to query verifier")
	case errors.Is(err, gateway.ErrConfigMissing),
		errors.Is(err, gateway.ErrInvalidStoreAccess),
		errors.Is(err, gateway.ErrSaveOutgoingMessage):
		return apperrors.GeneralError(err)
	default:
		return apperrors.GeneralError(fmt.Errorf("%w: %w", fallback, err))
	}
}

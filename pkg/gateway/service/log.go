package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/interchain-gateway/pkg/gateway"
	"github.com/chainsafe/interchain-gateway/pkg/message"
)

const serviceName = "GatewayService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the gateway Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Instantiate(ctx context.Context, req *gateway.InstantiateRequest) (err error) {
	start := time.Now()
	ls.logger.Info("Instantiate started",
		zap.String("service", serviceName),
		zap.String("method", "Instantiate"),
		zap.String("verifier", req.VerifierAddress),
		zap.String("router", req.RouterAddress),
	)

	defer func() {
		ls.done("Instantiate", start, err)
	}()

	return ls.svc.Instantiate(ctx, req)
}

func (ls *logService) Execute(
	ctx context.Context,
	sender message.Address,
	msg *gateway.ExecuteMsg,
) (resp *gateway.Response, err error) {
	start := time.Now()
	ls.logger.Info("Execute started",
		zap.String("service", serviceName),
		zap.String("method", "Execute"),
		zap.String("sender", sender.String()),
		zap.String("kind", string(msg.Kind)),
		zap.Int("messages", len(msg.Messages)),
	)

	defer func() {
		ls.doneWithResponse("Execute", start, resp, err)
	}()

	return ls.svc.Execute(ctx, sender, msg)
}

func (ls *logService) VerifyMessages(ctx context.Context, msgs []message.Message) (resp *gateway.Response, err error) {
	start := time.Now()
	ls.started("VerifyMessages", len(msgs))

	defer func() {
		ls.doneWithResponse("VerifyMessages", start, resp, err)
	}()

	return ls.svc.VerifyMessages(ctx, msgs)
}

func (ls *logService) RouteIncomingMessages(ctx context.Context, msgs []message.Message) (resp *gateway.Response, err error) {
	start := time.Now()
	ls.started("RouteIncomingMessages", len(msgs))

	defer func() {
		ls.doneWithResponse("RouteIncomingMessages", start, resp, err)
	}()

	return ls.svc.RouteIncomingMessages(ctx, msgs)
}

func (ls *logService) RouteOutgoingMessages(ctx context.Context, msgs []message.Message) (resp *gateway.Response, err error) {
	start := time.Now()
	ls.started("RouteOutgoingMessages", len(msgs))

	defer func() {
		ls.doneWithResponse("RouteOutgoingMessages", start, resp, err)
	}()

	return ls.svc.RouteOutgoingMessages(ctx, msgs)
}

// OutgoingMessages is a read path, so only failures are logged above debug.
func (ls *logService) OutgoingMessages(ctx context.Context, ids []message.CrossChainID) (msgs []message.Message, err error) {
	start := time.Now()

	defer func() {
		if err != nil {
			ls.done("OutgoingMessages", start, err)
			return
		}
		ls.logger.Debug("OutgoingMessages completed",
			zap.String("service", serviceName),
			zap.String("method", "OutgoingMessages"),
			zap.Int("requested", len(ids)),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.OutgoingMessages(ctx, ids)
}

func (ls *logService) Config(ctx context.Context) (*gateway.Config, error) {
	return ls.svc.Config(ctx)
}

func (ls *logService) started(method string, messages int) {
	ls.logger.Info(method+" started",
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Int("messages", messages),
	)
}

func (ls *logService) done(method string, start time.Time, err error) {
	duration := time.Since(start)
	if err != nil {
		ls.logger.Error(method+" failed",
			zap.String("service", serviceName),
			zap.String("method", method),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return
	}
	ls.logger.Info(method+" completed",
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", duration),
	)
}

func (ls *logService) doneWithResponse(method string, start time.Time, resp *gateway.Response, err error) {
	if err != nil || resp == nil {
		ls.done(method, start, err)
		return
	}
	ls.logger.Info(method+" completed",
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Int("events", len(resp.Events)),
		zap.Int("commands", len(resp.Commands)),
		zap.Duration("duration", time.Since(start)),
	)
}

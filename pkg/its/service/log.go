package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/interchain-gateway/pkg/its"
	"github.com/chainsafe/interchain-gateway/pkg/message"
)

const serviceName = "ITSLedger"

// logService logs every state change of the ledger. Queries are passed through.
type logService struct {
	svc    Service
	logger *zap.Logger
}

func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Instantiate(ctx context.Context, req *its.InstantiateRequest) (err error) {
	defer ls.track("Instantiate", time.Now(), &err, zap.String("axelarnet_gateway", req.AxelarnetGateway))
	return ls.svc.Instantiate(ctx, req)
}

func (ls *logService) Config(ctx context.Context) (*its.Config, error) {
	return ls.svc.Config(ctx)
}

func (ls *logService) RegisterChain(ctx context.Context, req *its.RegisterChainRequest) (cfg *its.ChainConfig, err error) {
	defer ls.track("RegisterChain", time.Now(), &err,
		zap.String("chain", req.Chain.String()),
		zap.String("max_uint", req.MaxUint.String()),
		zap.Uint8("max_target_decimals", req.MaxTargetDecimals),
	)
	return ls.svc.RegisterChain(ctx, req)
}

func (ls *logService) ChainConfig(ctx context.Context, chain message.ChainName) (*its.ChainConfig, error) {
	return ls.svc.ChainConfig(ctx, chain)
}

func (ls *logService) FreezeChain(ctx context.Context, chain message.ChainName) (cfg *its.ChainConfig, err error) {
	defer ls.track("FreezeChain", time.Now(), &err, zap.String("chain", chain.String()))
	return ls.svc.FreezeChain(ctx, chain)
}

func (ls *logService) UnfreezeChain(ctx context.Context, chain message.ChainName) (cfg *its.ChainConfig, err error) {
	defer ls.track("UnfreezeChain", time.Now(), &err, zap.String("chain", chain.String()))
	return ls.svc.UnfreezeChain(ctx, chain)
}

func (ls *logService) IsChainFrozen(ctx context.Context, chain message.ChainName) (bool, error) {
	return ls.svc.IsChainFrozen(ctx, chain)
}

func (ls *logService) RegisterItsContract(ctx context.Context, contract *its.ChainContract) (err error) {
	defer ls.track("RegisterItsContract", time.Now(), &err,
		zap.String("chain", contract.Chain.String()),
		zap.String("address", contract.Address.String()),
	)
	return ls.svc.RegisterItsContract(ctx, contract)
}

func (ls *logService) RemoveItsContract(ctx context.Context, chain message.ChainName) (err error) {
	defer ls.track("RemoveItsContract", time.Now(), &err, zap.String("chain", chain.String()))
	return ls.svc.RemoveItsContract(ctx, chain)
}

func (ls *logService) ItsContract(ctx context.Context, chain message.ChainName) (message.Address, error) {
	return ls.svc.ItsContract(ctx, chain)
}

func (ls *logService) ListAllItsContracts(ctx context.Context) ([]its.ChainContract, error) {
	return ls.svc.ListAllItsContracts(ctx)
}

func (ls *logService) RegisterToken(ctx context.Context, req *its.RegisterTokenRequest) (err error) {
	defer ls.track("RegisterToken", time.Now(), &err,
		zap.String("token_id", req.TokenID.String()),
		zap.String("origin_chain", req.OriginChain.String()),
	)
	return ls.svc.RegisterToken(ctx, req)
}

func (ls *logService) RegisterTokenInstance(ctx context.Context, req *its.RegisterTokenInstanceRequest) (inst *its.TokenInstance, err error) {
	defer ls.track("RegisterTokenInstance", time.Now(), &err,
		zap.String("token_id", req.TokenID.String()),
		zap.String("chain", req.Chain.String()),
		zap.String("deployment_type", string(req.DeploymentType)),
	)
	return ls.svc.RegisterTokenInstance(ctx, req)
}

func (ls *logService) TokenConfig(ctx context.Context, id its.TokenID) (*its.TokenConfig, error) {
	return ls.svc.TokenConfig(ctx, id)
}

func (ls *logService) TokenInstance(ctx context.Context, chain message.ChainName, id its.TokenID) (*its.TokenInstance, error) {
	return ls.svc.TokenInstance(ctx, chain, id)
}

func (ls *logService) TranslateAmount(ctx context.Context, req *its.TranslateRequest) (its.Amount, error) {
	return ls.svc.TranslateAmount(ctx, req)
}

func (ls *logService) CreditSupply(ctx context.Context, req *its.SupplyChangeRequest) (inst *its.TokenInstance, err error) {
	defer ls.trackSupply("CreditSupply", time.Now(), req, &inst, &err)
	return ls.svc.CreditSupply(ctx, req)
}

func (ls *logService) DebitSupply(ctx context.Context, req *its.SupplyChangeRequest) (inst *its.TokenInstance, err error) {
	defer ls.trackSupply("DebitSupply", time.Now(), req, &inst, &err)
	return ls.svc.DebitSupply(ctx, req)
}

func (ls *logService) track(method string, start time.Time, err *error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	if *err != nil {
		ls.logger.Error(method+" failed", append(fields, zap.Error(*err))...)
		return
	}
	ls.logger.Info(method+" completed", fields...)
}

func (ls *logService) trackSupply(method string, start time.Time, req *its.SupplyChangeRequest, inst **its.TokenInstance, err *error) {
	fields := []zap.Field{
		zap.String("chain", req.Chain.String()),
		zap.String("token_id", req.TokenID.String()),
		zap.String("amount", req.Amount.String()),
	}
	if *err == nil && *inst != nil {
		fields = append(fields, zap.String("supply", (*inst).Supply.String()))
	}
	ls.track(method, start, err, fields...)
}

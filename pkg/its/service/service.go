package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/chainsafe/interchain-gateway/internal/metrics"
	apperrors "github.com/chainsafe/interchain-gateway/pkg/app/errors"
	"github.com/chainsafe/interchain-gateway/pkg/its"
	"github.com/chainsafe/interchain-gateway/pkg/kv"
	"github.com/chainsafe/interchain-gateway/pkg/message"
)

// Service defines the token ledger operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Instantiate(ctx context.Context, req *its.InstantiateRequest) error
	Config(ctx context.Context) (*its.Config, error)

	RegisterChain(ctx context.Context, req *its.RegisterChainRequest) (*its.ChainConfig, error)
	ChainConfig(ctx context.Context, chain message.ChainName) (*its.ChainConfig, error)
	FreezeChain(ctx context.Context, chain message.ChainName) (*its.ChainConfig, error)
	UnfreezeChain(ctx context.Context, chain message.ChainName) (*its.ChainConfig, error)
	IsChainFrozen(ctx context.Context, chain message.ChainName) (bool, error)

	RegisterItsContract(ctx context.Context, contract *its.ChainContract) error
	RemoveItsContract(ctx context.Context, chain message.ChainName) error
	ItsContract(ctx context.Context, chain message.ChainName) (message.Address, error)
	ListAllItsContracts(ctx context.Context) ([]its.ChainContract, error)

	RegisterToken(ctx context.Context, req *its.RegisterTokenRequest) error
	RegisterTokenInstance(ctx context.Context, req *its.RegisterTokenInstanceRequest) (*its.TokenInstance, error)
	TokenConfig(ctx context.Context, id its.TokenID) (*its.TokenConfig, error)
	TokenInstance(ctx context.Context, chain message.ChainName, id its.TokenID) (*its.TokenInstance, error)
	TranslateAmount(ctx context.Context, req *its.TranslateRequest) (its.Amount, error)

	CreditSupply(ctx context.Context, req *its.SupplyChangeRequest) (*its.TokenInstance, error)
	DebitSupply(ctx context.Context, req *its.SupplyChangeRequest) (*its.TokenInstance, error)
}

const (
	directionCredit = "credit"
	directionDebit  = "debit"
)

type ledgerService struct {
	store  kv.TxStore
	logger *zap.Logger
}

// NewService creates the token ledger persisting its state in store.
func NewService(store kv.TxStore, logger *zap.Logger) Service {
	return &ledgerService{
		store:  store,
		logger: logger,
	}
}

func (s *ledgerService) Instantiate(ctx context.Context, req *its.InstantiateRequest) error {
	gw, err := message.ParseAddress(req.AxelarnetGateway)
	if err != nil {
		return apperrors.BadRequestError(err, "invalid axelarnet gateway address")
	}
	return s.run(ctx, func(ctx context.Context, tx kv.Store) error {
		if err := configItem.Save(ctx, tx, its.Config{AxelarnetGateway: gw}); err != nil {
			return storageErr("save config", err)
		}
		return nil
	})
}

func (s *ledgerService) Config(ctx context.Context) (*its.Config, error) {
	var cfg its.Config
	err := s.run(ctx, func(ctx context.Context, tx kv.Store) error {
		var err error
		cfg, err = loadConfig(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RegisterChain stores the limits of chain. Registering a chain again replaces
// its config and clears the freeze flag.
func (s *ledgerService) RegisterChain(ctx context.Context, req *its.RegisterChainRequest) (*its.ChainConfig, error) {
	chain, err := message.ParseChainName(string(req.Chain))
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid chain name")
	}
	if req.MaxUint.IsZero() {
		return nil, apperrors.BadRequestError(fmt.Errorf("%w: max_uint", its.ErrZeroAmount), "max_uint must be non-zero")
	}

	cfg := its.ChainConfig{MaxUint: req.MaxUint, MaxTargetDecimals: req.MaxTargetDecimals}
	err = s.run(ctx, func(ctx context.Context, tx kv.Store) error {
		prev, ok, err := mayLoadChainConfig(ctx, tx, chain)
		if err != nil {
			return err
		}
		if ok {
			s.logger.Warn("Overwriting chain config",
				zap.String("chain", chain.String()),
				zap.String("max_uint", prev.MaxUint.String()),
				zap.Bool("was_frozen", prev.Frozen))
		}
		if err := chainConfigs.Save(ctx, tx, chain, cfg); err != nil {
			return storageErr("save chain config", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ChainFrozen.WithLabelValues(chain.String()).Set(0)
	return &cfg, nil
}

func (s *ledgerService) ChainConfig(ctx context.Context, chain message.ChainName) (*its.ChainConfig, error) {
	var cfg its.ChainConfig
	err := s.run(ctx, func(ctx context.Context, tx kv.Store) error {
		var err error
		cfg, err = loadChainConfig(ctx, tx, chain)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *ledgerService) FreezeChain(ctx context.Context, chain message.ChainName) (*its.ChainConfig, error) {
	return s.setFrozen(ctx, chain, true)
}

func (s *ledgerService) UnfreezeChain(ctx context.Context, chain message.ChainName) (*its.ChainConfig, error) {
	return s.setFrozen(ctx, chain, false)
}

func (s *ledgerService) setFrozen(ctx context.Context, chain message.ChainName, frozen bool) (*its.ChainConfig, error) {
	var cfg its.ChainConfig
	err := s.run(ctx, func(ctx context.Context, tx kv.Store) error {
		var err error
		cfg, err = updateChainConfig(ctx, tx, chain, func(c *its.ChainConfig) {
			c.Frozen = frozen
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	gauge := 0.0
	if frozen {
		gauge = 1
	}
	metrics.ChainFrozen.WithLabelValues(chain.Normalized().String()).Set(gauge)
	return &cfg, nil
}

// IsChainFrozen reports the freeze flag of chain. The ledger does not check it
// itself: callers must do so before crediting or debiting.
func (s *ledgerService) IsChainFrozen(ctx context.Context, chain message.ChainName) (bool, error) {
	cfg, err := s.ChainConfig(ctx, chain)
	if err != nil {
		return false, err
	}
	return cfg.Frozen, nil
}

func (s *ledgerService) RegisterItsContract(ctx context.Context, contract *its.ChainContract) error {
	chain, err := message.ParseChainName(string(contract.Chain))
	if err != nil {
		return apperrors.BadRequestError(err, "invalid chain name")
	}
	if err := contract.Address.Validate(); err != nil {
		return apperrors.BadRequestError(err, "invalid contract address")
	}

	return s.run(ctx, func(ctx context.Context, tx kv.Store) error {
		_, ok, err := mayLoadItsContract(ctx, tx, chain)
		if err != nil {
			return err
		}
		if ok {
			return fmt.Errorf("%w: %s", its.ErrItsContractAlreadyRegistered, chain)
		}
		if err := itsContracts.Save(ctx, tx, chain, contract.Address); err != nil {
			return storageErr("save its contract", err)
		}
		return nil
	})
}

func (s *ledgerService) RemoveItsContract(ctx context.Context, chain message.ChainName) error {
	return s.run(ctx, func(ctx context.Context, tx kv.Store) error {
		_, ok, err := mayLoadItsContract(ctx, tx, chain)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", its.ErrItsContractNotFound, chain)
		}
		if err := itsContracts.Remove(ctx, tx, chain); err != nil {
			return storageErr("remove its contract", err)
		}
		return nil
	})
}

func (s *ledgerService) ItsContract(ctx context.Context, chain message.ChainName) (message.Address, error) {
	var addr message.Address
	err := s.run(ctx, func(ctx context.Context, tx kv.Store) error {
		var (
			ok  bool
			err error
		)
		addr, ok, err = mayLoadItsContract(ctx, tx, chain)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", its.ErrItsContractNotFound, chain)
		}
		return nil
	})
	return addr, err
}

// ListAllItsContracts returns every registration ordered by chain name.
func (s *ledgerService) ListAllItsContracts(ctx context.Context) ([]its.ChainContract, error) {
	var out []its.ChainContract
	err := s.run(ctx, func(ctx context.Context, tx kv.Store) error {
		out = out[:0]
		err := itsContracts.Range(ctx, tx, func(chain message.ChainName, addr message.Address) error {
			out = append(out, its.ChainContract{Chain: chain, Address: addr})
			return nil
		})
		if err != nil {
			return storageErr("list its contracts", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterToken records the origin of a token and its untracked origin instance.
func (s *ledgerService) RegisterToken(ctx context.Context, req *its.RegisterTokenRequest) error {
	if err := validateChains(req.OriginChain); err != nil {
		return err
	}
	return s.run(ctx, func(ctx context.Context, tx kv.Store) error {
		if _, err := loadChainConfig(ctx, tx, req.OriginChain); err != nil {
			return err
		}
		_, ok, err := mayLoadTokenConfig(ctx, tx, req.TokenID)
		if err != nil {
			return err
		}
		if ok {
			return fmt.Errorf("%w: %s", its.ErrTokenAlreadyRegistered, req.TokenID)
		}

		origin := req.OriginChain.Normalized()
		if err := tokenConfigs.Save(ctx, tx, req.TokenID, its.TokenConfig{OriginChain: origin}); err != nil {
			return storageErr("save token config", err)
		}
		return saveTokenInstance(ctx, tx, origin, req.TokenID, its.NewOriginInstance(req.Decimals))
	})
}

// RegisterTokenInstance records a deployment of a registered token on chain.
// Without explicit decimals the origin decimals are capped by the chain's
// max_target_decimals.
func (s *ledgerService) RegisterTokenInstance(ctx context.Context, req *its.RegisterTokenInstanceRequest) (*its.TokenInstance, error) {
	if err := validateChains(req.Chain); err != nil {
		return nil, err
	}
	if err := req.DeploymentType.Validate(); err != nil {
		return nil, apperrors.BadRequestError(err, "invalid deployment type")
	}

	var inst its.TokenInstance
	err := s.run(ctx, func(ctx context.Context, tx kv.Store) error {
		chainCfg, ok, err := mayLoadChainConfig(ctx, tx, req.Chain)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", its.ErrChainConfigNotFound, req.Chain)
		}

		tokenCfg, ok, err := mayLoadTokenConfig(ctx, tx, req.TokenID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", its.ErrTokenNotFound, req.TokenID)
		}

		_, exists, err := mayLoadTokenInstance(ctx, tx, req.Chain, req.TokenID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s on %s", its.ErrTokenInstanceAlreadyRegistered, req.TokenID, req.Chain)
		}

		decimals := req.Decimals
		if decimals == nil {
			origin, ok, err := mayLoadTokenInstance(ctx, tx, tokenCfg.OriginChain, req.TokenID)
			if err != nil {
				return err
			}
			if ok && origin.Decimals != nil {
				d := its.TargetDecimals(*origin.Decimals, chainCfg)
				decimals = &d
			}
		}

		inst = its.NewInstance(req.DeploymentType, decimals)
		return saveTokenInstance(ctx, tx, req.Chain, req.TokenID, inst)
	})
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (s *ledgerService) TokenConfig(ctx context.Context, id its.TokenID) (*its.TokenConfig, error) {
	var cfg its.TokenConfig
	err := s.run(ctx, func(ctx context.Context, tx kv.Store) error {
		var (
			ok  bool
			err error
		)
		cfg, ok, err = mayLoadTokenConfig(ctx, tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", its.ErrTokenNotFound, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *ledgerService) TokenInstance(ctx context.Context, chain message.ChainName, id its.TokenID) (*its.TokenInstance, error) {
	if err := validateChains(chain); err != nil {
		return nil, err
	}
	var inst its.TokenInstance
	err := s.run(ctx, func(ctx context.Context, tx kv.Store) error {
		var err error
		inst, err = loadTokenInstance(ctx, tx, chain, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

// TranslateAmount converts an amount of a token leaving SourceChain into the
// decimals of its instance on DestinationChain. Instances without known
// decimals move amounts unchanged.
func (s *ledgerService) TranslateAmount(ctx context.Context, req *its.TranslateRequest) (its.Amount, error) {
	if err := validateChains(req.SourceChain, req.DestinationChain); err != nil {
		return its.Amount{}, err
	}
	var out its.Amount
	err := s.run(ctx, func(ctx context.Context, tx kv.Store) error {
		src, err := loadTokenInstance(ctx, tx, req.SourceChain, req.TokenID)
		if err != nil {
			return err
		}
		dest, err := loadTokenInstance(ctx, tx, req.DestinationChain, req.TokenID)
		if err != nil {
			return err
		}
		destCfg, ok, err := mayLoadChainConfig(ctx, tx, req.DestinationChain)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", its.ErrChainConfigNotFound, req.DestinationChain)
		}

		if src.Decimals == nil || dest.Decimals == nil {
			out = req.Amount
			return nil
		}
		out, err = its.ScaleAmount(req.Amount, *src.Decimals, *dest.Decimals, destCfg)
		return err
	})
	return out, err
}

func (s *ledgerService) CreditSupply(ctx context.Context, req *its.SupplyChangeRequest) (*its.TokenInstance, error) {
	return s.changeSupply(ctx, req, directionCredit, its.TokenSupply.CheckedAdd)
}

func (s *ledgerService) DebitSupply(ctx context.Context, req *its.SupplyChangeRequest) (*its.TokenInstance, error) {
	return s.changeSupply(ctx, req, directionDebit, its.TokenSupply.CheckedSub)
}

type supplyFunc func(its.TokenSupply, its.Amount) (its.TokenSupply, error)

// changeSupply applies fn to the instance supply. On any failure the stored
// instance is left untouched.
func (s *ledgerService) changeSupply(ctx context.Context, req *its.SupplyChangeRequest, direction string, fn supplyFunc) (*its.TokenInstance, error) {
	if err := validateChains(req.Chain); err != nil {
		return nil, err
	}
	chain := req.Chain.Normalized().String()
	if req.Amount.IsZero() {
		metrics.SupplyChanges.WithLabelValues(chain, direction, "rejected").Inc()
		return nil, apperrors.BadRequestError(its.ErrZeroAmount, its.ErrZeroAmount.Error())
	}

	var inst its.TokenInstance
	err := s.run(ctx, func(ctx context.Context, tx kv.Store) error {
		var err error
		inst, err = loadTokenInstance(ctx, tx, req.Chain, req.TokenID)
		if err != nil {
			return err
		}
		supply, err := fn(inst.Supply, req.Amount)
		if err != nil {
			return fmt.Errorf("%s %s of %s on %s: %w", direction, req.Amount, req.TokenID, req.Chain, err)
		}
		inst.Supply = supply
		return saveTokenInstance(ctx, tx, req.Chain, req.TokenID, inst)
	})
	if err != nil {
		metrics.SupplyChanges.WithLabelValues(chain, direction, supplyResult(err)).Inc()
		return nil, err
	}

	metrics.SupplyChanges.WithLabelValues(chain, direction, "ok").Inc()
	if n, ok := inst.Supply.Amount(); ok {
		metrics.TrackedSupply.WithLabelValues(chain, req.TokenID.String()).Set(its.SupplyFloat(n))
	}
	return &inst, nil
}

func supplyResult(err error) string {
	switch {
	case errors.Is(err, its.ErrOverflow):
		return "overflow"
	case errors.Is(err, its.ErrUnderflow):
		return "underflow"
	case errors.Is(err, its.ErrTokenInstanceNotFound):
		return "not_found"
	default:
		return "error"
	}
}

// validateChains rejects names that are not valid chain names before they
// reach a composite store key.
func validateChains(chains ...message.ChainName) error {
	for _, c := range chains {
		if err := c.Normalized().Validate(); err != nil {
			return apperrors.BadRequestError(err, err.Error())
		}
	}
	return nil
}

func loadTokenInstance(ctx context.Context, s kv.Store, chain message.ChainName, id its.TokenID) (its.TokenInstance, error) {
	inst, ok, err := mayLoadTokenInstance(ctx, s, chain, id)
	if err != nil {
		return its.TokenInstance{}, err
	}
	if !ok {
		return its.TokenInstance{}, fmt.Errorf("%w: %s on %s", its.ErrTokenInstanceNotFound, id, chain)
	}
	return inst, nil
}

// run executes fn in one transaction and classifies its error.
func (s *ledgerService) run(ctx context.Context, fn func(ctx context.Context, tx kv.Store) error) error {
	if err := s.store.RunInTx(ctx, fn); err != nil {
		err = classify(err)
		metrics.ErrorsTotal.WithLabelValues("its", apperrors.CategoryOf(err).String()).Inc()
		return err
	}
	return nil
}

// classify maps ledger errors to service error categories.
func classify(err error) error {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		return err
	}

	switch {
	case errors.Is(err, its.ErrChainNotFound),
		errors.Is(err, its.ErrChainConfigNotFound),
		errors.Is(err, its.ErrItsContractNotFound),
		errors.Is(err, its.ErrTokenNotFound),
		errors.Is(err, its.ErrTokenInstanceNotFound):
		return apperrors.ResourceNotFoundError(err, err.Error())
	case errors.Is(err, its.ErrItsContractAlreadyRegistered),
		errors.Is(err, its.ErrTokenAlreadyRegistered),
		errors.Is(err, its.ErrTokenInstanceAlreadyRegistered):
		return apperrors.ConflictError(err, err.Error())
	case errors.Is(err, its.ErrOverflow),
		errors.Is(err, its.ErrUnderflow),
		errors.Is(err, its.ErrZeroAmount):
		return apperrors.BadRequestError(err, err.Error())
	case errors.Is(err, its.ErrMissingConfig),
		errors.Is(err, its.ErrStorage):
		return apperrors.GeneralError(err)
	default:
		return apperrors.GeneralError(fmt.Errorf("%w: %w", its.ErrStorage, err))
	}
}

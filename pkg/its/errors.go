package its

import "errors"

var (
	ErrStorage                        = errors.New("storage error")
	ErrMissingConfig                  = errors.New("its config is missing")
	ErrChainNotFound                  = errors.New("chain not found")
	ErrChainConfigNotFound            = errors.New("chain config not found")
	ErrChainFrozen                    = errors.New("chain is frozen")
	ErrItsContractNotFound            = errors.New("its contract not found")
	ErrItsContractAlreadyRegistered   = errors.New("its contract already registered")
	ErrOverflow                       = errors.New("token supply overflow")
	ErrUnderflow                      = errors.New("token supply underflow")
	ErrZeroAmount                     = errors.New("amount must be non-zero")
	ErrTokenNotFound                  = errors.New("token not found")
	ErrTokenAlreadyRegistered         = errors.New("token already registered")
	ErrTokenInstanceNotFound          = errors.New("token instance not found")
	ErrTokenInstanceAlreadyRegistered = errors.New("token instance already registered")
	ErrInvalidTokenID                 = errors.New("invalid token id")
	ErrInvalidDeploymentType          = errors.New("invalid deployment type")
)

package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/interchain-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/interchain-gateway/pkg/app/http"
	"github.com/chainsafe/interchain-gateway/pkg/auth"
	"github.com/chainsafe/interchain-gateway/pkg/its"
	"github.com/chainsafe/interchain-gateway/pkg/message"
)

type frozenResponse struct {
	Chain  message.ChainName `json:"chain"`
	Frozen bool              `json:"frozen"`
}

type contractResponse struct {
	Chain   message.ChainName `json:"chain"`
	Address message.Address   `json:"address"`
}

type contractsResponse struct {
	Contracts []its.ChainContract `json:"contracts"`
}

type tokenInstanceRequest struct {
	Chain          message.ChainName  `json:"chain"`
	DeploymentType its.DeploymentType `json:"deployment_type"`
	Decimals       *uint8             `json:"decimals,omitempty"`
}

type supplyRequest struct {
	Amount its.Amount `json:"amount"`
}

type translateRequest struct {
	SourceChain      message.ChainName `json:"source_chain"`
	DestinationChain message.ChainName `json:"destination_chain"`
	Amount           its.Amount        `json:"amount"`
}

type translateResponse struct {
	Amount its.Amount `json:"amount"`
}

type instanceResponse struct {
	Chain   message.ChainName `json:"chain"`
	TokenID its.TokenID       `json:"token_id"`
	its.TokenInstance
	FormattedSupply string `json:"formatted_supply"`
}

// HTTP wraps the ledger Service to provide HTTP endpoints
type HTTP struct {
	service Service
	admin   message.Address
	logger  *zap.Logger
}

// RegisterRoutes registers the ledger endpoints on r. Registrations and
// freezes are reserved to admin, supply changes to the configured axelarnet
// gateway. auth.Middleware must run in front.
func RegisterRoutes(r chi.Router, service Service, admin message.Address, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		admin:   admin,
		logger:  logger,
	}

	r.Get("/config", apphttp.HandleError(h.config))

	r.Route("/chains", func(r chi.Router) {
		r.Post("/", apphttp.HandleError(h.onlyAdmin(h.registerChain)))
		r.Get("/{chain}", apphttp.HandleError(h.chainConfig))
		r.Get("/{chain}/frozen", apphttp.HandleError(h.isFrozen))
		r.Post("/{chain}/freeze", apphttp.HandleError(h.onlyAdmin(h.setFrozen(true))))
		r.Post("/{chain}/unfreeze", apphttp.HandleError(h.onlyAdmin(h.setFrozen(false))))
	})

	r.Route("/contracts", func(r chi.Router) {
		r.Get("/", apphttp.HandleError(h.listContracts))
		r.Post("/", apphttp.HandleError(h.onlyAdmin(h.registerContract)))
		r.Get("/{chain}", apphttp.HandleError(h.contract))
		r.Delete("/{chain}", apphttp.HandleError(h.onlyAdmin(h.removeContract)))
	})

	r.Route("/tokens", func(r chi.Router) {
		r.Post("/", apphttp.HandleError(h.onlyAdmin(h.registerToken)))
		r.Get("/{token_id}", apphttp.HandleError(h.tokenConfig))
		r.Post("/{token_id}/translate", apphttp.HandleError(h.translate))
		r.Post("/{token_id}/instances", apphttp.HandleError(h.onlyAdmin(h.registerInstance)))
		r.Get("/{token_id}/instances/{chain}", apphttp.HandleError(h.tokenInstance))
		r.Post("/{token_id}/instances/{chain}/credit", apphttp.HandleError(h.onlyGateway(h.changeSupply(h.service.CreditSupply))))
		r.Post("/{token_id}/instances/{chain}/debit", apphttp.HandleError(h.onlyGateway(h.changeSupply(h.service.DebitSupply))))
	})
}

func (h *HTTP) onlyAdmin(next apphttp.HandlerFunc) apphttp.HandlerFunc {
	return h.requireSender(func(context.Context) (message.Address, error) {
		return h.admin, nil
	}, next)
}

func (h *HTTP) onlyGateway(next apphttp.HandlerFunc) apphttp.HandlerFunc {
	return h.requireSender(func(ctx context.Context) (message.Address, error) {
		cfg, err := h.service.Config(ctx)
		if err != nil {
			return "", err
		}
		return cfg.AxelarnetGateway, nil
	}, next)
}

func (h *HTTP) requireSender(allowed func(context.Context) (message.Address, error), next apphttp.HandlerFunc) apphttp.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		sender, err := auth.RequireSender(r.Context())
		if err != nil {
			return err
		}
		want, err := allowed(r.Context())
		if err != nil {
			return err
		}
		if !sender.Equal(want) {
			h.logger.Warn("Rejected ITS call from unexpected sender",
				zap.String("sender", sender.String()),
				zap.String("path", r.URL.Path))
			return apperrors.ForbiddenError(nil, "sender not allowed")
		}
		return next(w, r)
	}
}

func (h *HTTP) config(w http.ResponseWriter, r *http.Request) error {
	cfg, err := h.service.Config(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, cfg)
	return nil
}

func (h *HTTP) registerChain(w http.ResponseWriter, r *http.Request) error {
	var req its.RegisterChainRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	cfg, err := h.service.RegisterChain(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, cfg)
	return nil
}

func (h *HTTP) chainConfig(w http.ResponseWriter, r *http.Request) error {
	chain, err := chainParam(r)
	if err != nil {
		return err
	}

	cfg, err := h.service.ChainConfig(r.Context(), chain)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, cfg)
	return nil
}

func (h *HTTP) isFrozen(w http.ResponseWriter, r *http.Request) error {
	chain, err := chainParam(r)
	if err != nil {
		return err
	}

	frozen, err := h.service.IsChainFrozen(r.Context(), chain)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, &frozenResponse{Chain: chain, Frozen: frozen})
	return nil
}

func (h *HTTP) setFrozen(frozen bool) apphttp.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		chain, err := chainParam(r)
		if err != nil {
			return err
		}

		var cfg *its.ChainConfig
		if frozen {
			cfg, err = h.service.FreezeChain(r.Context(), chain)
		} else {
			cfg, err = h.service.UnfreezeChain(r.Context(), chain)
		}
		if err != nil {
			return err
		}
		apphttp.WriteJSON(w, http.StatusOK, cfg)
		return nil
	}
}

func (h *HTTP) listContracts(w http.ResponseWriter, r *http.Request) error {
	contracts, err := h.service.ListAllItsContracts(r.Context())
	if err != nil {
		return err
	}
	if contracts == nil {
		contracts = []its.ChainContract{}
	}
	apphttp.WriteJSON(w, http.StatusOK, &contractsResponse{Contracts: contracts})
	return nil
}

func (h *HTTP) registerContract(w http.ResponseWriter, r *http.Request) error {
	var req its.ChainContract
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	if err := h.service.RegisterItsContract(r.Context(), &req); err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, &contractResponse{Chain: req.Chain.Normalized(), Address: req.Address})
	return nil
}

func (h *HTTP) contract(w http.ResponseWriter, r *http.Request) error {
	chain, err := chainParam(r)
	if err != nil {
		return err
	}

	addr, err := h.service.ItsContract(r.Context(), chain)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, &contractResponse{Chain: chain, Address: addr})
	return nil
}

func (h *HTTP) removeContract(w http.ResponseWriter, r *http.Request) error {
	chain, err := chainParam(r)
	if err != nil {
		return err
	}

	if err := h.service.RemoveItsContract(r.Context(), chain); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) registerToken(w http.ResponseWriter, r *http.Request) error {
	var req its.RegisterTokenRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	origin, err := parseChain(req.OriginChain)
	if err != nil {
		return err
	}
	req.OriginChain = origin

	if err := h.service.RegisterToken(r.Context(), &req); err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, &its.TokenConfig{OriginChain: req.OriginChain.Normalized()})
	return nil
}

func (h *HTTP) tokenConfig(w http.ResponseWriter, r *http.Request) error {
	id, err := tokenIDParam(r)
	if err != nil {
		return err
	}

	cfg, err := h.service.TokenConfig(r.Context(), id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, cfg)
	return nil
}

func (h *HTTP) registerInstance(w http.ResponseWriter, r *http.Request) error {
	id, err := tokenIDParam(r)
	if err != nil {
		return err
	}
	var req tokenInstanceRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	chain, err := parseChain(req.Chain)
	if err != nil {
		return err
	}

	inst, err := h.service.RegisterTokenInstance(r.Context(), &its.RegisterTokenInstanceRequest{
		Chain:          chain,
		TokenID:        id,
		DeploymentType: req.DeploymentType,
		Decimals:       req.Decimals,
	})
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, newInstanceResponse(chain, id, inst))
	return nil
}

func (h *HTTP) tokenInstance(w http.ResponseWriter, r *http.Request) error {
	id, err := tokenIDParam(r)
	if err != nil {
		return err
	}
	chain, err := chainParam(r)
	if err != nil {
		return err
	}

	inst, err := h.service.TokenInstance(r.Context(), chain, id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, newInstanceResponse(chain, id, inst))
	return nil
}

func (h *HTTP) translate(w http.ResponseWriter, r *http.Request) error {
	id, err := tokenIDParam(r)
	if err != nil {
		return err
	}
	var req translateRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	source, err := parseChain(req.SourceChain)
	if err != nil {
		return err
	}
	destination, err := parseChain(req.DestinationChain)
	if err != nil {
		return err
	}

	amount, err := h.service.TranslateAmount(r.Context(), &its.TranslateRequest{
		TokenID:          id,
		SourceChain:      source,
		DestinationChain: destination,
		Amount:           req.Amount,
	})
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, &translateResponse{Amount: amount})
	return nil
}

// changeSupply refuses to account for frozen chains before calling fn.
func (h *HTTP) changeSupply(fn func(context.Context, *its.SupplyChangeRequest) (*its.TokenInstance, error)) apphttp.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		id, err := tokenIDParam(r)
		if err != nil {
			return err
		}
		chain, err := chainParam(r)
		if err != nil {
			return err
		}
		var req supplyRequest
		if err := apphttp.DecodeJSON(r, &req); err != nil {
			return err
		}

		frozen, err := h.service.IsChainFrozen(r.Context(), chain)
		if err != nil {
			return err
		}
		if frozen {
			return apperrors.ConflictError(fmt.Errorf("%w: %s", its.ErrChainFrozen, chain), its.ErrChainFrozen.Error())
		}

		inst, err := fn(r.Context(), &its.SupplyChangeRequest{Chain: chain, TokenID: id, Amount: req.Amount})
		if err != nil {
			return err
		}
		apphttp.WriteJSON(w, http.StatusOK, newInstanceResponse(chain, id, inst))
		return nil
	}
}

func newInstanceResponse(chain message.ChainName, id its.TokenID, inst *its.TokenInstance) *instanceResponse {
	return &instanceResponse{
		Chain:           chain,
		TokenID:         id,
		TokenInstance:   *inst,
		FormattedSupply: its.FormatSupply(inst.Supply, inst.Decimals),
	}
}

func chainParam(r *http.Request) (message.ChainName, error) {
	return parseChain(message.ChainName(chi.URLParam(r, "chain")))
}

func parseChain(raw message.ChainName) (message.ChainName, error) {
	chain, err := message.ParseChainName(string(raw))
	if err != nil {
		return "", apperrors.BadRequestError(err, err.Error())
	}
	return chain, nil
}

func tokenIDParam(r *http.Request) (its.TokenID, error) {
	id, err := its.ParseTokenID(chi.URLParam(r, "token_id"))
	if err != nil {
		return its.TokenID{}, apperrors.BadRequestError(err, err.Error())
	}
	return id, nil
}

package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/interchain-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/interchain-gateway/pkg/app/http"
	"github.com/chainsafe/interchain-gateway/pkg/auth"
	"github.com/chainsafe/interchain-gateway/pkg/gateway"
	"github.com/chainsafe/interchain-gateway/pkg/message"
)

type messagesRequest struct {
	Messages []message.Message `json:"messages"`
}

type messageIDsRequest struct {
	MessageIDs []message.CrossChainID `json:"message_ids"`
}

type messagesResponse struct {
	Messages []message.Message `json:"messages"`
}

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the gateway endpoints on r. The caller is expected
// to mount auth.Middleware in front so the sender is known.
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/verify_messages", apphttp.HandleError(h.execute(gateway.ExecuteVerifyMessages)))
	r.Post("/route_messages", apphttp.HandleError(h.execute(gateway.ExecuteRouteMessages)))
	r.Post("/messages", apphttp.HandleError(h.outgoingMessages))
	r.Get("/config", apphttp.HandleError(h.config))
}

func (h *HTTP) execute(kind gateway.ExecuteKind) apphttp.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		sender, err := auth.RequireSender(r.Context())
		if err != nil {
			return err
		}

		var req messagesRequest
		if err := apphttp.DecodeJSON(r, &req); err != nil {
			return err
		}
		for _, m := range req.Messages {
			if err := m.Validate(); err != nil {
				return apperrors.BadRequestError(err, err.Error())
			}
		}

		resp, err := h.service.Execute(r.Context(), sender, &gateway.ExecuteMsg{Kind: kind, Messages: req.Messages})
		if err != nil {
			return err
		}

		apphttp.WriteJSON(w, http.StatusOK, resp)
		return nil
	}
}

func (h *HTTP) outgoingMessages(w http.ResponseWriter, r *http.Request) error {
	var req messageIDsRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	for _, id := range req.MessageIDs {
		if err := id.Validate(); err != nil {
			return apperrors.BadRequestError(err, err.Error())
		}
	}

	msgs, err := h.service.OutgoingMessages(r.Context(), req.MessageIDs)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &messagesResponse{Messages: msgs})
	return nil
}

func (h *HTTP) config(w http.ResponseWriter, r *http.Request) error {
	cfg, err := h.service.Config(r.Context())
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, cfg)
	return nil
}

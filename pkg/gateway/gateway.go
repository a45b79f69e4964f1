// Package gateway holds the types exchanged with the gateway service: its stored
// configuration, execute messages, emitted events and responses.
package gateway

import (
	"github.com/chainsafe/interchain-gateway/pkg/message"
)

// Config is the gateway's stored configuration, written once at instantiation.
type Config struct {
	Verifier message.Address `json:"verifier"`
	Router   message.Address `json:"router"`
}

// InstantiateRequest carries the unvalidated collaborator addresses.
type InstantiateRequest struct {
	VerifierAddress string `json:"verifier_address"`
	RouterAddress   string `json:"router_address"`
}

// ExecuteKind selects the operation of an ExecuteMsg.
type ExecuteKind string

const (
	ExecuteVerifyMessages ExecuteKind = "verify_messages"
	ExecuteRouteMessages  ExecuteKind = "route_messages"
)

// ExecuteMsg is a message dispatched by sender identity.
type ExecuteMsg struct {
	Kind     ExecuteKind       `json:"kind"`
	Messages []message.Message `json:"messages"`
}

// EventKind tells what happened to a message.
type EventKind string

const (
	EventVerifying       EventKind = "verifying"
	EventAlreadyVerified EventKind = "already_verified"
	EventAlreadyRejected EventKind = "already_rejected"
	EventRouting         EventKind = "routing"
	EventUnfitForRouting EventKind = "unfit_for_routing"
)

// Event reports the disposition of one message.
type Event struct {
	Kind    EventKind       `json:"kind"`
	Message message.Message `json:"message"`
}

// Response is the outcome of a gateway operation: at most one outbound command
// per collaborator and one event per unique input message.
type Response struct {
	Commands []message.Command `json:"commands"`
	Events   []Event           `json:"events"`
}

// NewResponse returns a Response whose lists encode as [] rather than null.
func NewResponse() *Response {
	return &Response{Commands: []message.Command{}, Events: []Event{}}
}

// Package router builds the commands handing verified messages to the router contract.
package router

import (
	"github.com/chainsafe/interchain-gateway/pkg/message"
)

// ActionRouteMessages is the command action delivering messages to the router
const ActionRouteMessages = "route_messages"

// Client builds router commands. It never inspects verification status; callers
// only pass messages that are already fit for routing.
type Client struct{}

// NewClient creates a router Client.
func NewClient() *Client {
	return &Client{}
}

// Route returns the command routing msgs through contract, or nil when msgs is empty.
func (c *Client) Route(contract message.Address, msgs []message.Message) *message.Command {
	if len(msgs) == 0 {
		return nil
	}
	return &message.Command{
		Contract: contract,
		Action:   ActionRouteMessages,
		Messages: msgs,
	}
}

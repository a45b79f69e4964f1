// Package message defines the inter-chain message model shared by the gateway,
// the verifier client and the router client.
package message

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const (
	maxChainNameLen = 20
	maxMessageIDLen = 256
	maxAddressLen   = 256

	// CrossChainIDSeparator joins the two parts of a CrossChainID in its string form
	CrossChainIDSeparator = "_"
)

var (
	ErrInvalidChainName = errors.New("invalid chain name")
	ErrInvalidMessageID = errors.New("invalid message id")
	ErrInvalidAddress   = errors.New("invalid address")
)

// ChainName identifies a chain. Comparison is case-insensitive, the canonical
// form used for keys is lower case.
type ChainName string

// ParseChainName validates s and returns its canonical form.
func ParseChainName(s string) (ChainName, error) {
	c := ChainName(strings.ToLower(s))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks the name is non-empty, short and free of the id separator.
func (c ChainName) Validate() error {
	switch {
	case c == "":
		return fmt.Errorf("%w: empty", ErrInvalidChainName)
	case len(c) > maxChainNameLen:
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidChainName, string(c), maxChainNameLen)
	case strings.Contains(string(c), CrossChainIDSeparator), strings.ContainsAny(string(c), " \t\n:"):
		return fmt.Errorf("%w: %q contains a reserved character", ErrInvalidChainName, string(c))
	}
	return nil
}

// Normalized returns the lower case form of the name.
func (c ChainName) Normalized() ChainName {
	return ChainName(strings.ToLower(string(c)))
}

func (c ChainName) String() string {
	return string(c)
}

// Address is an opaque, chain-specific address.
type Address string

// ParseAddress validates s as an address and returns its canonical form.
func ParseAddress(s string) (Address, error) {
	a := Address(s)
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a.Canonical(), nil
}

// Canonical returns the EIP-55 checksummed form of a 0x-prefixed 20-byte hex
// address. Any other address is returned unchanged.
func (a Address) Canonical() Address {
	s := string(a)
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") && common.IsHexAddress(s) {
		return Address(common.HexToAddress(s).Hex())
	}
	return a
}

// Equal reports whether a and b name the same account, ignoring hex case.
func (a Address) Equal(b Address) bool {
	return a.Canonical() == b.Canonical()
}

func (a Address) Validate() error {
	if strings.TrimSpace(string(a)) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAddress)
	}
	if len(a) > maxAddressLen {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAddress, maxAddressLen)
	}
	return nil
}

func (a Address) String() string {
	return string(a)
}

// CrossChainID is the global identifier of a message.
type CrossChainID struct {
	SourceChain ChainName `json:"source_chain"`
	MessageID   string    `json:"message_id"`
}

func (id CrossChainID) Validate() error {
	if err := id.SourceChain.Validate(); err != nil {
		return err
	}
	if id.MessageID == "" {
		return fmt.Errorf("%w: empty", ErrInvalidMessageID)
	}
	if len(id.MessageID) > maxMessageIDLen {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidMessageID, maxMessageIDLen)
	}
	return nil
}

func (id CrossChainID) String() string {
	return string(id.SourceChain) + CrossChainIDSeparator + id.MessageID
}

// Message is an inter-chain message. It is a comparable value: two messages are
// equal only when identity and every field match.
type Message struct {
	CCID               CrossChainID `json:"cc_id"`
	SourceAddress      Address      `json:"source_address"`
	DestinationChain   ChainName    `json:"destination_chain"`
	DestinationAddress Address      `json:"destination_address"`
	PayloadHash        common.Hash  `json:"payload_hash"`
}

// Validate checks every field of the message.
func (m Message) Validate() error {
	if err := m.CCID.Validate(); err != nil {
		return err
	}
	if err := m.SourceAddress.Validate(); err != nil {
		return fmt.Errorf("source address: %w", err)
	}
	if err := m.DestinationChain.Validate(); err != nil {
		return fmt.Errorf("destination chain: %w", err)
	}
	if err := m.DestinationAddress.Validate(); err != nil {
		return fmt.Errorf("destination address: %w", err)
	}
	return nil
}

// Command is an outbound call produced by the gateway for a collaborator contract.
type Command struct {
	Contract Address   `json:"contract"`
	Action   string    `json:"action"`
	Messages []Message `json:"messages"`
}

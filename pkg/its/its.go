// Package its holds the token-supply ledger model of the interchain token
// service: chain configs, token configs and per-chain token instances.
package its

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/chainsafe/interchain-gateway/pkg/message"
)

// Config is the stored ITS configuration.
type Config struct {
	AxelarnetGateway message.Address `json:"axelarnet_gateway"`
}

// ChainConfig bounds the amounts and decimals a chain accepts. The ledger never
// enforces Frozen, callers check it before accounting.
type ChainConfig struct {
	MaxUint           Amount `json:"max_uint"`
	MaxTargetDecimals uint8  `json:"max_target_decimals"`
	Frozen            bool   `json:"frozen"`
}

// TokenID identifies a token across chains.
type TokenID common.Hash

// ParseTokenID parses a 0x-prefixed 32-byte hex token id.
func ParseTokenID(s string) (TokenID, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return TokenID{}, fmt.Errorf("%w: %w", ErrInvalidTokenID, err)
	}
	if len(b) != common.HashLength {
		return TokenID{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidTokenID, common.HashLength, len(b))
	}
	return TokenID(common.BytesToHash(b)), nil
}

func (id TokenID) Bytes() []byte {
	return id[:]
}

func (id TokenID) String() string {
	return common.Hash(id).Hex()
}

func (id TokenID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *TokenID) UnmarshalText(text []byte) error {
	parsed, err := ParseTokenID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// DeploymentType tells who controls a token deployed on a non-origin chain.
type DeploymentType string

const (
	// DeploymentTrustless tokens are only minted by ITS, so their supply is tracked.
	DeploymentTrustless DeploymentType = "trustless"
	// DeploymentCustomMinter tokens can be minted outside ITS.
	DeploymentCustomMinter DeploymentType = "custom_minter"
)

func (d DeploymentType) Validate() error {
	switch d {
	case DeploymentTrustless, DeploymentCustomMinter:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDeploymentType, string(d))
	}
}

// TokenInstance is a token on one chain.
type TokenInstance struct {
	Supply   TokenSupply `json:"supply"`
	Decimals *uint8      `json:"decimals,omitempty"`
}

// NewOriginInstance returns the instance on the token's origin chain, whose
// supply is never tracked.
func NewOriginInstance(decimals *uint8) TokenInstance {
	return TokenInstance{Supply: Untracked(), Decimals: decimals}
}

// NewInstance returns an instance for a deployment on a non-origin chain.
func NewInstance(deployment DeploymentType, decimals *uint8) TokenInstance {
	supply := Untracked()
	if deployment == DeploymentTrustless {
		supply = Tracked(nil)
	}
	return TokenInstance{Supply: supply, Decimals: decimals}
}

// TokenConfig is the chain-independent configuration of a token.
type TokenConfig struct {
	OriginChain message.ChainName `json:"origin_chain"`
}

// ChainContract is an ITS contract registration.
type ChainContract struct {
	Chain   message.ChainName `json:"chain"`
	Address message.Address   `json:"address"`
}

// InstantiateRequest carries the unvalidated ITS configuration.
type InstantiateRequest struct {
	AxelarnetGateway string `json:"axelarnet_gateway"`
}

type RegisterChainRequest struct {
	Chain             message.ChainName `json:"chain"`
	MaxUint           Amount            `json:"max_uint"`
	MaxTargetDecimals uint8             `json:"max_target_decimals"`
}

type RegisterTokenRequest struct {
	TokenID     TokenID           `json:"token_id"`
	OriginChain message.ChainName `json:"origin_chain"`
	Decimals    *uint8            `json:"decimals,omitempty"`
}

type RegisterTokenInstanceRequest struct {
	Chain          message.ChainName `json:"chain"`
	TokenID        TokenID           `json:"token_id"`
	DeploymentType DeploymentType    `json:"deployment_type"`
	Decimals       *uint8            `json:"decimals,omitempty"`
}

// SupplyChangeRequest credits or debits a token instance.
type SupplyChangeRequest struct {
	Chain   message.ChainName `json:"chain"`
	TokenID TokenID           `json:"token_id"`
	Amount  Amount            `json:"amount"`
}

// TranslateRequest asks for amount of a token leaving SourceChain expressed in
// the decimals of DestinationChain.
type TranslateRequest struct {
	TokenID          TokenID           `json:"token_id"`
	SourceChain      message.ChainName `json:"source_chain"`
	DestinationChain message.ChainName `json:"destination_chain"`
	Amount           Amount            `json:"amount"`
}

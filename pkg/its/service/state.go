package service

import (
	"context"
	"fmt"

	"github.com/chainsafe/interchain-gateway/pkg/its"
	"github.com/chainsafe/interchain-gateway/pkg/kv"
	"github.com/chainsafe/interchain-gateway/pkg/message"
)

// instanceKey identifies a token instance.
type instanceKey struct {
	chain   message.ChainName
	tokenID its.TokenID
}

var chainKey = kv.KeyCodec[message.ChainName]{
	Encode: func(c message.ChainName) []byte { return []byte(c.Normalized()) },
	Decode: func(b []byte) (message.ChainName, error) { return message.ChainName(b), nil },
}

var tokenIDKey = kv.KeyCodec[its.TokenID]{
	Encode: func(id its.TokenID) []byte { return id.Bytes() },
	Decode: func(b []byte) (its.TokenID, error) {
		if len(b) != len(its.TokenID{}) {
			return its.TokenID{}, kv.ErrMalformedKey
		}
		return its.TokenID(b), nil
	},
}

var tokenInstanceKey = kv.KeyCodec[instanceKey]{
	Encode: func(k instanceKey) []byte {
		return kv.Key([]byte(k.chain.Normalized()), k.tokenID.Bytes())
	},
	Decode: func(b []byte) (instanceKey, error) {
		parts, err := kv.SplitKey(b, 2)
		if err != nil {
			return instanceKey{}, err
		}
		id, err := tokenIDKey.Decode(parts[1])
		if err != nil {
			return instanceKey{}, err
		}
		return instanceKey{chain: message.ChainName(parts[0]), tokenID: id}, nil
	},
}

var (
	configItem     = kv.NewItem[its.Config]("its_config")
	itsContracts   = kv.NewMap[message.ChainName, message.Address]("its_contracts", chainKey)
	chainConfigs   = kv.NewMap[message.ChainName, its.ChainConfig]("chain_configs", chainKey)
	tokenInstances = kv.NewMap[instanceKey, its.TokenInstance]("token_instance", tokenInstanceKey)
	tokenConfigs   = kv.NewMap[its.TokenID, its.TokenConfig]("token_configs", tokenIDKey)
)

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", its.ErrStorage, op, err)
}

func loadConfig(ctx context.Context, s kv.Store) (its.Config, error) {
	cfg, ok, err := configItem.MayLoad(ctx, s)
	if err != nil {
		return its.Config{}, storageErr("load config", err)
	}
	if !ok {
		return its.Config{}, its.ErrMissingConfig
	}
	return cfg, nil
}

func mayLoadChainConfig(ctx context.Context, s kv.Store, chain message.ChainName) (its.ChainConfig, bool, error) {
	cfg, ok, err := chainConfigs.MayLoad(ctx, s, chain)
	if err != nil {
		return its.ChainConfig{}, false, storageErr("load chain config", err)
	}
	return cfg, ok, nil
}

func loadChainConfig(ctx context.Context, s kv.Store, chain message.ChainName) (its.ChainConfig, error) {
	cfg, ok, err := mayLoadChainConfig(ctx, s, chain)
	if err != nil {
		return its.ChainConfig{}, err
	}
	if !ok {
		return its.ChainConfig{}, fmt.Errorf("%w: %s", its.ErrChainNotFound, chain)
	}
	return cfg, nil
}

// updateChainConfig applies fn to an existing chain config and saves the result.
func updateChainConfig(ctx context.Context, s kv.Store, chain message.ChainName, fn func(*its.ChainConfig)) (its.ChainConfig, error) {
	cfg, err := loadChainConfig(ctx, s, chain)
	if err != nil {
		return its.ChainConfig{}, err
	}
	fn(&cfg)
	if err := chainConfigs.Save(ctx, s, chain, cfg); err != nil {
		return its.ChainConfig{}, storageErr("save chain config", err)
	}
	return cfg, nil
}

func mayLoadItsContract(ctx context.Context, s kv.Store, chain message.ChainName) (message.Address, bool, error) {
	addr, ok, err := itsContracts.MayLoad(ctx, s, chain)
	if err != nil {
		return "", false, storageErr("load its contract", err)
	}
	return addr, ok, nil
}

func mayLoadTokenInstance(ctx context.Context, s kv.Store, chain message.ChainName, id its.TokenID) (its.TokenInstance, bool, error) {
	inst, ok, err := tokenInstances.MayLoad(ctx, s, instanceKey{chain: chain, tokenID: id})
	if err != nil {
		return its.TokenInstance{}, false, storageErr("load token instance", err)
	}
	return inst, ok, nil
}

func saveTokenInstance(ctx context.Context, s kv.Store, chain message.ChainName, id its.TokenID, inst its.TokenInstance) error {
	if err := tokenInstances.Save(ctx, s, instanceKey{chain: chain, tokenID: id}, inst); err != nil {
		return storageErr("save token instance", err)
	}
	return nil
}

func mayLoadTokenConfig(ctx context.Context, s kv.Store, id its.TokenID) (its.TokenConfig, bool, error) {
	cfg, ok, err := tokenConfigs.MayLoad(ctx, s, id)
	if err != nil {
		return its.TokenConfig{}, false, storageErr("load token config", err)
	}
	return cfg, ok, nil
}

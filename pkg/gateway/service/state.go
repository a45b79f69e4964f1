package service

import (
	"context"
	"fmt"

	"github.com/chainsafe/interchain-gateway/pkg/gateway"
	"github.com/chainsafe/interchain-gateway/pkg/kv"
	"github.com/chainsafe/interchain-gateway/pkg/message"
)

const (
	configNamespace           = "config"
	outgoingMessagesNamespace = "outgoing_messages"
)

// ccidKey orders outgoing messages by normalized source chain, then message id.
var ccidKey = kv.KeyCodec[message.CrossChainID]{
	Encode: func(id message.CrossChainID) []byte {
		return kv.Key([]byte(id.SourceChain.Normalized()), []byte(id.MessageID))
	},
	Decode: func(b []byte) (message.CrossChainID, error) {
		parts, err := kv.SplitKey(b, 2)
		if err != nil {
			return message.CrossChainID{}, err
		}
		return message.CrossChainID{
			SourceChain: message.ChainName(parts[0]),
			MessageID:   string(parts[1]),
		}, nil
	},
}

var (
	configItem       = kv.NewItem[gateway.Config](configNamespace)
	outgoingMessages = kv.NewMap[message.CrossChainID, message.Message](outgoingMessagesNamespace, ccidKey)
)

func loadConfig(ctx context.Context, s kv.Store) (gateway.Config, error) {
	cfg, ok, err := configItem.MayLoad(ctx, s)
	if err != nil {
		return gateway.Config{}, fmt.Errorf("%w: load config: %w", gateway.ErrInvalidStoreAccess, err)
	}
	if !ok {
		return gateway.Config{}, gateway.ErrConfigMissing
	}
	return cfg, nil
}

func saveConfig(ctx context.Context, s kv.Store, cfg gateway.Config) error {
	if err := configItem.Save(ctx, s, cfg); err != nil {
		return fmt.Errorf("%w: save config: %w", gateway.ErrInvalidStoreAccess, err)
	}
	return nil
}

func mayLoadOutgoingMessage(ctx context.Context, s kv.Store, id message.CrossChainID) (message.Message, bool, error) {
	msg, ok, err := outgoingMessages.MayLoad(ctx, s, id)
	if err != nil {
		return message.Message{}, false, fmt.Errorf("%w: load outgoing message %s: %w", gateway.ErrInvalidStoreAccess, id, err)
	}
	return msg, ok, nil
}

func saveOutgoingMessage(ctx context.Context, s kv.Store, msg message.Message) error {
	if err := outgoingMessages.Save(ctx, s, msg.CCID, msg); err != nil {
		return fmt.Errorf("%w: %s: %w", gateway.ErrSaveOutgoingMessage, msg.CCID, err)
	}
	return nil
}

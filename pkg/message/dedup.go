package message

import (
	"errors"
	"fmt"
)

// ErrConflictingMessages is returned by Unique when two different messages share a CrossChainID.
var ErrConflictingMessages = errors.New("different messages share a cross-chain id")

// Unique drops exact duplicates from msgs, keeping the first occurrence and the
// input order. Two messages with the same CrossChainID but different content are
// rejected instead of merged.
func Unique(msgs []Message) ([]Message, error) {
	seen := make(map[CrossChainID]Message, len(msgs))
	out := make([]Message, 0, len(msgs))

	for _, m := range msgs {
		id := m.CCID.key()
		if prev, ok := seen[id]; ok {
			if prev != m {
				return nil, fmt.Errorf("%w: %s", ErrConflictingMessages, m.CCID)
			}
			continue
		}
		seen[id] = m
		out = append(out, m)
	}
	return out, nil
}

func (id CrossChainID) key() CrossChainID {
	return CrossChainID{SourceChain: id.SourceChain.Normalized(), MessageID: id.MessageID}
}

package service

import (
	"fmt"

	"github.com/chainsafe/interchain-gateway/pkg/gateway"
	"github.com/chainsafe/interchain-gateway/pkg/message"
	"github.com/chainsafe/interchain-gateway/pkg/verifier"
)

// Action is what a pipeline does with the messages of one status bucket.
type Action int

const (
	ActionSkip Action = iota
	ActionForward
)

func (a Action) String() string {
	if a == ActionForward {
		return "forward"
	}
	return "skip"
}

// policy decides, per verification status, whether messages are forwarded and
// which event they are reported with. command builds the single outbound command
// for everything forwarded.
type policy struct {
	name    string
	action  func(verifier.Status) Action
	event   func(verifier.Status) gateway.EventKind
	command func(cfg gateway.Config, msgs []message.Message) *message.Command
}

// Statuses are validated against the oracle answer before reaching a policy, so
// the default branches below are unreachable.

func verifyAction(s verifier.Status) Action {
	switch s {
	case verifier.StatusUnknown, verifier.StatusNotFoundOnSourceChain, verifier.StatusFailedToVerify:
		return ActionForward
	case verifier.StatusInProgress, verifier.StatusSucceededOnSourceChain, verifier.StatusFailedOnSourceChain:
		return ActionSkip
	default:
		panic(fmt.Sprintf("unhandled verification status %s", s))
	}
}

func verifyEvent(s verifier.Status) gateway.EventKind {
	switch s {
	case verifier.StatusUnknown, verifier.StatusInProgress,
		verifier.StatusNotFoundOnSourceChain, verifier.StatusFailedToVerify:
		return gateway.EventVerifying
	case verifier.StatusSucceededOnSourceChain:
		return gateway.EventAlreadyVerified
	case verifier.StatusFailedOnSourceChain:
		return gateway.EventAlreadyRejected
	default:
		panic(fmt.Sprintf("unhandled verification status %s", s))
	}
}

func routeAction(s verifier.Status) Action {
	switch s {
	case verifier.StatusSucceededOnSourceChain:
		return ActionForward
	case verifier.StatusUnknown, verifier.StatusInProgress, verifier.StatusNotFoundOnSourceChain,
		verifier.StatusFailedToVerify, verifier.StatusFailedOnSourceChain:
		return ActionSkip
	default:
		panic(fmt.Sprintf("unhandled verification status %s", s))
	}
}

func routeEvent(s verifier.Status) gateway.EventKind {
	switch s {
	case verifier.StatusSucceededOnSourceChain:
		return gateway.EventRouting
	case verifier.StatusUnknown, verifier.StatusInProgress, verifier.StatusNotFoundOnSourceChain,
		verifier.StatusFailedToVerify, verifier.StatusFailedOnSourceChain:
		return gateway.EventUnfitForRouting
	default:
		panic(fmt.Sprintf("unhandled verification status %s", s))
	}
}

// statusBucket holds messages sharing a status, in deduplicated input order.
type statusBucket struct {
	status   verifier.Status
	messages []message.Message
}

// groupByStatus checks that statuses answers for exactly the messages in unique
// and groups them by status rank. Empty buckets are omitted.
func groupByStatus(unique []message.Message, statuses []verifier.MessageStatus) ([]statusBucket, error) {
	if len(statuses) != len(unique) {
		return nil, fmt.Errorf("verifier returned %d statuses for %d messages", len(statuses), len(unique))
	}

	index := make(map[message.Message]int, len(unique))
	for i, m := range unique {
		index[m] = i
	}

	assigned := make([]verifier.Status, len(unique))
	seen := make([]bool, len(unique))
	for _, ms := range statuses {
		i, ok := index[ms.Message]
		if !ok {
			return nil, fmt.Errorf("verifier returned a status for unknown message %s", ms.Message.CCID)
		}
		if seen[i] {
			return nil, fmt.Errorf("verifier returned more than one status for message %s", ms.Message.CCID)
		}
		if !ms.Status.Valid() {
			return nil, fmt.Errorf("verifier returned invalid %s for message %s", ms.Status, ms.Message.CCID)
		}
		seen[i] = true
		assigned[i] = ms.Status
	}

	var buckets []statusBucket
	for _, s := range verifier.Statuses() {
		var msgs []message.Message
		for i, m := range unique {
			if assigned[i] == s {
				msgs = append(msgs, m)
			}
		}
		if len(msgs) > 0 {
			buckets = append(buckets, statusBucket{status: s, messages: msgs})
		}
	}
	return buckets, nil
}

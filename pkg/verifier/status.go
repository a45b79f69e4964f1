// Package verifier is the client of the verification oracle.
package verifier

import (
	"fmt"

	"github.com/chainsafe/interchain-gateway/pkg/message"
)

// Status is the verification state of a message as reported by the oracle.
// The declaration order is the rank used to order gateway output.
type Status int

const (
	StatusUnknown Status = iota
	StatusInProgress
	StatusNotFoundOnSourceChain
	StatusFailedToVerify
	StatusSucceededOnSourceChain
	StatusFailedOnSourceChain
)

var statusNames = map[Status]string{
	StatusUnknown:                "unknown",
	StatusInProgress:             "in_progress",
	StatusNotFoundOnSourceChain:  "not_found_on_source_chain",
	StatusFailedToVerify:         "failed_to_verify",
	StatusSucceededOnSourceChain: "succeeded_on_source_chain",
	StatusFailedOnSourceChain:    "failed_on_source_chain",
}

// Statuses returns every status in rank order.
func Statuses() []Status {
	return []Status{
		StatusUnknown,
		StatusInProgress,
		StatusNotFoundOnSourceChain,
		StatusFailedToVerify,
		StatusSucceededOnSourceChain,
		StatusFailedOnSourceChain,
	}
}

func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown verification status %d", int(s))
	}
	return []byte(name), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for st, name := range statusNames {
		if name == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown verification status %q", string(text))
}

// MessageStatus pairs a message with its status.
type MessageStatus struct {
	Message message.Message `json:"message"`
	Status  Status          `json:"status"`
}

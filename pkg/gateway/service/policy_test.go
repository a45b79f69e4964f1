package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/interchain-gateway/pkg/gateway"
	"github.com/chainsafe/interchain-gateway/pkg/message"
	"github.com/chainsafe/interchain-gateway/pkg/verifier"
)

func TestPolicies_CoverEveryStatus(t *testing.T) {
	wantVerify := map[verifier.Status]Action{
		verifier.StatusUnknown:                ActionForward,
		verifier.StatusInProgress:             ActionSkip,
		verifier.StatusNotFoundOnSourceChain:  ActionForward,
		verifier.StatusFailedToVerify:         ActionForward,
		verifier.StatusSucceededOnSourceChain: ActionSkip,
		verifier.StatusFailedOnSourceChain:    ActionSkip,
	}
	wantVerifyEvent := map[verifier.Status]gateway.EventKind{
		verifier.StatusUnknown:                gateway.EventVerifying,
		verifier.StatusInProgress:             gateway.EventVerifying,
		verifier.StatusNotFoundOnSourceChain:  gateway.EventVerifying,
		verifier.StatusFailedToVerify:         gateway.EventVerifying,
		verifier.StatusSucceededOnSourceChain: gateway.EventAlreadyVerified,
		verifier.StatusFailedOnSourceChain:    gateway.EventAlreadyRejected,
	}

	require.Len(t, wantVerify, len(verifier.Statuses()))
	for _, s := range verifier.Statuses() {
		t.Run(s.String(), func(t *testing.T) {
			assert.Equal(t, wantVerify[s], verifyAction(s))
			assert.Equal(t, wantVerifyEvent[s], verifyEvent(s))

			if s == verifier.StatusSucceededOnSourceChain {
				assert.Equal(t, ActionForward, routeAction(s))
				assert.Equal(t, gateway.EventRouting, routeEvent(s))
			} else {
				assert.Equal(t, ActionSkip, routeAction(s))
				assert.Equal(t, gateway.EventUnfitForRouting, routeEvent(s))
			}
		})
	}
}

func TestPolicies_PanicOnInvalidStatus(t *testing.T) {
	invalid := verifier.Status(42)
	assert.Panics(t, func() { verifyAction(invalid) })
	assert.Panics(t, func() { verifyEvent(invalid) })
	assert.Panics(t, func() { routeAction(invalid) })
	assert.Panics(t, func() { routeEvent(invalid) })
}

func TestGroupByStatus_OmitsEmptyBuckets(t *testing.T) {
	unique := []message.Message{testMessage("a"), testMessage("b"), testMessage("c")}
	buckets, err := groupByStatus(unique, []verifier.MessageStatus{
		{Message: testMessage("c"), Status: verifier.StatusFailedOnSourceChain},
		{Message: testMessage("a"), Status: verifier.StatusFailedOnSourceChain},
		{Message: testMessage("b"), Status: verifier.StatusInProgress},
	})
	require.NoError(t, err)

	require.Len(t, buckets, 2)
	assert.Equal(t, verifier.StatusInProgress, buckets[0].status)
	assert.Equal(t, []message.Message{testMessage("b")}, buckets[0].messages)
	assert.Equal(t, verifier.StatusFailedOnSourceChain, buckets[1].status)
	assert.Equal(t, []message.Message{testMessage("a"), testMessage("c")}, buckets[1].messages)
}

package gateway

import "errors"

var (
	ErrConfigMissing       = errors.New("gateway config is missing")
	ErrInvalidStoreAccess  = errors.New("invalid store access")
	ErrQueryVerifier       = errors.New("failed to query verifier for message status")
	ErrSaveOutgoingMessage = errors.New("failed to save outgoing message")
	ErrDuplicateMessageIDs = errors.New("duplicate message ids with different content")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrMessageNotFound     = errors.New("message not found")
	ErrUnknownExecuteMsg   = errors.New("unknown execute message")
)

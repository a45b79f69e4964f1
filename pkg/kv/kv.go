// Package kv defines the namespaced key-value store the gateway and the token
// ledger persist their state in, plus the typed accessors built on top of it.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has no value.
var ErrNotFound = errors.New("kv: key not found")

// Store is a namespaced, ordered key-value store.
//
// Range visits entries of a single namespace in ascending byte order of their keys.
// Returning an error from fn stops the iteration and the error is returned as is.
type Store interface {
	Get(ctx context.Context, namespace string, key []byte) ([]byte, error)
	Set(ctx context.Context, namespace string, key, value []byte) error
	Remove(ctx context.Context, namespace string, key []byte) error
	Range(ctx context.Context, namespace string, fn func(key, value []byte) error) error
}

// TxStore is a Store that can run a group of operations atomically.
//
// The Store handed to fn must be used for every read and write of the group;
// if fn returns an error none of its writes are visible afterwards.
type TxStore interface {
	Store
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}

package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// KeyCodec converts typed keys to and from store keys.
type KeyCodec[K any] struct {
	Encode func(K) []byte
	Decode func([]byte) (K, error)
}

// StringKey stores a string key as its raw bytes.
var StringKey = KeyCodec[string]{
	Encode: func(s string) []byte { return []byte(s) },
	Decode: func(b []byte) (string, error) { return string(b), nil },
}

// Map is a typed view over one namespace. Values are stored as JSON.
type Map[K, V any] struct {
	namespace string
	key       KeyCodec[K]
}

// NewMap returns a Map over namespace.
func NewMap[K, V any](namespace string, key KeyCodec[K]) Map[K, V] {
	return Map[K, V]{namespace: namespace, key: key}
}

// Namespace returns the namespace the map is stored under.
func (m Map[K, V]) Namespace() string {
	return m.namespace
}

// MayLoad returns the value stored under k and whether it was present.
func (m Map[K, V]) MayLoad(ctx context.Context, s Store, k K) (V, bool, error) {
	var v V
	raw, err := s.Get(ctx, m.namespace, m.key.Encode(k))
	if errors.Is(err, ErrNotFound) {
		return v, false, nil
	}
	if err != nil {
		return v, false, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, fmt.Errorf("kv: decode %s value: %w", m.namespace, err)
	}
	return v, true, nil
}

// Load returns the value stored under k or an error wrapping ErrNotFound.
func (m Map[K, V]) Load(ctx context.Context, s Store, k K) (V, error) {
	v, ok, err := m.MayLoad(ctx, s, k)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, fmt.Errorf("%s: %w", m.namespace, ErrNotFound)
	}
	return v, nil
}

// Has reports whether a value is stored under k.
func (m Map[K, V]) Has(ctx context.Context, s Store, k K) (bool, error) {
	_, err := s.Get(ctx, m.namespace, m.key.Encode(k))
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Save stores v under k, replacing any previous value.
func (m Map[K, V]) Save(ctx context.Context, s Store, k K, v V) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv: encode %s value: %w", m.namespace, err)
	}
	return s.Set(ctx, m.namespace, m.key.Encode(k), raw)
}

// Remove deletes the value stored under k. Removing a missing key is not an error.
func (m Map[K, V]) Remove(ctx context.Context, s Store, k K) error {
	return s.Remove(ctx, m.namespace, m.key.Encode(k))
}

// Range visits every entry in ascending key order.
func (m Map[K, V]) Range(ctx context.Context, s Store, fn func(K, V) error) error {
	return s.Range(ctx, m.namespace, func(rawKey, rawValue []byte) error {
		k, err := m.key.Decode(rawKey)
		if err != nil {
			return fmt.Errorf("kv: decode %s key: %w", m.namespace, err)
		}
		var v V
		if err := json.Unmarshal(rawValue, &v); err != nil {
			return fmt.Errorf("kv: decode %s value: %w", m.namespace, err)
		}
		return fn(k, v)
	})
}

// Item is a single typed value stored in its own namespace.
type Item[V any] struct {
	m Map[string, V]
}

// NewItem returns an Item stored under namespace.
func NewItem[V any](namespace string) Item[V] {
	return Item[V]{m: NewMap[string, V](namespace, StringKey)}
}

func (i Item[V]) MayLoad(ctx context.Context, s Store) (V, bool, error) {
	return i.m.MayLoad(ctx, s, i.m.namespace)
}

func (i Item[V]) Load(ctx context.Context, s Store) (V, error) {
	return i.m.Load(ctx, s, i.m.namespace)
}

func (i Item[V]) Save(ctx context.Context, s Store, v V) error {
	return i.m.Save(ctx, s, i.m.namespace, v)
}

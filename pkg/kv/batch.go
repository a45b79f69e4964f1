package kv

import (
	"bytes"
	"context"
	"sort"
)

// Op is a single staged write.
type Op struct {
	Namespace string
	Key       []byte
	Value     []byte
	Delete    bool
}

type staged struct {
	value   []byte
	deleted bool
}

// Batch stages writes on top of a base Store.
//
// Reads see the staged writes first and fall through to the base store; nothing
// reaches the base store until the owner applies Ops. Backends without native
// transactions use it to implement RunInTx.
type Batch struct {
	base   Store
	staged map[string]map[string]staged
}

// NewBatch returns an empty Batch reading through to base.
func NewBatch(base Store) *Batch {
	return &Batch{
		base:   base,
		staged: make(map[string]map[string]staged),
	}
}

func (b *Batch) Get(ctx context.Context, namespace string, key []byte) ([]byte, error) {
	if e, ok := b.staged[namespace][string(key)]; ok {
		if e.deleted {
			return nil, ErrNotFound
		}
		return bytes.Clone(e.value), nil
	}
	return b.base.Get(ctx, namespace, key)
}

func (b *Batch) Set(_ context.Context, namespace string, key, value []byte) error {
	b.put(namespace, key, staged{value: bytes.Clone(value)})
	return nil
}

func (b *Batch) Remove(_ context.Context, namespace string, key []byte) error {
	b.put(namespace, key, staged{deleted: true})
	return nil
}

// Range merges the base namespace with the staged writes and visits the result
// in ascending key order.
func (b *Batch) Range(ctx context.Context, namespace string, fn func(key, value []byte) error) error {
	merged := make(map[string][]byte)
	err := b.base.Range(ctx, namespace, func(key, value []byte) error {
		merged[string(key)] = bytes.Clone(value)
		return nil
	})
	if err != nil {
		return err
	}
	for k, e := range b.staged[namespace] {
		if e.deleted {
			delete(merged, k)
			continue
		}
		merged[k] = e.value
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := fn([]byte(k), bytes.Clone(merged[k])); err != nil {
			return err
		}
	}
	return nil
}

// Ops returns the staged writes ordered by namespace then key.
func (b *Batch) Ops() []Op {
	namespaces := make([]string, 0, len(b.staged))
	for ns := range b.staged {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)

	var ops []Op
	for _, ns := range namespaces {
		keys := make([]string, 0, len(b.staged[ns]))
		for k := range b.staged[ns] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			e := b.staged[ns][k]
			ops = append(ops, Op{
				Namespace: ns,
				Key:       []byte(k),
				Value:     e.value,
				Delete:    e.deleted,
			})
		}
	}
	return ops
}

// Len is the number of staged writes.
func (b *Batch) Len() int {
	n := 0
	for _, keys := range b.staged {
		n += len(keys)
	}
	return n
}

func (b *Batch) put(namespace string, key []byte, e staged) {
	keys, ok := b.staged[namespace]
	if !ok {
		keys = make(map[string]staged)
		b.staged[namespace] = keys
	}
	keys[string(key)] = e
}

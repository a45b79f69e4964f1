package kv

import (
	"bytes"
	"context"
	"sort"
	"sync"
)

// MemStore is an in-process TxStore. Transactions are serialized and their
// writes are applied in one step when fn succeeds.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte

	txMu sync.Mutex
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]map[string][]byte)}
}

func (m *MemStore) Get(_ context.Context, namespace string, key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[namespace][string(key)]
	if !ok {
		return nil, ErrNotFound
	}
	return bytes.Clone(v), nil
}

func (m *MemStore) Set(_ context.Context, namespace string, key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.set(namespace, key, value)
	return nil
}

func (m *MemStore) Remove(_ context.Context, namespace string, key []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data[namespace], string(key))
	return nil
}

// Range iterates over a snapshot of the namespace taken when the call starts.
func (m *MemStore) Range(_ context.Context, namespace string, fn func(key, value []byte) error) error {
	m.mu.RLock()
	entries := m.data[namespace]
	keys := make([]string, 0, len(entries))
	values := make(map[string][]byte, len(entries))
	for k, v := range entries {
		keys = append(keys, k)
		values[k] = bytes.Clone(v)
	}
	m.mu.RUnlock()

	sort.Strings(keys)
	for _, k := range keys {
		if err := fn([]byte(k), values[k]); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	batch := NewBatch(m)
	if err := fn(ctx, batch); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, op := range batch.Ops() {
		if op.Delete {
			delete(m.data[op.Namespace], string(op.Key))
			continue
		}
		m.set(op.Namespace, op.Key, op.Value)
	}
	return nil
}

func (m *MemStore) set(namespace string, key, value []byte) {
	entries, ok := m.data[namespace]
	if !ok {
		entries = make(map[string][]byte)
		m.data[namespace] = entries
	}
	entries[string(key)] = bytes.Clone(value)
}

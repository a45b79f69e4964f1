// Package rediskv is the redis backend of kv.TxStore.
//
// Each namespace is kept in two redis keys: a hash holding the values and a sorted
// set whose members are the entry keys, all with score 0, so ZRANGEBYLEX yields
// them in ascending byte order. Transactions are optimistic: every write bumps a
// version key which RunInTx watches.
package rediskv

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"

	"github.com/chainsafe/interchain-gateway/pkg/kv"
)

// ErrConcurrentUpdate is returned by RunInTx when another writer changed the
// store between the transaction's reads and its commit.
var ErrConcurrentUpdate = errors.New("redis: concurrent update, transaction aborted")

var errReadOnly = errors.New("redis: transaction view is read-only")

type reader interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HMGet(ctx context.Context, key string, fields ...string) *redis.SliceCmd
	ZRangeByLex(ctx context.Context, key string, opt *redis.ZRangeBy) *redis.StringSliceCmd
}

type redisStore struct {
	client *redis.Client
	prefix string

	txMu sync.Mutex
}

// NewStore creates a redis implementation of kv.TxStore. All keys it touches
// start with prefix.
func NewStore(client *redis.Client, prefix string) kv.TxStore {
	return &redisStore{client: client, prefix: prefix}
}

func (s *redisStore) valuesKey(namespace string) string {
	return fmt.Sprintf("%s:%s:values", s.prefix, namespace)
}

func (s *redisStore) indexKey(namespace string) string {
	return fmt.Sprintf("%s:%s:index", s.prefix, namespace)
}

func (s *redisStore) versionKey() string {
	return s.prefix + ":version"
}

func (s *redisStore) Get(ctx context.Context, namespace string, key []byte) ([]byte, error) {
	return s.get(ctx, s.client, namespace, key)
}

func (s *redisStore) Range(ctx context.Context, namespace string, fn func(key, value []byte) error) error {
	return s.rangeNamespace(ctx, s.client, namespace, fn)
}

func (s *redisStore) Set(ctx context.Context, namespace string, key, value []byte) error {
	return s.commit(ctx, s.client, []kv.Op{{Namespace: namespace, Key: key, Value: value}})
}

func (s *redisStore) Remove(ctx context.Context, namespace string, key []byte) error {
	return s.commit(ctx, s.client, []kv.Op{{Namespace: namespace, Key: key, Delete: true}})
}

func (s *redisStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx kv.Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		batch := kv.NewBatch(&txView{store: s, tx: tx})
		if err := fn(ctx, batch); err != nil {
			return err
		}
		if batch.Len() == 0 {
			return nil
		}
		return s.commit(ctx, tx, batch.Ops())
	}, s.versionKey())
	if errors.Is(err, redis.TxFailedErr) {
		return ErrConcurrentUpdate
	}
	return err
}

type txPipeliner interface {
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
}

func (s *redisStore) commit(ctx context.Context, c txPipeliner, ops []kv.Op) error {
	_, err := c.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, op := range ops {
			member := string(op.Key)
			if op.Delete {
				pipe.HDel(ctx, s.valuesKey(op.Namespace), member)
				pipe.ZRem(ctx, s.indexKey(op.Namespace), member)
				continue
			}
			pipe.HSet(ctx, s.valuesKey(op.Namespace), member, op.Value)
			pipe.ZAdd(ctx, s.indexKey(op.Namespace), &redis.Z{Score: 0, Member: member})
		}
		pipe.Incr(ctx, s.versionKey())
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to commit %d writes: %w", len(ops), err)
	}
	return nil
}

func (s *redisStore) get(ctx context.Context, r reader, namespace string, key []byte) ([]byte, error) {
	v, err := r.HGet(ctx, s.valuesKey(namespace), string(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return v, nil
}

func (s *redisStore) rangeNamespace(ctx context.Context, r reader, namespace string, fn func(key, value []byte) error) error {
	keys, err := r.ZRangeByLex(ctx, s.indexKey(namespace), &redis.ZRangeBy{Min: "-", Max: "+"}).Result()
	if err != nil {
		return fmt.Errorf("failed to range index: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	values, err := r.HMGet(ctx, s.valuesKey(namespace), keys...).Result()
	if err != nil {
		return fmt.Errorf("failed to load values: %w", err)
	}

	for i, k := range keys {
		v, ok := values[i].(string)
		if !ok {
			// index and hash are written together, a gap means a concurrent removal
			continue
		}
		if err := fn([]byte(k), []byte(v)); err != nil {
			return err
		}
	}
	return nil
}

// txView reads through a watched connection. Writes go to the kv.Batch on top of it.
type txView struct {
	store *redisStore
	tx    *redis.Tx
}

func (v *txView) Get(ctx context.Context, namespace string, key []byte) ([]byte, error) {
	return v.store.get(ctx, v.tx, namespace, key)
}

func (v *txView) Range(ctx context.Context, namespace string, fn func(key, value []byte) error) error {
	return v.store.rangeNamespace(ctx, v.tx, namespace, fn)
}

func (v *txView) Set(context.Context, string, []byte, []byte) error {
	return errReadOnly
}

func (v *txView) Remove(context.Context, string, []byte) error {
	return errReadOnly
}

// Package pg is the postgres backend of kv.TxStore.
package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/interchain-gateway/pkg/kv"
)

type pgStore struct {
	db bun.IDB
}

// NewStore creates a postgres implementation of kv.TxStore. The kv_entries table
// is created by the gatewaydb migrations.
func NewStore(db *bun.DB) kv.TxStore {
	return &pgStore{db: db}
}

func (s *pgStore) Get(ctx context.Context, namespace string, key []byte) ([]byte, error) {
	dao := new(EntryDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("namespace = ?", namespace).
		Where("key = ?", key).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kv.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return dao.Value, nil
}

func (s *pgStore) Set(ctx context.Context, namespace string, key, value []byte) error {
	dao := &EntryDao{
		Namespace: namespace,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (namespace, key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set entry: %w", err)
	}
	return nil
}

func (s *pgStore) Remove(ctx context.Context, namespace string, key []byte) error {
	_, err := s.db.NewDelete().
		Model((*EntryDao)(nil)).
		Where("namespace = ?", namespace).
		Where("key = ?", key).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove entry: %w", err)
	}
	return nil
}

func (s *pgStore) Range(ctx context.Context, namespace string, fn func(key, value []byte) error) error {
	var daos []EntryDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("namespace = ?", namespace).
		OrderExpr("key ASC").
		Scan(ctx)
	if err != nil {
		return fmt.Errorf("failed to range entries: %w", err)
	}
	for i := range daos {
		if err := fn(daos[i].Key, daos[i].Value); err != nil {
			return err
		}
	}
	return nil
}

// RunInTx runs fn in a serializable transaction.
func (s *pgStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx kv.Store) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}
	return s.db.RunInTx(ctx, opts, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, &pgStore{db: tx})
	})
}

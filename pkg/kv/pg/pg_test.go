package pg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"

	"github.com/chainsafe/interchain-gateway/pkg/kv"
	"github.com/chainsafe/interchain-gateway/pkg/kv/kvtest"
	"github.com/chainsafe/interchain-gateway/pkg/pgutil"
	mghelper "github.com/chainsafe/interchain-gateway/pkg/pgutil/migrations"
)

func setupDB(t *testing.T) *bun.DB {
	t.Helper()

	db := pgutil.SetupTestDB(t)
	if err := mghelper.CreateSchema(context.Background(), db, &EntryDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return db
}

func TestPGStore(t *testing.T) {
	db := setupDB(t)

	kvtest.RunStoreSuite(t, func(t *testing.T) kv.TxStore {
		if err := mghelper.TruncateTables(context.Background(), db, &EntryDao{}); err != nil {
			t.Fatalf("failed to truncate: %v", err)
		}
		return NewStore(db)
	})
}

func TestPGStore_OverwriteKeepsSingleRow(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := NewStore(db)

	for _, v := range []string{"a", "b", "c"} {
		if err := s.Set(ctx, "outgoing_messages", []byte("id"), []byte(v)); err != nil {
			t.Fatalf("Set() failed: %v", err)
		}
	}

	assert.Equal(t, 1, pgutil.RowCount(t, db, "kv_entries"))

	got, err := s.Get(ctx, "outgoing_messages", []byte("id"))
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != "c" {
		t.Fatalf("expected last write to win, got %q", got)
	}
}

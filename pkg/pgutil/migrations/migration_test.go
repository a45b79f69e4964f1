package migrations

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"

	"github.com/chainsafe/interchain-gateway/pkg/config"
	"github.com/chainsafe/interchain-gateway/pkg/pgutil"
)

type testDao struct {
	bun.BaseModel `bun:"table:test_table"`
	ID            int64  `bun:",pk,autoincrement"`
	Name          string `bun:",notnull,type:varchar(100)"`
	Age           int    `bun:",nullzero"`
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}

	db, err := pgutil.ConnectDB(context.Background(), cfg)
	if err == nil {
		_ = db.Close()
		t.Fatal("ConnectDB() should fail with invalid host")
	}
}

func TestRunMigrations_NoCommand(t *testing.T) {
	err := RunMigrations(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "no command provided") {
		t.Fatalf("expected no command error, got %v", err)
	}
}

func TestRunMigrations_UnknownCommand(t *testing.T) {
	err := RunMigrations(context.Background(), nil, "sideways")
	if err == nil || !strings.Contains(err.Error(), "unknown command: sideways") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestCreateAndDropSchema(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	assert.True(t, pgutil.HasTable(t, db, "test_table"))

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Errorf("CreateSchema() second call failed: %v", err)
	}

	if err := DropTables(ctx, db, &testDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	assert.False(t, pgutil.HasTable(t, db, "test_table"))

	if err := DropTables(ctx, db, &testDao{}); err != nil {
		t.Errorf("DropTables() second call failed: %v", err)
	}
}

func TestTruncateTables(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	for _, name := range []string{"first", "second"} {
		if _, err := db.NewInsert().Model(&testDao{Name: name}).Exec(ctx); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	assert.Equal(t, 2, pgutil.RowCount(t, db, "test_table"))

	if err := TruncateTables(ctx, db, &testDao{}); err != nil {
		t.Fatalf("TruncateTables() failed: %v", err)
	}
	assert.Equal(t, 0, pgutil.RowCount(t, db, "test_table"))
	assert.True(t, pgutil.HasTable(t, db, "test_table"))
}

func TestCreateModelIndexes(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := CreateModelIndexes(ctx, db, &testDao{}, "name", "age"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}

	assert.True(t, pgutil.HasIndex(t, db, "idx_test_table_name"))
	assert.True(t, pgutil.HasIndex(t, db, "idx_test_table_age"))
}

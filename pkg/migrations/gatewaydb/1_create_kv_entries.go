package gatewaydb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	kvpg "github.com/chainsafe/interchain-gateway/pkg/kv/pg"
	mghelper "github.com/chainsafe/interchain-gateway/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating kv_entries table...")
		if err := mghelper.CreateSchema(ctx, db, &kvpg.EntryDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &kvpg.EntryDao{}, "updated_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping kv_entries table...")
		return mghelper.DropTables(ctx, db, &kvpg.EntryDao{})
	})
}

package pgutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.uber.org/zap"

	"github.com/chainsafe/interchain-gateway/pkg/config"
)

const (
	applicationName = "interchain-gateway"
	pingTimeout     = 5 * time.Second
)

// Option adjusts the handle returned by ConnectDB.
type Option func(*bun.DB)

// WithQueryLogger logs failed queries, and queries slower than threshold, at Warn.
// A zero threshold only reports failures.
func WithQueryLogger(logger *zap.Logger, threshold time.Duration) Option {
	return func(db *bun.DB) {
		db.AddQueryHook(&queryLogger{logger: logger, threshold: threshold})
	}
}

// ConnectDB opens a bun handle to cfg and pings it before returning.
func ConnectDB(ctx context.Context, cfg *config.DatabaseConfig, opts ...Option) (*bun.DB, error) {
	connector := pgdriver.NewConnector(
		pgdriver.WithNetwork("tcp"),
		pgdriver.WithAddr(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		pgdriver.WithUser(cfg.User),
		pgdriver.WithPassword(cfg.Password),
		pgdriver.WithDatabase(cfg.Database),
		pgdriver.WithInsecure(cfg.SSLMode == "" || cfg.SSLMode == "disable"),
		pgdriver.WithApplicationName(applicationName),
	)

	sqldb := sql.OpenDB(connector)
	if cfg.MaxOpenConns > 0 {
		sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
		sqldb.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	sqldb.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	db := bun.NewDB(sqldb, pgdialect.New())
	for _, opt := range opts {
		opt(db)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s at %s:%d: %w", cfg.Database, cfg.Host, cfg.Port, err)
	}
	return db, nil
}

type queryLogger struct {
	logger    *zap.Logger
	threshold time.Duration
}

func (h *queryLogger) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *queryLogger) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	elapsed := time.Since(event.StartTime)
	switch {
	case event.Err != nil && !errors.Is(event.Err, sql.ErrNoRows):
		h.logger.Warn("Query failed",
			zap.String("operation", event.Operation()),
			zap.Duration("duration", elapsed),
			zap.Error(event.Err))
	case h.threshold > 0 && elapsed > h.threshold:
		h.logger.Warn("Slow query",
			zap.String("operation", event.Operation()),
			zap.Duration("duration", elapsed),
			zap.String("query", event.Query))
	}
}

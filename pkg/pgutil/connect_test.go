package pgutil

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestQueryLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	hook := &queryLogger{logger: zap.New(core), threshold: 100 * time.Millisecond}
	ctx := context.Background()

	hook.AfterQuery(ctx, &bun.QueryEvent{StartTime: time.Now(), Query: "SELECT 1"})
	assert.Zero(t, logs.Len())

	hook.AfterQuery(ctx, &bun.QueryEvent{StartTime: time.Now(), Query: "SELECT 1", Err: sql.ErrNoRows})
	assert.Zero(t, logs.Len())

	hook.AfterQuery(ctx, &bun.QueryEvent{StartTime: time.Now().Add(-time.Second), Query: "SELECT 1"})
	assert.Equal(t, 1, logs.FilterMessage("Slow query").Len())

	hook.AfterQuery(ctx, &bun.QueryEvent{StartTime: time.Now(), Query: "DELETE FROM kv", Err: errors.New("boom")})
	failed := logs.FilterMessage("Query failed").All()
	if assert.Len(t, failed, 1) {
		assert.Equal(t, "DELETE", failed[0].ContextMap()["operation"])
	}
}

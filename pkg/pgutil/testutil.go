package pgutil

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"

	"github.com/chainsafe/interchain-gateway/pkg/config"
)

const (
	testDatabase = "gateway_test"
	testUser     = "test_user"
	testPassword = "test_pass"

	containerStartup = 60 * time.Second
)

// SetupTestDB starts a throwaway postgres and returns a connection to it.
// Tests are skipped when no container runtime is available.
func SetupTestDB(t *testing.T) *bun.DB {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase(testDatabase),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			// postgres restarts once after init, so wait for the second banner
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(containerStartup),
		),
	)
	terminateOnCleanup(t, container)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("postgres host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("postgres port: %v", err)
	}

	cfg := &config.DatabaseConfig{
		Host:     host,
		Port:     port.Int(),
		User:     testUser,
		Password: testPassword,
		Database: testDatabase,
		SSLMode:  "disable",
	}
	db := connectWithBackoff(ctx, t, cfg)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// StartRedis runs a throwaway redis and returns its host:port.
func StartRedis(t *testing.T) string {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(containerStartup),
		},
		Started: true,
	})
	terminateOnCleanup(t, container)
	if err != nil {
		t.Fatalf("start redis: %v", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("redis endpoint: %v", err)
	}
	return endpoint
}

func terminateOnCleanup(t *testing.T, c testcontainers.Container) {
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(c); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})
}

func connectWithBackoff(ctx context.Context, t *testing.T, cfg *config.DatabaseConfig) *bun.DB {
	t.Helper()

	delay := 100 * time.Millisecond
	for attempt := 1; ; attempt++ {
		db, err := ConnectDB(ctx, cfg)
		if err == nil {
			return db
		}
		if attempt == 8 {
			t.Fatalf("connect to test database after %d attempts: %v", attempt, err)
		}
		time.Sleep(delay)
		delay *= 2
	}
}

// HasTable reports whether table exists in the public schema.
func HasTable(t *testing.T, db *bun.DB, table string) bool {
	t.Helper()
	return catalogHas(t, db, "information_schema.tables", "table_schema", "table_name", table)
}

// HasIndex reports whether index exists in the public schema.
func HasIndex(t *testing.T, db *bun.DB, index string) bool {
	t.Helper()
	return catalogHas(t, db, "pg_indexes", "schemaname", "indexname", index)
}

// RowCount returns the number of rows in table.
func RowCount(t *testing.T, db *bun.DB, table string) int {
	t.Helper()

	count, err := db.NewSelect().TableExpr("?", bun.Ident(table)).Count(context.Background())
	if err != nil {
		t.Fatalf("count rows in %s: %v", table, err)
	}
	return count
}

func catalogHas(t *testing.T, db *bun.DB, catalog, schemaCol, nameCol, name string) bool {
	t.Helper()

	var exists bool
	err := db.NewSelect().
		ColumnExpr("EXISTS (SELECT 1 FROM ? WHERE ? = 'public' AND ? = ?)",
			bun.Safe(catalog), bun.Ident(schemaCol), bun.Ident(nameCol), name).
		Scan(context.Background(), &exists)
	if err != nil {
		t.Fatalf("look up %s in %s: %v", name, catalog, err)
	}
	return exists
}

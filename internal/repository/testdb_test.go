package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const migrationsSource = "file://../../migrations"

// Контейнеры общие для всех тестов пакета, таблицы очищаются перед каждым тестом
var (
	sharedMu       sync.Mutex
	sharedPostgres string
	sharedRedis    string
)

type testStores struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func newTestStores(t *testing.T) *testStores {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test requires docker")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	dsn, redisAddr := startContainers(t)
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "Failed to connect to postgres")
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE incidents, volunteer_joins, resolution_logs CASCADE;`)
	require.NoError(t, err, "Failed to truncate tables")

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.FlushDB(ctx).Err())

	return &testStores{db: pool, redis: client}
}

func startContainers(t *testing.T) (string, string) {
	t.Helper()
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sharedPostgres != "" {
		return sharedPostgres, sharedRedis
	}
	ctx := context.Background()

	pg, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("crisissync_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start postgres container")

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get connection string")
	runMigrations(t, dsn)

	rc, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start redis container")

	addr, err := rc.Endpoint(ctx, "")
	require.NoError(t, err, "Failed to get redis endpoint")

	sharedPostgres, sharedRedis = dsn, addr
	return sharedPostgres, sharedRedis
}

func runMigrations(t *testing.T, dsn string) {
	t.Helper()
	m, err := migrate.New(migrationsSource, strings.Replace(dsn, "postgres://", "pgx5://", 1))
	require.NoError(t, err, "Failed to create migrate instance")
	defer m.Close() //nolint:errcheck

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err, "Failed to apply migrations")
	}
}

package adminpanel

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/neuroscan/admin-panel/internal/config"
)

func startTestPostgres(t *testing.T) string {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return dsn
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestNew_MigrationsFailure(t *testing.T) {
	dsn := startTestPostgres(t)

	// Каталог миграций относительно рабочей директории теста отсутствует.
	cfg := &config.Config{
		StorageConnectionString: dsn,
		Session:                 config.Session{SessionTTL: time.Minute},
	}

	app, err := New(context.Background(), cfg, testLogger())
	require.Error(t, err)
	require.Nil(t, app)
}

func TestNew_RedisFailure(t *testing.T) {
	dsn := startTestPostgres(t)

	// Из корня модуля миграции накатываются, а redis недоступен.
	t.Chdir("../../..")

	cfg := &config.Config{
		StorageConnectionString: dsn,
		RedisConnection: config.RedisConnection{
			AddressRedis: "127.0.0.1:9999",
			DialTimeout:  time.Second,
		},
		Session: config.Session{SessionTTL: time.Minute},
	}

	app, err := New(context.Background(), cfg, testLogger())
	require.Error(t, err)
	require.Nil(t, app)
}

package testutil

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// MigrateFunc applies the schema to a freshly started database.
type MigrateFunc func(ctx context.Context, pool *pgxpool.Pool) error

// StartPostgres запускает PostgreSQL 16 testcontainer и возвращает DSN.
// Использует модуль postgres с BasicWaitStrategies (log occurrence(2) + port check).
// Пропускает тест в -short режиме. Контейнер останавливается в tb.Cleanup.
func StartPostgres(tb testing.TB) string {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		tb.Fatalf("starting postgres container: %v", err)
	}
	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			tb.Logf("terminating postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		tb.Fatalf("getting connection string: %v", err)
	}
	return dsn
}

// SetupTestDB стартует контейнер, подключает pgxpool и применяет migrate.
// The caller passes its own migrate so this package does not import db.
func SetupTestDB(tb testing.TB, migrate MigrateFunc) *pgxpool.Pool {
	tb.Helper()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, StartPostgres(tb))
	if err != nil {
		tb.Fatalf("connecting to test db: %v", err)
	}
	tb.Cleanup(pool.Close)

	if migrate != nil {
		if err := migrate(ctx, pool); err != nil {
			tb.Fatalf("running migrations: %v", err)
		}
	}
	return pool
}

package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/affectd/internal/testutil"
)

// setupTestDB возвращает pool с применёнными миграциями.
// Каждый вызов поднимает свой контейнер, тесты изолированы.
func setupTestDB(tb testing.TB) *pgxpool.Pool {
	tb.Helper()
	return testutil.SetupTestDB(tb, RunMigrationsPool)
}

// countRows returns SELECT count(*) for table.
func countRows(tb testing.TB, pool *pgxpool.Pool, table string) int {
	tb.Helper()
	var n int
	if err := pool.QueryRow(context.Background(), `SELECT count(*) FROM `+table).Scan(&n); err != nil {
		tb.Fatalf("counting %s: %v", table, err)
	}
	return n
}

package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/affectd/internal/data"
	"github.com/udisondev/affectd/internal/testutil"
)

func TestTableRepository_SaveLoadRoundTrip(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewTableRepository(pool)
	ctx := testutil.ContextWithTimeout(t, time.Minute)

	want := testutil.SampleTables(t)
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, want.Stats, got.Stats)
	assert.Equal(t, want.DamageTypes, got.DamageTypes)
	assert.Equal(t, want.States, got.States)
	assert.Equal(t, want.Affects, got.Affects)
	assert.Equal(t, want.Modifiers, got.Modifiers, "modifier order is preserved")
	assert.Equal(t, want.CrowdControls, got.CrowdControls)

	repos, err := data.Bootstrap(got, "")
	require.NoError(t, err)
	assert.Empty(t, data.Validate(repos))
}

func TestTableRepository_SaveReplaces(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewTableRepository(pool)
	ctx := testutil.ContextWithTimeout(t, time.Minute)

	require.NoError(t, repo.Save(ctx, testutil.SampleTables(t)))
	require.NoError(t, repo.Save(ctx, &data.Tables{
		Affects: []data.AffectRow{
			{UID: 0, Memo: "dropped"},
			{UID: 42, Memo: "first"},
			{UID: 42, Memo: "second"},
		},
		Modifiers: []data.ModifierRow{
			{AffectUID: 42, ModifierID: 2, Kind: "Stat", StatID: "b"},
			{AffectUID: 42, ModifierID: 1, Kind: "Stat", StatID: "a"},
			{AffectUID: -1, Kind: "Stat"},
		},
	}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)

	require.Len(t, got.Affects, 1)
	assert.Equal(t, "second", got.Affects[0].Memo, "repeated uid keeps the last row")
	require.Len(t, got.Modifiers, 2)
	assert.Equal(t, "b", got.Modifiers[0].StatID)
	assert.Equal(t, "a", got.Modifiers[1].StatID)
	assert.Zero(t, countRows(t, pool, "crowd_controls"))
	assert.Zero(t, countRows(t, pool, "status_entries"))
}

func TestTableRepository_LoadEmpty(t *testing.T) {
	pool := setupTestDB(t)

	got, err := NewTableRepository(pool).Load(testutil.ContextWithTimeout(t, time.Minute))
	require.NoError(t, err)
	assert.Empty(t, got.Affects)
	assert.Empty(t, got.Modifiers)
}

func TestNewAndRunMigrations(t *testing.T) {
	dsn := testutil.StartPostgres(t)
	ctx := testutil.ContextWithTimeout(t, time.Minute)

	require.NoError(t, RunMigrations(ctx, dsn))
	// goose skips applied versions
	require.NoError(t, RunMigrations(ctx, dsn))

	d, err := New(ctx, dsn)
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.Tables().Save(ctx, testutil.SampleTables(t)))
	assert.Equal(t, 6, countRows(t, d.Pool(), "affects"))
}

func TestNew_BadDSN(t *testing.T) {
	_, err := New(testutil.ContextWithTimeout(t, 10*time.Second), "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	require.Error(t, err)
}

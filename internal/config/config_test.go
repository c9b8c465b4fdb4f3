package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "affectd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
tick_rate: 20ms
workers: 4
hud_sync_interval: 250ms
tables:
  source: postgres
database:
  host: db
  port: 6543
  seed_from_yaml: true
scenario:
  duration: 5s
  actors:
    - name: Hero
      hud: true
      stats: {max_hp: 300, RESIST_fire: 25}
    - name: Mage
      npc: true
  events:
    - {at: 0s, actor: Hero, action: apply, affect_uid: 2, source: Mage, value_multiplier: 1.5}
    - {at: 2500ms, actor: Hero, action: dispel, dispel_type: Debuff, require_tags: [dot]}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 20*time.Millisecond, cfg.TickRate)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 1000, cfg.ParallelThreshold, "default kept")
	assert.Equal(t, 250*time.Millisecond, cfg.HudSyncInterval)
	assert.Equal(t, SourcePostgres, cfg.Tables.Source)
	assert.Equal(t, "tables/affects.yaml", cfg.Tables.YAMLPath)
	assert.True(t, cfg.Database.Migrate)
	assert.True(t, cfg.Database.SeedFromYAML)
	assert.Equal(t, "postgres://affectd:affectd@db:6543/affectd?sslmode=disable", cfg.Database.DSN())

	require.Len(t, cfg.Scenario.Actors, 2)
	assert.InDelta(t, 25, cfg.Scenario.Actors[0].Stats["RESIST_fire"], 1e-9)
	assert.True(t, cfg.Scenario.Actors[1].Npc)
	require.Len(t, cfg.Scenario.Events, 2)
	assert.Equal(t, 2500*time.Millisecond, cfg.Scenario.Events[1].At)
	assert.Equal(t, []string{"dot"}, cfg.Scenario.Events[1].RequireTags)
	assert.InDelta(t, 1.5, cfg.Scenario.Events[0].ValueMultiplier, 1e-9)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "tick_rate: [1, 2]\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Affectd)
		wantErr string
	}{
		{name: "zero tick rate", mutate: func(c *Affectd) { c.TickRate = 0 }, wantErr: "tick_rate"},
		{name: "negative workers", mutate: func(c *Affectd) { c.Workers = -1 }, wantErr: "workers"},
		{name: "unknown source", mutate: func(c *Affectd) { c.Tables.Source = "xml" }, wantErr: `unknown tables.source "xml"`},
		{name: "tsv without dir", mutate: func(c *Affectd) { c.Tables.Source = SourceTSV; c.Tables.TSVDir = "" }, wantErr: "tsv_dir"},
		{
			name: "event for unknown actor",
			mutate: func(c *Affectd) {
				c.Scenario.Events = []ScenarioEvent{{Actor: "ghost", Action: ActionDispel}}
			},
			wantErr: `unknown actor "ghost"`,
		},
		{
			name: "duplicate actor",
			mutate: func(c *Affectd) {
				c.Scenario.Actors = []ScenarioActor{{Name: "A"}, {Name: "A"}}
			},
			wantErr: `duplicate name "A"`,
		},
		{
			name: "apply without uid",
			mutate: func(c *Affectd) {
				c.Scenario.Actors = []ScenarioActor{{Name: "A"}}
				c.Scenario.Events = []ScenarioEvent{{Actor: "A", Action: ActionApply}}
			},
			wantErr: "affect_uid is required",
		},
		{
			name: "unknown action",
			mutate: func(c *Affectd) {
				c.Scenario.Actors = []ScenarioActor{{Name: "A"}}
				c.Scenario.Events = []ScenarioEvent{{Actor: "A", Action: "explode"}}
			},
			wantErr: `unknown action "explode"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv(EnvPath, "")
	assert.Equal(t, DefaultPath, Path())

	t.Setenv(EnvPath, "/etc/affectd.yaml")
	assert.Equal(t, "/etc/affectd.yaml", Path())
}

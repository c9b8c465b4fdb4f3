package testutil

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/udisondev/affectd/internal/data"
)

// Uids of the sample affect tables.
const (
	AffectMight        = 1 // atk +10 flat, group attack_buff, refresh value and duration, vfx 100
	AffectPoison       = 2 // 5 poison per second, up to 5 stacks
	AffectStun         = 3 // stun state + 2s stun crowd control
	AffectBurn         = 4 // 3 fire per 0.5s, independent instances
	AffectGreaterMight = 5 // atk +25%, group attack_buff
	AffectFrostSlow    = 6 // 50% slow state, move_speed -30%
)

// SampleTablesPath returns the path of the sample affect tables,
// independent of the calling package's directory.
func SampleTablesPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "data", "testdata", "tables.yaml")
}

// SampleTables загружает sample tables или валит тест.
func SampleTables(tb testing.TB) *data.Tables {
	tb.Helper()

	tables, err := data.LoadYAMLTables(SampleTablesPath())
	if err != nil {
		tb.Fatalf("loading sample tables: %v", err)
	}
	return tables
}

// SampleRepositories bootstraps the sample tables with the default
// resistance prefix.
func SampleRepositories(tb testing.TB) *data.Repositories {
	tb.Helper()

	repos, err := data.Bootstrap(SampleTables(tb), data.DefaultResistPrefix)
	if err != nil {
		tb.Fatalf("bootstrapping sample tables: %v", err)
	}
	return repos
}

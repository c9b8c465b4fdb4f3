package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/affectd/internal/data"
)

func TestLoad(t *testing.T) {
	_, err := load("", "")
	assert.Error(t, err)

	_, err = load("a.yaml", "dir")
	assert.Error(t, err)

	tables, err := load("../../tables/affects.yaml", "")
	require.NoError(t, err)
	assert.Len(t, tables.Affects, 6)
}

func TestCheck_Clean(t *testing.T) {
	tables, err := load("../../tables/affects.yaml", "")
	require.NoError(t, err)

	var out bytes.Buffer
	issues, err := check(&out, tables, data.DefaultResistPrefix)
	require.NoError(t, err)

	assert.Zero(t, issues)
	assert.Contains(t, out.String(), "affects:   6")
	assert.Contains(t, out.String(), "issues:    0")
}

func TestCheck_ReportsIssues(t *testing.T) {
	tables := &data.Tables{
		Affects:   []data.AffectRow{{UID: 1}},
		Modifiers: []data.ModifierRow{{AffectUID: 1, ModifierID: 1, Kind: "Stat", StatID: "ghost"}},
	}

	var out bytes.Buffer
	issues, err := check(&out, tables, data.DefaultResistPrefix)
	require.NoError(t, err)

	assert.Equal(t, 1, issues)
	assert.Contains(t, out.String(), "ghost")
}

func TestExportYAML(t *testing.T) {
	tables, err := load("", "../../tables/tsv")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, exportYAML(path, tables))

	back, err := data.LoadYAMLTables(path)
	require.NoError(t, err)
	assert.Equal(t, tables.Affects, back.Affects)
	assert.Equal(t, tables.Modifiers, back.Modifiers)
}

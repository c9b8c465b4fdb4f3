package data

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/affectd/internal/affect"
)

func TestLoadYAMLTables(t *testing.T) {
	tables, err := LoadYAMLTables(filepath.Join("testdata", "tables.yaml"))
	require.NoError(t, err)

	assert.Len(t, tables.Affects, 6)
	assert.Len(t, tables.Modifiers, 8)
	assert.Len(t, tables.CrowdControls, 1)
	assert.Len(t, tables.Stats, 6)

	poison := tables.Affects[1]
	assert.Equal(t, 2, poison.UID)
	assert.Equal(t, "debuff", poison.DispelType)
	assert.InDelta(t, 1.0, poison.TickInterval, 1e-9)

	burn := tables.Modifiers[4]
	assert.True(t, burn.CanCrit)
	assert.Equal(t, "int", burn.ScalingStatID)
}

func TestParseYAMLTables_RejectsUnknownField(t *testing.T) {
	_, err := ParseYAMLTables([]byte("affects:\n  - uid: 1\n    base_durtion: 3\n"))
	require.Error(t, err)
}

func TestParseYAMLTables_Empty(t *testing.T) {
	tables, err := ParseYAMLTables(nil)
	require.NoError(t, err)
	assert.Empty(t, tables.Affects)
}

func TestWriteYAMLTables_RoundTrip(t *testing.T) {
	tables, err := LoadYAMLTables(filepath.Join("testdata", "tables.yaml"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteYAMLTables(&buf, tables))

	again, err := ParseYAMLTables(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, tables, again)
}

func TestLoadTSVTables(t *testing.T) {
	tables, err := LoadTSVTables(filepath.Join("testdata", "tsv"))
	require.NoError(t, err)

	require.Len(t, tables.Affects, 4, "comments and blank lines are skipped")
	assert.Equal(t, "buff, physical", tables.Affects[0].Tags)
	assert.InDelta(t, 1.5, tables.Affects[0].VfxScale, 1e-9)

	poison := tables.Affects[1]
	assert.Equal(t, "2", poison.DispelType)
	assert.Equal(t, "add", poison.StackPolicy)
	assert.Equal(t, 0, poison.VfxUID, "short row pads with empty cells")

	require.Len(t, tables.Modifiers, 4)
	assert.True(t, tables.Modifiers[1].IsDot)
	assert.False(t, tables.Modifiers[1].CanCrit)
	assert.Equal(t, 1, tables.Modifiers[3].CrowdControlUID)

	assert.Equal(t, []StatusRow{{ID: "atk", Name: "Attack"}, {ID: "RESIST_poison", Name: "Poison Resistance"}}, tables.Stats)
	assert.Len(t, tables.CrowdControls, 1)
}

func TestLoadTSVTables_MissingAffectTable(t *testing.T) {
	_, err := LoadTSVTables(t.TempDir())
	require.Error(t, err)
}

func TestReadTSV_BadNumber(t *testing.T) {
	src := "Uid\tMaxStacks\n1\tlots\n"

	var rows []AffectRow
	err := readTSV(strings.NewReader(src), func(r record) error {
		rows = append(rows, affectRowFrom(&r))
		return r.err
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "MaxStacks")
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadTSV_CaseInsensitiveHeader(t *testing.T) {
	src := "uid\tBASEDURATION\n7\t2.5\n"

	var rows []AffectRow
	err := readTSV(strings.NewReader(src), func(r record) error {
		rows = append(rows, affectRowFrom(&r))
		return r.err
	})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].UID)
	assert.InDelta(t, 2.5, rows[0].BaseDuration, 1e-9)
}

func TestYAMLAndTSVAgree(t *testing.T) {
	fromYAML, err := LoadYAMLTables(filepath.Join("testdata", "tables.yaml"))
	require.NoError(t, err)
	fromTSV, err := LoadTSVTables(filepath.Join("testdata", "tsv"))
	require.NoError(t, err)

	yamlRepos, err := Bootstrap(fromYAML, "")
	require.NoError(t, err)
	tsvRepos, err := Bootstrap(fromTSV, "")
	require.NoError(t, err)

	for _, uid := range []int{1, 2} {
		y, ok := yamlRepos.Affects.Affect(uid)
		require.True(t, ok)
		ts, ok := tsvRepos.Affects.Affect(uid)
		require.True(t, ok)

		assert.Equal(t, y.BaseDuration, ts.BaseDuration)
		assert.Equal(t, y.TickInterval, ts.TickInterval)
		assert.Equal(t, y.StackPolicy, ts.StackPolicy)
		assert.Equal(t, y.RefreshPolicy, ts.RefreshPolicy)
		assert.Equal(t, y.DispelType, ts.DispelType)
		assert.Equal(t, y.Tags, ts.Tags)
	}

	poison, _ := tsvRepos.Affects.Affect(2)
	assert.Equal(t, affect.DispelDebuff, poison.DispelType)
	assert.Equal(t, time.Second, poison.TickInterval)
}

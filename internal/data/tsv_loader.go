package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// TSV file names inside a table directory. Only the affect table is required.
const (
	AffectFile       = "affect.tsv"
	ModifierFile     = "affect_modifier.tsv"
	CrowdControlFile = "crowd_control.tsv"
	StatFile         = "stat.tsv"
	DamageTypeFile   = "damage_type.tsv"
	StateFile        = "state.tsv"
)

// LoadTSVTables reads every table file from dir.
func LoadTSVTables(dir string) (*Tables, error) {
	var t Tables

	if err := loadTSVFile(filepath.Join(dir, AffectFile), true, func(r record) error {
		t.Affects = append(t.Affects, affectRowFrom(&r))
		return r.err
	}); err != nil {
		return nil, err
	}
	if err := loadTSVFile(filepath.Join(dir, ModifierFile), false, func(r record) error {
		t.Modifiers = append(t.Modifiers, modifierRowFrom(&r))
		return r.err
	}); err != nil {
		return nil, err
	}
	if err := loadTSVFile(filepath.Join(dir, CrowdControlFile), false, func(r record) error {
		t.CrowdControls = append(t.CrowdControls, crowdControlRowFrom(&r))
		return r.err
	}); err != nil {
		return nil, err
	}

	status := []struct {
		file string
		dst  *[]StatusRow
	}{
		{StatFile, &t.Stats},
		{DamageTypeFile, &t.DamageTypes},
		{StateFile, &t.States},
	}
	for _, s := range status {
		if err := loadTSVFile(filepath.Join(dir, s.file), false, func(r record) error {
			*s.dst = append(*s.dst, StatusRow{ID: r.str("Id"), Name: r.str("Name")})
			return nil
		}); err != nil {
			return nil, err
		}
	}

	return &t, nil
}

func loadTSVFile(path string, required bool, fn func(record) error) error {
	f, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("opening table %s: %w", path, err)
	}
	defer f.Close()

	if err := readTSV(f, fn); err != nil {
		return fmt.Errorf("reading table %s: %w", path, err)
	}
	return nil
}

// readTSV calls fn for every data row of a tab-separated table. The first
// row names the columns; blank lines and lines starting with '#' are
// skipped; short rows read their missing cells as empty.
func readTSV(r io.Reader, fn func(record) error) error {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if isBlank(cells) {
			continue
		}

		line, _ := cr.FieldPos(0)
		if err := fn(record{columns: columns, cells: cells}); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// record is one TSV row addressed by column name. The first conversion
// error sticks in err.
type record struct {
	columns map[string]int
	cells   []string
	err     error
}

func (r *record) str(column string) string {
	i, ok := r.columns[strings.ToLower(column)]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

func (r *record) integer(column string) int {
	s := r.str(column)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("column %s: %w", column, err)
	}
	return v
}

func (r *record) decimal(column string) float64 {
	s := r.str(column)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("column %s: %w", column, err)
	}
	return v
}

func (r *record) flag(column string) bool {
	s := r.str(column)
	if s == "" {
		return false
	}
	v, err := strconv.ParseBool(s)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("column %s: %w", column, err)
	}
	return v
}

func affectRowFrom(r *record) AffectRow {
	return AffectRow{
		UID:           r.integer("Uid"),
		Memo:          r.str("Memo"),
		NameKey:       r.str("NameKey"),
		IconKey:       r.str("IconKey"),
		DispelType:    r.str("DispelType"),
		GroupID:       r.str("GroupId"),
		BaseDuration:  r.decimal("BaseDuration"),
		TickInterval:  r.decimal("TickInterval"),
		StackPolicy:   r.str("StackPolicy"),
		MaxStacks:     r.integer("MaxStacks"),
		RefreshPolicy: r.str("RefreshPolicy"),
		Tags:          r.str("Tags"),
		VfxUID:        r.integer("VfxUid"),
		VfxScale:      r.decimal("VfxScale"),
		VfxOffsetY:    r.decimal("VfxOffsetY"),
		ApplyChance:   r.decimal("ApplyChance"),
	}
}

func modifierRowFrom(r *record) ModifierRow {
	return ModifierRow{
		AffectUID:             r.integer("AffectUid"),
		ModifierID:            r.integer("ModifierId"),
		Phase:                 r.str("Phase"),
		Kind:                  r.str("Kind"),
		StatID:                r.str("StatId"),
		StatValue:             r.decimal("StatValue"),
		StatValueType:         r.str("StatValueType"),
		StatOperation:         r.str("StatOperation"),
		DamageTypeID:          r.str("DamageTypeId"),
		DamageBaseValue:       r.decimal("DamageBaseValue"),
		ScalingStatID:         r.str("ScalingStatId"),
		ScalingCoefficient:    r.decimal("ScalingCoefficient"),
		CanCrit:               r.flag("CanCrit"),
		IsDot:                 r.flag("IsDot"),
		StateID:               r.str("StateId"),
		StateChance:           r.decimal("StateChance"),
		StateDurationOverride: r.decimal("StateDurationOverride"),
		CrowdControlUID:       r.integer("CrowdControlUid"),
		ConditionID:           r.str("ConditionId"),
	}
}

func crowdControlRowFrom(r *record) CrowdControlRow {
	return CrowdControlRow{
		UID:      r.integer("Uid"),
		Kind:     r.str("Kind"),
		Duration: r.decimal("Duration"),
	}
}

package data

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/affectd/internal/affect"
)

// Repositories are the stores built from one table set.
type Repositories struct {
	Affects      *AffectRepository
	Status       *StatusRepository
	CrowdControl *CrowdControlRepository
}

// Runtime binds the repositories into an affect runtime. vfx may be nil.
func (r *Repositories) Runtime(vfx affect.VfxService) *affect.Runtime {
	return &affect.Runtime{
		Affects:      r.Affects,
		Status:       r.Status,
		CrowdControl: r.CrowdControl,
		Vfx:          vfx,
	}
}

// Bootstrap converts t into repositories. Status tables register first,
// then affects, modifiers (grouped per affect uid in source order) and
// crowd-control rows. Rows with a non-positive uid are skipped.
func Bootstrap(t *Tables, resistPrefix string) (*Repositories, error) {
	repos := &Repositories{
		Affects:      NewAffectRepository(),
		Status:       NewStatusRepository(resistPrefix),
		CrowdControl: NewCrowdControlRepository(),
	}
	if t == nil {
		return repos, nil
	}

	for _, row := range t.Stats {
		repos.Status.RegisterStat(row.ID, row.Name)
	}
	for _, row := range t.DamageTypes {
		repos.Status.RegisterDamageType(row.ID, row.Name)
	}
	for _, row := range t.States {
		repos.Status.RegisterState(row.ID, row.Name)
	}

	for _, row := range t.Affects {
		if row.UID <= 0 {
			continue
		}
		def, err := row.Definition()
		if err != nil {
			return nil, fmt.Errorf("building affect %d: %w", row.UID, err)
		}
		repos.Affects.RegisterAffect(def)
	}

	for i, row := range t.Modifiers {
		if row.AffectUID <= 0 {
			continue
		}
		mod, err := row.Definition()
		if err != nil {
			return nil, fmt.Errorf("building modifier row %d (affect %d): %w", i+1, row.AffectUID, err)
		}
		repos.Affects.AddModifier(mod)
	}

	for _, row := range t.CrowdControls {
		if row.UID <= 0 {
			continue
		}
		def, err := row.Definition()
		if err != nil {
			return nil, fmt.Errorf("building crowd control %d: %w", row.UID, err)
		}
		repos.CrowdControl.Register(def)
	}

	slog.Info("affect tables loaded",
		"affects", repos.Affects.Len(),
		"modifiers", len(t.Modifiers),
		"crowdControls", len(t.CrowdControls),
		"stats", len(t.Stats),
		"damageTypes", len(t.DamageTypes),
		"states", len(t.States))

	return repos, nil
}

// Definition converts the row. NameKey falls back to the uid.
func (row AffectRow) Definition() (*affect.Definition, error) {
	dispel, err := ParseDispelType(row.DispelType)
	if err != nil {
		return nil, err
	}
	stack, err := ParseStackPolicy(row.StackPolicy)
	if err != nil {
		return nil, err
	}
	refresh, err := ParseRefreshPolicy(row.RefreshPolicy)
	if err != nil {
		return nil, err
	}

	nameKey := row.NameKey
	if nameKey == "" {
		nameKey = fmt.Sprintf("%d", row.UID)
	}

	return &affect.Definition{
		UID:           row.UID,
		NameKey:       nameKey,
		IconKey:       row.IconKey,
		GroupID:       row.GroupID,
		BaseDuration:  Seconds(row.BaseDuration),
		TickInterval:  Seconds(row.TickInterval),
		StackPolicy:   stack,
		MaxStacks:     row.MaxStacks,
		RefreshPolicy: refresh,
		DispelType:    dispel,
		Tags:          SplitTags(row.Tags),
		Vfx: affect.VfxParams{
			UID:     row.VfxUID,
			Scale:   row.VfxScale,
			OffsetY: row.VfxOffsetY,
		},
		ApplyChance: row.ApplyChance,
	}, nil
}

// Definition converts the row.
func (row ModifierRow) Definition() (affect.ModifierDefinition, error) {
	var mod affect.ModifierDefinition

	phase, err := ParsePhase(row.Phase)
	if err != nil {
		return mod, err
	}
	kind, err := ParseModifierKind(row.Kind)
	if err != nil {
		return mod, err
	}
	valueType, err := ParseValueType(row.StatValueType)
	if err != nil {
		return mod, err
	}
	op, err := ParseStatOperation(row.StatOperation)
	if err != nil {
		return mod, err
	}

	mod = affect.ModifierDefinition{
		AffectUID:  row.AffectUID,
		ModifierID: row.ModifierID,
		Phase:      phase,
		Kind:       kind,
		Stat: affect.StatParams{
			StatID:    row.StatID,
			Value:     row.StatValue,
			ValueType: valueType,
			Operation: op,
		},
		Damage: affect.DamageParams{
			DamageTypeID:       row.DamageTypeID,
			BaseValue:          row.DamageBaseValue,
			ScalingStatID:      row.ScalingStatID,
			ScalingCoefficient: row.ScalingCoefficient,
			CanCrit:            row.CanCrit,
			IsDot:              row.IsDot,
		},
		State: affect.StateParams{
			StateID:          row.StateID,
			Chance:           row.StateChance,
			DurationOverride: Seconds(row.StateDurationOverride),
		},
		CrowdControl: affect.CrowdControlParams{UID: row.CrowdControlUID},
		ConditionID:  row.ConditionID,
	}
	return mod, nil
}

// Definition converts the row.
func (row CrowdControlRow) Definition() (*affect.CrowdControlDefinition, error) {
	kind, err := ParseCrowdControlKind(row.Kind)
	if err != nil {
		return nil, err
	}
	return &affect.CrowdControlDefinition{
		UID:      row.UID,
		Kind:     kind,
		Duration: Seconds(row.Duration),
	}, nil
}

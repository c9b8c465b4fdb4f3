package affect

import (
	"fmt"
	"strings"
	"time"
)

// noneGroup is the table spelling of "no group".
const noneGroup = "None"

// Definition describes one affect. Built once at bootstrap and shared by
// every instance of the uid; never mutated at runtime.
type Definition struct {
	UID     int
	NameKey string
	IconKey string

	GroupID string

	BaseDuration time.Duration
	TickInterval time.Duration

	StackPolicy   StackPolicy
	MaxStacks     int
	RefreshPolicy RefreshPolicy

	DispelType DispelType
	Tags       []string

	Vfx VfxParams

	ApplyChance float64
}

// VfxParams are the cosmetic playback parameters of an affect.
type VfxParams struct {
	UID     int
	Scale   float64
	OffsetY float64
}

// HasTick reports whether the affect has a periodic phase.
func (d *Definition) HasTick() bool {
	return d.TickInterval > 0
}

// HasGroup reports whether the affect takes part in group exclusivity.
// Empty, blank and "None" (any case) mean no group.
func (d *Definition) HasGroup() bool {
	g := strings.TrimSpace(d.GroupID)
	return g != "" && !strings.EqualFold(g, noneGroup)
}

// HasTag reports case-insensitive tag membership.
func (d *Definition) HasTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, t := range d.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// ModifierDefinition is a single effect bundled under an affect.
// Only the params block matching Kind is meaningful.
type ModifierDefinition struct {
	AffectUID  int
	ModifierID int
	Phase      Phase
	Kind       ModifierKind

	Stat         StatParams
	Damage       DamageParams
	State        StateParams
	CrowdControl CrowdControlParams

	ConditionID string
}

// StatParams is the payload of a KindStat modifier.
type StatParams struct {
	StatID    string
	Value     float64
	ValueType ValueType
	Operation StatOperation
}

// DamageParams is the payload of a KindDamage modifier.
type DamageParams struct {
	DamageTypeID       string
	BaseValue          float64
	ScalingStatID      string
	ScalingCoefficient float64
	CanCrit            bool
	IsDot              bool
}

// StateParams is the payload of a KindState modifier.
type StateParams struct {
	StateID          string
	Chance           float64
	DurationOverride time.Duration
}

// CrowdControlParams is the payload of a KindCrowdControl modifier.
type CrowdControlParams struct {
	UID int
}

func (m ModifierDefinition) String() string {
	return fmt.Sprintf("AffectUid=%d, ModifierId=%d, Phase=%s, Kind=%s", m.AffectUID, m.ModifierID, m.Phase, m.Kind)
}

// CrowdControlDefinition is an externally owned crowd-control row.
// The controller that receives it owns its expiry.
type CrowdControlDefinition struct {
	UID      int
	Kind     CrowdControlKind
	Duration time.Duration
}

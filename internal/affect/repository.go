package affect

// DefinitionRepository looks up affect definitions and their modifiers.
// Implementations must be read-only after bootstrap.
type DefinitionRepository interface {
	Affect(uid int) (*Definition, bool)
	// Modifiers returns the modifiers of uid in source order. The slice is
	// shared and must not be modified.
	Modifiers(uid int) []ModifierDefinition
}

// StatusRepository knows the valid stat, damage-type and state ids and
// resolves resistances.
type StatusRepository interface {
	IsValidStat(statID string) bool
	IsValidDamageType(damageTypeID string) bool
	IsValidState(stateID string) bool
	// ResistancePercent returns the target's resistance in [0,100].
	ResistancePercent(damageTypeID string, target Target) float64
}

// CrowdControlRepository resolves crowd-control rows by uid.
type CrowdControlRepository interface {
	CrowdControl(uid int) (*CrowdControlDefinition, bool)
}

package affect

import "github.com/google/uuid"

// StatToken is the rollback handle of one stat modifier on a target.
// It must be handed back unchanged to StatMutable.RemoveModifier.
type StatToken struct {
	ID     uint64
	StatID string
}

// IsZero reports whether the target declined the mutation.
func (t StatToken) IsZero() bool { return t.ID == 0 }

// StateToken is the rollback handle of one state application.
type StateToken struct {
	ID      uint64
	StateID string
}

// IsZero reports whether the target declined the mutation.
func (t StateToken) IsZero() bool { return t.ID == 0 }

// VfxToken identifies a running cosmetic effect.
type VfxToken struct {
	ID uuid.UUID
}

// IsZero reports whether nothing is playing.
func (t VfxToken) IsZero() bool { return t.ID == uuid.Nil }

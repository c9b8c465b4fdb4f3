package data

import (
	"log/slog"
	"slices"

	"github.com/udisondev/affectd/internal/affect"
)

// DefaultResistPrefix names the stat holding a damage-type resistance:
// RESIST_<damageTypeId>.
const DefaultResistPrefix = "RESIST_"

// AffectRepository is the in-memory affect definition store.
// Mutate only during bootstrap; reads are safe from any goroutine afterwards.
type AffectRepository struct {
	affects   map[int]*affect.Definition
	modifiers map[int][]affect.ModifierDefinition
}

// NewAffectRepository creates an empty repository.
func NewAffectRepository() *AffectRepository {
	return &AffectRepository{
		affects:   make(map[int]*affect.Definition, 64),
		modifiers: make(map[int][]affect.ModifierDefinition, 64),
	}
}

// RegisterAffect stores def. A duplicate uid overwrites the previous one.
func (r *AffectRepository) RegisterAffect(def *affect.Definition) {
	if def == nil || def.UID <= 0 {
		return
	}
	if _, ok := r.affects[def.UID]; ok {
		slog.Warn("duplicate affect uid overwritten", "affectUid", def.UID)
	}
	r.affects[def.UID] = def
}

// AddModifier appends mod to the modifiers of mod.AffectUID.
func (r *AffectRepository) AddModifier(mod affect.ModifierDefinition) {
	if mod.AffectUID <= 0 {
		return
	}
	r.modifiers[mod.AffectUID] = append(r.modifiers[mod.AffectUID], mod)
}

// Affect implements affect.DefinitionRepository.
func (r *AffectRepository) Affect(uid int) (*affect.Definition, bool) {
	def, ok := r.affects[uid]
	return def, ok
}

// Modifiers implements affect.DefinitionRepository.
func (r *AffectRepository) Modifiers(uid int) []affect.ModifierDefinition {
	return r.modifiers[uid]
}

// Len returns the number of registered affects.
func (r *AffectRepository) Len() int { return len(r.affects) }

// UIDs returns the registered affect uids in ascending order.
func (r *AffectRepository) UIDs() []int {
	uids := make([]int, 0, len(r.affects))
	for uid := range r.affects {
		uids = append(uids, uid)
	}
	slices.Sort(uids)
	return uids
}

// ModifierUIDs returns every affect uid that has modifiers, ascending.
func (r *AffectRepository) ModifierUIDs() []int {
	uids := make([]int, 0, len(r.modifiers))
	for uid := range r.modifiers {
		uids = append(uids, uid)
	}
	slices.Sort(uids)
	return uids
}

// Clear drops every definition.
func (r *AffectRepository) Clear() {
	clear(r.affects)
	clear(r.modifiers)
}

// StatusRepository is the in-memory registry of stat, damage-type and state ids.
type StatusRepository struct {
	stats        map[string]string
	damageTypes  map[string]string
	states       map[string]string
	resistPrefix string
}

// NewStatusRepository creates an empty registry. An empty prefix means
// DefaultResistPrefix.
func NewStatusRepository(resistPrefix string) *StatusRepository {
	if resistPrefix == "" {
		resistPrefix = DefaultResistPrefix
	}
	return &StatusRepository{
		stats:        make(map[string]string),
		damageTypes:  make(map[string]string),
		states:       make(map[string]string),
		resistPrefix: resistPrefix,
	}
}

func (r *StatusRepository) RegisterStat(id, name string) {
	if id != "" {
		r.stats[id] = name
	}
}

func (r *StatusRepository) RegisterDamageType(id, name string) {
	if id != "" {
		r.damageTypes[id] = name
	}
}

func (r *StatusRepository) RegisterState(id, name string) {
	if id != "" {
		r.states[id] = name
	}
}

func (r *StatusRepository) IsValidStat(statID string) bool {
	_, ok := r.stats[statID]
	return ok
}

func (r *StatusRepository) IsValidDamageType(damageTypeID string) bool {
	_, ok := r.damageTypes[damageTypeID]
	return ok
}

func (r *StatusRepository) IsValidState(stateID string) bool {
	_, ok := r.states[stateID]
	return ok
}

// ResistancePercent reads the target's resist stat for damageTypeID,
// clamped to [0,100]. Targets without stats resist nothing.
func (r *StatusRepository) ResistancePercent(damageTypeID string, target affect.Target) float64 {
	if target == nil || damageTypeID == "" {
		return 0
	}
	stats := target.Stats()
	if stats == nil {
		return 0
	}
	return min(100, max(0, stats.Value(r.resistPrefix+damageTypeID)))
}

// CrowdControlRepository is the in-memory crowd-control table.
type CrowdControlRepository struct {
	defs map[int]*affect.CrowdControlDefinition
}

func NewCrowdControlRepository() *CrowdControlRepository {
	return &CrowdControlRepository{defs: make(map[int]*affect.CrowdControlDefinition)}
}

// Register stores def. A duplicate uid overwrites the previous one.
func (r *CrowdControlRepository) Register(def *affect.CrowdControlDefinition) {
	if def == nil || def.UID <= 0 {
		return
	}
	r.defs[def.UID] = def
}

// CrowdControl implements affect.CrowdControlRepository.
func (r *CrowdControlRepository) CrowdControl(uid int) (*affect.CrowdControlDefinition, bool) {
	def, ok := r.defs[uid]
	return def, ok
}

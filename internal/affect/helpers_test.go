package affect_test

import (
	"time"

	"github.com/udisondev/affectd/internal/affect"
)

// memRepo is a minimal DefinitionRepository for scheduler tests.
type memRepo struct {
	defs map[int]*affect.Definition
	mods map[int][]affect.ModifierDefinition
}

func newMemRepo() *memRepo {
	return &memRepo{
		defs: make(map[int]*affect.Definition),
		mods: make(map[int][]affect.ModifierDefinition),
	}
}

func (r *memRepo) add(def *affect.Definition, mods ...affect.ModifierDefinition) {
	for i := range mods {
		mods[i].AffectUID = def.UID
	}
	r.defs[def.UID] = def
	r.mods[def.UID] = mods
}

func (r *memRepo) Affect(uid int) (*affect.Definition, bool) {
	d, ok := r.defs[uid]
	return d, ok
}

func (r *memRepo) Modifiers(uid int) []affect.ModifierDefinition { return r.mods[uid] }

// memStatus resolves resistance from a fixed table.
type memStatus struct {
	resist map[string]float64
}

func (memStatus) IsValidStat(string) bool       { return true }
func (memStatus) IsValidDamageType(string) bool { return true }
func (memStatus) IsValidState(string) bool      { return true }

func (s memStatus) ResistancePercent(damageTypeID string, _ affect.Target) float64 {
	return s.resist[damageTypeID]
}

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

type fakeEntity struct{ id uint32 }

func (e *fakeEntity) ObjectID() uint32 { return e.id }

type statMod struct {
	statID string
	value  float64
}

// fakeStats sums flat modifiers and records token traffic.
type fakeStats struct {
	nextID       uint64
	base         map[string]float64
	live         map[uint64]statMod
	applied      int
	removed      int
	unknownFrees int
	recalcs      int
}

func newFakeStats() *fakeStats {
	return &fakeStats{base: make(map[string]float64), live: make(map[uint64]statMod)}
}

func (s *fakeStats) ApplyModifier(statID string, value float64, _ affect.ValueType, _ affect.StatOperation) affect.StatToken {
	s.nextID++
	s.applied++
	s.live[s.nextID] = statMod{statID: statID, value: value}
	return affect.StatToken{ID: s.nextID, StatID: statID}
}

func (s *fakeStats) RemoveModifier(t affect.StatToken) {
	if _, ok := s.live[t.ID]; !ok {
		s.unknownFrees++
		return
	}
	delete(s.live, t.ID)
	s.removed++
}

func (s *fakeStats) Recalculate() { s.recalcs++ }

func (s *fakeStats) Value(statID string) float64 {
	v := s.base[statID]
	for _, m := range s.live {
		if m.statID == statID {
			v += m.value
		}
	}
	return v
}

// fakeStates keeps one entry per token.
type fakeStates struct {
	nextID       uint64
	live         map[uint64]string
	immune       map[string]bool
	applied      int
	removed      int
	unknownFrees int
	durations    []time.Duration
}

func newFakeStates() *fakeStates {
	return &fakeStates{live: make(map[uint64]string), immune: make(map[string]bool)}
}

func (s *fakeStates) HasState(stateID string) bool {
	for _, id := range s.live {
		if id == stateID {
			return true
		}
	}
	return false
}

func (s *fakeStates) ApplyState(stateID string, d time.Duration) affect.StateToken {
	s.nextID++
	s.applied++
	s.live[s.nextID] = stateID
	s.durations = append(s.durations, d)
	return affect.StateToken{ID: s.nextID, StateID: stateID}
}

func (s *fakeStates) RemoveState(t affect.StateToken) {
	if _, ok := s.live[t.ID]; !ok {
		s.unknownFrees++
		return
	}
	delete(s.live, t.ID)
	s.removed++
}

func (s *fakeStates) IsImmune(stateID string) bool { return s.immune[stateID] }

type fakeDamage struct {
	hits  []float64
	heals []float64
}

func (d *fakeDamage) ApplyDamage(_ string, amount float64, _, _ bool, _ affect.Entity) {
	d.hits = append(d.hits, amount)
}

func (d *fakeDamage) ApplyHeal(amount float64, _ affect.Entity) {
	d.heals = append(d.heals, amount)
}

type fakeTarget struct {
	entity *fakeEntity
	alive  bool
	stats  *fakeStats
	states *fakeStates
	damage *fakeDamage
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{
		entity: &fakeEntity{id: 42},
		alive:  true,
		stats:  newFakeStats(),
		states: newFakeStates(),
		damage: &fakeDamage{},
	}
}

func (t *fakeTarget) Entity() affect.Entity { return t.entity }
func (t *fakeTarget) IsAlive() bool         { return t.alive }

func (t *fakeTarget) Stats() affect.StatMutable {
	if t.stats == nil {
		return nil
	}
	return t.stats
}

func (t *fakeTarget) States() affect.StateMutable {
	if t.states == nil {
		return nil
	}
	return t.states
}

func (t *fakeTarget) Damage() affect.DamageReceiver {
	if t.damage == nil {
		return nil
	}
	return t.damage
}

// advance drives c for elapsed time in chunk-sized frames plus a remainder frame.
func advance(c *affect.Component, elapsed, chunk time.Duration) {
	for elapsed >= chunk {
		c.Update(chunk)
		elapsed -= chunk
	}
	if elapsed > 0 {
		c.Update(elapsed)
	}
}

func statMod10(uid int) affect.ModifierDefinition {
	return affect.ModifierDefinition{
		AffectUID: uid,
		Phase:     affect.PhaseOnApply,
		Kind:      affect.KindStat,
		Stat:      affect.StatParams{StatID: "atk", Value: 10},
	}
}

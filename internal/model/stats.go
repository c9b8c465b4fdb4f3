package model

import (
	"sync"

	"github.com/udisondev/affectd/internal/affect"
)

// Well-known stat ids.
const (
	StatMaxHP = "max_hp"
	StatAtk   = "atk"
	StatDef   = "def"
)

// StatSheet хранит базовые значения статов и токенизированные модификаторы.
//
// total = (base + Σflat) * (1 + Σpercent/100). Multiply и Percent
// считаются процентом, Override трактуется как Add.
// Value читает значения последнего Recalculate.
type StatSheet struct {
	mu        sync.RWMutex
	base      map[string]float64
	mods      map[uint64]statModifier
	totals    map[string]float64
	nextToken uint64

	onRecalc func()
}

type statModifier struct {
	statID  string
	value   float64
	percent bool
}

// NewStatSheet создаёт лист статов с базовыми значениями (копируются).
func NewStatSheet(base map[string]float64) *StatSheet {
	s := &StatSheet{
		base:   make(map[string]float64, len(base)),
		mods:   make(map[uint64]statModifier, 8),
		totals: make(map[string]float64, len(base)),
	}
	for id, v := range base {
		s.base[id] = v
	}
	s.rebuild()
	return s
}

// SetBase sets a base value and recalculates.
func (s *StatSheet) SetBase(statID string, value float64) {
	s.mu.Lock()
	s.base[statID] = value
	s.mu.Unlock()
	s.Recalculate()
}

// Base returns the base value of statID.
func (s *StatSheet) Base(statID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.base[statID]
}

// ApplyModifier implements affect.StatMutable. An empty stat id is declined
// with the zero token.
func (s *StatSheet) ApplyModifier(statID string, value float64, valueType affect.ValueType, op affect.StatOperation) affect.StatToken {
	if statID == "" {
		return affect.StatToken{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextToken++
	s.mods[s.nextToken] = statModifier{
		statID:  statID,
		value:   value,
		percent: op == affect.OpMultiply || valueType == affect.ValuePercent,
	}
	return affect.StatToken{ID: s.nextToken, StatID: statID}
}

// RemoveModifier implements affect.StatMutable. Unknown tokens are ignored.
func (s *StatSheet) RemoveModifier(token affect.StatToken) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.mods, token.ID)
}

// Recalculate implements affect.StatMutable.
func (s *StatSheet) Recalculate() {
	s.mu.Lock()
	s.rebuild()
	hook := s.onRecalc
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// Value implements affect.StatMutable.
func (s *StatSheet) Value(statID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totals[statID]
}

// ModifierCount returns the number of live modifiers.
func (s *StatSheet) ModifierCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mods)
}

// rebuild must be called with mu held.
func (s *StatSheet) rebuild() {
	flat := make(map[string]float64, len(s.mods))
	percent := make(map[string]float64, len(s.mods))
	for _, m := range s.mods {
		if m.percent {
			percent[m.statID] += m.value
		} else {
			flat[m.statID] += m.value
		}
	}

	clear(s.totals)
	for id, v := range s.base {
		s.totals[id] = v
	}
	for id, v := range flat {
		s.totals[id] += v
	}
	for id, p := range percent {
		s.totals[id] *= 1 + p/100
	}
}

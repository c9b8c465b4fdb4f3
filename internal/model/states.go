package model

import (
	"slices"
	"sync"
	"time"

	"github.com/udisondev/affectd/internal/affect"
)

// StateSet хранит набор состояний персонажа. Одно состояние может держаться
// несколькими токенами; оно активно, пока жив хотя бы один.
type StateSet struct {
	mu        sync.RWMutex
	entries   map[uint64]stateEntry
	counts    map[string]int
	immune    map[string]struct{}
	nextToken uint64
}

type stateEntry struct {
	stateID  string
	duration time.Duration
}

func NewStateSet() *StateSet {
	return &StateSet{
		entries: make(map[uint64]stateEntry, 4),
		counts:  make(map[string]int, 4),
		immune:  make(map[string]struct{}),
	}
}

// HasState implements affect.StateMutable.
func (s *StateSet) HasState(stateID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[stateID] > 0
}

// ApplyState implements affect.StateMutable. Immune or empty ids are
// declined with the zero token.
func (s *StateSet) ApplyState(stateID string, duration time.Duration) affect.StateToken {
	if stateID == "" {
		return affect.StateToken{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.immune[stateID]; ok {
		return affect.StateToken{}
	}

	s.nextToken++
	s.entries[s.nextToken] = stateEntry{stateID: stateID, duration: duration}
	s.counts[stateID]++
	return affect.StateToken{ID: s.nextToken, StateID: stateID}
}

// RemoveState implements affect.StateMutable. Unknown tokens are ignored.
func (s *StateSet) RemoveState(token affect.StateToken) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token.ID]
	if !ok {
		return
	}
	delete(s.entries, token.ID)
	if s.counts[e.stateID]--; s.counts[e.stateID] <= 0 {
		delete(s.counts, e.stateID)
	}
}

// IsImmune implements affect.StateMutable.
func (s *StateSet) IsImmune(stateID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.immune[stateID]
	return ok
}

// SetImmune toggles immunity. Already applied states are kept.
func (s *StateSet) SetImmune(stateID string, immune bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if immune {
		s.immune[stateID] = struct{}{}
	} else {
		delete(s.immune, stateID)
	}
}

// Active returns the active state ids, sorted.
func (s *StateSet) Active() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.counts))
	for id := range s.counts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

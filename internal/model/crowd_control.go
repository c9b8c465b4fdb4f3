package model

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/udisondev/affectd/internal/affect"
)

// CrowdControl держит активные CC-эффекты (Stun, Root, Silence, Sleep, Fear)
// и сам отсчитывает их время в Update. Affect только запускает эффект.
type CrowdControl struct {
	ownerID uint32

	mu        sync.Mutex
	remaining map[affect.CrowdControlKind]time.Duration
}

// NewCrowdControl creates a controller for the object ownerID.
func NewCrowdControl(ownerID uint32) *CrowdControl {
	return &CrowdControl{
		ownerID:   ownerID,
		remaining: make(map[affect.CrowdControlKind]time.Duration, 2),
	}
}

// ApplyCrowdControl implements affect.CrowdControlController.
// A reapplication keeps the longer of the two remaining times.
func (cc *CrowdControl) ApplyCrowdControl(def *affect.CrowdControlDefinition, instigator affect.Entity) {
	if def == nil || def.Kind == affect.ControlNone || def.Duration <= 0 {
		return
	}

	cc.mu.Lock()
	cc.remaining[def.Kind] = max(cc.remaining[def.Kind], def.Duration)
	cc.mu.Unlock()

	var instigatorID uint32
	if instigator != nil {
		instigatorID = instigator.ObjectID()
	}
	slog.Debug("crowd control applied",
		"target", cc.ownerID,
		"kind", def.Kind,
		"duration", def.Duration,
		"instigator", instigatorID)
}

// Update counts every active effect down by dt and drops the expired ones.
func (cc *CrowdControl) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()

	for kind, left := range cc.remaining {
		left -= dt
		if left <= 0 {
			delete(cc.remaining, kind)
			slog.Debug("crowd control expired", "target", cc.ownerID, "kind", kind)
			continue
		}
		cc.remaining[kind] = left
	}
}

// Has reports whether kind is active.
func (cc *CrowdControl) Has(kind affect.CrowdControlKind) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	_, ok := cc.remaining[kind]
	return ok
}

// Remaining returns the time left on kind, zero when inactive.
func (cc *CrowdControl) Remaining(kind affect.CrowdControlKind) time.Duration {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.remaining[kind]
}

// Active returns the active kinds in enum order.
func (cc *CrowdControl) Active() []affect.CrowdControlKind {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	kinds := make([]affect.CrowdControlKind, 0, len(cc.remaining))
	for k := range cc.remaining {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// IsImmobilized проверяет, может ли персонаж двигаться (Stun, Root, Sleep).
func (cc *CrowdControl) IsImmobilized() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	for _, k := range []affect.CrowdControlKind{affect.ControlStun, affect.ControlRoot, affect.ControlSleep} {
		if _, ok := cc.remaining[k]; ok {
			return true
		}
	}
	return false
}

// CanCast reports whether no Stun, Silence or Sleep is active.
func (cc *CrowdControl) CanCast() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	for _, k := range []affect.CrowdControlKind{affect.ControlStun, affect.ControlSilence, affect.ControlSleep} {
		if _, ok := cc.remaining[k]; ok {
			return false
		}
	}
	return true
}

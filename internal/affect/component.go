package affect

import (
	"log/slog"
	"slices"
	"strings"
	"time"
)

// Component schedules the affects of one entity.
//
// It is Idle while it holds no instances and Active otherwise; the host only
// needs to call Update on active components. A Component is not safe for
// concurrent use: Apply, Remove, Dispel, RemoveAll and Update must all run on
// the goroutine that owns the entity.
type Component struct {
	target Target
	vfx    VfxService
	env    execEnv

	byRuntimeID     map[int]*Instance
	order           []int // live runtime ids, ascending
	runtimeIDsByUID map[int][]int
	groupIndex      map[string]int
	nextRuntimeID   int

	active  bool
	dirty   bool
	changed chan struct{}
	pending []int
}

// Active reports whether the component wants per-frame updates.
func (c *Component) Active() bool { return c.active }

// Len returns the number of live instances.
func (c *Component) Len() int { return len(c.order) }

// Changed delivers a signal after the set of instances, their stacks or their
// refreshed durations change. One pending signal at most; readers re-snapshot.
func (c *Component) Changed() <-chan struct{} { return c.changed }

// HasAffect reports whether at least one instance of uid is live.
func (c *Component) HasAffect(uid int) bool {
	return len(c.runtimeIDsByUID[uid]) > 0
}

// Apply applies affect uid. A nil ctx means DefaultApplyContext.
// Unknown uids and unbound collaborators are logged and ignored.
func (c *Component) Apply(uid int, ctx *ApplyContext) {
	applyCtx := DefaultApplyContext()
	if ctx != nil {
		applyCtx = *ctx
	}

	if c.target == nil || c.env.affects == nil {
		slog.Error("affect component not bound", "affectUid", uid)
		return
	}
	def, ok := c.env.affects.Affect(uid)
	if !ok || def == nil {
		slog.Error("affect definition not found", "affectUid", uid, "target", c.objectID())
		return
	}

	// at most one instance per group, across uids
	if def.HasGroup() {
		if existing, ok := c.groupIndex[groupKey(def)]; ok {
			c.removeByRuntimeID(existing)
		}
	}

	if def.StackPolicy != StackIndependent {
		if existing, ok := c.firstRuntimeID(uid); ok {
			c.reapply(def, existing, applyCtx)
			c.flushChanged()
			return
		}
	}

	runtimeID := c.nextRuntimeID
	c.nextRuntimeID++

	inst := NewInstance(runtimeID, def, applyCtx, applyCtx.duration(def))
	c.byRuntimeID[runtimeID] = inst
	c.order = append(c.order, runtimeID)
	c.runtimeIDsByUID[uid] = append(c.runtimeIDsByUID[uid], runtimeID)
	if def.HasGroup() {
		c.groupIndex[groupKey(def)] = runtimeID
	}

	c.executePhase(PhaseOnApply, inst)

	slog.Debug("affect applied",
		"affectUid", uid,
		"runtimeId", runtimeID,
		"duration", inst.remaining,
		"target", c.objectID())

	c.markChanged()
	c.flushChanged()
	c.active = true
}

// Remove removes the oldest live instance of uid.
func (c *Component) Remove(uid int) {
	runtimeID, ok := c.firstRuntimeID(uid)
	if !ok {
		return
	}
	c.removeByRuntimeID(runtimeID)
	c.active = len(c.order) > 0
	c.flushChanged()
}

// Dispel removes instances matching q, oldest first, up to q.MaxRemoveCount.
// Returns how many were removed.
func (c *Component) Dispel(q DispelQuery) int {
	limit := q.limit()

	c.pending = c.pending[:0]
	for _, id := range c.order {
		if len(c.pending) >= limit {
			break
		}
		if q.Match(c.byRuntimeID[id].def) {
			c.pending = append(c.pending, id)
		}
	}

	removed := len(c.pending)
	for _, id := range c.pending {
		c.removeByRuntimeID(id)
	}

	if removed > 0 {
		slog.Debug("affects dispelled", "count", removed, "target", c.objectID())
	}

	c.active = len(c.order) > 0
	c.flushChanged()
	return removed
}

// RemoveAll removes every instance.
func (c *Component) RemoveAll() {
	c.pending = append(c.pending[:0], c.order...)
	for _, id := range c.pending {
		c.removeByRuntimeID(id)
	}
	c.active = false
	c.flushChanged()
}

// Update advances every instance by dt, fires due ticks and removes expired
// instances in a second pass.
func (c *Component) Update(dt time.Duration) {
	if len(c.order) == 0 || c.target == nil || !c.target.IsAlive() {
		c.active = false
		return
	}
	if dt <= 0 {
		return
	}

	c.pending = c.pending[:0]
	for _, id := range c.order {
		inst := c.byRuntimeID[id]

		lived := inst.UpdateTime(dt)

		if inst.def.HasTick() {
			inst.AccumulateTick(lived)
			for inst.TryConsumeTick(inst.def.TickInterval) {
				c.executePhase(PhaseOnTick, inst)
			}
		}

		if inst.IsExpired() {
			c.pending = append(c.pending, id)
		}
	}

	for _, id := range c.pending {
		c.removeByRuntimeID(id)
	}

	c.flushChanged()
	c.active = len(c.order) > 0
}

func (c *Component) reapply(def *Definition, runtimeID int, ctx ApplyContext) {
	inst, ok := c.byRuntimeID[runtimeID]
	if !ok {
		return
	}

	duration := ctx.duration(def)

	switch def.StackPolicy {
	case StackNone:
		return

	case StackAdd:
		inst.AddStack(def.MaxStacks)
		if def.RefreshPolicy != RefreshNone {
			inst.Refresh(duration)
		}

	case StackRefresh:
		inst.Refresh(duration)
		if def.RefreshPolicy == RefreshValueAndDuration {
			// recompute stat/state effects with the new context
			c.cleanupTokens(inst)
			c.stopVfx(inst)
			inst.setContext(ctx)
			inst.AccumulateTick(-inst.tickElapsed)
			c.executePhase(PhaseOnApply, inst)
		}

	default:
		inst.Refresh(duration)
	}

	slog.Debug("affect reapplied",
		"affectUid", def.UID,
		"policy", def.StackPolicy,
		"stacks", inst.stacks,
		"remaining", inst.remaining,
		"target", c.objectID())

	c.markChanged()
}

func (c *Component) executePhase(phase Phase, inst *Instance) {
	mods := c.env.affects.Modifiers(inst.def.UID)
	for i := range mods {
		mod := &mods[i]
		if mod.Phase != phase {
			continue
		}
		ex := executorFor(mod.Kind)
		if ex == nil {
			slog.Debug("modifier kind not executed", "modifier", mod.String())
			continue
		}
		run(ex, phase, &c.env, inst, mod)
	}

	if phase == PhaseOnApply && inst.def.Vfx.UID > 0 {
		v := inst.def.Vfx
		inst.vfxToken = c.vfx.Play(v.UID, c.target, v.Scale, v.OffsetY, inst.total)
	}
}

// removeByRuntimeID is the only removal path: OnExpire, token rollback,
// then the record leaves every index.
func (c *Component) removeByRuntimeID(runtimeID int) {
	inst, ok := c.byRuntimeID[runtimeID]
	if !ok {
		return
	}

	c.executePhase(PhaseOnExpire, inst)
	c.cleanupTokens(inst)
	c.stopVfx(inst)

	delete(c.byRuntimeID, runtimeID)
	if i, found := slices.BinarySearch(c.order, runtimeID); found {
		c.order = slices.Delete(c.order, i, i+1)
	}
	c.removeIndex(inst.def.UID, runtimeID)

	if inst.def.HasGroup() {
		key := groupKey(inst.def)
		if mapped, ok := c.groupIndex[key]; ok && mapped == runtimeID {
			delete(c.groupIndex, key)
		}
	}

	slog.Debug("affect removed",
		"affectUid", inst.def.UID,
		"runtimeId", runtimeID,
		"target", c.objectID())

	c.markChanged()
}

func (c *Component) cleanupTokens(inst *Instance) {
	statTokens, stateTokens := inst.takeTokens()

	if stats := c.target.Stats(); stats != nil && len(statTokens) > 0 {
		for _, t := range statTokens {
			stats.RemoveModifier(t)
		}
		stats.Recalculate()
	}

	if states := c.target.States(); states != nil {
		for _, t := range stateTokens {
			states.RemoveState(t)
		}
	}
}

func (c *Component) stopVfx(inst *Instance) {
	if inst.vfxToken.IsZero() {
		return
	}
	c.vfx.Stop(inst.vfxToken)
	inst.vfxToken = VfxToken{}
}

func (c *Component) removeIndex(uid, runtimeID int) {
	ids := c.runtimeIDsByUID[uid]
	if i := slices.Index(ids, runtimeID); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	}
	if len(ids) == 0 {
		delete(c.runtimeIDsByUID, uid)
		return
	}
	c.runtimeIDsByUID[uid] = ids
}

func (c *Component) firstRuntimeID(uid int) (int, bool) {
	ids := c.runtimeIDsByUID[uid]
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

func (c *Component) objectID() uint32 {
	if c.target == nil {
		return 0
	}
	if e := c.target.Entity(); e != nil {
		return e.ObjectID()
	}
	return 0
}

func (c *Component) markChanged() { c.dirty = true }

func (c *Component) flushChanged() {
	if !c.dirty {
		return
	}
	c.dirty = false
	select {
	case c.changed <- struct{}{}:
	default:
	}
}

func groupKey(def *Definition) string {
	return strings.TrimSpace(def.GroupID)
}

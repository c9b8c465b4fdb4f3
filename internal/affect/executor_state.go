package affect

import "log/slog"

// stateExecutor applies a state on apply and again on every tick, so
// states that need refreshing stay up while the affect persists.
type stateExecutor struct{}

func (stateExecutor) OnApply(env *execEnv, inst *Instance, mod *ModifierDefinition) {
	tryApplyState(env, inst, mod)
}

func (stateExecutor) OnTick(env *execEnv, inst *Instance, mod *ModifierDefinition) {
	tryApplyState(env, inst, mod)
}

func (stateExecutor) OnExpire(*execEnv, *Instance, *ModifierDefinition) {}

func tryApplyState(env *execEnv, inst *Instance, mod *ModifierDefinition) {
	states := env.target.States()
	if states == nil || mod.State.StateID == "" {
		return
	}
	if states.IsImmune(mod.State.StateID) {
		slog.Debug("state blocked by immunity", "affectUid", inst.def.UID, "state", mod.State.StateID)
		return
	}

	// chance <= 0 is guaranteed
	chance := mod.State.Chance
	if chance <= 0 || chance > 1 {
		chance = 1
	}
	if chance < 1 && (env.rand == nil || env.rand.Float64() >= chance) {
		return
	}

	duration := inst.def.BaseDuration
	if mod.State.DurationOverride > 0 {
		duration = mod.State.DurationOverride
	}

	inst.AddStateToken(states.ApplyState(mod.State.StateID, duration))
}

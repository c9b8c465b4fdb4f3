package affect

import "log/slog"

// statExecutor applies a stat modifier once on apply. Removal happens
// through token rollback, not through OnExpire.
type statExecutor struct{}

func (statExecutor) OnApply(env *execEnv, inst *Instance, mod *ModifierDefinition) {
	stats := env.target.Stats()
	if stats == nil || mod.Stat.StatID == "" {
		return
	}

	value := mod.Stat.Value * inst.ctx.Multiplier()
	token := stats.ApplyModifier(mod.Stat.StatID, value, mod.Stat.ValueType, mod.Stat.Operation)
	inst.AddStatToken(token)
	stats.Recalculate()

	slog.Debug("stat modifier applied",
		"affectUid", inst.def.UID,
		"stat", mod.Stat.StatID,
		"value", value,
		"op", mod.Stat.Operation)
}

func (statExecutor) OnTick(*execEnv, *Instance, *ModifierDefinition)   {}
func (statExecutor) OnExpire(*execEnv, *Instance, *ModifierDefinition) {}

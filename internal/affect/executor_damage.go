package affect

import "log/slog"

// damageExecutor deals damage strictly on the tick cadence.
type damageExecutor struct{}

func (damageExecutor) OnApply(*execEnv, *Instance, *ModifierDefinition) {}

func (damageExecutor) OnTick(env *execEnv, inst *Instance, mod *ModifierDefinition) {
	receiver := env.target.Damage()
	if receiver == nil || mod.Damage.DamageTypeID == "" {
		return
	}

	value := damageAmount(env, inst, mod)
	if value <= 0 {
		return
	}

	receiver.ApplyDamage(mod.Damage.DamageTypeID, value, mod.Damage.CanCrit, mod.Damage.IsDot, inst.ctx.Source)

	slog.Debug("affect damage tick",
		"affectUid", inst.def.UID,
		"damageType", mod.Damage.DamageTypeID,
		"damage", value,
		"stacks", inst.stacks)
}

func (damageExecutor) OnExpire(*execEnv, *Instance, *ModifierDefinition) {}

// damageAmount computes
//
//	(base * multiplier * max(1, stacks) + scalingStat * coefficient) * (1 - resist/100)
//
// with resist clamped to [0,100].
func damageAmount(env *execEnv, inst *Instance, mod *ModifierDefinition) float64 {
	value := mod.Damage.BaseValue * inst.ctx.Multiplier() * float64(max(1, inst.stacks))

	if mod.Damage.ScalingStatID != "" {
		if stats := env.target.Stats(); stats != nil {
			value += stats.Value(mod.Damage.ScalingStatID) * mod.Damage.ScalingCoefficient
		}
	}

	var resist float64
	if env.status != nil {
		resist = env.status.ResistancePercent(mod.Damage.DamageTypeID, env.target)
	}
	resist = min(100, max(0, resist))

	return value * (1 - resist/100)
}

package affect

import "log/slog"

// crowdControlExecutor hands a crowd-control row to the entity's controller
// on apply. The controller owns expiry, so tick and expire do nothing.
type crowdControlExecutor struct{}

func (crowdControlExecutor) OnApply(env *execEnv, inst *Instance, mod *ModifierDefinition) {
	if mod.CrowdControl.UID <= 0 || env.crowdControl == nil {
		return
	}

	def, ok := env.crowdControl.CrowdControl(mod.CrowdControl.UID)
	if !ok || def == nil {
		slog.Warn("crowd control definition not found",
			"affectUid", inst.def.UID,
			"crowdControlUid", mod.CrowdControl.UID)
		return
	}

	entity := env.target.Entity()
	if entity == nil {
		return
	}
	host, ok := entity.(CrowdControlHost)
	if !ok {
		return
	}
	controller := host.CrowdControl()
	if controller == nil {
		return
	}

	controller.ApplyCrowdControl(def, inst.ctx.Source)
}

func (crowdControlExecutor) OnTick(*execEnv, *Instance, *ModifierDefinition)   {}
func (crowdControlExecutor) OnExpire(*execEnv, *Instance, *ModifierDefinition) {}

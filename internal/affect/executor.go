package affect

// Rand is the random source used for chance rolls. Float64 returns [0,1).
type Rand interface {
	Float64() float64
}

// execEnv is what an executor may touch while running one modifier.
type execEnv struct {
	target       Target
	affects      DefinitionRepository
	status       StatusRepository
	crowdControl CrowdControlRepository
	rand         Rand
}

// executor runs one modifier kind. Executors are stateless; anything that
// must be undone is recorded as a token on the instance.
type executor interface {
	OnApply(env *execEnv, inst *Instance, mod *ModifierDefinition)
	OnTick(env *execEnv, inst *Instance, mod *ModifierDefinition)
	OnExpire(env *execEnv, inst *Instance, mod *ModifierDefinition)
}

var (
	statExec         executor = statExecutor{}
	damageExec       executor = damageExecutor{}
	stateExec        executor = stateExecutor{}
	crowdControlExec executor = crowdControlExecutor{}
)

// executorFor returns nil for kinds the core does not execute (Custom).
func executorFor(kind ModifierKind) executor {
	switch kind {
	case KindStat:
		return statExec
	case KindDamage:
		return damageExec
	case KindState:
		return stateExec
	case KindCrowdControl:
		return crowdControlExec
	default:
		return nil
	}
}

// run dispatches phase to ex.
func run(ex executor, phase Phase, env *execEnv, inst *Instance, mod *ModifierDefinition) {
	switch phase {
	case PhaseOnApply:
		ex.OnApply(env, inst, mod)
	case PhaseOnTick:
		ex.OnTick(env, inst, mod)
	case PhaseOnExpire:
		ex.OnExpire(env, inst, mod)
	}
}

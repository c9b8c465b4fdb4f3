package affect

import "math/rand/v2"

// Runtime binds the shared collaborators every component uses. It is
// assembled once at bootstrap and must not change afterwards; components
// on different goroutines read it concurrently.
type Runtime struct {
	Affects      DefinitionRepository
	Status       StatusRepository
	CrowdControl CrowdControlRepository
	Vfx          VfxService // nil means NullVfx
	Rand         Rand       // nil means math/rand/v2
}

// NewComponent creates the affect scheduler for one entity.
func (rt *Runtime) NewComponent(target Target) *Component {
	vfx := rt.Vfx
	if vfx == nil {
		vfx = NullVfx{}
	}
	rnd := rt.Rand
	if rnd == nil {
		rnd = globalRand{}
	}

	return &Component{
		target: target,
		vfx:    vfx,
		env: execEnv{
			target:       target,
			affects:      rt.Affects,
			status:       rt.Status,
			crowdControl: rt.CrowdControl,
			rand:         rnd,
		},
		byRuntimeID:     make(map[int]*Instance, 8),
		runtimeIDsByUID: make(map[int][]int, 8),
		groupIndex:      make(map[string]int, 4),
		nextRuntimeID:   1,
		changed:         make(chan struct{}, 1),
	}
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

package affect

import "time"

// ApplyContext carries the caller side of an application: who applied it
// and how it should be scaled.
type ApplyContext struct {
	Source           Entity
	SkillLevel       int
	DurationOverride time.Duration
	ValueMultiplier  float64
}

// DefaultApplyContext returns a context with a neutral multiplier.
func DefaultApplyContext() ApplyContext {
	return ApplyContext{ValueMultiplier: 1}
}

// Multiplier returns ValueMultiplier, reading the unset zero value as 1.
func (c ApplyContext) Multiplier() float64 {
	if c.ValueMultiplier == 0 {
		return 1
	}
	return c.ValueMultiplier
}

// duration resolves the lifetime of an application of def.
func (c ApplyContext) duration(def *Definition) time.Duration {
	if c.DurationOverride > 0 {
		return c.DurationOverride
	}
	return max(0, def.BaseDuration)
}

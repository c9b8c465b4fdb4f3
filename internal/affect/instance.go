package affect

import "time"

// Instance is one live application of an affect on one entity.
// It only does time and stack bookkeeping; the Component drives it.
type Instance struct {
	runtimeID int
	def       *Definition
	ctx       ApplyContext

	stacks      int
	remaining   time.Duration
	total       time.Duration
	tickElapsed time.Duration

	statTokens  []StatToken
	stateTokens []StateToken
	vfxToken    VfxToken
}

// NewInstance creates an instance with the given lifetime (negative is clamped to 0).
func NewInstance(runtimeID int, def *Definition, ctx ApplyContext, duration time.Duration) *Instance {
	duration = max(0, duration)
	return &Instance{
		runtimeID: runtimeID,
		def:       def,
		ctx:       ctx,
		stacks:    1,
		remaining: duration,
		total:     duration,
	}
}

func (i *Instance) RuntimeID() int               { return i.runtimeID }
func (i *Instance) Definition() *Definition      { return i.def }
func (i *Instance) Context() ApplyContext        { return i.ctx }
func (i *Instance) Stacks() int                  { return i.stacks }
func (i *Instance) RemainingTime() time.Duration { return i.remaining }
func (i *Instance) TickElapsed() time.Duration   { return i.tickElapsed }

// TotalDuration is the lifetime set at creation; Refresh does not change it.
func (i *Instance) TotalDuration() time.Duration { return i.total }

// IsExpired reports whether no lifetime is left.
func (i *Instance) IsExpired() bool { return i.remaining <= 0 }

// AddStack adds one stack capped at maxStacks (maxStacks <= 0 means 1).
func (i *Instance) AddStack(maxStacks int) {
	if maxStacks <= 0 {
		maxStacks = 1
	}
	i.stacks = min(maxStacks, i.stacks+1)
}

// Refresh resets the remaining time. Stacks and total duration are kept.
func (i *Instance) Refresh(duration time.Duration) {
	i.remaining = max(0, duration)
}

// UpdateTime consumes up to dt of remaining time and returns how much was
// actually consumed, which is what the tick accumulator may advance by.
func (i *Instance) UpdateTime(dt time.Duration) time.Duration {
	if i.remaining <= 0 || dt <= 0 {
		return 0
	}
	step := min(dt, i.remaining)
	i.remaining -= step
	return step
}

// AccumulateTick adds dt to the tick accumulator. Negative dt is allowed
// (tick reset) but the accumulator never goes below zero.
func (i *Instance) AccumulateTick(dt time.Duration) {
	i.tickElapsed += dt
	if i.tickElapsed < 0 {
		i.tickElapsed = 0
	}
}

// TryConsumeTick drains one interval from the accumulator if available.
func (i *Instance) TryConsumeTick(interval time.Duration) bool {
	if interval <= 0 || i.tickElapsed < interval {
		return false
	}
	i.tickElapsed -= interval
	return true
}

// AddStatToken records a rollback handle. Zero tokens are dropped.
func (i *Instance) AddStatToken(t StatToken) {
	if !t.IsZero() {
		i.statTokens = append(i.statTokens, t)
	}
}

// AddStateToken records a rollback handle. Zero tokens are dropped.
func (i *Instance) AddStateToken(t StateToken) {
	if !t.IsZero() {
		i.stateTokens = append(i.stateTokens, t)
	}
}

// StatTokens returns the live stat tokens. The slice must not be modified.
func (i *Instance) StatTokens() []StatToken { return i.statTokens }

// StateTokens returns the live state tokens. The slice must not be modified.
func (i *Instance) StateTokens() []StateToken { return i.stateTokens }

// takeTokens hands over every token and clears the lists, so each token is
// released exactly once.
func (i *Instance) takeTokens() ([]StatToken, []StateToken) {
	stats, states := i.statTokens, i.stateTokens
	i.statTokens, i.stateTokens = nil, nil
	return stats, states
}

func (i *Instance) setContext(ctx ApplyContext) { i.ctx = ctx }

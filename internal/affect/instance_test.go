package affect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestInstance(duration time.Duration) *Instance {
	def := &Definition{UID: 1, BaseDuration: duration}
	return NewInstance(1, def, DefaultApplyContext(), duration)
}

func TestNewInstance_ClampsNegativeDuration(t *testing.T) {
	inst := newTestInstance(-time.Second)

	assert.Equal(t, time.Duration(0), inst.RemainingTime())
	assert.True(t, inst.IsExpired())
	assert.Equal(t, 1, inst.Stacks())
}

func TestInstance_AddStack(t *testing.T) {
	tests := []struct {
		name      string
		maxStacks int
		adds      int
		want      int
	}{
		{name: "below cap", maxStacks: 5, adds: 2, want: 3},
		{name: "capped", maxStacks: 3, adds: 10, want: 3},
		{name: "zero max means no stacking", maxStacks: 0, adds: 4, want: 1},
		{name: "negative max means no stacking", maxStacks: -2, adds: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := newTestInstance(time.Second)
			for range tt.adds {
				inst.AddStack(tt.maxStacks)
			}
			assert.Equal(t, tt.want, inst.Stacks())
		})
	}
}

func TestInstance_UpdateTime(t *testing.T) {
	inst := newTestInstance(time.Second)

	assert.Equal(t, 400*time.Millisecond, inst.UpdateTime(400*time.Millisecond))
	assert.Equal(t, 600*time.Millisecond, inst.RemainingTime())
	assert.False(t, inst.IsExpired())

	// overshoot only consumes what was left
	assert.Equal(t, 600*time.Millisecond, inst.UpdateTime(time.Second))
	assert.Equal(t, time.Duration(0), inst.RemainingTime())
	assert.True(t, inst.IsExpired())

	assert.Equal(t, time.Duration(0), inst.UpdateTime(time.Second))
}

func TestInstance_RefreshKeepsTotal(t *testing.T) {
	inst := newTestInstance(2 * time.Second)
	inst.UpdateTime(1500 * time.Millisecond)
	inst.AddStack(5)

	inst.Refresh(3 * time.Second)

	assert.Equal(t, 3*time.Second, inst.RemainingTime())
	assert.Equal(t, 2*time.Second, inst.TotalDuration())
	assert.Equal(t, 2, inst.Stacks())
}

func TestInstance_TickAccumulator(t *testing.T) {
	inst := newTestInstance(10 * time.Second)
	interval := 300 * time.Millisecond

	inst.AccumulateTick(950 * time.Millisecond)

	ticks := 0
	for inst.TryConsumeTick(interval) {
		ticks++
	}
	assert.Equal(t, 3, ticks)
	assert.Equal(t, 50*time.Millisecond, inst.TickElapsed())

	// negative dt resets but never goes below zero
	inst.AccumulateTick(-time.Second)
	assert.Equal(t, time.Duration(0), inst.TickElapsed())

	assert.False(t, inst.TryConsumeTick(0), "non-positive interval never ticks")
}

func TestInstance_TokensDropZeroAndReleaseOnce(t *testing.T) {
	inst := newTestInstance(time.Second)

	inst.AddStatToken(StatToken{})
	inst.AddStatToken(StatToken{ID: 7, StatID: "atk"})
	inst.AddStateToken(StateToken{})
	inst.AddStateToken(StateToken{ID: 9, StateID: "stun"})

	assert.Len(t, inst.StatTokens(), 1)
	assert.Len(t, inst.StateTokens(), 1)

	stats, states := inst.takeTokens()
	assert.Equal(t, []StatToken{{ID: 7, StatID: "atk"}}, stats)
	assert.Equal(t, []StateToken{{ID: 9, StateID: "stun"}}, states)

	stats, states = inst.takeTokens()
	assert.Empty(t, stats)
	assert.Empty(t, states)
}

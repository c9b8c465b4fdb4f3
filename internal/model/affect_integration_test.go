package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/affectd/internal/affect"
	"github.com/udisondev/affectd/internal/model"
	"github.com/udisondev/affectd/internal/testutil"
)

func sampleRuntime(t *testing.T) *affect.Runtime {
	t.Helper()

	return testutil.SampleRepositories(t).Runtime(nil)
}

func sampleCharacter() *model.Character {
	return model.NewCharacter(10, "Target", model.NewLocation(0, 0, 0), map[string]float64{
		model.StatMaxHP: 200,
		model.StatAtk:   50,
		"RESIST_poison": 20,
	})
}

func TestCharacterAffects_StatGroup(t *testing.T) {
	char := sampleCharacter()
	comp := sampleRuntime(t).NewComponent(char)

	comp.Apply(testutil.AffectMight, nil)
	assert.InDelta(t, 60, char.StatSheet().Value(model.StatAtk), 1e-9)

	comp.Apply(testutil.AffectGreaterMight, nil)
	assert.False(t, comp.HasAffect(testutil.AffectMight), "same group replaces")
	assert.InDelta(t, 62.5, char.StatSheet().Value(model.StatAtk), 1e-9)

	comp.RemoveAll()
	assert.InDelta(t, 50, char.StatSheet().Value(model.StatAtk), 1e-9)
	assert.Zero(t, char.StatSheet().ModifierCount())
}

func TestCharacterAffects_PoisonUsesResistance(t *testing.T) {
	char := sampleCharacter()
	comp := sampleRuntime(t).NewComponent(char)

	comp.Apply(testutil.AffectPoison, nil)
	comp.Apply(testutil.AffectPoison, nil)
	require.Equal(t, 1, comp.Len())

	// 5 base * 2 stacks * (1 - 20/100) = 8 per tick
	for range 30 {
		comp.Update(100 * time.Millisecond)
	}
	assert.Equal(t, int32(200-3*8), char.CurrentHP())
}

func TestCharacterAffects_StunAppliesStateAndControl(t *testing.T) {
	char := sampleCharacter()
	comp := sampleRuntime(t).NewComponent(char)

	comp.Apply(testutil.AffectStun, nil)
	assert.True(t, char.StateSet().HasState("stun"))
	require.NotNil(t, char.Controls())
	assert.True(t, char.Controls().IsImmobilized())

	comp.Update(2 * time.Second)
	char.Update(2 * time.Second)

	assert.False(t, comp.Active())
	assert.False(t, char.StateSet().HasState("stun"))
	assert.True(t, char.Controls().CanCast())
}

func TestCharacterAffects_DeadTargetIdles(t *testing.T) {
	char := sampleCharacter()
	comp := sampleRuntime(t).NewComponent(char)

	comp.Apply(testutil.AffectBurn, nil)
	char.ApplyDamage("physical", 1000, false, false, nil)
	require.False(t, char.IsAlive())

	comp.Update(time.Second)
	assert.False(t, comp.Active())
	assert.Equal(t, 1, comp.Len(), "instances stay until removed")
}

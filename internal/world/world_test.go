package world

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/affectd/internal/affect"
	"github.com/udisondev/affectd/internal/model"
	"github.com/udisondev/affectd/internal/testutil"
)

const (
	uidMight  = testutil.AffectMight
	uidPoison = testutil.AffectPoison
	uidStun   = testutil.AffectStun
	uidBurn   = testutil.AffectBurn
)

func newTestWorld(t *testing.T, opts Options) *World {
	t.Helper()

	return New(testutil.SampleRepositories(t).Runtime(nil), opts)
}

func baseStats() map[string]float64 {
	return map[string]float64{model.StatMaxHP: 100, model.StatAtk: 50}
}

func TestWorld_Spawn(t *testing.T) {
	w := newTestWorld(t, Options{})

	a := w.SpawnCharacter("Alice", model.NewLocation(1, 2, 3), baseStats())
	n := w.SpawnNpc("Wolf", model.Location{}, nil)

	assert.Equal(t, characterIDBase+1, a.ObjectID())
	assert.True(t, IsNpcID(n.ObjectID()))
	assert.False(t, IsNpcID(a.ObjectID()))
	assert.Equal(t, 2, w.Count())
	assert.Equal(t, []uint32{a.ObjectID(), n.ObjectID()}, w.ObjectIDs())

	got, err := w.Actor(a.ObjectID())
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = w.Actor(42)
	assert.ErrorIs(t, err, ErrActorNotFound)
}

func TestWorld_CommandsRunOnTick(t *testing.T) {
	w := newTestWorld(t, Options{})
	a := w.SpawnCharacter("Alice", model.Location{}, baseStats())

	require.NoError(t, w.Apply(a.ObjectID(), uidMight, nil))
	assert.False(t, a.Affects.HasAffect(uidMight), "queued until the next tick")

	w.Tick(0)
	assert.True(t, a.Affects.HasAffect(uidMight))
	assert.InDelta(t, 60, a.Character.StatSheet().Value(model.StatAtk), 1e-9)

	require.NoError(t, w.Remove(a.ObjectID(), uidMight))
	w.Tick(0)
	assert.False(t, a.Affects.HasAffect(uidMight))
	assert.InDelta(t, 50, a.Character.StatSheet().Value(model.StatAtk), 1e-9)
	assert.Equal(t, uint64(2), w.Ticks())
}

func TestWorld_UnknownActor(t *testing.T) {
	w := newTestWorld(t, Options{})

	assert.ErrorIs(t, w.Apply(7, uidMight, nil), ErrActorNotFound)
	assert.ErrorIs(t, w.Remove(7, uidMight), ErrActorNotFound)
	assert.ErrorIs(t, w.Dispel(7, affect.DispelQuery{}, nil), ErrActorNotFound)
	assert.ErrorIs(t, w.Despawn(7), ErrActorNotFound)
}

func TestWorld_ApplyCopiesContext(t *testing.T) {
	w := newTestWorld(t, Options{})
	a := w.SpawnCharacter("Alice", model.Location{}, baseStats())

	ctx := affect.ApplyContext{ValueMultiplier: 2}
	require.NoError(t, w.Apply(a.ObjectID(), uidMight, &ctx))
	ctx.ValueMultiplier = 10

	w.Tick(0)
	assert.InDelta(t, 70, a.Character.StatSheet().Value(model.StatAtk), 1e-9)
}

func TestWorld_PoisonTicks(t *testing.T) {
	w := newTestWorld(t, Options{})
	a := w.SpawnCharacter("Alice", model.Location{}, baseStats())

	require.NoError(t, w.Apply(a.ObjectID(), uidPoison, nil))
	for range 3 {
		w.Tick(time.Second)
	}

	// commands run before the update, so the first tick already counts
	assert.Equal(t, int32(85), a.Character.CurrentHP())
}

func TestWorld_ParallelMatchesSequential(t *testing.T) {
	run := func(opts Options) []int32 {
		w := newTestWorld(t, opts)
		actors := make([]*Actor, 0, 17)
		for range 17 {
			a := w.SpawnCharacter("Dummy", model.Location{}, baseStats())
			require.NoError(t, w.Apply(a.ObjectID(), uidPoison, nil))
			require.NoError(t, w.Apply(a.ObjectID(), uidBurn, nil))
			actors = append(actors, a)
		}
		w.Tick(0)
		for range 40 {
			w.Tick(100 * time.Millisecond)
		}

		hp := make([]int32, 0, len(actors))
		for _, a := range actors {
			hp = append(hp, a.Character.CurrentHP())
		}
		return hp
	}

	sequential := run(Options{Workers: 1})
	parallel := run(Options{Workers: 4, ParallelThreshold: 2})

	assert.Equal(t, sequential, parallel)
	// 4 poison ticks * 5 + 8 burn ticks * 3
	assert.Equal(t, int32(100-20-24), sequential[0])
}

func TestWorld_Dispel(t *testing.T) {
	w := newTestWorld(t, Options{})
	a := w.SpawnCharacter("Alice", model.Location{}, baseStats())

	for _, uid := range []int{uidMight, uidPoison, uidBurn} {
		require.NoError(t, w.Apply(a.ObjectID(), uid, nil))
	}

	var removed int
	require.NoError(t, w.Dispel(a.ObjectID(), affect.DispelQuery{DispelType: affect.DispelDebuff}, func(n int) {
		removed = n
	}))
	w.Tick(0)

	assert.Equal(t, 2, removed)
	assert.True(t, a.Affects.HasAffect(uidMight))
	assert.Equal(t, 1, a.Affects.Len())
}

func TestWorld_DespawnRollsBack(t *testing.T) {
	w := newTestWorld(t, Options{})
	a := w.SpawnCharacter("Alice", model.Location{}, baseStats())

	require.NoError(t, w.Apply(a.ObjectID(), uidMight, nil))
	require.NoError(t, w.Apply(a.ObjectID(), uidStun, nil))
	w.Tick(0)
	require.True(t, a.Character.StateSet().HasState("stun"))

	require.NoError(t, w.Despawn(a.ObjectID()))
	w.Tick(0)

	assert.Zero(t, w.Count())
	assert.Zero(t, a.Affects.Len())
	assert.Zero(t, a.Character.StatSheet().ModifierCount())
	assert.False(t, a.Character.StateSet().HasState("stun"))
}

func TestWorld_CommandAfterDespawnIsDropped(t *testing.T) {
	w := newTestWorld(t, Options{})
	a := w.SpawnCharacter("Alice", model.Location{}, baseStats())

	require.NoError(t, w.Despawn(a.ObjectID()))
	require.NoError(t, w.Apply(a.ObjectID(), uidMight, nil))
	w.Tick(0)

	assert.False(t, a.Affects.HasAffect(uidMight))
}

func TestWorld_CrowdControlExpiresWithTick(t *testing.T) {
	w := newTestWorld(t, Options{})
	a := w.SpawnCharacter("Alice", model.Location{}, baseStats())

	require.NoError(t, w.Apply(a.ObjectID(), uidStun, nil))
	w.Tick(0)
	require.NotNil(t, a.Character.Controls())
	assert.True(t, a.Character.Controls().IsImmobilized())

	w.Tick(2 * time.Second)
	assert.False(t, a.Character.Controls().IsImmobilized())
	assert.False(t, a.Affects.Active())
}

func TestWorld_ConcurrentApply(t *testing.T) {
	w := newTestWorld(t, Options{})
	a := w.SpawnCharacter("Alice", model.Location{}, baseStats())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				assert.NoError(t, w.Apply(a.ObjectID(), uidBurn, nil))
			}
		}()
	}
	wg.Wait()
	w.Tick(0)

	assert.Equal(t, 80, a.Affects.Len())
}

func TestWorld_DoAndHooks(t *testing.T) {
	w := newTestWorld(t, Options{})
	a := w.SpawnCharacter("Alice", model.Location{}, baseStats())

	var seen []time.Duration
	w.AddTickHook(func(dt time.Duration) { seen = append(seen, dt) })
	w.AddTickHook(nil)

	var snapshot []affect.InstanceSnapshot
	require.NoError(t, w.Apply(a.ObjectID(), uidMight, nil))
	require.NoError(t, w.Do(a.ObjectID(), func(a *Actor) {
		snapshot = a.Affects.Snapshot()
	}))

	w.Tick(50 * time.Millisecond)

	require.Len(t, snapshot, 1)
	assert.Equal(t, uidMight, snapshot[0].AffectUID)
	assert.Equal(t, []time.Duration{50 * time.Millisecond}, seen)
}

func TestWorld_Run(t *testing.T) {
	w := newTestWorld(t, Options{})
	a := w.SpawnCharacter("Alice", model.Location{}, baseStats())
	require.NoError(t, w.Apply(a.ObjectID(), uidMight, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := w.Run(ctx, 5*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, w.Ticks())
	assert.True(t, a.Affects.HasAffect(uidMight))
}

func TestObjectIDGenerator(t *testing.T) {
	gen := NewObjectIDGenerator()

	assert.Equal(t, characterIDBase+1, gen.NextCharacterID())
	assert.Equal(t, characterIDBase+2, gen.NextCharacterID())
	assert.Equal(t, npcIDBase+1, gen.NextNpcID())
	assert.False(t, IsNpcID(npcIDBase))
}

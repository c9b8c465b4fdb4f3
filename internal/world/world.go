package world

import (
	"errors"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/udisondev/affectd/internal/affect"
	"github.com/udisondev/affectd/internal/model"
)

// ErrActorNotFound is returned for commands addressed to an unknown object id.
var ErrActorNotFound = errors.New("actor not found")

// DefaultParallelThreshold is the actor count from which Tick updates in parallel.
const DefaultParallelThreshold = 1000

// Actor pairs a character with the affect component that owns its affects.
type Actor struct {
	Character *model.Character
	Affects   *affect.Component
}

// ObjectID returns the character's object id.
func (a *Actor) ObjectID() uint32 { return a.Character.ObjectID() }

// update advances crowd control and, when active, the affect component.
func (a *Actor) update(dt time.Duration) bool {
	a.Character.Update(dt)
	if !a.Affects.Active() {
		return false
	}
	a.Affects.Update(dt)
	return true
}

// TickHook runs on the tick goroutine after every actor has been updated.
type TickHook func(dt time.Duration)

// Options tune the tick loop.
type Options struct {
	Workers           int // parallel workers (default: runtime.NumCPU())
	ParallelThreshold int // actor count switching to parallel updates
}

// World owns the actors and drives their affect components.
//
// Affect components are not safe for concurrent use, so every mutation
// (Apply, Remove, Dispel, Despawn) is queued and executed by Tick on the
// tick goroutine. Spawn and lookups may be called from any goroutine.
type World struct {
	rt  *affect.Runtime
	ids *ObjectIDGenerator

	mu     sync.RWMutex
	actors map[uint32]*Actor

	cmdMu    sync.Mutex
	commands []command
	running  []command // swapped with commands on drain

	hooks []TickHook

	workers           int
	parallelThreshold int

	batch []*Actor // tick goroutine only
	ticks atomic.Uint64
}

// New creates a world whose actors share rt.
func New(rt *affect.Runtime, opts Options) *World {
	if opts.Workers < 1 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.ParallelThreshold < 1 {
		opts.ParallelThreshold = DefaultParallelThreshold
	}
	return &World{
		rt:                rt,
		ids:               NewObjectIDGenerator(),
		actors:            make(map[uint32]*Actor, 64),
		workers:           opts.Workers,
		parallelThreshold: opts.ParallelThreshold,
	}
}

// SpawnCharacter creates a character actor with base stats.
func (w *World) SpawnCharacter(name string, loc model.Location, base map[string]float64) *Actor {
	return w.spawn(w.ids.NextCharacterID(), name, loc, base)
}

// SpawnNpc creates an NPC actor with base stats.
func (w *World) SpawnNpc(name string, loc model.Location, base map[string]float64) *Actor {
	return w.spawn(w.ids.NextNpcID(), name, loc, base)
}

func (w *World) spawn(objectID uint32, name string, loc model.Location, base map[string]float64) *Actor {
	char := model.NewCharacter(objectID, name, loc, base)
	a := &Actor{
		Character: char,
		Affects:   w.rt.NewComponent(char),
	}

	w.mu.Lock()
	w.actors[objectID] = a
	total := len(w.actors)
	w.mu.Unlock()

	slog.Debug("actor spawned", "objectID", objectID, "name", name, "total", total)
	return a
}

// Actor returns the actor registered under objectID.
func (w *World) Actor(objectID uint32) (*Actor, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	a, ok := w.actors[objectID]
	if !ok {
		return nil, ErrActorNotFound
	}
	return a, nil
}

// Count returns the number of registered actors.
func (w *World) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.actors)
}

// ObjectIDs returns the registered object ids, ascending.
func (w *World) ObjectIDs() []uint32 {
	w.mu.RLock()
	ids := make([]uint32, 0, len(w.actors))
	for id := range w.actors {
		ids = append(ids, id)
	}
	w.mu.RUnlock()

	slices.Sort(ids)
	return ids
}

// AddTickHook registers fn to run after every tick. Register hooks before Run.
func (w *World) AddTickHook(fn TickHook) {
	if fn != nil {
		w.hooks = append(w.hooks, fn)
	}
}

// Ticks returns the number of completed ticks.
func (w *World) Ticks() uint64 { return w.ticks.Load() }

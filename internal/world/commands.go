package world

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/affectd/internal/affect"
)

// command is a deferred mutation of one actor, executed on the tick goroutine.
type command struct {
	objectID uint32
	name     string
	run      func(w *World, a *Actor)
}

// Apply queues affect uid for objectID. A nil ctx means the default context.
func (w *World) Apply(objectID uint32, uid int, ctx *affect.ApplyContext) error {
	var applyCtx *affect.ApplyContext
	if ctx != nil {
		c := *ctx
		applyCtx = &c
	}
	return w.enqueue(command{
		objectID: objectID,
		name:     "apply",
		run: func(_ *World, a *Actor) {
			a.Affects.Apply(uid, applyCtx)
		},
	})
}

// Remove queues removal of the oldest instance of uid on objectID.
func (w *World) Remove(objectID uint32, uid int) error {
	return w.enqueue(command{
		objectID: objectID,
		name:     "remove",
		run: func(_ *World, a *Actor) {
			a.Affects.Remove(uid)
		},
	})
}

// Dispel queues a dispel on objectID. done, when not nil, receives the
// number of removed instances on the tick goroutine.
func (w *World) Dispel(objectID uint32, q affect.DispelQuery, done func(removed int)) error {
	return w.enqueue(command{
		objectID: objectID,
		name:     "dispel",
		run: func(_ *World, a *Actor) {
			n := a.Affects.Dispel(q)
			if done != nil {
				done(n)
			}
		},
	})
}

// Do queues fn against objectID. fn runs on the tick goroutine and may read
// or mutate the actor's component.
func (w *World) Do(objectID uint32, fn func(a *Actor)) error {
	return w.enqueue(command{
		objectID: objectID,
		name:     "do",
		run: func(_ *World, a *Actor) {
			fn(a)
		},
	})
}

// Despawn queues removal of objectID. Its affects are removed first so every
// token is rolled back.
func (w *World) Despawn(objectID uint32) error {
	return w.enqueue(command{
		objectID: objectID,
		name:     "despawn",
		run: func(w *World, a *Actor) {
			a.Affects.RemoveAll()

			w.mu.Lock()
			delete(w.actors, objectID)
			remaining := len(w.actors)
			w.mu.Unlock()

			slog.Debug("actor despawned", "objectID", objectID, "remaining", remaining)
		},
	})
}

func (w *World) enqueue(cmd command) error {
	if _, err := w.Actor(cmd.objectID); err != nil {
		return fmt.Errorf("queueing %s for %d: %w", cmd.name, cmd.objectID, err)
	}

	w.cmdMu.Lock()
	w.commands = append(w.commands, cmd)
	w.cmdMu.Unlock()
	return nil
}

// drainCommands runs the queued commands in submission order.
func (w *World) drainCommands() int {
	w.cmdMu.Lock()
	w.commands, w.running = w.running[:0], w.commands
	w.cmdMu.Unlock()

	n := len(w.running)
	for _, cmd := range w.running {
		a, err := w.Actor(cmd.objectID)
		if err != nil {
			slog.Warn("command target gone", "command", cmd.name, "objectID", cmd.objectID)
			continue
		}
		cmd.run(w, a)
	}
	clear(w.running)
	return n
}

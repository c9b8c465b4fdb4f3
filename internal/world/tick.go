package world

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Run ticks the world every tickRate until ctx is cancelled.
// dt is the wall time measured between ticks.
func (w *World) Run(ctx context.Context, tickRate time.Duration) error {
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	slog.Info("world tick loop started",
		"tickRate", tickRate,
		"workers", w.workers,
		"parallelThreshold", w.parallelThreshold)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			slog.Info("world tick loop stopping", "ticks", w.Ticks())
			return ctx.Err()

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			w.Tick(dt)
		}
	}
}

// Tick runs the queued commands, advances every actor by dt and then the
// tick hooks. Must be called from a single goroutine.
func (w *World) Tick(dt time.Duration) {
	commands := w.drainCommands()

	w.mu.RLock()
	w.batch = w.batch[:0]
	for _, a := range w.actors {
		w.batch = append(w.batch, a)
	}
	w.mu.RUnlock()

	// creation order keeps logs and damage order stable
	slices.SortFunc(w.batch, func(a, b *Actor) int {
		return cmp.Compare(a.ObjectID(), b.ObjectID())
	})

	var updated int
	if len(w.batch) < w.parallelThreshold || w.workers < 2 {
		updated = w.updateSequential(dt)
	} else {
		updated = w.updateParallel(dt)
	}
	clear(w.batch)

	for _, hook := range w.hooks {
		hook(dt)
	}

	w.ticks.Add(1)

	if commands > 0 || updated > 0 {
		slog.Debug("world tick completed",
			"dt", dt,
			"commands", commands,
			"actors", len(w.batch),
			"updated", updated)
	}
}

func (w *World) updateSequential(dt time.Duration) int {
	updated := 0
	for _, a := range w.batch {
		if a.update(dt) {
			updated++
		}
	}
	return updated
}

// updateParallel splits the batch into one chunk per worker. Actors own
// their components, so chunks never share mutable state.
func (w *World) updateParallel(dt time.Duration) int {
	var updated atomic.Int32

	numWorkers := min(w.workers, len(w.batch))
	chunkSize := len(w.batch) / numWorkers

	var g errgroup.Group
	g.SetLimit(numWorkers)

	for i := range numWorkers {
		start := i * chunkSize
		end := start + chunkSize
		// last worker takes the remainder
		if i == numWorkers-1 {
			end = len(w.batch)
		}

		chunk := w.batch[start:end]
		g.Go(func() error {
			for _, a := range chunk {
				if a.update(dt) {
					updated.Add(1)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	return int(updated.Load())
}

package main

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/udisondev/affectd/internal/affect"
	"github.com/udisondev/affectd/internal/config"
	"github.com/udisondev/affectd/internal/data"
	"github.com/udisondev/affectd/internal/hud"
	"github.com/udisondev/affectd/internal/model"
	"github.com/udisondev/affectd/internal/world"
)

// scenario plays timed events against the world. Its hook runs on the
// tick goroutine, so presenters read components safely.
type scenario struct {
	w        *world.World
	actors   map[string]*world.Actor
	events   []scenarioEvent
	huds     []*hud.Presenter
	duration time.Duration

	clock time.Duration
	next  int

	done     chan struct{}
	doneOnce sync.Once
}

type scenarioEvent struct {
	config.ScenarioEvent
	dispelType affect.DispelType
}

func newScenario(cfg config.Scenario, w *world.World, hudInterval time.Duration) (*scenario, error) {
	s := &scenario{
		w:        w,
		actors:   make(map[string]*world.Actor, len(cfg.Actors)),
		events:   make([]scenarioEvent, 0, len(cfg.Events)),
		duration: cfg.Duration,
		done:     make(chan struct{}),
	}

	for _, a := range cfg.Actors {
		loc := model.NewLocation(a.X, a.Y, a.Z)
		var actor *world.Actor
		if a.Npc {
			actor = w.SpawnNpc(a.Name, loc, a.Stats)
		} else {
			actor = w.SpawnCharacter(a.Name, loc, a.Stats)
		}
		s.actors[a.Name] = actor

		if a.Hud {
			p := hud.NewPresenter()
			p.Bind(actor.Affects, hud.LogView{Owner: actor.ObjectID()}, hudInterval)
			s.huds = append(s.huds, p)
		}
	}

	for i, e := range cfg.Events {
		ev := scenarioEvent{ScenarioEvent: e}
		if e.Action == config.ActionDispel {
			dt, err := data.ParseDispelType(e.DispelType)
			if err != nil {
				return nil, fmt.Errorf("event %d: %w", i, err)
			}
			ev.dispelType = dt
		}
		s.events = append(s.events, ev)
	}
	slices.SortStableFunc(s.events, func(a, b scenarioEvent) int { return cmp.Compare(a.At, b.At) })

	w.AddTickHook(s.onTick)
	return s, nil
}

// Done is closed once the scenario duration has elapsed. It never closes
// for an unbounded scenario.
func (s *scenario) Done() <-chan struct{} { return s.done }

func (s *scenario) onTick(dt time.Duration) {
	s.clock += dt

	for s.next < len(s.events) && s.events[s.next].At <= s.clock {
		s.fire(s.events[s.next])
		s.next++
	}

	for _, p := range s.huds {
		p.Update(dt)
	}

	if s.duration > 0 && s.clock >= s.duration {
		s.doneOnce.Do(func() { close(s.done) })
	}
}

func (s *scenario) fire(e scenarioEvent) {
	target, ok := s.actors[e.Actor]
	if !ok {
		slog.Warn("scenario actor not found", "actor", e.Actor)
		return
	}
	id := target.ObjectID()

	var err error
	switch e.Action {
	case config.ActionApply:
		ctx := affect.ApplyContext{
			SkillLevel:       e.SkillLevel,
			DurationOverride: e.DurationOverride,
			ValueMultiplier:  e.ValueMultiplier,
		}
		if src, ok := s.actors[e.Source]; ok {
			ctx.Source = src.Character
		}
		err = s.w.Apply(id, e.AffectUID, &ctx)

	case config.ActionRemove:
		err = s.w.Remove(id, e.AffectUID)

	case config.ActionDispel:
		q := affect.DispelQuery{
			DispelType:     e.dispelType,
			MaxRemoveCount: e.MaxRemove,
			RequireTags:    e.RequireTags,
			ExcludeTags:    e.ExcludeTags,
		}
		err = s.w.Dispel(id, q, func(removed int) {
			slog.Info("scenario dispel", "actor", e.Actor, "removed", removed)
		})
	}

	if err != nil {
		slog.Warn("scenario event failed", "actor", e.Actor, "action", e.Action, "err", err)
		return
	}
	slog.Debug("scenario event queued",
		"at", e.At,
		"actor", e.Actor,
		"action", e.Action,
		"affectUid", e.AffectUID)
}

package vfx

import (
	"cmp"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/affectd/internal/affect"
	"github.com/udisondev/affectd/internal/model"
)

// Play is one running effect.
type Play struct {
	Token    affect.VfxToken
	VfxUID   int
	ObjectID uint32
	Location model.Location // target location raised by the offset
	Scale    float64
	Duration time.Duration
	Started  time.Time
}

// locatable is implemented by targets with a world position.
type locatable interface {
	Location() model.Location
}

// Service is a logging VFX backend. It issues a fresh token per play and
// tracks plays until they are stopped. Safe for concurrent use.
type Service struct {
	mu    sync.Mutex
	plays map[uuid.UUID]Play
	seq   []uuid.UUID // start order

	now func() time.Time
}

var _ affect.VfxService = (*Service)(nil)

// New creates an empty service.
func New() *Service {
	return &Service{
		plays: make(map[uuid.UUID]Play, 16),
		now:   time.Now,
	}
}

// Play implements affect.VfxService. Non-positive uids play nothing.
func (s *Service) Play(vfxUID int, target affect.Target, scale, offsetY float64, duration time.Duration) affect.VfxToken {
	if vfxUID <= 0 {
		return affect.VfxToken{}
	}

	p := Play{
		Token:    affect.VfxToken{ID: uuid.New()},
		VfxUID:   vfxUID,
		Scale:    scale,
		Duration: duration,
		Started:  s.now(),
	}
	if target != nil {
		if e := target.Entity(); e != nil {
			p.ObjectID = e.ObjectID()
			if l, ok := e.(locatable); ok {
				p.Location = l.Location().WithOffsetY(offsetY)
			}
		}
	}

	s.mu.Lock()
	s.plays[p.Token.ID] = p
	s.seq = append(s.seq, p.Token.ID)
	s.mu.Unlock()

	slog.Debug("vfx play",
		"vfxUid", vfxUID,
		"token", p.Token.ID,
		"target", p.ObjectID,
		"scale", scale,
		"y", p.Location.Y,
		"duration", duration)

	return p.Token
}

// Stop implements affect.VfxService. Unknown tokens are ignored.
func (s *Service) Stop(token affect.VfxToken) {
	if token.IsZero() {
		return
	}

	s.mu.Lock()
	p, ok := s.plays[token.ID]
	if ok {
		delete(s.plays, token.ID)
		if i := slices.Index(s.seq, token.ID); i >= 0 {
			s.seq = slices.Delete(s.seq, i, i+1)
		}
	}
	s.mu.Unlock()

	if !ok {
		return
	}
	slog.Debug("vfx stop", "vfxUid", p.VfxUID, "token", token.ID, "target", p.ObjectID)
}

// Playing reports whether token is still running.
func (s *Service) Playing(token affect.VfxToken) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.plays[token.ID]
	return ok
}

// Count returns the number of running plays.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.plays)
}

// Active returns the running plays in start order.
func (s *Service) Active() []Play {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Play, 0, len(s.seq))
	for _, id := range s.seq {
		out = append(out, s.plays[id])
	}
	return out
}

// ForObject returns the running plays on objectID, by vfx uid.
func (s *Service) ForObject(objectID uint32) []Play {
	out := s.Active()
	out = slices.DeleteFunc(out, func(p Play) bool { return p.ObjectID != objectID })
	slices.SortStableFunc(out, func(a, b Play) int { return cmp.Compare(a.VfxUID, b.VfxUID) })
	return out
}

package hud

import (
	"log/slog"
	"strings"
	"time"
)

// LogView renders items to slog at Info, one line per item.
type LogView struct {
	Owner uint32
}

// Render implements View.
func (v LogView) Render(items []Item) {
	if len(items) == 0 {
		slog.Info("hud empty", "owner", v.Owner)
		return
	}
	for _, it := range items {
		slog.Info("hud item",
			"owner", v.Owner,
			"affectUid", it.AffectUID,
			"icon", it.IconKey,
			"stacks", it.Stacks,
			"remaining", it.Remaining.Round(10*time.Millisecond),
			"total", it.Total)
	}
}

// RecordingView keeps a copy of every render.
type RecordingView struct {
	Renders [][]Item
}

// Render implements View.
func (v *RecordingView) Render(items []Item) {
	v.Renders = append(v.Renders, append([]Item(nil), items...))
}

// Last returns the latest render or nil.
func (v *RecordingView) Last() []Item {
	if len(v.Renders) == 0 {
		return nil
	}
	return v.Renders[len(v.Renders)-1]
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

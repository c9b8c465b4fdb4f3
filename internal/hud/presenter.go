package hud

import (
	"time"

	"github.com/udisondev/affectd/internal/affect"
)

const (
	// DefaultSyncInterval is how often remaining times are pushed without a change.
	DefaultSyncInterval = 100 * time.Millisecond
	// MinSyncInterval bounds the sync interval from below.
	MinSyncInterval = 20 * time.Millisecond
)

// Item is one icon: every live instance of an affect uid folded together.
type Item struct {
	AffectUID  int
	IconKey    string
	NameKey    string
	DispelType affect.DispelType
	Stacks     int
	Remaining  time.Duration
	Total      time.Duration
}

// Fill returns the remaining share of the total duration in [0,1].
func (it Item) Fill() float64 {
	if it.Total <= 0 {
		return 0
	}
	return min(1, max(0, float64(it.Remaining)/float64(it.Total)))
}

// View displays items. The slice is reused between renders; copy what must
// outlive the call.
type View interface {
	Render(items []Item)
}

// Presenter mirrors a component's instances into a View. The component
// stays the single source of truth; the presenter only reads snapshots.
//
// Structural changes render on the next Update; remaining times are synced
// every interval. Update must run on the goroutine that owns the component.
type Presenter struct {
	comp     *affect.Component
	view     View
	interval time.Duration

	elapsed time.Duration
	dirty   bool

	snapshot []affect.InstanceSnapshot
	items    []Item
	index    map[int]int // affect uid -> position in items
}

// NewPresenter creates an unbound presenter.
func NewPresenter() *Presenter {
	return &Presenter{
		interval: DefaultSyncInterval,
		snapshot: make([]affect.InstanceSnapshot, 0, 64),
		items:    make([]Item, 0, 64),
		index:    make(map[int]int, 64),
	}
}

// Bind attaches comp and view. interval is clamped to MinSyncInterval.
// The first Update always renders.
func (p *Presenter) Bind(comp *affect.Component, view View, interval time.Duration) {
	p.Unbind()

	p.comp = comp
	p.view = view
	p.interval = max(MinSyncInterval, interval)
	p.dirty = comp != nil
}

// Unbind detaches the presenter and drops its buffers' contents.
func (p *Presenter) Unbind() {
	p.comp = nil
	p.view = nil
	p.snapshot = p.snapshot[:0]
	p.items = p.items[:0]
	clear(p.index)
	p.elapsed = 0
	p.dirty = false
}

// Interval returns the effective sync interval.
func (p *Presenter) Interval() time.Duration { return p.interval }

// Update advances the sync timer by dt and renders when the component
// changed or the interval elapsed. It reports whether it rendered.
func (p *Presenter) Update(dt time.Duration) bool {
	if p.comp == nil || p.view == nil {
		return false
	}

	select {
	case <-p.comp.Changed():
		p.dirty = true
	default:
	}

	p.elapsed += dt
	if !p.dirty && p.elapsed < p.interval {
		return false
	}

	p.elapsed = 0
	p.dirty = false
	p.render()
	return true
}

func (p *Presenter) render() {
	p.snapshot = p.comp.AppendSnapshot(p.snapshot[:0])
	p.items = p.items[:0]
	clear(p.index)

	p.items = Aggregate(p.items, p.index, p.snapshot)
	p.view.Render(p.items)
}

// Aggregate folds snapshots into dst per affect uid, in first-seen order:
// stacks add up as max(1, stacks), remaining and total take the maximum and
// the first non-blank icon key wins. index maps uid to position in dst and
// may be nil.
func Aggregate(dst []Item, index map[int]int, snapshot []affect.InstanceSnapshot) []Item {
	if index == nil {
		index = make(map[int]int, len(snapshot))
	}

	for _, s := range snapshot {
		i, ok := index[s.AffectUID]
		if !ok {
			i = len(dst)
			index[s.AffectUID] = i
			dst = append(dst, Item{
				AffectUID:  s.AffectUID,
				IconKey:    s.IconKey,
				NameKey:    s.NameKey,
				DispelType: s.DispelType,
			})
		}

		it := &dst[i]
		it.Stacks += max(1, s.Stacks)
		it.Remaining = max(it.Remaining, s.Remaining)
		it.Total = max(it.Total, s.Total)
		if isBlank(it.IconKey) {
			it.IconKey = s.IconKey
		}
	}
	return dst
}

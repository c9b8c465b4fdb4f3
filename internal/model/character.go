package model

import (
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/udisondev/affectd/internal/affect"
)

// DefaultMaxHP is used when the base stats carry no positive max_hp.
const DefaultMaxHP = 100

// Character описывает живое существо, на которое вешаются аффекты.
// Реализует affect.Target и все его capability-интерфейсы:
// статы, состояния, урон/лечение и CC-контроллер (создаётся по требованию).
type Character struct {
	*WorldObject // embedded

	currentHP int32
	maxHP     int32

	stats  *StatSheet
	states *StateSet

	cc atomic.Pointer[CrowdControl]

	deathOnce sync.Once // protects death logging from double execution
}

var (
	_ affect.Target           = (*Character)(nil)
	_ affect.Entity           = (*Character)(nil)
	_ affect.DamageReceiver   = (*Character)(nil)
	_ affect.CrowdControlHost = (*Character)(nil)
)

// NewCharacter создаёт персонажа с базовыми статами.
// Текущее HP устанавливается равным максимальному.
func NewCharacter(objectID uint32, name string, loc Location, base map[string]float64) *Character {
	c := &Character{
		WorldObject: NewWorldObject(objectID, name, loc),
		stats:       NewStatSheet(base),
		states:      NewStateSet(),
	}
	c.maxHP = c.derivedMaxHP()
	c.currentHP = c.maxHP
	c.stats.onRecalc = c.syncMaxHP
	return c
}

// Entity implements affect.Target.
func (c *Character) Entity() affect.Entity { return c }

// IsAlive implements affect.Target.
func (c *Character) IsAlive() bool { return c.CurrentHP() > 0 }

// Stats implements affect.Target.
func (c *Character) Stats() affect.StatMutable { return c.stats }

// States implements affect.Target.
func (c *Character) States() affect.StateMutable { return c.states }

// Damage implements affect.Target.
func (c *Character) Damage() affect.DamageReceiver { return c }

// StatSheet returns the concrete stat sheet.
func (c *Character) StatSheet() *StatSheet { return c.stats }

// StateSet returns the concrete state set.
func (c *Character) StateSet() *StateSet { return c.states }

// CrowdControl implements affect.CrowdControlHost. The controller is
// attached on first use.
func (c *Character) CrowdControl() affect.CrowdControlController {
	return c.attachCrowdControl()
}

// Controls returns the attached crowd-control controller or nil.
func (c *Character) Controls() *CrowdControl {
	return c.cc.Load()
}

func (c *Character) attachCrowdControl() *CrowdControl {
	if cc := c.cc.Load(); cc != nil {
		return cc
	}
	c.cc.CompareAndSwap(nil, NewCrowdControl(c.ObjectID()))
	return c.cc.Load()
}

// Update advances character-owned timers (crowd control).
func (c *Character) Update(dt time.Duration) {
	if cc := c.cc.Load(); cc != nil {
		cc.Update(dt)
	}
}

// CurrentHP возвращает текущее HP.
func (c *Character) CurrentHP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentHP
}

// MaxHP возвращает максимальное HP.
func (c *Character) MaxHP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxHP
}

// SetCurrentHP устанавливает текущее HP с валидацией (clamp 0..maxHP).
func (c *Character) SetCurrentHP(hp int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentHP = min(max(hp, 0), c.maxHP)
}

// ApplyDamage implements affect.DamageReceiver. The amount is rounded to
// whole HP; non-positive amounts and dead characters are ignored.
func (c *Character) ApplyDamage(damageTypeID string, amount float64, canCrit, isDot bool, source affect.Entity) {
	dmg := int32(math.Round(amount))
	if dmg <= 0 {
		return
	}

	c.mu.Lock()
	if c.currentHP <= 0 {
		c.mu.Unlock()
		return
	}
	c.currentHP = max(c.currentHP-dmg, 0)
	hp := c.currentHP
	c.mu.Unlock()

	slog.Debug("damage taken",
		"target", c.ObjectID(),
		"damageType", damageTypeID,
		"damage", dmg,
		"dot", isDot,
		"hp", hp)

	if hp == 0 {
		c.deathOnce.Do(func() {
			var killer uint32
			if source != nil {
				killer = source.ObjectID()
			}
			slog.Info("character died", "target", c.ObjectID(), "name", c.Name(), "killer", killer)
		})
	}
}

// ApplyHeal implements affect.DamageReceiver. Healing is clamped to max HP
// and never revives.
func (c *Character) ApplyHeal(amount float64, source affect.Entity) {
	heal := int32(math.Round(amount))
	if heal <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentHP <= 0 {
		return
	}
	c.currentHP = min(c.currentHP+heal, c.maxHP)
}

// syncMaxHP runs after every stat recalculation: max HP follows the
// max_hp stat and current HP is clamped to it.
func (c *Character) syncMaxHP() {
	maxHP := c.derivedMaxHP()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxHP = maxHP
	if c.currentHP > maxHP {
		c.currentHP = maxHP
	}
}

func (c *Character) derivedMaxHP() int32 {
	v := int32(math.Round(c.stats.Value(StatMaxHP)))
	if v <= 0 {
		return DefaultMaxHP
	}
	return v
}

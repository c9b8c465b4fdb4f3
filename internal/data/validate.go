package data

import (
	"fmt"

	"github.com/udisondev/affectd/internal/affect"
)

// Issue is one authoring problem found by Validate.
type Issue struct {
	AffectUID  int
	ModifierID int
	Field      string
	Value      string
}

func (i Issue) String() string {
	if i.ModifierID != 0 {
		return fmt.Sprintf("affect %d modifier %d: unknown %s %q", i.AffectUID, i.ModifierID, i.Field, i.Value)
	}
	return fmt.Sprintf("affect %d: unknown %s %q", i.AffectUID, i.Field, i.Value)
}

// Validate cross-checks modifiers against the status registry and the
// crowd-control table. Authoring-time only; the runtime never calls it.
func Validate(r *Repositories) []Issue {
	var issues []Issue
	add := func(mod *affect.ModifierDefinition, field, value string) {
		issues = append(issues, Issue{AffectUID: mod.AffectUID, ModifierID: mod.ModifierID, Field: field, Value: value})
	}

	for _, uid := range r.Affects.ModifierUIDs() {
		if _, ok := r.Affects.Affect(uid); !ok {
			issues = append(issues, Issue{AffectUID: uid, Field: "affect uid", Value: fmt.Sprintf("%d", uid)})
		}

		mods := r.Affects.Modifiers(uid)
		for i := range mods {
			mod := &mods[i]
			switch mod.Kind {
			case affect.KindStat:
				if !r.Status.IsValidStat(mod.Stat.StatID) {
					add(mod, "stat", mod.Stat.StatID)
				}
			case affect.KindDamage:
				if !r.Status.IsValidDamageType(mod.Damage.DamageTypeID) {
					add(mod, "damage type", mod.Damage.DamageTypeID)
				}
				if mod.Damage.ScalingStatID != "" && !r.Status.IsValidStat(mod.Damage.ScalingStatID) {
					add(mod, "scaling stat", mod.Damage.ScalingStatID)
				}
			case affect.KindState:
				if !r.Status.IsValidState(mod.State.StateID) {
					add(mod, "state", mod.State.StateID)
				}
			case affect.KindCrowdControl:
				if _, ok := r.CrowdControl.CrowdControl(mod.CrowdControl.UID); !ok {
					add(mod, "crowd control", fmt.Sprintf("%d", mod.CrowdControl.UID))
				}
			}
		}
	}
	return issues
}

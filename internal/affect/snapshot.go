package affect

import "time"

// InstanceSnapshot is a read-only copy of an instance for presentation layers.
type InstanceSnapshot struct {
	RuntimeID  int
	AffectUID  int
	IconKey    string
	NameKey    string
	DispelType DispelType
	Stacks     int
	Remaining  time.Duration
	Total      time.Duration
}

// Snapshot returns the live instances in creation order.
func (c *Component) Snapshot() []InstanceSnapshot {
	return c.AppendSnapshot(make([]InstanceSnapshot, 0, len(c.order)))
}

// AppendSnapshot appends the live instances to dst, letting callers reuse a buffer.
func (c *Component) AppendSnapshot(dst []InstanceSnapshot) []InstanceSnapshot {
	for _, id := range c.order {
		inst := c.byRuntimeID[id]
		dst = append(dst, InstanceSnapshot{
			RuntimeID:  id,
			AffectUID:  inst.def.UID,
			IconKey:    inst.def.IconKey,
			NameKey:    inst.def.NameKey,
			DispelType: inst.def.DispelType,
			Stacks:     inst.stacks,
			Remaining:  inst.remaining,
			Total:      inst.total,
		})
	}
	return dst
}

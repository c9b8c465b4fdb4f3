package affect

import "time"

//go:generate go tool mockgen -destination=./mocks/target_mock.go -package=mocks . Target,Entity,StatMutable,StateMutable,DamageReceiver,CrowdControlController

// Target is the mutation surface an entity exposes to affects.
// A missing capability must be returned as a nil interface, not a typed nil.
type Target interface {
	Entity() Entity
	IsAlive() bool
	Stats() StatMutable
	States() StateMutable
	Damage() DamageReceiver
}

// Entity locates the underlying game object.
type Entity interface {
	ObjectID() uint32
}

// CrowdControlHost is implemented by entities that can carry a crowd-control
// controller. CrowdControl attaches one on first use and reuses it afterwards.
type CrowdControlHost interface {
	CrowdControl() CrowdControlController
}

// CrowdControlController applies crowd control and owns its expiry.
type CrowdControlController interface {
	ApplyCrowdControl(def *CrowdControlDefinition, instigator Entity)
}

// StatMutable mutates entity stats through rollback tokens.
type StatMutable interface {
	ApplyModifier(statID string, value float64, valueType ValueType, op StatOperation) StatToken
	RemoveModifier(token StatToken)
	Recalculate()
	Value(statID string) float64
}

// StateMutable mutates entity states through rollback tokens.
type StateMutable interface {
	HasState(stateID string) bool
	ApplyState(stateID string, duration time.Duration) StateToken
	RemoveState(token StateToken)
	IsImmune(stateID string) bool
}

// DamageReceiver takes damage and heals.
type DamageReceiver interface {
	ApplyDamage(damageTypeID string, amount float64, canCrit, isDot bool, source Entity)
	ApplyHeal(amount float64, source Entity)
}

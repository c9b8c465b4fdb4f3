package affect

// DispelType classifies an affect for dispel queries.
type DispelType int8

const (
	DispelNone DispelType = iota
	DispelBuff
	DispelDebuff
)

// StackPolicy decides what happens when an already active affect uid is applied again.
type StackPolicy int8

const (
	StackNone        StackPolicy = iota // reapply is ignored
	StackRefresh                        // reset duration (optionally revalue)
	StackAdd                            // +1 stack up to MaxStacks
	StackIndependent                    // every apply creates its own instance
)

// RefreshPolicy controls what a reapply refreshes.
type RefreshPolicy int8

const (
	RefreshNone RefreshPolicy = iota
	RefreshDurationOnly
	RefreshValueAndDuration
)

// Phase is the moment a modifier fires.
type Phase int8

const (
	PhaseOnApply Phase = iota
	PhaseOnTick
	PhaseOnExpire
)

// ModifierKind selects the executor for a modifier.
type ModifierKind int8

const (
	KindStat ModifierKind = iota
	KindDamage
	KindState
	KindCustom
	KindCrowdControl
)

// ValueType is how a stat modifier value is interpreted.
type ValueType int8

const (
	ValueFlat ValueType = iota
	ValuePercent
)

// StatOperation is how a stat modifier combines with the base value.
type StatOperation int8

const (
	OpAdd StatOperation = iota
	OpMultiply
	OpOverride
)

// CrowdControlKind is the control applied by a crowd-control definition.
type CrowdControlKind int8

const (
	ControlNone CrowdControlKind = iota
	ControlStun
	ControlRoot
	ControlSilence
	ControlSleep
	ControlFear
)

var dispelTypeNames = [...]string{"None", "Buff", "Debuff"}

func (d DispelType) String() string {
	if int(d) < 0 || int(d) >= len(dispelTypeNames) {
		return "Unknown"
	}
	return dispelTypeNames[d]
}

var stackPolicyNames = [...]string{"None", "Refresh", "Add", "Independent"}

func (p StackPolicy) String() string {
	if int(p) < 0 || int(p) >= len(stackPolicyNames) {
		return "Unknown"
	}
	return stackPolicyNames[p]
}

var refreshPolicyNames = [...]string{"None", "DurationOnly", "ValueAndDuration"}

func (p RefreshPolicy) String() string {
	if int(p) < 0 || int(p) >= len(refreshPolicyNames) {
		return "Unknown"
	}
	return refreshPolicyNames[p]
}

var phaseNames = [...]string{"OnApply", "OnTick", "OnExpire"}

func (p Phase) String() string {
	if int(p) < 0 || int(p) >= len(phaseNames) {
		return "Unknown"
	}
	return phaseNames[p]
}

var modifierKindNames = [...]string{"Stat", "Damage", "State", "Custom", "CrowdControl"}

func (k ModifierKind) String() string {
	if int(k) < 0 || int(k) >= len(modifierKindNames) {
		return "Unknown"
	}
	return modifierKindNames[k]
}

var valueTypeNames = [...]string{"Flat", "Percent"}

func (v ValueType) String() string {
	if int(v) < 0 || int(v) >= len(valueTypeNames) {
		return "Unknown"
	}
	return valueTypeNames[v]
}

var statOperationNames = [...]string{"Add", "Multiply", "Override"}

func (o StatOperation) String() string {
	if int(o) < 0 || int(o) >= len(statOperationNames) {
		return "Unknown"
	}
	return statOperationNames[o]
}

var crowdControlKindNames = [...]string{"None", "Stun", "Root", "Silence", "Sleep", "Fear"}

func (k CrowdControlKind) String() string {
	if int(k) < 0 || int(k) >= len(crowdControlKindNames) {
		return "Unknown"
	}
	return crowdControlKindNames[k]
}

// Names used by table loaders. Index equals the enum value.
var (
	DispelTypeNames       = dispelTypeNames[:]
	StackPolicyNames      = stackPolicyNames[:]
	RefreshPolicyNames    = refreshPolicyNames[:]
	PhaseNames            = phaseNames[:]
	ModifierKindNames     = modifierKindNames[:]
	ValueTypeNames        = valueTypeNames[:]
	StatOperationNames    = statOperationNames[:]
	CrowdControlKindNames = crowdControlKindNames[:]
)

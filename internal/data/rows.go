package data

// Tables is the full authoring-time table set. Durations are in seconds,
// enums are names (any case) or their numeric value.
type Tables struct {
	Stats         []StatusRow       `yaml:"stats"`
	DamageTypes   []StatusRow       `yaml:"damage_types"`
	States        []StatusRow       `yaml:"states"`
	Affects       []AffectRow       `yaml:"affects"`
	Modifiers     []ModifierRow     `yaml:"modifiers"`
	CrowdControls []CrowdControlRow `yaml:"crowd_controls"`
}

// StatusRow registers one stat, damage type or state id.
type StatusRow struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// AffectRow is one row of the affect table.
type AffectRow struct {
	UID     int    `yaml:"uid"`
	Memo    string `yaml:"memo"`
	NameKey string `yaml:"name_key"`
	IconKey string `yaml:"icon_key"`

	DispelType string `yaml:"dispel_type"`
	GroupID    string `yaml:"group_id"`

	BaseDuration float64 `yaml:"base_duration"`
	TickInterval float64 `yaml:"tick_interval"`

	StackPolicy   string `yaml:"stack_policy"`
	MaxStacks     int    `yaml:"max_stacks"`
	RefreshPolicy string `yaml:"refresh_policy"`

	Tags string `yaml:"tags"` // comma or space separated

	VfxUID     int     `yaml:"vfx_uid"`
	VfxScale   float64 `yaml:"vfx_scale"`
	VfxOffsetY float64 `yaml:"vfx_offset_y"`

	ApplyChance float64 `yaml:"apply_chance"`
}

// ModifierRow is one row of the affect modifier table. Several rows may
// share an AffectUID; their order is the execution order.
type ModifierRow struct {
	AffectUID  int    `yaml:"affect_uid"`
	ModifierID int    `yaml:"modifier_id"`
	Phase      string `yaml:"phase"`
	Kind       string `yaml:"kind"`

	StatID        string  `yaml:"stat_id"`
	StatValue     float64 `yaml:"stat_value"`
	StatValueType string  `yaml:"stat_value_type"`
	StatOperation string  `yaml:"stat_operation"`

	DamageTypeID       string  `yaml:"damage_type_id"`
	DamageBaseValue    float64 `yaml:"damage_base_value"`
	ScalingStatID      string  `yaml:"scaling_stat_id"`
	ScalingCoefficient float64 `yaml:"scaling_coefficient"`
	CanCrit            bool    `yaml:"can_crit"`
	IsDot              bool    `yaml:"is_dot"`

	StateID               string  `yaml:"state_id"`
	StateChance           float64 `yaml:"state_chance"`
	StateDurationOverride float64 `yaml:"state_duration_override"`

	CrowdControlUID int `yaml:"crowd_control_uid"`

	ConditionID string `yaml:"condition_id"`
}

// CrowdControlRow is one row of the crowd-control table.
type CrowdControlRow struct {
	UID      int     `yaml:"uid"`
	Kind     string  `yaml:"kind"`
	Duration float64 `yaml:"duration"`
}

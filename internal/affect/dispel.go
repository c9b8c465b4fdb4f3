package affect

import "math"

// DispelQuery selects instances for batch removal.
// DispelNone matches any dispel type.
type DispelQuery struct {
	DispelType DispelType
	// MaxRemoveCount caps how many instances are removed. Zero or a negative
	// value means no cap, not "remove nothing".
	MaxRemoveCount int
	RequireTags    []string
	ExcludeTags    []string
}

// Match reports whether def satisfies the query: dispel type equality when
// set, every required tag present, no excluded tag present.
func (q DispelQuery) Match(def *Definition) bool {
	if def == nil {
		return false
	}
	if q.DispelType != DispelNone && def.DispelType != q.DispelType {
		return false
	}
	for _, tag := range q.RequireTags {
		if !def.HasTag(tag) {
			return false
		}
	}
	for _, tag := range q.ExcludeTags {
		if def.HasTag(tag) {
			return false
		}
	}
	return true
}

func (q DispelQuery) limit() int {
	if q.MaxRemoveCount <= 0 {
		return math.MaxInt
	}
	return q.MaxRemoveCount
}

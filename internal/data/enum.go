package data

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/udisondev/affectd/internal/affect"
)

// ErrUnknownEnum is returned when a table cell names no known enum value.
var ErrUnknownEnum = errors.New("unknown enum value")

// parseEnum resolves s against names case-insensitively, then as an index.
// An empty cell is the zero value.
func parseEnum(field string, names []string, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	for i, name := range names {
		if strings.EqualFold(name, s) {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(names) {
		return n, nil
	}
	return 0, fmt.Errorf("%s %q: %w", field, s, ErrUnknownEnum)
}

// ParseDispelType parses a DispelType cell.
func ParseDispelType(s string) (affect.DispelType, error) {
	v, err := parseEnum("dispel type", affect.DispelTypeNames, s)
	return affect.DispelType(v), err
}

// ParseStackPolicy parses a StackPolicy cell.
func ParseStackPolicy(s string) (affect.StackPolicy, error) {
	v, err := parseEnum("stack policy", affect.StackPolicyNames, s)
	return affect.StackPolicy(v), err
}

// ParseRefreshPolicy parses a RefreshPolicy cell.
func ParseRefreshPolicy(s string) (affect.RefreshPolicy, error) {
	v, err := parseEnum("refresh policy", affect.RefreshPolicyNames, s)
	return affect.RefreshPolicy(v), err
}

// ParsePhase parses a Phase cell.
func ParsePhase(s string) (affect.Phase, error) {
	v, err := parseEnum("phase", affect.PhaseNames, s)
	return affect.Phase(v), err
}

// ParseModifierKind parses a ModifierKind cell.
func ParseModifierKind(s string) (affect.ModifierKind, error) {
	v, err := parseEnum("modifier kind", affect.ModifierKindNames, s)
	return affect.ModifierKind(v), err
}

// ParseValueType parses a stat ValueType cell.
func ParseValueType(s string) (affect.ValueType, error) {
	v, err := parseEnum("value type", affect.ValueTypeNames, s)
	return affect.ValueType(v), err
}

// ParseStatOperation parses a StatOperation cell.
func ParseStatOperation(s string) (affect.StatOperation, error) {
	v, err := parseEnum("stat operation", affect.StatOperationNames, s)
	return affect.StatOperation(v), err
}

// ParseCrowdControlKind parses a CrowdControlKind cell.
func ParseCrowdControlKind(s string) (affect.CrowdControlKind, error) {
	v, err := parseEnum("crowd control kind", affect.CrowdControlKindNames, s)
	return affect.CrowdControlKind(v), err
}

// MaxDuration is what table durations too large for time.Duration saturate to.
const MaxDuration = time.Duration(math.MaxInt64)

// Seconds converts a table duration to time.Duration, rounded to the microsecond.
// Values past the time.Duration range (including +Inf) saturate to MaxDuration.
func Seconds(s float64) time.Duration {
	if s <= 0 || math.IsNaN(s) {
		return 0
	}
	us := math.Round(s * 1e6)
	if us >= float64(math.MaxInt64/int64(time.Microsecond)) {
		return MaxDuration
	}
	return time.Duration(us) * time.Microsecond
}

// SplitTags splits a tag cell on commas and whitespace, dropping empties.
func SplitTags(s string) []string {
	tags := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(tags) == 0 {
		return nil
	}
	return tags
}

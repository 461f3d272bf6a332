package types

import "fmt"

// RubricKind selects which of the two mutually exclusive scoring shapes an
// analysis uses. The selector is analysis-level: every vulnerability in a
// snapshot is read through the same rubric.
type RubricKind string

const (
	// RubricStandard is the doctrinal impact/attainability/follow-up rubric
	// with fixed level definitions.
	RubricStandard RubricKind = "STANDARD"
	// RubricCustom uses the same three factors but analyst-defined level
	// labels loaded from configuration.
	RubricCustom RubricKind = "CUSTOM"
)

// AllRubricKinds returns all valid rubric kinds
func AllRubricKinds() []RubricKind {
	return []RubricKind{
		RubricStandard,
		RubricCustom,
	}
}

// IsValid checks if the rubric kind is valid
func (r RubricKind) IsValid() bool {
	switch r {
	case RubricStandard, RubricCustom:
		return true
	default:
		return false
	}
}

// Normalize returns the rubric kind, treating empty as RubricStandard.
func (r RubricKind) Normalize() RubricKind {
	if r == "" {
		return RubricStandard
	}
	return r
}

// String returns the string representation of the rubric kind
func (r RubricKind) String() string {
	return string(r)
}

// ParseRubricKind parses a string into a RubricKind
func ParseRubricKind(s string) (RubricKind, error) {
	kind := RubricKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid rubric kind: %s", s)
	}
	return kind, nil
}

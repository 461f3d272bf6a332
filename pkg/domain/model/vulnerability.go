package model

import "github.com/strat-lab/cogward/pkg/domain/types"

// CriticalVulnerability is an exploitable deficiency in a requirement. It is
// the leaf tier and the only scored tier of the hierarchy.
type CriticalVulnerability struct {
	ID            types.VulnerabilityID
	RequirementID types.RequirementID
	Vulnerability string
	Type          types.VulnerabilityType
	Scoring       ScoreRecord

	// Display-only fields. The engine carries them opaquely and never
	// validates their content.
	RecommendedActions []string
	ExpectedEffect     string
	Confidence         string
}

// FactorSet holds the three ordinal sub-factor scores of a vulnerability.
// The zero value (all factors 0) is the valid representation of an unscored
// vulnerability.
type FactorSet struct {
	Impact        types.Score
	Attainability types.Score
	FollowUp      types.Score
}

// Clamp pins every factor onto the 0-5 scale
func (f FactorSet) Clamp() FactorSet {
	return FactorSet{
		Impact:        f.Impact.Clamp(),
		Attainability: f.Attainability.Clamp(),
		FollowUp:      f.FollowUp.Clamp(),
	}
}

// ScoreRecord is the resolved scoring variant of a vulnerability. Raw input
// carries up to two mutually exclusive factor shapes (standard and custom);
// resolution picks the one declared by the analysis-level rubric exactly once
// at ingestion, so no read site ever branches on which shape is populated.
type ScoreRecord struct {
	Rubric  types.RubricKind
	Factors FactorSet
}

// RawScoring is the unresolved scoring shape as supplied by the editing
// layer. At most one of the two factor sets is meaningful for a given
// analysis; the other is never read.
type RawScoring struct {
	Standard *FactorSet
	Custom   *FactorSet
}

// ResolveScoring selects the factor set declared by the rubric and clamps it
// onto the ordinal scale. A missing factor set resolves to all-zero factors
// rather than an error: partially scored analyses are the common case.
func ResolveScoring(raw RawScoring, rubric types.RubricKind) ScoreRecord {
	kind := rubric.Normalize()

	var factors *FactorSet
	switch kind {
	case types.RubricCustom:
		factors = raw.Custom
	default:
		factors = raw.Standard
	}

	rec := ScoreRecord{Rubric: kind}
	if factors != nil {
		rec.Factors = factors.Clamp()
	}
	return rec
}

// Package config holds analysis-level configuration models: the rubric level
// definitions that give score values their analyst-facing labels.
package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/strat-lab/cogward/pkg/domain/types"
)

// LevelDefinition labels one score value of one factor
type LevelDefinition struct {
	Score       types.Score
	Name        string
	Description string
}

// RubricSchema defines the analyst-facing labels for each sub-factor level.
// The engine never reads labels; they exist for presentation surfaces only.
type RubricSchema struct {
	Impact        []LevelDefinition
	Attainability []LevelDefinition
	FollowUp      []LevelDefinition
}

// Validate checks every level is on the ordinal scale and no factor defines
// the same score twice
func (s *RubricSchema) Validate() error {
	factors := map[string][]LevelDefinition{
		"impact":        s.Impact,
		"attainability": s.Attainability,
		"follow_up":     s.FollowUp,
	}

	for factor, levels := range factors {
		seen := make(map[types.Score]bool)
		for _, level := range levels {
			if err := level.Score.Validate(); err != nil {
				return goerr.Wrap(err, "invalid rubric level", goerr.V("factor", factor))
			}
			if level.Name == "" {
				return goerr.New("rubric level name is required",
					goerr.V("factor", factor), goerr.V("score", level.Score.Int()))
			}
			if seen[level.Score] {
				return goerr.New("duplicate rubric level score",
					goerr.V("factor", factor), goerr.V("score", level.Score.Int()))
			}
			seen[level.Score] = true
		}
	}

	return nil
}

func label(levels []LevelDefinition, score types.Score) string {
	for _, level := range levels {
		if level.Score == score {
			return level.Name
		}
	}
	return ""
}

// ImpactLabel returns the label for an impact score, empty when undefined
func (s *RubricSchema) ImpactLabel(score types.Score) string {
	return label(s.Impact, score)
}

// AttainabilityLabel returns the label for an attainability score
func (s *RubricSchema) AttainabilityLabel(score types.Score) string {
	return label(s.Attainability, score)
}

// FollowUpLabel returns the label for a follow-up score
func (s *RubricSchema) FollowUpLabel(score types.Score) string {
	return label(s.FollowUp, score)
}

// DefaultRubricSchema returns the standard rubric levels used when no custom
// configuration is supplied
func DefaultRubricSchema() *RubricSchema {
	scale := []LevelDefinition{
		{Score: 0, Name: "None"},
		{Score: 1, Name: "Negligible"},
		{Score: 2, Name: "Low"},
		{Score: 3, Name: "Moderate"},
		{Score: 4, Name: "High"},
		{Score: 5, Name: "Severe"},
	}

	return &RubricSchema{
		Impact:        scale,
		Attainability: scale,
		FollowUp:      scale,
	}
}

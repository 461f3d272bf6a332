package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/strat-lab/cogward/pkg/domain/model"
	"github.com/strat-lab/cogward/pkg/domain/types"
)

func TestResolveScoring(t *testing.T) {
	standard := &model.FactorSet{Impact: 4, Attainability: 3, FollowUp: 2}
	custom := &model.FactorSet{Impact: 1, Attainability: 1, FollowUp: 1}

	t.Run("standard rubric reads only the standard shape", func(t *testing.T) {
		rec := model.ResolveScoring(model.RawScoring{Standard: standard, Custom: custom}, types.RubricStandard)
		gt.V(t, rec.Rubric).Equal(types.RubricStandard)
		gt.V(t, rec.Factors).Equal(model.FactorSet{Impact: 4, Attainability: 3, FollowUp: 2})
	})

	t.Run("custom rubric reads only the custom shape", func(t *testing.T) {
		rec := model.ResolveScoring(model.RawScoring{Standard: standard, Custom: custom}, types.RubricCustom)
		gt.V(t, rec.Rubric).Equal(types.RubricCustom)
		gt.V(t, rec.Factors).Equal(model.FactorSet{Impact: 1, Attainability: 1, FollowUp: 1})
	})

	t.Run("missing declared shape resolves to zero factors", func(t *testing.T) {
		rec := model.ResolveScoring(model.RawScoring{Custom: custom}, types.RubricStandard)
		gt.V(t, rec.Factors).Equal(model.FactorSet{})
	})

	t.Run("empty rubric defaults to standard", func(t *testing.T) {
		rec := model.ResolveScoring(model.RawScoring{Standard: standard}, types.RubricKind(""))
		gt.V(t, rec.Rubric).Equal(types.RubricStandard)
		gt.V(t, rec.Factors.Impact).Equal(types.Score(4))
	})

	t.Run("out-of-range factors are clamped", func(t *testing.T) {
		rec := model.ResolveScoring(model.RawScoring{
			Standard: &model.FactorSet{Impact: 9, Attainability: -2, FollowUp: 5},
		}, types.RubricStandard)
		gt.V(t, rec.Factors).Equal(model.FactorSet{Impact: 5, Attainability: 0, FollowUp: 5})
	})
}

package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/strat-lab/cogward/pkg/domain/types"
)

func TestIDValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "simple", id: "cog-1", wantErr: false},
		{name: "uppercase", id: "COG-1", wantErr: false},
		{name: "dotted", id: "adversary.c2", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "trailing separator", id: "cog-", wantErr: true},
		{name: "whitespace", id: "cog 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := []error{
				types.CoGID(tt.id).Validate(),
				types.CapabilityID(tt.id).Validate(),
				types.RequirementID(tt.id).Validate(),
				types.VulnerabilityID(tt.id).Validate(),
			}
			for _, err := range errs {
				if tt.wantErr {
					gt.Error(t, err)
				} else {
					gt.NoError(t, err)
				}
			}
		})
	}
}

func TestScore_Validate(t *testing.T) {
	gt.NoError(t, types.Score(0).Validate())
	gt.NoError(t, types.Score(5).Validate())
	gt.Error(t, types.Score(-1).Validate())
	gt.Error(t, types.Score(6).Validate())
}

func TestScore_Clamp(t *testing.T) {
	gt.V(t, types.Score(-3).Clamp()).Equal(types.Score(0))
	gt.V(t, types.Score(3).Clamp()).Equal(types.Score(3))
	gt.V(t, types.Score(9).Clamp()).Equal(types.Score(5))
}

func TestParseRubricKind(t *testing.T) {
	kind, err := types.ParseRubricKind("STANDARD")
	gt.NoError(t, err)
	gt.V(t, kind).Equal(types.RubricStandard)

	kind, err = types.ParseRubricKind("CUSTOM")
	gt.NoError(t, err)
	gt.V(t, kind).Equal(types.RubricCustom)

	_, err = types.ParseRubricKind("hybrid")
	gt.Error(t, err)
}

func TestRubricKind_Normalize(t *testing.T) {
	gt.V(t, types.RubricKind("").Normalize()).Equal(types.RubricStandard)
	gt.V(t, types.RubricCustom.Normalize()).Equal(types.RubricCustom)
}

func TestActorCategory(t *testing.T) {
	for _, c := range types.AllActorCategories() {
		gt.B(t, c.IsValid()).Describef("category %s should be valid", c).True()
	}
	gt.B(t, types.ActorCategory("NEUTRAL").IsValid()).False()
}

func TestOperationalDomain(t *testing.T) {
	for _, d := range types.AllOperationalDomains() {
		gt.B(t, d.IsValid()).Describef("domain %s should be valid", d).True()
	}
	gt.B(t, types.OperationalDomain("TERRESTRIAL").IsValid()).False()
}

func TestVulnerabilityType_Normalize(t *testing.T) {
	gt.V(t, types.VulnerabilityType("").Normalize()).Equal(types.VulnOther)
	gt.V(t, types.VulnCyber.Normalize()).Equal(types.VulnCyber)
}

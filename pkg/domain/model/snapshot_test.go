package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/strat-lab/cogward/pkg/domain/model"
	"github.com/strat-lab/cogward/pkg/domain/types"
)

const snapshotJSON = `{
  "centers_of_gravity": [
    {"id": "c1", "description": "Integrated air defense", "actor_category": "ADVERSARY", "domain": "MILITARY", "rationale": "Denies air superiority"}
  ],
  "capabilities": [
    {"id": "cap1", "cog_id": "c1", "capability": "Detect inbound aircraft"}
  ],
  "requirements": [
    {"id": "req1", "capability_id": "cap1", "requirement": "Long-range radar coverage"}
  ],
  "vulnerabilities": [
    {
      "id": "v1",
      "requirement_id": "req1",
      "vulnerability": "Radar sites depend on a single power grid",
      "vulnerability_type": "PHYSICAL",
      "scoring": {
        "standard": {"impact": 5, "attainability": 4, "follow_up": 3},
        "custom": {"impact": 1, "attainability": 1, "follow_up": 1}
      },
      "recommended_actions": ["Target substation feeds"],
      "expected_effect": "Radar coverage gaps",
      "confidence": "HIGH"
    }
  ]
}`

func TestDecodeSnapshot(t *testing.T) {
	snapshot, err := model.DecodeSnapshot([]byte(snapshotJSON), types.RubricStandard)
	gt.NoError(t, err).Required()

	cogs, caps, reqs, vulns := snapshot.Counts()
	gt.V(t, cogs).Equal(1)
	gt.V(t, caps).Equal(1)
	gt.V(t, reqs).Equal(1)
	gt.V(t, vulns).Equal(1)

	cog := snapshot.CentersOfGravity[0]
	gt.V(t, cog.ID).Equal(types.CoGID("c1"))
	gt.V(t, cog.Actor).Equal(types.ActorAdversary)
	gt.V(t, cog.Domain).Equal(types.DomainMilitary)

	vuln := snapshot.Vulnerabilities[0]
	gt.V(t, vuln.RequirementID).Equal(types.RequirementID("req1"))
	gt.V(t, vuln.Type).Equal(types.VulnPhysical)
	gt.V(t, vuln.Scoring.Rubric).Equal(types.RubricStandard)
	gt.V(t, vuln.Scoring.Factors).Equal(model.FactorSet{Impact: 5, Attainability: 4, FollowUp: 3})
	gt.A(t, vuln.RecommendedActions).Length(1)
}

func TestDecodeSnapshot_CustomRubric(t *testing.T) {
	snapshot, err := model.DecodeSnapshot([]byte(snapshotJSON), types.RubricCustom)
	gt.NoError(t, err).Required()

	vuln := snapshot.Vulnerabilities[0]
	gt.V(t, vuln.Scoring.Rubric).Equal(types.RubricCustom)
	gt.V(t, vuln.Scoring.Factors).Equal(model.FactorSet{Impact: 1, Attainability: 1, FollowUp: 1})
}

func TestDecodeSnapshot_InvalidJSON(t *testing.T) {
	_, err := model.DecodeSnapshot([]byte(`{"centers_of_gravity": [`), types.RubricStandard)
	gt.Error(t, err)
}

func TestDecodeSnapshot_MissingScoring(t *testing.T) {
	data := `{"vulnerabilities": [{"id": "v1", "requirement_id": "req1", "vulnerability": "No score yet"}]}`
	snapshot, err := model.DecodeSnapshot([]byte(data), types.RubricStandard)
	gt.NoError(t, err).Required()

	vuln := snapshot.Vulnerabilities[0]
	gt.V(t, vuln.Scoring.Factors).Equal(model.FactorSet{})
	gt.V(t, vuln.Type).Equal(types.VulnOther)
}

func TestSnapshot_Clone(t *testing.T) {
	original, err := model.DecodeSnapshot([]byte(snapshotJSON), types.RubricStandard)
	gt.NoError(t, err).Required()

	cloned := original.Clone()
	cloned.CentersOfGravity[0].Description = "changed"
	cloned.Vulnerabilities[0].RecommendedActions[0] = "changed"

	gt.V(t, original.CentersOfGravity[0].Description).Equal("Integrated air defense")
	gt.V(t, original.Vulnerabilities[0].RecommendedActions[0]).Equal("Target substation feeds")
}

func TestNewAnalysisID(t *testing.T) {
	id := model.NewAnalysisID()
	if id == "" {
		t.Error("NewAnalysisID() returned empty string")
	}
	if len(id) != 36 {
		t.Errorf("Expected UUID length 36, got %d", len(id))
	}
	if id == model.NewAnalysisID() {
		t.Error("Two generated IDs should be different")
	}
}

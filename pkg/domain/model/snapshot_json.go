package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/strat-lab/cogward/pkg/domain/types"
)

// Wire format of an analyst-exported snapshot. Entity arrays are expected in
// creation order; the decoder preserves that order.
type rawSnapshot struct {
	CentersOfGravity []rawCoG           `json:"centers_of_gravity"`
	Capabilities     []rawCapability    `json:"capabilities"`
	Requirements     []rawRequirement   `json:"requirements"`
	Vulnerabilities  []rawVulnerability `json:"vulnerabilities"`
}

type rawCoG struct {
	ID            string `json:"id"`
	Description   string `json:"description"`
	ActorCategory string `json:"actor_category"`
	Domain        string `json:"domain"`
	Rationale     string `json:"rationale"`
}

type rawCapability struct {
	ID         string `json:"id"`
	CoGID      string `json:"cog_id"`
	Capability string `json:"capability"`
}

type rawRequirement struct {
	ID           string `json:"id"`
	CapabilityID string `json:"capability_id"`
	Requirement  string `json:"requirement"`
}

type rawVulnerability struct {
	ID                 string     `json:"id"`
	RequirementID      string     `json:"requirement_id"`
	Vulnerability      string     `json:"vulnerability"`
	VulnerabilityType  string     `json:"vulnerability_type"`
	Scoring            rawScoring `json:"scoring"`
	RecommendedActions []string   `json:"recommended_actions"`
	ExpectedEffect     string     `json:"expected_effect"`
	Confidence         string     `json:"confidence"`
}

type rawScoring struct {
	Standard *rawFactors `json:"standard"`
	Custom   *rawFactors `json:"custom"`
}

type rawFactors struct {
	Impact        int `json:"impact"`
	Attainability int `json:"attainability"`
	FollowUp      int `json:"follow_up"`
}

func (f *rawFactors) factorSet() *FactorSet {
	if f == nil {
		return nil
	}
	return &FactorSet{
		Impact:        types.Score(f.Impact),
		Attainability: types.Score(f.Attainability),
		FollowUp:      types.Score(f.FollowUp),
	}
}

// DecodeSnapshot parses an analyst-exported JSON snapshot and resolves every
// vulnerability's scoring record against the analysis-level rubric. Malformed
// JSON is the only error condition; dangling references and missing scores
// are left for the dependency resolver and scorer to handle as warnings and
// zero defaults.
func DecodeSnapshot(data []byte, rubric types.RubricKind) (*Snapshot, error) {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, goerr.Wrap(err, "failed to decode snapshot JSON")
	}

	snapshot := &Snapshot{}

	for _, c := range raw.CentersOfGravity {
		snapshot.CentersOfGravity = append(snapshot.CentersOfGravity, &CenterOfGravity{
			ID:          types.CoGID(c.ID),
			Description: c.Description,
			Actor:       types.ActorCategory(c.ActorCategory),
			Domain:      types.OperationalDomain(c.Domain),
			Rationale:   c.Rationale,
		})
	}

	for _, c := range raw.Capabilities {
		snapshot.Capabilities = append(snapshot.Capabilities, &CriticalCapability{
			ID:         types.CapabilityID(c.ID),
			CoGID:      types.CoGID(c.CoGID),
			Capability: c.Capability,
		})
	}

	for _, r := range raw.Requirements {
		snapshot.Requirements = append(snapshot.Requirements, &CriticalRequirement{
			ID:           types.RequirementID(r.ID),
			CapabilityID: types.CapabilityID(r.CapabilityID),
			Requirement:  r.Requirement,
		})
	}

	for _, v := range raw.Vulnerabilities {
		scoring := ResolveScoring(RawScoring{
			Standard: v.Scoring.Standard.factorSet(),
			Custom:   v.Scoring.Custom.factorSet(),
		}, rubric)

		snapshot.Vulnerabilities = append(snapshot.Vulnerabilities, &CriticalVulnerability{
			ID:                 types.VulnerabilityID(v.ID),
			RequirementID:      types.RequirementID(v.RequirementID),
			Vulnerability:      v.Vulnerability,
			Type:               types.VulnerabilityType(v.VulnerabilityType).Normalize(),
			Scoring:            scoring,
			RecommendedActions: v.RecommendedActions,
			ExpectedEffect:     v.ExpectedEffect,
			Confidence:         v.Confidence,
		})
	}

	return snapshot, nil
}

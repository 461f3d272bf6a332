package engine

import (
	"github.com/strat-lab/cogward/pkg/domain/types"
)

// CoGSummary is the per-COG rollup of reachable entities and their mean
// composite score
type CoGSummary struct {
	CoGID              types.CoGID
	CapabilityCount    int
	RequirementCount   int
	VulnerabilityCount int
	AverageScore       float64
}

// Summarize rolls up the entities reachable from one COG within this
// subgraph. AverageScore is exactly 0 when no vulnerability is reachable,
// never NaN. A cogID absent from the subgraph yields a zero summary.
func (s *Subgraph) Summarize(cogID types.CoGID) CoGSummary {
	summary := CoGSummary{CoGID: cogID}

	caps := make(map[types.CapabilityID]struct{})
	for _, capability := range s.Capabilities {
		if capability.CoGID == cogID {
			caps[capability.ID] = struct{}{}
		}
	}
	summary.CapabilityCount = len(caps)

	reqs := make(map[types.RequirementID]struct{})
	for _, req := range s.Requirements {
		if _, ok := caps[req.CapabilityID]; ok {
			reqs[req.ID] = struct{}{}
		}
	}
	summary.RequirementCount = len(reqs)

	var total int
	for _, vuln := range s.Vulnerabilities {
		if _, ok := reqs[vuln.RequirementID]; ok {
			summary.VulnerabilityCount++
			total += Composite(vuln)
		}
	}
	if summary.VulnerabilityCount > 0 {
		summary.AverageScore = float64(total) / float64(summary.VulnerabilityCount)
	}

	return summary
}

// SummarizeAll returns one summary per COG in the subgraph, in creation order
func (s *Subgraph) SummarizeAll() []CoGSummary {
	summaries := make([]CoGSummary, 0, len(s.CentersOfGravity))
	for _, cog := range s.CentersOfGravity {
		summaries = append(summaries, s.Summarize(cog.ID))
	}
	return summaries
}

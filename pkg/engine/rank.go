package engine

import (
	"sort"

	"github.com/strat-lab/cogward/pkg/domain/model"
)

// RankedVulnerability is one row of the prioritized targeting list
type RankedVulnerability struct {
	Priority      int
	Composite     int
	Vulnerability *model.CriticalVulnerability
}

// Rank orders vulnerabilities by composite score descending and attaches a
// 1-based priority. The sort is stable: equal scores keep their input
// (creation) order, so repeated calls on the same input produce the same
// list and downstream exports are reproducible bit for bit.
func Rank(vulns []*model.CriticalVulnerability) []RankedVulnerability {
	ranked := make([]RankedVulnerability, len(vulns))
	for i, vuln := range vulns {
		ranked[i] = RankedVulnerability{
			Composite:     Composite(vuln),
			Vulnerability: vuln,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Composite > ranked[j].Composite
	})

	for i := range ranked {
		ranked[i].Priority = i + 1
	}
	return ranked
}

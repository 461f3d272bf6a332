package engine

import "github.com/strat-lab/cogward/pkg/domain/model"

// Composite returns the targeting priority score of a vulnerability: the sum
// of impact, attainability and follow-up on the 0-5 ordinal scale, so the
// result ranges 0-15. The scoring record was resolved against the declared
// rubric at ingestion; a missing sub-factor contributes 0.
func Composite(vuln *model.CriticalVulnerability) int {
	f := vuln.Scoring.Factors
	return f.Impact.Int() + f.Attainability.Int() + f.FollowUp.Int()
}

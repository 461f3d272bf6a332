package engine_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/strat-lab/cogward/pkg/domain/model"
	"github.com/strat-lab/cogward/pkg/engine"
)

func TestRank_StableDescending(t *testing.T) {
	// v1 and v3 tie at 12; v1 was created first and must stay ahead.
	vulns := []*model.CriticalVulnerability{
		vulnerability("v1", "req1", 5, 4, 3), // 12
		vulnerability("v2", "req1", 3, 3, 3), // 9
		vulnerability("v3", "req1", 4, 4, 4), // 12
	}

	ranked := engine.Rank(vulns)
	gt.A(t, ranked).Length(3)

	gt.V(t, ranked[0].Vulnerability.ID.String()).Equal("v1")
	gt.V(t, ranked[1].Vulnerability.ID.String()).Equal("v3")
	gt.V(t, ranked[2].Vulnerability.ID.String()).Equal("v2")

	gt.V(t, ranked[0].Priority).Equal(1)
	gt.V(t, ranked[1].Priority).Equal(2)
	gt.V(t, ranked[2].Priority).Equal(3)

	gt.V(t, ranked[0].Composite).Equal(12)
	gt.V(t, ranked[2].Composite).Equal(9)
}

func TestRank_ReproducibleAcrossCalls(t *testing.T) {
	g := engine.Resolve(testSnapshot())
	sub := g.Full()

	first := engine.Rank(sub.Vulnerabilities)
	second := engine.Rank(sub.Vulnerabilities)

	gt.A(t, first).Length(len(second))
	for i := range first {
		gt.V(t, first[i].Vulnerability.ID).Equal(second[i].Vulnerability.ID)
		gt.V(t, first[i].Priority).Equal(second[i].Priority)
	}
}

func TestRank_DoesNotReorderInput(t *testing.T) {
	vulns := []*model.CriticalVulnerability{
		vulnerability("low", "req1", 1, 0, 0),
		vulnerability("high", "req1", 5, 5, 5),
	}

	ranked := engine.Rank(vulns)
	gt.V(t, ranked[0].Vulnerability.ID.String()).Equal("high")

	// Input slice stays in creation order
	gt.V(t, vulns[0].ID.String()).Equal("low")
	gt.V(t, vulns[1].ID.String()).Equal("high")
}

func TestRank_Empty(t *testing.T) {
	gt.A(t, engine.Rank(nil)).Length(0)
}

package engine_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/strat-lab/cogward/pkg/domain/model"
	"github.com/strat-lab/cogward/pkg/domain/types"
	"github.com/strat-lab/cogward/pkg/engine"
)

func vulnIDs(sub *engine.Subgraph) []string {
	ids := make([]string, 0, len(sub.Vulnerabilities))
	for _, v := range sub.Vulnerabilities {
		ids = append(ids, v.ID.String())
	}
	return ids
}

func TestFilter_EmptyExclusionIsIdentity(t *testing.T) {
	g := engine.Resolve(testSnapshot())

	sub := g.Filter(nil)
	gt.A(t, sub.CentersOfGravity).Length(2)
	gt.A(t, sub.Capabilities).Length(3)
	gt.A(t, sub.Requirements).Length(3)
	gt.A(t, sub.Vulnerabilities).Length(5)

	// One edge per surviving non-root entity
	gt.A(t, sub.Edges).Length(11)
}

func TestFilter_CoGCascadesToWholeSubtree(t *testing.T) {
	g := engine.Resolve(testSnapshot())

	sub := g.Filter([]string{"c1"})

	gt.A(t, sub.CentersOfGravity).Length(1)
	gt.V(t, sub.CentersOfGravity[0].ID).Equal(types.CoGID("c2"))
	gt.A(t, sub.Capabilities).Length(1)
	gt.V(t, sub.Capabilities[0].ID).Equal(types.CapabilityID("cap3"))
	gt.A(t, sub.Requirements).Length(1)
	gt.V(t, vulnIDs(sub)).Equal([]string{"v5"})

	// Nothing outside the c1 subtree was touched
	gt.A(t, sub.Edges).Length(3)
}

func TestFilter_CapabilityLeavesSiblingsUntouched(t *testing.T) {
	g := engine.Resolve(testSnapshot())

	sub := g.Filter([]string{"cap1"})

	gt.A(t, sub.CentersOfGravity).Length(2)
	gt.A(t, sub.Capabilities).Length(2) // cap2 and cap3 survive
	gt.V(t, vulnIDs(sub)).Equal([]string{"v4", "v5"})
}

func TestFilter_RequirementRemovesOnlyItsVulnerabilities(t *testing.T) {
	g := engine.Resolve(testSnapshot())

	sub := g.Filter([]string{"req1"})

	gt.A(t, sub.CentersOfGravity).Length(2)
	gt.A(t, sub.Capabilities).Length(3)
	gt.A(t, sub.Requirements).Length(2)
	gt.V(t, vulnIDs(sub)).Equal([]string{"v4", "v5"})

	// Removal never cascades upward
	gt.V(t, sub.Capabilities[0].ID).Equal(types.CapabilityID("cap1"))
}

func TestFilter_SingleVulnerability(t *testing.T) {
	g := engine.Resolve(testSnapshot())

	sub := g.Filter([]string{"v2"})
	gt.V(t, vulnIDs(sub)).Equal([]string{"v1", "v3", "v4", "v5"})
	gt.A(t, sub.Requirements).Length(3)
}

func TestFilter_UnknownIDIsNoOp(t *testing.T) {
	g := engine.Resolve(testSnapshot())

	full := g.Filter(nil)
	sub := g.Filter([]string{"zzz"})

	gt.V(t, vulnIDs(sub)).Equal(vulnIDs(full))
	gt.A(t, sub.Edges).Length(len(full.Edges))
}

func TestFilter_MonotonicShrinkage(t *testing.T) {
	g := engine.Resolve(testSnapshot())

	e1 := []string{"v2"}
	e2 := []string{"v2", "cap2", "c2"}

	sub1 := g.Filter(e1)
	sub2 := g.Filter(e2)

	gt.B(t, len(sub2.Vulnerabilities) <= len(sub1.Vulnerabilities)).True()
	gt.V(t, vulnIDs(sub2)).Equal([]string{"v1", "v3"})
}

func TestFilter_Deterministic(t *testing.T) {
	g := engine.Resolve(testSnapshot())

	excluded := []string{"cap1", "v5"}
	first := g.Filter(excluded)
	second := g.Filter(excluded)

	gt.V(t, vulnIDs(first)).Equal(vulnIDs(second))
	gt.V(t, first.Edges).Equal(second.Edges)
}

func TestFilter_DoesNotMutateInputs(t *testing.T) {
	snapshot := testSnapshot()
	g := engine.Resolve(snapshot)

	excluded := []string{"c1", "zzz"}
	_ = g.Filter(excluded)

	gt.V(t, excluded).Equal([]string{"c1", "zzz"})
	gt.A(t, snapshot.Vulnerabilities).Length(5)
}

func TestFilter_PreservesCreationOrderAcrossParents(t *testing.T) {
	// Vulnerabilities interleaved across requirements must come back in
	// snapshot order, not grouped by parent.
	snapshot := &model.Snapshot{
		CentersOfGravity: []*model.CenterOfGravity{cog("c1")},
		Capabilities:     []*model.CriticalCapability{capability("cap1", "c1")},
		Requirements: []*model.CriticalRequirement{
			requirement("req1", "cap1"),
			requirement("req2", "cap1"),
		},
		Vulnerabilities: []*model.CriticalVulnerability{
			vulnerability("va", "req2", 1, 1, 1),
			vulnerability("vb", "req1", 2, 2, 2),
			vulnerability("vc", "req2", 3, 3, 3),
		},
	}

	sub := engine.Resolve(snapshot).Full()
	gt.V(t, vulnIDs(sub)).Equal([]string{"va", "vb", "vc"})
}

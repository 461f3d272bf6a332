package engine

import (
	"github.com/strat-lab/cogward/pkg/domain/model"
	"github.com/strat-lab/cogward/pkg/domain/types"
)

// Edge is a surviving parent-child link. Both endpoints are guaranteed to be
// present in the subgraph that carries the edge.
type Edge struct {
	ParentID string
	ChildID  string
}

// Subgraph is the result of a cascading filter: the entities that survive an
// exclusion set, per tier, plus the edges whose both endpoints survive.
// Slices preserve snapshot creation order so downstream ranking and exports
// are reproducible.
type Subgraph struct {
	CentersOfGravity []*model.CenterOfGravity
	Capabilities     []*model.CriticalCapability
	Requirements     []*model.CriticalRequirement
	Vulnerabilities  []*model.CriticalVulnerability
	Edges            []Edge
}

// Filter simulates neutralizing the given entities: an entity survives iff
// neither it nor any ancestor up to its COG root is excluded. The cascade is
// downward only; removing a vulnerability never affects its requirement, and
// siblings of a removed entity are untouched. Ids that match no entity are
// ignored. The exclusion slice is caller-owned and never mutated.
func (g *Graph) Filter(excludedIDs []string) *Subgraph {
	excluded := make(map[string]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}

	sub := &Subgraph{}

	survivingCoGs := make(map[types.CoGID]struct{}, len(g.cogs))
	for _, cog := range g.snapshot.CentersOfGravity {
		if g.cogs[cog.ID] != cog {
			continue // duplicate id, first occurrence already indexed
		}
		if _, gone := excluded[cog.ID.String()]; gone {
			continue
		}
		survivingCoGs[cog.ID] = struct{}{}
		sub.CentersOfGravity = append(sub.CentersOfGravity, cog)
	}

	survivingCaps := make(map[types.CapabilityID]struct{}, len(g.capabilities))
	for _, capability := range g.snapshot.Capabilities {
		if g.capabilities[capability.ID] != capability {
			continue // orphan or duplicate
		}
		if _, ok := survivingCoGs[capability.CoGID]; !ok {
			continue
		}
		if _, gone := excluded[capability.ID.String()]; gone {
			continue
		}
		survivingCaps[capability.ID] = struct{}{}
		sub.Capabilities = append(sub.Capabilities, capability)
		sub.Edges = append(sub.Edges, Edge{ParentID: capability.CoGID.String(), ChildID: capability.ID.String()})
	}

	survivingReqs := make(map[types.RequirementID]struct{}, len(g.requirements))
	for _, req := range g.snapshot.Requirements {
		if g.requirements[req.ID] != req {
			continue
		}
		if _, ok := survivingCaps[req.CapabilityID]; !ok {
			continue
		}
		if _, gone := excluded[req.ID.String()]; gone {
			continue
		}
		survivingReqs[req.ID] = struct{}{}
		sub.Requirements = append(sub.Requirements, req)
		sub.Edges = append(sub.Edges, Edge{ParentID: req.CapabilityID.String(), ChildID: req.ID.String()})
	}

	for _, vuln := range g.snapshot.Vulnerabilities {
		if g.vulnerabilities[vuln.ID] != vuln {
			continue
		}
		if _, ok := survivingReqs[vuln.RequirementID]; !ok {
			continue
		}
		if _, gone := excluded[vuln.ID.String()]; gone {
			continue
		}
		sub.Vulnerabilities = append(sub.Vulnerabilities, vuln)
		sub.Edges = append(sub.Edges, Edge{ParentID: vuln.RequirementID.String(), ChildID: vuln.ID.String()})
	}

	return sub
}

// Full returns the unfiltered subgraph, equivalent to Filter(nil)
func (g *Graph) Full() *Subgraph {
	return g.Filter(nil)
}

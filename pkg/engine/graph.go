// Package engine implements the COG dependency graph and vulnerability
// targeting computations: referential integrity resolution, cascading
// what-if filtering, composite scoring, ranking and per-COG aggregation.
//
// Every operation is a pure function over an immutable snapshot. Inputs are
// never mutated, outputs are freshly constructed, and repeated calls with
// identical inputs return identical results. Nothing in this package is fatal
// to the caller: dangling references become orphan warnings, missing scores
// become zeroes, unknown ids become no-ops.
package engine

import (
	"github.com/strat-lab/cogward/pkg/domain/model"
	"github.com/strat-lab/cogward/pkg/domain/types"
)

// Tier identifies one of the four hierarchy levels
type Tier string

const (
	TierCoG           Tier = "COG"
	TierCapability    Tier = "CAPABILITY"
	TierRequirement   Tier = "REQUIREMENT"
	TierVulnerability Tier = "VULNERABILITY"
)

// OrphanReason explains why an entity was excluded from the graph
type OrphanReason string

const (
	// OrphanMissingParent marks an entity whose declared parent id does not
	// resolve to an existing entity of the parent tier.
	OrphanMissingParent OrphanReason = "MISSING_PARENT"
	// OrphanDuplicateID marks an entity whose id collides with an earlier
	// entity of the same tier. The first occurrence stays in the graph.
	OrphanDuplicateID OrphanReason = "DUPLICATE_ID"
)

// Orphan is a referential integrity warning. Orphaned entities are excluded
// from every traversal but never raised as errors.
type Orphan struct {
	Tier     Tier
	EntityID string
	ParentID string
	Reason   OrphanReason
}

// Graph holds the resolved id and parent/child indices of a snapshot. Built
// once per snapshot in a single linear pass; lookups are O(1) per id and
// O(children) per parent.
type Graph struct {
	snapshot *model.Snapshot

	cogs            map[types.CoGID]*model.CenterOfGravity
	capabilities    map[types.CapabilityID]*model.CriticalCapability
	requirements    map[types.RequirementID]*model.CriticalRequirement
	vulnerabilities map[types.VulnerabilityID]*model.CriticalVulnerability

	capsByCoG  map[types.CoGID][]types.CapabilityID
	reqsByCap  map[types.CapabilityID][]types.RequirementID
	vulnsByReq map[types.RequirementID][]types.VulnerabilityID

	orphans []Orphan
}

// Resolve builds the graph indices from a snapshot. Orphans (dangling parent
// references, duplicate ids) are recorded as warnings and the affected
// entities are left out of the indices, which transitively excludes their
// descendants from all traversals.
func Resolve(snapshot *model.Snapshot) *Graph {
	g := &Graph{
		snapshot:        snapshot,
		cogs:            make(map[types.CoGID]*model.CenterOfGravity, len(snapshot.CentersOfGravity)),
		capabilities:    make(map[types.CapabilityID]*model.CriticalCapability, len(snapshot.Capabilities)),
		requirements:    make(map[types.RequirementID]*model.CriticalRequirement, len(snapshot.Requirements)),
		vulnerabilities: make(map[types.VulnerabilityID]*model.CriticalVulnerability, len(snapshot.Vulnerabilities)),
		capsByCoG:       make(map[types.CoGID][]types.CapabilityID),
		reqsByCap:       make(map[types.CapabilityID][]types.RequirementID),
		vulnsByReq:      make(map[types.RequirementID][]types.VulnerabilityID),
	}

	for _, cog := range snapshot.CentersOfGravity {
		if _, exists := g.cogs[cog.ID]; exists {
			g.orphans = append(g.orphans, Orphan{
				Tier:     TierCoG,
				EntityID: cog.ID.String(),
				Reason:   OrphanDuplicateID,
			})
			continue
		}
		g.cogs[cog.ID] = cog
	}

	for _, capability := range snapshot.Capabilities {
		if _, exists := g.capabilities[capability.ID]; exists {
			g.orphans = append(g.orphans, Orphan{
				Tier:     TierCapability,
				EntityID: capability.ID.String(),
				ParentID: capability.CoGID.String(),
				Reason:   OrphanDuplicateID,
			})
			continue
		}
		if _, ok := g.cogs[capability.CoGID]; !ok {
			g.orphans = append(g.orphans, Orphan{
				Tier:     TierCapability,
				EntityID: capability.ID.String(),
				ParentID: capability.CoGID.String(),
				Reason:   OrphanMissingParent,
			})
			continue
		}
		g.capabilities[capability.ID] = capability
		g.capsByCoG[capability.CoGID] = append(g.capsByCoG[capability.CoGID], capability.ID)
	}

	for _, req := range snapshot.Requirements {
		if _, exists := g.requirements[req.ID]; exists {
			g.orphans = append(g.orphans, Orphan{
				Tier:     TierRequirement,
				EntityID: req.ID.String(),
				ParentID: req.CapabilityID.String(),
				Reason:   OrphanDuplicateID,
			})
			continue
		}
		if _, ok := g.capabilities[req.CapabilityID]; !ok {
			g.orphans = append(g.orphans, Orphan{
				Tier:     TierRequirement,
				EntityID: req.ID.String(),
				ParentID: req.CapabilityID.String(),
				Reason:   OrphanMissingParent,
			})
			continue
		}
		g.requirements[req.ID] = req
		g.reqsByCap[req.CapabilityID] = append(g.reqsByCap[req.CapabilityID], req.ID)
	}

	for _, vuln := range snapshot.Vulnerabilities {
		if _, exists := g.vulnerabilities[vuln.ID]; exists {
			g.orphans = append(g.orphans, Orphan{
				Tier:     TierVulnerability,
				EntityID: vuln.ID.String(),
				ParentID: vuln.RequirementID.String(),
				Reason:   OrphanDuplicateID,
			})
			continue
		}
		if _, ok := g.requirements[vuln.RequirementID]; !ok {
			g.orphans = append(g.orphans, Orphan{
				Tier:     TierVulnerability,
				EntityID: vuln.ID.String(),
				ParentID: vuln.RequirementID.String(),
				Reason:   OrphanMissingParent,
			})
			continue
		}
		g.vulnerabilities[vuln.ID] = vuln
		g.vulnsByReq[vuln.RequirementID] = append(g.vulnsByReq[vuln.RequirementID], vuln.ID)
	}

	return g
}

// Orphans returns the referential integrity warnings collected during
// resolution. The returned slice is a copy.
func (g *Graph) Orphans() []Orphan {
	orphans := make([]Orphan, len(g.orphans))
	copy(orphans, g.orphans)
	return orphans
}

// CoG looks up a reachable COG by id
func (g *Graph) CoG(id types.CoGID) (*model.CenterOfGravity, bool) {
	cog, ok := g.cogs[id]
	return cog, ok
}

// Capability looks up a reachable capability by id
func (g *Graph) Capability(id types.CapabilityID) (*model.CriticalCapability, bool) {
	c, ok := g.capabilities[id]
	return c, ok
}

// Requirement looks up a reachable requirement by id
func (g *Graph) Requirement(id types.RequirementID) (*model.CriticalRequirement, bool) {
	req, ok := g.requirements[id]
	return req, ok
}

// Vulnerability looks up a reachable vulnerability by id
func (g *Graph) Vulnerability(id types.VulnerabilityID) (*model.CriticalVulnerability, bool) {
	vuln, ok := g.vulnerabilities[id]
	return vuln, ok
}

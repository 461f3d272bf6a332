package model

// Snapshot is an immutable view of the four entity collections at a point in
// time. Slice order is creation order, which downstream ranking uses as the
// deterministic tie-breaker. The engine never creates, mutates or deletes
// entities; lifecycle belongs to the editing layer that produced the snapshot.
type Snapshot struct {
	CentersOfGravity []*CenterOfGravity
	Capabilities     []*CriticalCapability
	Requirements     []*CriticalRequirement
	Vulnerabilities  []*CriticalVulnerability
}

// Counts returns the raw collection sizes in tier order (COG, capability,
// requirement, vulnerability)
func (s *Snapshot) Counts() (int, int, int, int) {
	return len(s.CentersOfGravity), len(s.Capabilities), len(s.Requirements), len(s.Vulnerabilities)
}

// Clone returns a deep copy of the snapshot. Repositories hand out clones so
// no caller can mutate stored state through a returned pointer.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	copied := &Snapshot{
		CentersOfGravity: make([]*CenterOfGravity, len(s.CentersOfGravity)),
		Capabilities:     make([]*CriticalCapability, len(s.Capabilities)),
		Requirements:     make([]*CriticalRequirement, len(s.Requirements)),
		Vulnerabilities:  make([]*CriticalVulnerability, len(s.Vulnerabilities)),
	}

	for i, cog := range s.CentersOfGravity {
		c := *cog
		copied.CentersOfGravity[i] = &c
	}
	for i, capability := range s.Capabilities {
		c := *capability
		copied.Capabilities[i] = &c
	}
	for i, req := range s.Requirements {
		r := *req
		copied.Requirements[i] = &r
	}
	for i, vuln := range s.Vulnerabilities {
		v := *vuln
		if vuln.RecommendedActions != nil {
			v.RecommendedActions = make([]string, len(vuln.RecommendedActions))
			copy(v.RecommendedActions, vuln.RecommendedActions)
		}
		copied.Vulnerabilities[i] = &v
	}

	return copied
}

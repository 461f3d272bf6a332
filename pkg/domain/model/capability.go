package model

import "github.com/strat-lab/cogward/pkg/domain/types"

// CriticalCapability is a key ability a COG possesses that is essential to
// exercising its power
type CriticalCapability struct {
	ID         types.CapabilityID
	CoGID      types.CoGID
	Capability string
}

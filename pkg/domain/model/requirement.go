package model

import "github.com/strat-lab/cogward/pkg/domain/types"

// CriticalRequirement is a condition or resource a capability depends on to
// function
type CriticalRequirement struct {
	ID           types.RequirementID
	CapabilityID types.CapabilityID
	Requirement  string
}

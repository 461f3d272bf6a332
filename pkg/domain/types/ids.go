package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9]+([._-][a-zA-Z0-9]+)*$`)

// CoGID identifies a Center of Gravity. IDs are caller-assigned, opaque and
// immutable once the entity enters a snapshot.
type CoGID string

// Validate checks if the CoGID is valid
func (c CoGID) Validate() error {
	if c == "" {
		return goerr.New("COG ID cannot be empty")
	}
	if !idPattern.MatchString(string(c)) {
		return goerr.New("COG ID must be alphanumeric with separators", goerr.V("id", c))
	}
	return nil
}

// String returns the string representation of CoGID
func (c CoGID) String() string {
	return string(c)
}

// CapabilityID identifies a Critical Capability
type CapabilityID string

// Validate checks if the CapabilityID is valid
func (c CapabilityID) Validate() error {
	if c == "" {
		return goerr.New("capability ID cannot be empty")
	}
	if !idPattern.MatchString(string(c)) {
		return goerr.New("capability ID must be alphanumeric with separators", goerr.V("id", c))
	}
	return nil
}

// String returns the string representation of CapabilityID
func (c CapabilityID) String() string {
	return string(c)
}

// RequirementID identifies a Critical Requirement
type RequirementID string

// Validate checks if the RequirementID is valid
func (r RequirementID) Validate() error {
	if r == "" {
		return goerr.New("requirement ID cannot be empty")
	}
	if !idPattern.MatchString(string(r)) {
		return goerr.New("requirement ID must be alphanumeric with separators", goerr.V("id", r))
	}
	return nil
}

// String returns the string representation of RequirementID
func (r RequirementID) String() string {
	return string(r)
}

// VulnerabilityID identifies a Critical Vulnerability
type VulnerabilityID string

// Validate checks if the VulnerabilityID is valid
func (v VulnerabilityID) Validate() error {
	if v == "" {
		return goerr.New("vulnerability ID cannot be empty")
	}
	if !idPattern.MatchString(string(v)) {
		return goerr.New("vulnerability ID must be alphanumeric with separators", goerr.V("id", v))
	}
	return nil
}

// String returns the string representation of VulnerabilityID
func (v VulnerabilityID) String() string {
	return string(v)
}

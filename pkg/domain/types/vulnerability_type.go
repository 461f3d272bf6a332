package types

import "fmt"

// VulnerabilityType classifies the nature of a critical vulnerability
type VulnerabilityType string

const (
	VulnPhysical      VulnerabilityType = "PHYSICAL"
	VulnCyber         VulnerabilityType = "CYBER"
	VulnHuman         VulnerabilityType = "HUMAN"
	VulnLogistical    VulnerabilityType = "LOGISTICAL"
	VulnInformational VulnerabilityType = "INFORMATIONAL"
	VulnOther         VulnerabilityType = "OTHER"
)

// AllVulnerabilityTypes returns all valid vulnerability types
func AllVulnerabilityTypes() []VulnerabilityType {
	return []VulnerabilityType{
		VulnPhysical,
		VulnCyber,
		VulnHuman,
		VulnLogistical,
		VulnInformational,
		VulnOther,
	}
}

// IsValid checks if the vulnerability type is valid
func (v VulnerabilityType) IsValid() bool {
	switch v {
	case VulnPhysical,
		VulnCyber,
		VulnHuman,
		VulnLogistical,
		VulnInformational,
		VulnOther:
		return true
	default:
		return false
	}
}

// Normalize returns the type, treating empty as VulnOther.
func (v VulnerabilityType) Normalize() VulnerabilityType {
	if v == "" {
		return VulnOther
	}
	return v
}

// String returns the string representation of the vulnerability type
func (v VulnerabilityType) String() string {
	return string(v)
}

// ParseVulnerabilityType parses a string into a VulnerabilityType
func ParseVulnerabilityType(s string) (VulnerabilityType, error) {
	vt := VulnerabilityType(s)
	if !vt.IsValid() {
		return "", fmt.Errorf("invalid vulnerability type: %s", s)
	}
	return vt, nil
}

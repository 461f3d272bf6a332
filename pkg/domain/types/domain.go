package types

import "fmt"

// OperationalDomain represents the domain a COG operates in (DIMEFIL plus
// cyber and space)
type OperationalDomain string

const (
	DomainDiplomatic     OperationalDomain = "DIPLOMATIC"
	DomainInformation    OperationalDomain = "INFORMATION"
	DomainMilitary       OperationalDomain = "MILITARY"
	DomainEconomic       OperationalDomain = "ECONOMIC"
	DomainFinancial      OperationalDomain = "FINANCIAL"
	DomainIntelligence   OperationalDomain = "INTELLIGENCE"
	DomainLawEnforcement OperationalDomain = "LAW_ENFORCEMENT"
	DomainCyber          OperationalDomain = "CYBER"
	DomainSpace          OperationalDomain = "SPACE"
)

// AllOperationalDomains returns all valid operational domains
func AllOperationalDomains() []OperationalDomain {
	return []OperationalDomain{
		DomainDiplomatic,
		DomainInformation,
		DomainMilitary,
		DomainEconomic,
		DomainFinancial,
		DomainIntelligence,
		DomainLawEnforcement,
		DomainCyber,
		DomainSpace,
	}
}

// IsValid checks if the operational domain is valid
func (d OperationalDomain) IsValid() bool {
	switch d {
	case DomainDiplomatic,
		DomainInformation,
		DomainMilitary,
		DomainEconomic,
		DomainFinancial,
		DomainIntelligence,
		DomainLawEnforcement,
		DomainCyber,
		DomainSpace:
		return true
	default:
		return false
	}
}

// String returns the string representation of the operational domain
func (d OperationalDomain) String() string {
	return string(d)
}

// ParseOperationalDomain parses a string into an OperationalDomain
func ParseOperationalDomain(s string) (OperationalDomain, error) {
	domain := OperationalDomain(s)
	if !domain.IsValid() {
		return "", fmt.Errorf("invalid operational domain: %s", s)
	}
	return domain, nil
}

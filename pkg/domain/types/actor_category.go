package types

import "fmt"

// ActorCategory represents whose source of power a COG describes
type ActorCategory string

const (
	ActorFriendly   ActorCategory = "FRIENDLY"
	ActorAdversary  ActorCategory = "ADVERSARY"
	ActorHostNation ActorCategory = "HOST_NATION"
	ActorThirdParty ActorCategory = "THIRD_PARTY"
)

// AllActorCategories returns all valid actor categories
func AllActorCategories() []ActorCategory {
	return []ActorCategory{
		ActorFriendly,
		ActorAdversary,
		ActorHostNation,
		ActorThirdParty,
	}
}

// IsValid checks if the actor category is valid
func (a ActorCategory) IsValid() bool {
	switch a {
	case ActorFriendly,
		ActorAdversary,
		ActorHostNation,
		ActorThirdParty:
		return true
	default:
		return false
	}
}

// String returns the string representation of the actor category
func (a ActorCategory) String() string {
	return string(a)
}

// ParseActorCategory parses a string into an ActorCategory
func ParseActorCategory(s string) (ActorCategory, error) {
	category := ActorCategory(s)
	if !category.IsValid() {
		return "", fmt.Errorf("invalid actor category: %s", s)
	}
	return category, nil
}

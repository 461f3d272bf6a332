package model

import "github.com/strat-lab/cogward/pkg/domain/types"

// CenterOfGravity is the root of the four-tier hierarchy: the source of power
// that gives an actor its primary strength and freedom of action. It has no
// parent reference.
type CenterOfGravity struct {
	ID          types.CoGID
	Description string
	Actor       types.ActorCategory
	Domain      types.OperationalDomain
	Rationale   string
}

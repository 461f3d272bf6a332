package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/strat-lab/cogward/pkg/domain/types"
)

// AnalysisID is a unique identifier for an analysis
type AnalysisID string

// NewAnalysisID generates a new unique analysis ID
func NewAnalysisID() AnalysisID {
	return AnalysisID(uuid.New().String())
}

// String returns the string representation of AnalysisID
func (a AnalysisID) String() string {
	return string(a)
}

// Analysis binds an entity snapshot to its analysis-level settings: the name
// chosen by the analyst and the rubric every vulnerability score is read
// through.
type Analysis struct {
	ID        AnalysisID
	Name      string
	Rubric    types.RubricKind
	Snapshot  *Snapshot
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the analysis
func (a *Analysis) Clone() *Analysis {
	if a == nil {
		return nil
	}
	copied := *a
	copied.Snapshot = a.Snapshot.Clone()
	return &copied
}

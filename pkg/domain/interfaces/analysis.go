package interfaces

import (
	"context"

	"github.com/strat-lab/cogward/pkg/domain/model"
)

// AnalysisRepository stores analysis snapshots. Implementations must hand out
// deep copies so stored state cannot be mutated through returned pointers.
type AnalysisRepository interface {
	Put(ctx context.Context, analysis *model.Analysis) (*model.Analysis, error)
	Get(ctx context.Context, id model.AnalysisID) (*model.Analysis, error)
	List(ctx context.Context) ([]*model.Analysis, error)
	Delete(ctx context.Context, id model.AnalysisID) error
}

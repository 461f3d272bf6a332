package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/strat-lab/cogward/pkg/domain/interfaces"
	"github.com/strat-lab/cogward/pkg/domain/model"
	"github.com/strat-lab/cogward/pkg/domain/types"
	"github.com/strat-lab/cogward/pkg/engine"
	"github.com/strat-lab/cogward/pkg/utils/logging"
)

// AnalysisUseCase orchestrates snapshot ingestion and the engine operations
// consumed by the HTTP surface and the CLI
type AnalysisUseCase struct {
	repo interfaces.Repository
}

// NewAnalysisUseCase creates a new AnalysisUseCase
func NewAnalysisUseCase(repo interfaces.Repository) *AnalysisUseCase {
	return &AnalysisUseCase{repo: repo}
}

// Ingest decodes an analyst-exported snapshot, resolves every scoring record
// against the rubric and stores the analysis. Referential integrity warnings
// are logged but never block ingestion.
func (uc *AnalysisUseCase) Ingest(ctx context.Context, name string, rubric types.RubricKind, snapshotJSON []byte) (*model.Analysis, error) {
	if name == "" {
		return nil, goerr.New("analysis name is required")
	}

	snapshot, err := model.DecodeSnapshot(snapshotJSON, rubric)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode snapshot")
	}

	created, err := uc.repo.Analysis().Put(ctx, &model.Analysis{
		Name:     name,
		Rubric:   rubric.Normalize(),
		Snapshot: snapshot,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store analysis")
	}

	logMalformedIDs(ctx, created.ID, created.Snapshot)
	logOrphans(ctx, created.ID, engine.Resolve(created.Snapshot).Orphans())
	return created, nil
}

// Get returns the stored analysis
func (uc *AnalysisUseCase) Get(ctx context.Context, id model.AnalysisID) (*model.Analysis, error) {
	analysis, err := uc.repo.Analysis().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get analysis", goerr.V(AnalysisIDKey, id))
	}
	return analysis, nil
}

// List returns all stored analyses, newest first
func (uc *AnalysisUseCase) List(ctx context.Context) ([]*model.Analysis, error) {
	analyses, err := uc.repo.Analysis().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list analyses")
	}
	return analyses, nil
}

// Delete removes a stored analysis
func (uc *AnalysisUseCase) Delete(ctx context.Context, id model.AnalysisID) error {
	if err := uc.repo.Analysis().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete analysis", goerr.V(AnalysisIDKey, id))
	}
	return nil
}

// ResolveGraph loads the analysis and builds its dependency graph
func (uc *AnalysisUseCase) ResolveGraph(ctx context.Context, id model.AnalysisID) (*engine.Graph, error) {
	analysis, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return engine.Resolve(analysis.Snapshot), nil
}

// logMalformedIDs warns about entity ids that fail format validation. Like
// orphans, malformed ids never block ingestion; the engine treats ids as
// opaque keys and the editing layer owns their lifecycle.
func logMalformedIDs(ctx context.Context, id model.AnalysisID, snapshot *model.Snapshot) {
	logger := logging.From(ctx)
	warn := func(tier string, err error) {
		if err == nil {
			return
		}
		logger.Warn("malformed entity id",
			AnalysisIDKey, id.String(),
			"tier", tier,
			"error", err.Error(),
		)
	}

	for _, cog := range snapshot.CentersOfGravity {
		warn("cog", cog.ID.Validate())
	}
	for _, capability := range snapshot.Capabilities {
		warn("capability", capability.ID.Validate())
	}
	for _, req := range snapshot.Requirements {
		warn("requirement", req.ID.Validate())
	}
	for _, vuln := range snapshot.Vulnerabilities {
		warn("vulnerability", vuln.ID.Validate())
	}
}

func logOrphans(ctx context.Context, id model.AnalysisID, orphans []engine.Orphan) {
	logger := logging.From(ctx)
	for _, orphan := range orphans {
		logger.Warn("orphaned entity excluded from graph",
			AnalysisIDKey, id.String(),
			"tier", string(orphan.Tier),
			"entity_id", orphan.EntityID,
			"parent_id", orphan.ParentID,
			"reason", string(orphan.Reason),
		)
	}
}

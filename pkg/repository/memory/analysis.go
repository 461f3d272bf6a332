package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/strat-lab/cogward/pkg/domain/model"
)

type analysisRepository struct {
	mu      sync.RWMutex
	entries map[model.AnalysisID]*model.Analysis
}

func newAnalysisRepository() *analysisRepository {
	return &analysisRepository{
		entries: make(map[model.AnalysisID]*model.Analysis),
	}
}

func (r *analysisRepository) Put(ctx context.Context, analysis *model.Analysis) (*model.Analysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := analysis.Clone()
	now := time.Now().UTC()

	if stored.ID == "" {
		stored.ID = model.NewAnalysisID()
	}
	stored.Rubric = stored.Rubric.Normalize()
	if stored.Snapshot == nil {
		stored.Snapshot = &model.Snapshot{}
	}
	if existing, ok := r.entries[stored.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	r.entries[stored.ID] = stored
	return stored.Clone(), nil
}

func (r *analysisRepository) Get(ctx context.Context, id model.AnalysisID) (*model.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	analysis, ok := r.entries[id]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, "no such analysis", goerr.V("analysisID", id))
	}
	return analysis.Clone(), nil
}

func (r *analysisRepository) List(ctx context.Context) ([]*model.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	analyses := make([]*model.Analysis, 0, len(r.entries))
	for _, analysis := range r.entries {
		analyses = append(analyses, analysis.Clone())
	}

	// Newest first, id as tie-breaker for a deterministic listing
	sort.Slice(analyses, func(i, j int) bool {
		if analyses[i].CreatedAt.Equal(analyses[j].CreatedAt) {
			return analyses[i].ID < analyses[j].ID
		}
		return analyses[i].CreatedAt.After(analyses[j].CreatedAt)
	})

	return analyses, nil
}

func (r *analysisRepository) Delete(ctx context.Context, id model.AnalysisID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return goerr.Wrap(ErrNotFound, "no such analysis", goerr.V("analysisID", id))
	}
	delete(r.entries, id)
	return nil
}

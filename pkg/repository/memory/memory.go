// Package memory provides an in-memory repository implementation. It is the
// default backend: the engine operates on per-invocation snapshots, so
// durable storage belongs to whatever editing layer feeds it.
package memory

import (
	"github.com/strat-lab/cogward/pkg/domain/interfaces"
)

// Repository is the in-memory implementation of interfaces.Repository
type Repository struct {
	analysis *analysisRepository
}

// New creates a new in-memory repository
func New() *Repository {
	return &Repository{
		analysis: newAnalysisRepository(),
	}
}

// Analysis returns the analysis repository
func (r *Repository) Analysis() interfaces.AnalysisRepository {
	return r.analysis
}

// Close releases resources. No-op for the in-memory backend.
func (r *Repository) Close() error {
	return nil
}

package usecase

import (
	"github.com/strat-lab/cogward/pkg/domain/interfaces"
)

// UseCases bundles the application use cases over a repository
type UseCases struct {
	repo interfaces.Repository

	Analysis *AnalysisUseCase
}

// New creates the use case bundle
func New(repo interfaces.Repository) *UseCases {
	return &UseCases{
		repo:     repo,
		Analysis: NewAnalysisUseCase(repo),
	}
}

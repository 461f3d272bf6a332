package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/strat-lab/cogward/pkg/domain/model"
	"github.com/strat-lab/cogward/pkg/domain/types"
	"github.com/strat-lab/cogward/pkg/engine"
)

// WhatIfResult is the outcome of a neutralization simulation: the surviving
// subgraph plus per-COG rollups under that subgraph
type WhatIfResult struct {
	Subgraph  *engine.Subgraph
	Summaries []engine.CoGSummary
}

// WhatIf simulates neutralizing the excluded entities. An empty exclusion
// set returns the full graph; ids matching no entity are ignored.
func (uc *AnalysisUseCase) WhatIf(ctx context.Context, id model.AnalysisID, excludedIDs []string) (*WhatIfResult, error) {
	graph, err := uc.ResolveGraph(ctx, id)
	if err != nil {
		return nil, err
	}

	sub := graph.Filter(excludedIDs)
	return &WhatIfResult{
		Subgraph:  sub,
		Summaries: sub.SummarizeAll(),
	}, nil
}

// Rankings returns the prioritized vulnerability list of an analysis,
// optionally under an active exclusion set
func (uc *AnalysisUseCase) Rankings(ctx context.Context, id model.AnalysisID, excludedIDs []string) ([]engine.RankedVulnerability, error) {
	graph, err := uc.ResolveGraph(ctx, id)
	if err != nil {
		return nil, err
	}
	return engine.Rank(graph.Filter(excludedIDs).Vulnerabilities), nil
}

// Summary rolls up one COG of an analysis, optionally under an active
// exclusion set. An unknown COG id yields a zero summary, not an error.
func (uc *AnalysisUseCase) Summary(ctx context.Context, id model.AnalysisID, cogID types.CoGID, excludedIDs []string) (engine.CoGSummary, error) {
	graph, err := uc.ResolveGraph(ctx, id)
	if err != nil {
		return engine.CoGSummary{}, goerr.Wrap(err, "failed to summarize COG", goerr.V(CoGIDKey, cogID))
	}
	return graph.Filter(excludedIDs).Summarize(cogID), nil
}

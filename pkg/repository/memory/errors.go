package memory

import "github.com/strat-lab/cogward/pkg/domain/interfaces"

// ErrNotFound is returned when the requested analysis does not exist
var ErrNotFound = interfaces.ErrAnalysisNotFound

package interfaces

import "errors"

// ErrAnalysisNotFound is the backend-agnostic not-found sentinel. Repository
// implementations wrap it so callers can test with errors.Is without knowing
// the backend.
var ErrAnalysisNotFound = errors.New("analysis not found")

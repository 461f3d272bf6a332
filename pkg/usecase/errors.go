package usecase

// Context keys for error values
const (
	AnalysisIDKey = "analysis_id"
	CoGIDKey      = "cog_id"
)

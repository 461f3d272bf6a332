package interfaces

// Repository defines the interface for analysis persistence. The engine
// itself never touches a repository; snapshots are read out and handed to it
// as immutable values.
type Repository interface {
	Analysis() AnalysisRepository
	Close() error
}

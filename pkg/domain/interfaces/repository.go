package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Task() TaskRepository
	Report() ReportRepository
	Department() DepartmentRepository
	User() UserRepository
	Ministry() MinistryRepository

	// Close releases backend resources
	Close() error
}

package models

// ProjectRecord represents one task row of the project dataset.
// Records are immutable once loaded.
type ProjectRecord struct {
	// Project this task belongs to
	ProjectID string

	// Task name within the project
	TaskName string

	// Schedule metrics
	EstimatedDays float64
	ActualDays    float64

	// Resource metrics
	ResourceAllocated string
	Efficiency        float64
	IdleTime          float64

	// Risk descriptors
	RiskType    string
	Likelihood  string
	ImpactLevel string
}

// Overrun returns the difference between actual and estimated days.
// Positive values mean the task ran over its estimate.
func (r ProjectRecord) Overrun() float64 {
	return r.ActualDays - r.EstimatedDays
}

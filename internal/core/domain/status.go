package domain

// Status is the lifecycle label of a campaign. The set is open: values
// other than the constants below are kept verbatim and rendered neutrally.
type Status string

const (
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
)

// IsActive reports an exact, case-sensitive match on StatusActive.
func (s Status) IsActive() bool {
	return s == StatusActive
}

// PipelineStatus is the decorative health label of a campaign's data
// pipeline. Unknown values are allowed and get the warning color.
type PipelineStatus string

const (
	PipelineHealthy   PipelineStatus = "Healthy"
	PipelineWarning   PipelineStatus = "Warning"
	PipelineCompleted PipelineStatus = "Completed"
)

// IsHealthy reports whether the pipeline label counts as good news.
func (p PipelineStatus) IsHealthy() bool {
	return p == PipelineHealthy || p == PipelineCompleted
}

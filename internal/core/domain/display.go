package domain

// Row is the per-campaign display model consumed by the UI adapters.
type Row struct {
	Name             string         `json:"name"`
	StartDateText    string         `json:"start_date"`
	EndDateText      string         `json:"end_date"`
	Status           Status         `json:"status"`
	StatusColor      string         `json:"status_color"`
	ProgressFraction float64        `json:"progress_fraction"`
	Conversions      int64          `json:"conversions"`
	Spend            float64        `json:"spend"`
	CTR              float64        `json:"ctr"`
	PipelineStatus   PipelineStatus `json:"pipeline_status"`
	PipelineColor    string         `json:"pipeline_color"`
}

// Summary holds the key metrics across all campaigns. AverageCTR is zero
// when Campaigns is zero; surfaces should render it as "N/A" then.
type Summary struct {
	Campaigns        int     `json:"campaigns"`
	TotalConversions int64   `json:"total_conversions"`
	TotalSpend       float64 `json:"total_spend"`
	AverageCTR       float64 `json:"average_ctr"`
}

// PipelineCount is one entry of a PipelineTally.
type PipelineCount struct {
	Status PipelineStatus `json:"status"`
	Count  int            `json:"count"`
}

// PipelineTally counts campaigns per pipeline status in order of first
// occurrence.
type PipelineTally []PipelineCount

// Get returns the count for status, or zero when it was never observed.
func (t PipelineTally) Get(status PipelineStatus) int {
	for _, pc := range t {
		if pc.Status == status {
			return pc.Count
		}
	}
	return 0
}

// Total sums all counts.
func (t PipelineTally) Total() int {
	total := 0
	for _, pc := range t {
		total += pc.Count
	}
	return total
}

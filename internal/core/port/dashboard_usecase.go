package port

import (
	"context"

	"campaign-dashboard/internal/core/dashboard"
	"campaign-dashboard/internal/core/domain"
)

// DashboardUseCase defines the operations exposed to the UI adapters. Each
// call takes a fresh snapshot from the campaign source and recomputes all
// derived values; nothing is stored between calls.
type DashboardUseCase interface {
	// Dashboard returns the complete render-ready view model.
	Dashboard(ctx context.Context) (*Dashboard, error)

	// Summary returns only the key metrics and the active counter.
	Summary(ctx context.Context) (*SummaryResp, error)

	// Pipelines returns the pipeline status tally.
	Pipelines(ctx context.Context) (domain.PipelineTally, error)
}

// Dashboard is the render-ready output of one pass over the campaigns. It
// is a DTO consumed by the HTML, JSON and terminal adapters.
type Dashboard struct {
	Rows        []domain.Row         `json:"rows"`
	Summary     domain.Summary       `json:"summary"`
	Pipelines   domain.PipelineTally `json:"pipelines"`
	ActiveCount int                  `json:"active_count"`
	Palette     dashboard.Palette    `json:"-"`
}

// SummaryResp pairs the key metrics with the sidebar active counter.
type SummaryResp struct {
	domain.Summary
	ActiveCount int `json:"active_count"`
}

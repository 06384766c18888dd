package usecase

import (
	"context"
	"fmt"

	"campaign-dashboard/internal/core/dashboard"
	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
)

// SnapshotRecorder observes each snapshot taken from the campaign source.
// It is satisfied by *observability.Metrics.
type SnapshotRecorder interface {
	ObserveSnapshot(campaigns, active int)
}

// DashboardUseCase loads campaigns from a repository and derives the
// dashboard view model. It implements port.DashboardUseCase.
type DashboardUseCase struct {
	repo     port.CampaignRepository
	palette  dashboard.Palette
	recorder SnapshotRecorder
}

// NewDashboardUseCase creates a usecase with the given source and palette.
// recorder may be nil.
func NewDashboardUseCase(repo port.CampaignRepository, palette dashboard.Palette, recorder SnapshotRecorder) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, palette: palette, recorder: recorder}
}

// Dashboard takes a fresh snapshot and derives every display value from it.
func (u *DashboardUseCase) Dashboard(ctx context.Context) (*port.Dashboard, error) {
	campaigns, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &port.Dashboard{
		Rows:        dashboard.FormatRows(campaigns, u.palette),
		Summary:     dashboard.ComputeSummary(campaigns),
		Pipelines:   dashboard.TallyPipelineStatus(campaigns),
		ActiveCount: dashboard.CountActive(campaigns),
		Palette:     u.palette,
	}, nil
}

// Summary returns the key metrics and the active counter.
func (u *DashboardUseCase) Summary(ctx context.Context) (*port.SummaryResp, error) {
	campaigns, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &port.SummaryResp{
		Summary:     dashboard.ComputeSummary(campaigns),
		ActiveCount: dashboard.CountActive(campaigns),
	}, nil
}

// Pipelines returns the pipeline status tally.
func (u *DashboardUseCase) Pipelines(ctx context.Context) (domain.PipelineTally, error) {
	campaigns, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return dashboard.TallyPipelineStatus(campaigns), nil
}

// snapshot reads all campaigns and sanitises them so every surface applies
// the same defaulting rules.
func (u *DashboardUseCase) snapshot(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := u.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	campaigns = domain.SanitizeAll(campaigns)
	if u.recorder != nil {
		u.recorder.ObserveSnapshot(len(campaigns), dashboard.CountActive(campaigns))
	}
	return campaigns, nil
}

package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"campaign-dashboard/internal/core/dashboard"
	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
	"campaign-dashboard/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

type recorderStub struct {
	mu       sync.Mutex
	calls    int
	lastSize int
	active   int
}

func (r *recorderStub) ObserveSnapshot(campaigns, active int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.lastSize = campaigns
	r.active = active
}

func campaigns() []domain.Campaign {
	return []domain.Campaign{
		{Name: "Summer Cashback Blast", Status: domain.StatusActive, Progress: 55, Conversions: 1200, Spend: 25000, CTR: 2.1, PipelineStatus: domain.PipelineHealthy},
		{Name: "SafePay Awareness", Status: domain.StatusCompleted, Progress: 100, Conversions: 3100, Spend: 40000, CTR: 3.7, PipelineStatus: domain.PipelineCompleted},
		{Name: "Digital Card Push", Status: domain.StatusActive, Progress: 35, Conversions: 480, Spend: 7000, CTR: 1.6, PipelineStatus: domain.PipelineHealthy},
		{Name: "Refer-A-Friend", Status: domain.StatusActive, Progress: 22, Conversions: 220, Spend: 3000, CTR: 1.1, PipelineStatus: domain.PipelineWarning},
		{Name: "Winter Rewards Wrap-up", Status: domain.StatusCompleted, Progress: 100, Conversions: 4100, Spend: 60000, CTR: 4.4, PipelineStatus: domain.PipelineCompleted},
	}
}

// TestDashboardDerivesEveryValue ensures one snapshot feeds rows, summary,
// tally and the active counter.
func TestDashboardDerivesEveryValue(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		ListCampaigns(mock.Anything).
		Return(campaigns(), nil).
		Once()

	rec := &recorderStub{}
	svc := NewDashboardUseCase(repo, dashboard.DefaultPalette(), rec)

	got, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard error: %v", err)
	}
	if len(got.Rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(got.Rows))
	}
	if got.Summary.TotalConversions != 9100 || got.Summary.TotalSpend != 135000 || got.Summary.AverageCTR != 2.58 {
		t.Fatalf("unexpected summary: %+v", got.Summary)
	}
	if got.ActiveCount != 3 {
		t.Fatalf("expected 3 active, got %d", got.ActiveCount)
	}
	if got.Pipelines.Get(domain.PipelineHealthy) != 2 || got.Pipelines.Get(domain.PipelineWarning) != 1 {
		t.Fatalf("unexpected tally: %+v", got.Pipelines)
	}
	if got.Rows[0].StatusColor != dashboard.DefaultPalette().Accent {
		t.Fatalf("active row should use accent color, got %q", got.Rows[0].StatusColor)
	}
	if rec.calls != 1 || rec.lastSize != 5 || rec.active != 3 {
		t.Fatalf("unexpected recorder state: %+v", rec)
	}
}

// TestDashboardSanitizesRecords ensures malformed source data never reaches
// the aggregates.
func TestDashboardSanitizesRecords(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		ListCampaigns(mock.Anything).
		Return([]domain.Campaign{
			{Name: "", Progress: 150, Conversions: -10, Spend: -5, CTR: -1},
			{Name: "ok", Progress: -3, Conversions: 10, Spend: 5, CTR: 1},
		}, nil)

	svc := NewDashboardUseCase(repo, dashboard.DefaultPalette(), nil)
	got, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard error: %v", err)
	}
	if got.Summary.TotalConversions != 10 || got.Summary.TotalSpend != 5 || got.Summary.AverageCTR != 0.5 {
		t.Fatalf("unexpected summary: %+v", got.Summary)
	}
	if got.Rows[0].Name != domain.UntitledName {
		t.Fatalf("expected blank name defaulted, got %q", got.Rows[0].Name)
	}
	if got.Rows[0].ProgressFraction != 1 || got.Rows[1].ProgressFraction != 0 {
		t.Fatalf("progress not clamped: %v, %v", got.Rows[0].ProgressFraction, got.Rows[1].ProgressFraction)
	}
}

// TestDashboardEmptySource ensures an empty snapshot renders without errors.
func TestDashboardEmptySource(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		ListCampaigns(mock.Anything).
		Return(nil, nil)

	svc := NewDashboardUseCase(repo, dashboard.DefaultPalette(), nil)
	got, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if got.Campaigns != 0 || got.TotalConversions != 0 || got.TotalSpend != 0 || got.AverageCTR != 0 || got.ActiveCount != 0 {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}

// TestSourceErrorIsWrapped ensures repository failures surface with context.
func TestSourceErrorIsWrapped(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		ListCampaigns(mock.Anything).
		Return(nil, port.ErrSourceUnavailable)

	svc := NewDashboardUseCase(repo, dashboard.DefaultPalette(), nil)
	if _, err := svc.Pipelines(context.Background()); !errors.Is(err, port.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if _, err := svc.Dashboard(context.Background()); !errors.Is(err, port.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

// TestConcurrentRenders ensures concurrent requests each get their own,
// identical snapshot-derived results.
func TestConcurrentRenders(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		ListCampaigns(mock.Anything).
		RunAndReturn(func(context.Context) ([]domain.Campaign, error) {
			return campaigns(), nil
		})

	rec := &recorderStub{}
	svc := NewDashboardUseCase(repo, dashboard.DefaultPalette(), rec)

	const count = 10
	results := make([]*port.Dashboard, count)
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < count; i++ {
		g.Go(func() error {
			res, err := svc.Dashboard(ctx)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent render failed: %v", err)
	}

	for i, res := range results {
		if res == nil || res.Summary.TotalConversions != 9100 {
			t.Fatalf("render %d: unexpected result %+v", i, res)
		}
	}
	if rec.calls != count {
		t.Fatalf("expected %d snapshots, got %d", count, rec.calls)
	}
}

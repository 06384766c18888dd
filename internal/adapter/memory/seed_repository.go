package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campaign-dashboard/internal/core/domain"
)

// seedNamespace derives stable campaign IDs from names so the seed can be
// inserted repeatedly without duplicates.
var seedNamespace = uuid.MustParse("6f1c9a52-3b7e-4d0a-9c1e-2a4b8d7e5f10")

type seedEntry struct {
	name        string
	startOffset int // days relative to today
	endOffset   int
	status      domain.Status
	progress    int
	conversions int64
	spend       float64
	ctr         float64
	pipeline    domain.PipelineStatus
}

var seedEntries = []seedEntry{
	{"Summer Cashback Blast", -30, 30, domain.StatusActive, 55, 1200, 25000, 2.1, domain.PipelineHealthy},
	{"SafePay Awareness", -60, -5, domain.StatusCompleted, 100, 3100, 40000, 3.7, domain.PipelineCompleted},
	{"Digital Card Push", -7, 14, domain.StatusActive, 35, 480, 7000, 1.6, domain.PipelineHealthy},
	{"Refer-A-Friend", -15, 45, domain.StatusActive, 22, 220, 3000, 1.1, domain.PipelineWarning},
	{"Winter Rewards Wrap-up", -120, -20, domain.StatusCompleted, 100, 4100, 60000, 4.4, domain.PipelineCompleted},
}

// SeedCampaigns returns the demo campaigns with dates placed around now.
func SeedCampaigns(now time.Time) []domain.Campaign {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out := make([]domain.Campaign, 0, len(seedEntries))
	for _, e := range seedEntries {
		out = append(out, domain.Campaign{
			ID:             uuid.NewSHA1(seedNamespace, []byte(e.name)),
			Name:           e.name,
			StartDate:      today.AddDate(0, 0, e.startOffset),
			EndDate:        today.AddDate(0, 0, e.endOffset),
			Status:         e.status,
			Progress:       e.progress,
			Conversions:    e.conversions,
			Spend:          e.spend,
			CTR:            e.ctr,
			PipelineStatus: e.pipeline,
		})
	}
	return out
}

// SeedRepository serves the built-in demo campaigns. Dates are computed on
// every call so a long-running server keeps them relative to the current day.
type SeedRepository struct {
	now func() time.Time
}

// NewSeedRepository returns a repository using the wall clock.
func NewSeedRepository() *SeedRepository {
	return &SeedRepository{now: time.Now}
}

// WithNow overrides the clock for testing.
func (r *SeedRepository) WithNow(fn func() time.Time) {
	if fn != nil {
		r.now = fn
	}
}

// ListCampaigns returns a fresh copy of the seed campaigns.
func (r *SeedRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SeedCampaigns(r.now()), nil
}

package port

import (
	"context"
	"errors"

	"campaign-dashboard/internal/core/domain"
)

var (
	// ErrUnknownSource is returned when the configured source kind has no
	// adapter.
	ErrUnknownSource = errors.New("unknown campaign source")
	// ErrSourceUnavailable wraps failures to reach a campaign source.
	ErrSourceUnavailable = errors.New("campaign source unavailable")
)

// CampaignRepository is the outbound port supplying campaign records. The
// dashboard only reads from it; whether records come from a seed, a file or
// a database is up to the implementation. Implementations must be safe for
// concurrent use.
type CampaignRepository interface {
	// ListCampaigns returns a snapshot of all campaigns in display order.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
}

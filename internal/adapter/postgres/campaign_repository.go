package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const listCampaignsQuery = `
        SELECT
            id,
            name,
            start_date,
            end_date,
            status,
            progress,
            conversions,
            spend::float8,
            ctr,
            pipeline_status
        FROM campaigns
        ORDER BY created_at, name`

// ListCampaigns returns all campaigns in display order.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, listCampaignsQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrSourceUnavailable, err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var (
			c        domain.Campaign
			status   string
			pipeline string
		)
		err := row.Scan(
			&c.ID,
			&c.Name,
			&c.StartDate,
			&c.EndDate,
			&status,
			&c.Progress,
			&c.Conversions,
			&c.Spend,
			&c.CTR,
			&pipeline,
		)
		c.Status = domain.Status(status)
		c.PipelineStatus = domain.PipelineStatus(pipeline)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}
	return campaigns, nil
}

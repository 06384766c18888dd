package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-dashboard/internal/core/domain"
)

// Seed inserts demo campaigns. Rows whose ID already exists are left as
// they are, so seeding twice is harmless. It returns the number of rows
// inserted.
func Seed(ctx context.Context, db *pgxpool.Pool, campaigns []domain.Campaign) (int64, error) {
	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var inserted int64
	for i, c := range campaigns {
		// stagger created_at so listing order follows the slice order
		offset := float64(i) / 1000
		tag, execErr := tx.Exec(ctx, `INSERT INTO campaigns
    (id, name, start_date, end_date, status, progress, conversions, spend, ctr, pipeline_status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10, now() + make_interval(secs => $11)) ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, c.StartDate, c.EndDate, string(c.Status), c.Progress, c.Conversions, c.Spend, c.CTR, string(c.PipelineStatus), offset)
		if execErr != nil {
			err = execErr
			return 0, err
		}
		inserted += tag.RowsAffected()
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}

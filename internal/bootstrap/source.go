// Package bootstrap wires configuration into concrete adapters for the
// binaries under cmd/.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"campaign-dashboard/internal/adapter/fixture"
	"campaign-dashboard/internal/adapter/memory"
	"campaign-dashboard/internal/adapter/postgres"
	"campaign-dashboard/internal/config"
	"campaign-dashboard/internal/config/configs"
	"campaign-dashboard/internal/core/port"
	"campaign-dashboard/internal/db"
)

// CampaignSource builds the repository selected by cfg.Source.Kind. The
// returned close function releases any resources and is never nil.
func CampaignSource(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.CampaignRepository, func(), error) {
	noop := func() {}
	switch cfg.Source.Kind {
	case configs.SourceSeed, "":
		logger.Info("using built-in seed campaigns")
		return memory.NewSeedRepository(), noop, nil
	case configs.SourceFile:
		logger.Info("using fixture file", slog.String("path", cfg.Source.FixturePath))
		return fixture.NewYAMLRepository(cfg.Source.FixturePath), noop, nil
	case configs.SourcePostgres:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, noop, fmt.Errorf("%w: %v", port.ErrSourceUnavailable, err)
		}
		logger.Info("using postgres campaigns")
		return postgres.NewCampaignRepository(pool), pool.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", port.ErrUnknownSource, cfg.Source.Kind)
	}
}

package bootstrap

import (
	"context"
	"log/slog"

	pricingapi "pricing-api"
	"pricing-api/internal/infra/seed"
	sqlc "pricing-api/internal/infra/sqlc/generated"
	"pricing-api/internal/pkg/config"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(RegisterSeeder),
)

// RegisterSeeder loads schema and seed data before the server starts; a failure aborts startup.
func RegisterSeeder(lc fx.Lifecycle, cfg config.Config, queries seed.SeedQueries, db sqlc.DBTX, logger *slog.Logger) {
	if !cfg.Seed.Enabled {
		logger.Info("Seeding disabled")
		return
	}

	seeder := seed.NewSeeder(queries, db, pricingapi.Assets, cfg, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return seeder.Run(ctx)
		},
	})
}

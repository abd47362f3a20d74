package components

import (
	"pricing-api/internal/pkg/config"
	"pricing-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) queries.CacheTTL {
		return queries.CacheTTL(cfg.Redis.TTL)
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPriceQueries,
	),
)

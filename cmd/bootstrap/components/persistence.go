package components

import (
	"pricing-api/internal/infra/cache"
	"pricing-api/internal/infra/repository"
	"pricing-api/internal/infra/seed"
	sqlc "pricing-api/internal/infra/sqlc/generated"
	"pricing-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	fx.Annotate(
		NewSQLQueries,
		fx.As(new(seed.SeedQueries)),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.PriceReadQueries)),
		),
		fx.Annotate(
			repository.NewPriceRepository,
			fx.As(new(queries.PriceStore)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			cache.NewPriceRedisCache,
			fx.As(new(queries.PriceCache)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

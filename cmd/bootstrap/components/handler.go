package components

import (
	"context"

	"pricing-api/internal/handler"
	"pricing-api/internal/handler/api"
	"pricing-api/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPriceHandler,
		NewHealthHandler,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHealthHandler(cfg config.Config, pool *pgxpool.Pool, client *redis.Client) *api.HealthHandler {
	return api.NewHealthHandler(cfg.Redis.Timeout,
		api.HealthCheck{Name: "postgres", Ping: pool.Ping},
		api.HealthCheck{Name: "redis", Ping: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}},
	)
}

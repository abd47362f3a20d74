package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"pricing-api/internal/domain/price"
	"pricing-api/internal/infra"

	"github.com/redis/go-redis/v9"
)

// PriceRedisCache stores the full candidate list of a resolution key as one JSON array.
type PriceRedisCache struct {
	client redis.Cmdable
	logger *slog.Logger
}

func NewPriceRedisCache(client redis.Cmdable, logger *slog.Logger) *PriceRedisCache {
	return &PriceRedisCache{
		client: client,
		logger: logger,
	}
}

func (c *PriceRedisCache) Find(ctx context.Context, key price.ResolutionKey) ([]price.Price, bool, error) {
	raw, err := c.client.Get(ctx, key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to read prices from redis", err, infra.KindCacheFailure)
	}

	var prices []price.Price
	if err := json.Unmarshal(raw, &prices); err != nil {
		return nil, false, infra.WrapRepoErr("failed to decode cached prices", err, infra.KindDecodeFailure)
	}
	if len(prices) == 0 {
		return nil, false, nil
	}

	c.logger.DebugContext(ctx, "Found cache entry", slog.String("key", key.String()), slog.Int("candidates", len(prices)))
	return prices, true, nil
}

func (c *PriceRedisCache) Save(ctx context.Context, key price.ResolutionKey, prices []price.Price, ttl time.Duration) error {
	payload, err := json.Marshal(prices)
	if err != nil {
		return infra.WrapRepoErr("failed to encode prices for redis", err, infra.KindDecodeFailure)
	}

	if err := c.client.Set(ctx, key.String(), payload, ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save prices to redis", err, infra.KindCacheFailure)
	}

	c.logger.DebugContext(ctx, "Saved prices to redis",
		slog.String("key", key.String()),
		slog.Int("candidates", len(prices)),
		slog.Duration("ttl", ttl))
	return nil
}

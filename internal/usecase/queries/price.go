package queries

import (
	"context"
	"log/slog"
	"time"

	"pricing-api/internal/domain/price"
	"pricing-api/internal/pkg/errs"
)

// PriceStore is the durable source of price candidates.
type PriceStore interface {
	FindAllByProductAndBrand(ctx context.Context, productID, brandID int64) ([]price.Price, error)
}

// PriceCache holds whole candidate lists per resolution key. An entry with no candidates
// must be reported as a miss.
type PriceCache interface {
	Find(ctx context.Context, key price.ResolutionKey) ([]price.Price, bool, error)
	Save(ctx context.Context, key price.ResolutionKey, prices []price.Price, ttl time.Duration) error
}

type ResolutionRecorder interface {
	CacheHit()
	CacheMiss()
	CacheWriteFailed()
	StoreLoaded(elapsed time.Duration, count int)
	Resolved(found bool)
}

// CacheTTL is how long a freshly loaded candidate list stays in the cache.
type CacheTTL time.Duration

type PriceQueries interface {
	// GetApplicablePrice returns ok=false with a nil error when no price applies.
	GetApplicablePrice(ctx context.Context, productID, brandID int64, applicationDate time.Time) (p price.Price, ok bool, err error)
}

type priceQueriesImpl struct {
	store    PriceStore
	cache    PriceCache
	recorder ResolutionRecorder
	ttl      time.Duration
	logger   *slog.Logger
}

func NewPriceQueries(store PriceStore, cache PriceCache, recorder ResolutionRecorder, ttl CacheTTL, logger *slog.Logger) PriceQueries {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &priceQueriesImpl{
		store:    store,
		cache:    cache,
		recorder: recorder,
		ttl:      time.Duration(ttl),
		logger:   logger,
	}
}

func (q *priceQueriesImpl) GetApplicablePrice(ctx context.Context, productID, brandID int64, applicationDate time.Time) (price.Price, bool, error) {
	key := price.NewResolutionKey(productID, brandID)

	candidates, err := q.loadCandidates(ctx, key)
	if err != nil {
		return price.Price{}, false, err
	}
	// all-or-nothing on cancellation
	if err := ctx.Err(); err != nil {
		return price.Price{}, false, upstream(err, "resolution cancelled for key %s", key)
	}

	selected, ok := price.Select(candidates, applicationDate)
	q.recorder.Resolved(ok)
	if !ok {
		q.logger.InfoContext(ctx, "No applicable price matched date filtering",
			slog.String("key", key.String()),
			slog.Time("application_date", applicationDate),
			slog.Int("candidates", len(candidates)))
		return price.Price{}, false, nil
	}
	return selected, true, nil
}

// loadCandidates runs the cache-aside protocol and returns the working set.
func (q *priceQueriesImpl) loadCandidates(ctx context.Context, key price.ResolutionKey) ([]price.Price, error) {
	cached, hit, err := q.cache.Find(ctx, key)
	if err != nil {
		return nil, upstream(err, "failed to read cache for key %s", key)
	}
	if hit && len(cached) > 0 {
		q.recorder.CacheHit()
		q.logger.DebugContext(ctx, "Cache hit", slog.String("key", key.String()), slog.Int("candidates", len(cached)))
		return cached, nil
	}

	q.recorder.CacheMiss()
	q.logger.DebugContext(ctx, "Cache miss, querying store", slog.String("key", key.String()))

	started := time.Now()
	loaded, err := q.store.FindAllByProductAndBrand(ctx, key.ProductID(), key.BrandID())
	if err != nil {
		return nil, upstream(err, "failed to load prices for key %s", key)
	}
	q.recorder.StoreLoaded(time.Since(started), len(loaded))

	if len(loaded) == 0 {
		q.logger.InfoContext(ctx, "No prices found in store", slog.String("key", key.String()))
		return nil, nil
	}

	if err := q.cache.Save(ctx, key, loaded, q.ttl); err != nil {
		q.recorder.CacheWriteFailed()
		q.logger.WarnContext(ctx, "Failed to store prices in cache",
			slog.String("key", key.String()),
			slog.Int("candidates", len(loaded)),
			slog.String("error", err.Error()))
	} else {
		q.logger.InfoContext(ctx, "Stored prices in cache",
			slog.String("key", key.String()),
			slog.Int("candidates", len(loaded)),
			slog.Duration("ttl", q.ttl))
	}
	return loaded, nil
}

func upstream(err error, format string, args ...any) error {
	return errs.Mark(errs.Wrapf(err, format, args...), errs.ErrUpstreamUnavailable)
}

type NopRecorder struct{}

func (NopRecorder) CacheHit()                      {}
func (NopRecorder) CacheMiss()                     {}
func (NopRecorder) CacheWriteFailed()              {}
func (NopRecorder) StoreLoaded(time.Duration, int) {}
func (NopRecorder) Resolved(bool)                  {}

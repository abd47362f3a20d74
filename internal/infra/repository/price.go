package repository

import (
	"context"
	"time"

	"pricing-api/internal/domain/price"
	"pricing-api/internal/infra"
	"pricing-api/internal/infra/repository/converter"
	sqlc "pricing-api/internal/infra/sqlc/generated"
	"pricing-api/internal/pkg/config"
	"pricing-api/internal/pkg/pgconv"
)

type PriceReadQueries interface {
	FindPricesByProductAndBrand(ctx context.Context, db sqlc.DBTX, arg sqlc.FindPricesByProductAndBrandParams) ([]sqlc.Prices, error)
}

type PriceRepository struct {
	queries PriceReadQueries
	db      sqlc.DBTX
	timeout time.Duration
}

func NewPriceRepository(queries PriceReadQueries, db sqlc.DBTX, cfg config.Config) *PriceRepository {
	return &PriceRepository{
		queries: queries,
		db:      db,
		timeout: cfg.DB.QueryTimeout,
	}
}

// FindAllByProductAndBrand returns every stored row for the pair, in id order. No rows is not an error.
func (r *PriceRepository) FindAllByProductAndBrand(ctx context.Context, productID, brandID int64) ([]price.Price, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	rows, err := r.queries.FindPricesByProductAndBrand(ctx, r.db, sqlc.FindPricesByProductAndBrandParams{
		ProductID: pgconv.Int64ToPgtype(productID),
		BrandID:   pgconv.Int64ToPgtype(brandID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find prices by product and brand", err)
	}

	prices := make([]price.Price, 0, len(rows))
	for _, row := range rows {
		p, err := converter.PriceFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode price row", err, infra.KindDecodeFailure)
		}
		prices = append(prices, p)
	}
	return prices, nil
}

package converter

import (
	"pricing-api/internal/domain/price"
	sqlc "pricing-api/internal/infra/sqlc/generated"
	"pricing-api/internal/pkg/pgconv"
)

func PriceFromRow(row sqlc.Prices) (price.Price, error) {
	amount, err := pgconv.DecimalPtrFromNumeric(row.Price)
	if err != nil {
		return price.Price{}, err
	}

	return price.Price{
		ProductID: pgconv.Int64PtrFromPgtype(row.ProductID),
		BrandID:   pgconv.Int64PtrFromPgtype(row.BrandID),
		PriceList: pgconv.Int64PtrFromPgtype(row.PriceList),
		StartDate: pgconv.TimePtrFromTimestamp(row.StartDate),
		EndDate:   pgconv.TimePtrFromTimestamp(row.EndDate),
		Amount:    amount,
		Currency:  pgconv.StringPtrFromPgtype(row.Currency),
		Priority:  pgconv.Int64PtrFromPgtype(row.Priority),
	}, nil
}

func PriceToInsertParams(id int64, p price.Price) sqlc.InsertPriceParams {
	return sqlc.InsertPriceParams{
		ID:        id,
		BrandID:   pgconv.Int64PtrToPgtype(p.BrandID),
		StartDate: pgconv.TimePtrToTimestamp(p.StartDate),
		EndDate:   pgconv.TimePtrToTimestamp(p.EndDate),
		PriceList: pgconv.Int64PtrToPgtype(p.PriceList),
		ProductID: pgconv.Int64PtrToPgtype(p.ProductID),
		Priority:  pgconv.Int64PtrToPgtype(p.Priority),
		Price:     pgconv.DecimalPtrToNumeric(p.Amount),
		Currency:  pgconv.StringPtrToPgtype(p.Currency),
	}
}

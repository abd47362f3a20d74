//go:build unit || e2e

package builder

import (
	"time"

	"pricing-api/internal/domain/price"
	sqlc "pricing-api/internal/infra/sqlc/generated"
	"pricing-api/internal/pkg/localtime"
	"pricing-api/internal/pkg/patch"
	"pricing-api/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

const (
	DefaultProductID int64 = 35455
	DefaultBrandID   int64 = 1
)

// LocalTime parses "2006-01-02T15:04:05" as UTC and panics on bad input (test fixtures only).
func LocalTime(s string) time.Time {
	t, err := time.ParseInLocation(localtime.Layout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

type PriceBuilder struct {
	ID        int64
	ProductID *int64
	BrandID   *int64
	PriceList *int64
	StartDate *time.Time
	EndDate   *time.Time
	Amount    *decimal.Decimal
	Currency  *string
	Priority  *int64
}

func NewPriceBuilder() *PriceBuilder {
	return &PriceBuilder{
		ID:        1,
		ProductID: patch.Ptr(DefaultProductID),
		BrandID:   patch.Ptr(DefaultBrandID),
		PriceList: patch.Ptr(int64(1)),
		StartDate: patch.Ptr(LocalTime("2020-06-14T00:00:00")),
		EndDate:   patch.Ptr(LocalTime("2020-12-31T23:59:59")),
		Amount:    patch.Ptr(decimal.RequireFromString("35.50")),
		Currency:  patch.Ptr("EUR"),
		Priority:  patch.Ptr(int64(0)),
	}
}

// Reference price lists for product 35455 / brand 1.

func PriceList1() *PriceBuilder {
	return NewPriceBuilder()
}

func PriceList2() *PriceBuilder {
	return NewPriceBuilder().
		WithID(2).
		WithPriceList(2).
		WithValidity("2020-06-14T15:00:00", "2020-06-14T18:30:00").
		WithAmount("25.45").
		WithPriority(1)
}

func PriceList3() *PriceBuilder {
	return NewPriceBuilder().
		WithID(3).
		WithPriceList(3).
		WithValidity("2020-06-15T00:00:00", "2020-06-15T11:00:00").
		WithAmount("30.50").
		WithPriority(1)
}

func PriceList4() *PriceBuilder {
	return NewPriceBuilder().
		WithID(4).
		WithPriceList(4).
		WithValidity("2020-06-15T16:00:00", "2020-12-31T23:59:59").
		WithAmount("38.95").
		WithPriority(1)
}

func (b *PriceBuilder) With(mutate func(*PriceBuilder)) *PriceBuilder {
	mutate(b)
	return b
}

func (b *PriceBuilder) WithID(id int64) *PriceBuilder {
	b.ID = id
	return b
}

func (b *PriceBuilder) WithProduct(productID, brandID int64) *PriceBuilder {
	b.ProductID = patch.Ptr(productID)
	b.BrandID = patch.Ptr(brandID)
	return b
}

func (b *PriceBuilder) WithPriceList(priceList int64) *PriceBuilder {
	b.PriceList = patch.Ptr(priceList)
	return b
}

func (b *PriceBuilder) WithValidity(from, to string) *PriceBuilder {
	b.StartDate = patch.Ptr(LocalTime(from))
	b.EndDate = patch.Ptr(LocalTime(to))
	return b
}

func (b *PriceBuilder) WithAmount(amount string) *PriceBuilder {
	b.Amount = patch.Ptr(decimal.RequireFromString(amount))
	return b
}

func (b *PriceBuilder) WithPriority(priority int64) *PriceBuilder {
	b.Priority = patch.Ptr(priority)
	return b
}

func (b *PriceBuilder) WithoutPriority() *PriceBuilder {
	b.Priority = nil
	return b
}

func (b *PriceBuilder) WithoutPriceList() *PriceBuilder {
	b.PriceList = nil
	return b
}

func (b *PriceBuilder) WithoutStartDate() *PriceBuilder {
	b.StartDate = nil
	return b
}

func (b *PriceBuilder) WithoutEndDate() *PriceBuilder {
	b.EndDate = nil
	return b
}

// Build methods
func (b *PriceBuilder) BuildDomain() price.Price {
	return price.Price{
		ProductID: b.ProductID,
		BrandID:   b.BrandID,
		PriceList: b.PriceList,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Amount:    b.Amount,
		Currency:  b.Currency,
		Priority:  b.Priority,
	}
}

func (b *PriceBuilder) BuildInfra() sqlc.Prices {
	return sqlc.Prices{
		ID:        b.ID,
		BrandID:   pgconv.Int64PtrToPgtype(b.BrandID),
		StartDate: pgconv.TimePtrToTimestamp(b.StartDate),
		EndDate:   pgconv.TimePtrToTimestamp(b.EndDate),
		PriceList: pgconv.Int64PtrToPgtype(b.PriceList),
		ProductID: pgconv.Int64PtrToPgtype(b.ProductID),
		Priority:  pgconv.Int64PtrToPgtype(b.Priority),
		Price:     pgconv.DecimalPtrToNumeric(b.Amount),
		Currency:  pgconv.StringPtrToPgtype(b.Currency),
	}
}

func BuildInfraList(builders ...*PriceBuilder) []sqlc.Prices {
	rows := make([]sqlc.Prices, len(builders))
	for i, b := range builders {
		rows[i] = b.BuildInfra()
	}
	return rows
}

func BuildDomainList(builders ...*PriceBuilder) []price.Price {
	list := make([]price.Price, len(builders))
	for i, b := range builders {
		list[i] = b.BuildDomain()
	}
	return list
}

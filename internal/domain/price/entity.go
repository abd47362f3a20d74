package price

import (
	"time"

	"pricing-api/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

// MinPriority is used in place of an absent priority when ranking candidates.
const MinPriority int64 = 0

// Price is one priced offer for a product under a brand. Every field is nullable because
// the backing table allows NULLs; the JSON form is also the cache value format.
type Price struct {
	ProductID *int64           `json:"productId"`
	BrandID   *int64           `json:"brandId"`
	PriceList *int64           `json:"priceList"`
	StartDate *time.Time       `json:"startDate"`
	EndDate   *time.Time       `json:"endDate"`
	Amount    *decimal.Decimal `json:"price"`
	Currency  *string          `json:"currency"`
	Priority  *int64           `json:"priority"`
}

// AppliesAt reports whether at falls inside [StartDate, EndDate].
// A price without both bounds never applies.
func (p Price) AppliesAt(at time.Time) bool {
	if p.StartDate == nil || p.EndDate == nil {
		return false
	}
	return !at.Before(*p.StartDate) && !at.After(*p.EndDate)
}

func (p Price) EffectivePriority() int64 {
	return patch.Coalesce(p.Priority, MinPriority)
}

func (p Price) HasPriceList() bool {
	return p.PriceList != nil
}

package response

import (
	"pricing-api/internal/domain/price"
	"pricing-api/internal/pkg/localtime"
)

// PriceResponse mirrors the stored record; fields absent in storage are rendered as null.
type PriceResponse struct {
	ProductID *int64  `json:"productId" example:"35455"`
	BrandID   *int64  `json:"brandId" example:"1"`
	PriceList *int64  `json:"priceList" example:"2"`
	StartDate *string `json:"startDate" example:"2020-06-14T15:00:00"`
	EndDate   *string `json:"endDate" example:"2020-06-14T18:30:00"`
	Price     *string `json:"price" example:"25.45"`
	Currency  *string `json:"currency" example:"EUR"`
}

type PriceNotFoundDetail struct {
	ProductID       int64  `json:"productId"`
	BrandID         int64  `json:"brandId"`
	ApplicationDate string `json:"applicationDate"`
}

func FromPrice(p price.Price) *PriceResponse {
	res := &PriceResponse{
		ProductID: p.ProductID,
		BrandID:   p.BrandID,
		PriceList: p.PriceList,
		Currency:  p.Currency,
	}
	if p.StartDate != nil {
		s := localtime.Format(*p.StartDate)
		res.StartDate = &s
	}
	if p.EndDate != nil {
		s := localtime.Format(*p.EndDate)
		res.EndDate = &s
	}
	if p.Amount != nil {
		s := p.Amount.StringFixed(2)
		res.Price = &s
	}
	return res
}

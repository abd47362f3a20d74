package request

import (
	"time"

	"pricing-api/internal/pkg/errs"
	"pricing-api/internal/pkg/localtime"
)

type GetPriceRequest struct {
	ApplicationDate string `form:"applicationDate" binding:"required" example:"2020-06-14T10:00:00"`
	ProductID       int64  `form:"productId" binding:"required,gt=0" example:"35455"`
	BrandID         int64  `form:"brandId" binding:"required,gt=0" example:"1"`
}

// ApplicationTime parses the date as a zone-less UTC date-time or RFC3339.
func (r *GetPriceRequest) ApplicationTime() (time.Time, error) {
	t, err := localtime.Parse(r.ApplicationDate)
	if err != nil {
		return time.Time{}, errs.Mark(err, errs.ErrInvalidQuery)
	}
	return t, nil
}

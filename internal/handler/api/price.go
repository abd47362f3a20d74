package api

import (
	"log/slog"
	"net/http"

	reqdto "pricing-api/internal/handler/dto/request"
	resdto "pricing-api/internal/handler/dto/response"
	"pricing-api/internal/handler/httperr"
	"pricing-api/internal/pkg/errs"
	"pricing-api/internal/pkg/localtime"
	"pricing-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PriceHandler struct {
	q queries.PriceQueries
}

func NewPriceHandler(q queries.PriceQueries) *PriceHandler {
	return &PriceHandler{q: q}
}

// @Summary Get applicable price
// @Description Returns the applicable price for a given product and brand at a specific date
// @Tags prices
// @Produce json
// @Param applicationDate query string true "Application date, ISO-8601 local date-time (UTC) or RFC3339" example(2020-06-14T10:00:00)
// @Param productId query int true "Product ID" example(35455)
// @Param brandId query int true "Brand ID" example(1)
// @Success 200 {object} resdto.PriceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/v1/prices [get]
func (h *PriceHandler) GetPrice(c *gin.Context) {
	var req reqdto.GetPriceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidQuery), "Invalid request", err.Error())
		return
	}
	at, err := req.ApplicationTime()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	ctx := c.Request.Context()
	slog.InfoContext(ctx, "Received price request",
		slog.String("application_date", localtime.Format(at)),
		slog.Int64("product_id", req.ProductID),
		slog.Int64("brand_id", req.BrandID))

	p, ok, err := h.q.GetApplicablePrice(ctx, req.ProductID, req.BrandID, at)
	if err != nil {
		httperr.AbortWithMappedError(c, err, nil)
		return
	}
	if !ok {
		notFound := errs.Wrapf(errs.ErrPriceNotFound, "product %d brand %d at %s", req.ProductID, req.BrandID, localtime.Format(at))
		httperr.AbortWithMappedError(c, notFound, resdto.PriceNotFoundDetail{
			ProductID:       req.ProductID,
			BrandID:         req.BrandID,
			ApplicationDate: localtime.Format(at),
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPrice(p))
}

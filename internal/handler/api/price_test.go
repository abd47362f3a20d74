//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"pricing-api/internal/domain/price"
	"pricing-api/internal/handler/api"
	resdto "pricing-api/internal/handler/dto/response"
	"pricing-api/internal/pkg/errs"
	"pricing-api/tests/common/builder"
	"pricing-api/tests/common/httptest"
	"pricing-api/tests/common/testutil"
	queriesmock "pricing-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const pricesPath = "/api/v1/prices"

type PriceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPriceQueries
	handler     *api.PriceHandler
}

func (s *PriceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPriceQueries(s.mockCtrl)
	s.handler = api.NewPriceHandler(s.mockQueries)

	s.router.GET(pricesPath, s.handler.GetPrice)
}

func (s *PriceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPriceHandlerSuite(t *testing.T) {
	suite.Run(t, new(PriceHandlerTestSuite))
}

type testCasePrice struct {
	name       string
	mutate     func(q url.Values)
	expectCode int
}

func validQuery(muts ...func(url.Values)) string {
	return httptest.WithQuery(pricesPath, testutil.PriceQuery("2020-06-14T16:00:00", builder.DefaultProductID, builder.DefaultBrandID, muts...))
}

// ================================================================================
// TestGetPrice
// ================================================================================

func (s *PriceHandlerTestSuite) TestGetPrice() {
	at := builder.LocalTime("2020-06-14T16:00:00")
	selected := builder.PriceList2().BuildDomain()

	s.Run("success: returns 200 with the selected price", func() {
		s.mockQueries.EXPECT().
			GetApplicablePrice(gomock.Any(), builder.DefaultProductID, builder.DefaultBrandID, at).
			Return(selected, true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validQuery(), nil)

		var body resdto.PriceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(builder.DefaultProductID, *body.ProductID)
		s.Equal(builder.DefaultBrandID, *body.BrandID)
		s.Equal(int64(2), *body.PriceList)
		s.Equal("2020-06-14T15:00:00", *body.StartDate)
		s.Equal("2020-06-14T18:30:00", *body.EndDate)
		s.Equal("25.45", *body.Price)
		s.Equal("EUR", *body.Currency)
	})

	s.Run("success: price is always rendered with two decimals", func() {
		whole := builder.PriceList1().WithAmount("35.5").BuildDomain()
		s.mockQueries.EXPECT().GetApplicablePrice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(whole, true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validQuery(), nil)

		var body resdto.PriceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("35.50", *body.Price)
	})

	s.Run("success: absent fields are rendered as null", func() {
		sparse := builder.PriceList1().WithoutPriceList().WithoutStartDate().WithoutEndDate().BuildDomain()
		sparse.Amount = nil
		sparse.Currency = nil
		s.mockQueries.EXPECT().GetApplicablePrice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(sparse, true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validQuery(), nil)

		s.Equal(http.StatusOK, rec.Code)
		body := httptest.DecodeJSONMap(s.T(), rec)
		for _, key := range []string{"priceList", "startDate", "endDate", "price", "currency"} {
			v, present := body[key]
			s.True(present, "key %s must be present", key)
			s.Nil(v, "key %s must be null", key)
		}
		s.EqualValues(builder.DefaultProductID, body["productId"])
	})

	s.Run("success: RFC3339 dates are normalised to UTC", func() {
		s.mockQueries.EXPECT().
			GetApplicablePrice(gomock.Any(), builder.DefaultProductID, builder.DefaultBrandID,
				gomock.Cond(func(x any) bool { return x.(time.Time).Equal(at) })).
			Return(selected, true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			validQuery(testutil.Field("applicationDate", "2020-06-14T18:00:00+02:00")), nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on invalid query", func() {
		missing := []testCasePrice{
			{name: "missing param: applicationDate", mutate: testutil.Field("applicationDate", ""), expectCode: http.StatusBadRequest},
			{name: "missing param: productId", mutate: testutil.Field("productId", ""), expectCode: http.StatusBadRequest},
			{name: "missing param: brandId", mutate: testutil.Field("brandId", ""), expectCode: http.StatusBadRequest},
		}
		malformed := []testCasePrice{
			{name: "applicationDate not ISO", mutate: testutil.Field("applicationDate", "14/06/2020 10:00"), expectCode: http.StatusBadRequest},
			{name: "applicationDate date only", mutate: testutil.Field("applicationDate", "2020-06-14"), expectCode: http.StatusBadRequest},
			{name: "productId not a number", mutate: testutil.Field("productId", "abc"), expectCode: http.StatusBadRequest},
			{name: "brandId not a number", mutate: testutil.Field("brandId", "1.5"), expectCode: http.StatusBadRequest},
		}
		bound := []testCasePrice{
			{name: "productId zero", mutate: testutil.Field("productId", "0"), expectCode: http.StatusBadRequest},
			{name: "brandId negative", mutate: testutil.Field("brandId", "-1"), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]testCasePrice{missing, malformed, bound} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validQuery(tc.mutate), nil)

					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
					body := httptest.DecodeJSONMap(s.T(), rec)
					s.NotEmpty(body["detail"])
				})
			}
		}
	})

	s.Run("error: 404 Not Found names the request", func() {
		s.mockQueries.EXPECT().GetApplicablePrice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(price.Price{}, false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validQuery(), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No applicable price found")
		detail, ok := httptest.DecodeJSONMap(s.T(), rec)["detail"].(map[string]any)
		s.Require().True(ok)
		s.EqualValues(builder.DefaultProductID, detail["productId"])
		s.EqualValues(builder.DefaultBrandID, detail["brandId"])
		s.Equal("2020-06-14T16:00:00", detail["applicationDate"])
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "upstream unavailable",
				queriesError:   errs.Mark(errors.New("dial tcp: connection refused"), errs.ErrUpstreamUnavailable),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Price source temporarily unavailable",
			},
			{
				name:           "cancelled resolution",
				queriesError:   errs.Mark(context.Canceled, errs.ErrUpstreamUnavailable),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Price source temporarily unavailable",
			},
			{
				name:           "unexpected error",
				queriesError:   errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetApplicablePrice(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(price.Price{}, false, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, validQuery(), nil)

				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.NotContains(rec.Body.String(), "connection refused")
			})
		}
	})
}

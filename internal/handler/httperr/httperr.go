package httperr

import (
	"net/http"

	"pricing-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusFor maps the shared sentinel errors to an HTTP status; anything unknown is a 500.
func StatusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrInvalidQuery):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrPriceNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithMappedError picks the status with StatusFor and uses the matching canned message.
func AbortWithMappedError(c *gin.Context, err error, detail any) {
	status := StatusFor(err)
	AbortWithError(c, status, err, messageFor(status), detail)
}

func messageFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Invalid request"
	case http.StatusNotFound:
		return "No applicable price found"
	case http.StatusServiceUnavailable:
		return "Price source temporarily unavailable"
	default:
		return "Internal server error"
	}
}

//go:build unit || e2e

package testutil

import (
	"net/url"
	"strconv"
)

// PriceQuery builds the query of a price request, then applies muts.
func PriceQuery(applicationDate string, productID, brandID int64, muts ...func(url.Values)) url.Values {
	q := url.Values{}
	q.Set("applicationDate", applicationDate)
	q.Set("productId", strconv.FormatInt(productID, 10))
	q.Set("brandId", strconv.FormatInt(brandID, 10))
	for _, f := range muts {
		f(q)
	}
	return q
}

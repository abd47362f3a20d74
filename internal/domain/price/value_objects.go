package price

import "strconv"

// ResolutionKey identifies the candidate list of a (product, brand) pair in the cache.
// The query instant is not part of it.
type ResolutionKey struct {
	productID int64
	brandID   int64
}

func NewResolutionKey(productID, brandID int64) ResolutionKey {
	return ResolutionKey{productID: productID, brandID: brandID}
}

func (k ResolutionKey) ProductID() int64 { return k.productID }
func (k ResolutionKey) BrandID() int64   { return k.brandID }

// String renders "{productId}:{brandId}".
func (k ResolutionKey) String() string {
	return strconv.FormatInt(k.productID, 10) + ":" + strconv.FormatInt(k.brandID, 10)
}

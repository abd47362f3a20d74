package price

import "time"

// Select picks the applicable price at the given instant.
//
// Candidates are folded left to right over the input order. A candidate replaces the current
// best only when it outranks it: higher effective priority first, then lower price list id
// (a missing price list loses to any present one). Candidates equal on both keep the one seen
// first, so the result does not depend on how the store happened to order equal rows.
func Select(candidates []Price, at time.Time) (Price, bool) {
	var (
		best  Price
		found bool
	)
	for _, c := range candidates {
		if !c.AppliesAt(at) {
			continue
		}
		if !found || outranks(c, best) {
			best = c
			found = true
		}
	}
	return best, found
}

func outranks(a, b Price) bool {
	if pa, pb := a.EffectivePriority(), b.EffectivePriority(); pa != pb {
		return pa > pb
	}
	switch {
	case a.HasPriceList() && b.HasPriceList():
		return *a.PriceList < *b.PriceList
	case a.HasPriceList():
		return true
	default:
		return false
	}
}

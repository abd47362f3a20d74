//go:build unit

package price_test

import (
	"slices"
	"testing"

	"pricing-api/internal/domain/price"
	"pricing-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referencePrices() []price.Price {
	return builder.BuildDomainList(
		builder.PriceList1(),
		builder.PriceList2(),
		builder.PriceList3(),
		builder.PriceList4(),
	)
}

func TestSelect_ReferenceScenarios(t *testing.T) {
	testCases := []struct {
		name          string
		at            string
		wantPriceList int64
		wantAmount    string
	}{
		{name: "day 14 at 10:00 only list 1 applies", at: "2020-06-14T10:00:00", wantPriceList: 1, wantAmount: "35.5"},
		{name: "day 14 at 16:00 list 2 outranks list 1", at: "2020-06-14T16:00:00", wantPriceList: 2, wantAmount: "25.45"},
		{name: "day 14 at 21:00 list 2 has expired", at: "2020-06-14T21:00:00", wantPriceList: 1, wantAmount: "35.5"},
		{name: "day 15 at 10:00 list 3 outranks list 1", at: "2020-06-15T10:00:00", wantPriceList: 3, wantAmount: "30.5"},
		{name: "day 16 at 21:00 list 4 outranks list 1", at: "2020-06-16T21:00:00", wantPriceList: 4, wantAmount: "38.95"},
		{name: "end boundary of list 2", at: "2020-06-14T18:30:00", wantPriceList: 2, wantAmount: "25.45"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, ok := price.Select(referencePrices(), builder.LocalTime(tc.at))

			require.True(t, ok)
			require.NotNil(t, actual.PriceList)
			assert.Equal(t, tc.wantPriceList, *actual.PriceList)
			assert.Equal(t, tc.wantAmount, actual.Amount.String())
			assert.Equal(t, "EUR", *actual.Currency)
		})
	}
}

func TestSelect_NotFound(t *testing.T) {
	t.Run("empty working set", func(t *testing.T) {
		_, ok := price.Select(nil, builder.LocalTime("2020-06-14T10:00:00"))
		assert.False(t, ok)
	})

	t.Run("single candidate outside its interval", func(t *testing.T) {
		candidates := builder.BuildDomainList(
			builder.NewPriceBuilder().WithValidity("2020-06-15T00:00:00", "2020-06-15T11:00:00"),
		)

		_, ok := price.Select(candidates, builder.LocalTime("2020-06-15T10:00:00"))
		assert.True(t, ok)

		_, ok = price.Select(candidates, builder.LocalTime("2020-06-15T12:00:00"))
		assert.False(t, ok)
	})

	t.Run("candidates without dates are excluded even with top priority", func(t *testing.T) {
		candidates := builder.BuildDomainList(
			builder.NewPriceBuilder().WithoutStartDate().WithPriority(100),
			builder.NewPriceBuilder().WithoutEndDate().WithPriority(100),
		)

		_, ok := price.Select(candidates, builder.LocalTime("2020-06-14T10:00:00"))
		assert.False(t, ok)
	})
}

func TestSelect_Priority(t *testing.T) {
	at := builder.LocalTime("2020-06-14T16:00:00")
	low := builder.NewPriceBuilder().WithPriceList(1).WithPriority(1)
	high := builder.NewPriceBuilder().WithPriceList(2).WithPriority(10)

	t.Run("higher priority wins regardless of input order", func(t *testing.T) {
		forward := builder.BuildDomainList(low, high)
		backward := slices.Clone(forward)
		slices.Reverse(backward)

		for _, candidates := range [][]price.Price{forward, backward} {
			actual, ok := price.Select(candidates, at)
			require.True(t, ok)
			assert.Equal(t, int64(10), *actual.Priority)
		}
	})

	t.Run("missing priority ranks as the minimum", func(t *testing.T) {
		candidates := builder.BuildDomainList(
			builder.NewPriceBuilder().WithPriceList(1).WithoutPriority(),
			builder.NewPriceBuilder().WithPriceList(2).WithPriority(1),
		)

		actual, ok := price.Select(candidates, at)
		require.True(t, ok)
		assert.Equal(t, int64(2), *actual.PriceList)
	})

	t.Run("missing priority is still selectable", func(t *testing.T) {
		candidates := builder.BuildDomainList(builder.NewPriceBuilder().WithoutPriority())

		actual, ok := price.Select(candidates, at)
		require.True(t, ok)
		assert.Nil(t, actual.Priority)
	})
}

func TestSelect_TieBreak(t *testing.T) {
	at := builder.LocalTime("2020-06-14T16:00:00")

	t.Run("equal priority picks the lowest price list in any order", func(t *testing.T) {
		candidates := builder.BuildDomainList(
			builder.NewPriceBuilder().WithPriceList(7).WithPriority(1),
			builder.NewPriceBuilder().WithPriceList(3).WithPriority(1),
			builder.NewPriceBuilder().WithPriceList(5).WithPriority(1),
		)
		reversed := slices.Clone(candidates)
		slices.Reverse(reversed)

		for _, in := range [][]price.Price{candidates, reversed} {
			actual, ok := price.Select(in, at)
			require.True(t, ok)
			assert.Equal(t, int64(3), *actual.PriceList)
		}
	})

	t.Run("present price list beats a missing one", func(t *testing.T) {
		candidates := builder.BuildDomainList(
			builder.NewPriceBuilder().WithoutPriceList().WithPriority(1),
			builder.NewPriceBuilder().WithPriceList(9).WithPriority(1),
		)

		actual, ok := price.Select(candidates, at)
		require.True(t, ok)
		require.NotNil(t, actual.PriceList)
		assert.Equal(t, int64(9), *actual.PriceList)
	})

	t.Run("full tie keeps the first candidate seen", func(t *testing.T) {
		candidates := builder.BuildDomainList(
			builder.NewPriceBuilder().WithPriceList(1).WithPriority(1).WithAmount("10.00"),
			builder.NewPriceBuilder().WithPriceList(1).WithPriority(1).WithAmount("20.00"),
		)

		actual, ok := price.Select(candidates, at)
		require.True(t, ok)
		assert.Equal(t, "10", actual.Amount.String())
	})
}

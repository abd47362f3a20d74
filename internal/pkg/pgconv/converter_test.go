//go:build unit

package pgconv

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalPtrFromNumeric(t *testing.T) {
	tests := []struct {
		name      string
		input     pgtype.Numeric
		want      string
		wantNil   bool
		wantError bool
	}{
		{
			name:  "two fraction digits keep their scale",
			input: pgtype.Numeric{Int: big.NewInt(3550), Exp: -2, Valid: true},
			want:  "35.50",
		},
		{
			name:  "integral value",
			input: pgtype.Numeric{Int: big.NewInt(38), Exp: 0, Valid: true},
			want:  "38.00",
		},
		{
			name:    "NULL column",
			input:   pgtype.Numeric{Valid: false},
			wantNil: true,
		},
		{
			name:      "NaN is rejected",
			input:     pgtype.Numeric{NaN: true, Valid: true},
			wantError: true,
		},
		{
			name:      "infinity is rejected",
			input:     pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecimalPtrFromNumeric(tt.input)

			if tt.wantError {
				assert.ErrorIs(t, err, ErrInvalidNumericValue)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestDecimalNumericRoundTrip(t *testing.T) {
	d := decimal.RequireFromString("25.45")

	n := DecimalPtrToNumeric(&d)
	back, err := DecimalPtrFromNumeric(n)

	require.NoError(t, err)
	require.NotNil(t, back)
	assert.True(t, d.Equal(*back))
	assert.False(t, DecimalPtrToNumeric(nil).Valid)
}

func TestTimePtrFromTimestamp(t *testing.T) {
	local := time.Date(2020, 6, 14, 17, 0, 0, 0, time.FixedZone("CEST", 2*60*60))

	got := TimePtrFromTimestamp(pgtype.Timestamp{Time: local, Valid: true})

	require.NotNil(t, got)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, local.Equal(*got))
	assert.Nil(t, TimePtrFromTimestamp(pgtype.Timestamp{}))
}

func TestNullableScalars(t *testing.T) {
	assert.Nil(t, Int64PtrFromPgtype(pgtype.Int8{}))
	assert.Equal(t, int64(35455), *Int64PtrFromPgtype(pgtype.Int8{Int64: 35455, Valid: true}))
	assert.Nil(t, StringPtrFromPgtype(pgtype.Text{}))
	assert.Equal(t, "EUR", *StringPtrFromPgtype(pgtype.Text{String: "EUR", Valid: true}))

	id := int64(4)
	assert.Equal(t, pgtype.Int8{Int64: 4, Valid: true}, Int64PtrToPgtype(&id))
	assert.False(t, Int64PtrToPgtype(nil).Valid)
	assert.False(t, StringPtrToPgtype(nil).Valid)
	assert.False(t, TimePtrToTimestamp(nil).Valid)
}

//go:build unit

package repository_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"pricing-api/internal/infra"
	"pricing-api/internal/infra/repository"
	sqlc "pricing-api/internal/infra/sqlc/generated"
	"pricing-api/internal/pkg/config"
	"pricing-api/tests/common/builder"
	"pricing-api/tests/common/testutil"
	repositorymock "pricing-api/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPriceRepository_FindAllByProductAndBrand(t *testing.T) {
	ctx := context.Background()
	params := sqlc.FindPricesByProductAndBrandParams{
		ProductID: pgtype.Int8{Int64: builder.DefaultProductID, Valid: true},
		BrandID:   pgtype.Int8{Int64: builder.DefaultBrandID, Valid: true},
	}

	corrupted := builder.PriceList1().BuildInfra()
	corrupted.Price = pgtype.Numeric{NaN: true, Valid: true}

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockPriceReadQueries, sqlc.DBTX)
		wantLists     []int64
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: rows mapped in store order",
			setupMock: func(mock *repositorymock.MockPriceReadQueries, db sqlc.DBTX) {
				rows := builder.BuildInfraList(builder.PriceList1(), builder.PriceList2(), builder.PriceList3(), builder.PriceList4())
				mock.EXPECT().FindPricesByProductAndBrand(gomock.Any(), db, params).Return(rows, nil)
			},
			wantLists: []int64{1, 2, 3, 4},
		},
		{
			name: "success: no rows is an empty list",
			setupMock: func(mock *repositorymock.MockPriceReadQueries, db sqlc.DBTX) {
				mock.EXPECT().FindPricesByProductAndBrand(gomock.Any(), db, params).Return(nil, nil)
			},
			wantLists: []int64{},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockPriceReadQueries, db sqlc.DBTX) {
				mock.EXPECT().FindPricesByProductAndBrand(gomock.Any(), db, params).Return(nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: stored amount cannot be decoded",
			setupMock: func(mock *repositorymock.MockPriceReadQueries, db sqlc.DBTX) {
				mock.EXPECT().FindPricesByProductAndBrand(gomock.Any(), db, params).Return([]sqlc.Prices{corrupted}, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDecodeFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPriceReadQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPriceRepository(mockQueries, mockDB, config.NewTestConfig())

			tc.setupMock(mockQueries, mockDB)

			prices, err := repo.FindAllByProductAndBrand(ctx, builder.DefaultProductID, builder.DefaultBrandID)

			if tc.expectedError {
				require.Error(t, err)
				assert.Nil(t, prices)
				assert.True(t, testutil.IsRepoErrKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			require.Len(t, prices, len(tc.wantLists))
			for i, want := range tc.wantLists {
				assert.Equal(t, want, *prices[i].PriceList)
			}
		})
	}
}

func TestPriceRepository_RowMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockPriceReadQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewPriceRepository(mockQueries, mockDB, config.NewTestConfig())

	row := builder.PriceList2().BuildInfra()
	row.Price = pgtype.Numeric{Int: big.NewInt(2545), Exp: -2, Valid: true}
	sparse := sqlc.Prices{ID: 9, ProductID: row.ProductID, BrandID: row.BrandID}
	mockQueries.EXPECT().FindPricesByProductAndBrand(gomock.Any(), mockDB, gomock.Any()).Return([]sqlc.Prices{row, sparse}, nil)

	prices, err := repo.FindAllByProductAndBrand(context.Background(), builder.DefaultProductID, builder.DefaultBrandID)

	require.NoError(t, err)
	require.Len(t, prices, 2)

	full := prices[0]
	assert.Equal(t, builder.DefaultProductID, *full.ProductID)
	assert.Equal(t, builder.DefaultBrandID, *full.BrandID)
	assert.Equal(t, int64(2), *full.PriceList)
	assert.Equal(t, int64(1), *full.Priority)
	assert.Equal(t, "25.45", full.Amount.StringFixed(2))
	assert.Equal(t, "EUR", *full.Currency)
	assert.True(t, builder.LocalTime("2020-06-14T15:00:00").Equal(*full.StartDate))
	assert.True(t, builder.LocalTime("2020-06-14T18:30:00").Equal(*full.EndDate))

	// NULL columns stay absent
	empty := prices[1]
	assert.Nil(t, empty.PriceList)
	assert.Nil(t, empty.StartDate)
	assert.Nil(t, empty.EndDate)
	assert.Nil(t, empty.Amount)
	assert.Nil(t, empty.Currency)
	assert.Nil(t, empty.Priority)
}

func TestPriceRepository_QueryTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockPriceReadQueries(ctrl)
	mockDB := &mockDBTX{}
	cfg := config.NewTestConfig()
	cfg.DB.QueryTimeout = 50 * time.Millisecond
	repo := repository.NewPriceRepository(mockQueries, mockDB, cfg)

	mockQueries.EXPECT().FindPricesByProductAndBrand(gomock.Any(), mockDB, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ sqlc.DBTX, _ sqlc.FindPricesByProductAndBrandParams) ([]sqlc.Prices, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
			return nil, nil
		})

	_, err := repo.FindAllByProductAndBrand(context.Background(), builder.DefaultProductID, builder.DefaultBrandID)
	require.NoError(t, err)
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

func (m *mockDBTX) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	panic("mockDBTX.SendBatch was called unexpectedly. Use sqlc mock instead.")
}

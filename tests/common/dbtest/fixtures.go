//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pricing-api/tests/common/builder"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const insertPriceSQL = `INSERT INTO prices (id, brand_id, start_date, end_date, price_list, product_id, priority, price, currency)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET
    brand_id = EXCLUDED.brand_id, start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date,
    price_list = EXCLUDED.price_list, product_id = EXCLUDED.product_id, priority = EXCLUDED.priority,
    price = EXCLUDED.price, currency = EXCLUDED.currency`

func insertPrice(ctx context.Context, db DBLike, b *builder.PriceBuilder) error {
	row := b.BuildInfra()
	_, err := db.Exec(ctx, insertPriceSQL,
		row.ID, row.BrandID, row.StartDate, row.EndDate, row.PriceList, row.ProductID, row.Priority, row.Price, row.Currency)
	return err
}

// upserts the given prices, keyed by builder id
func InsertPrices(t *testing.T, db DBLike, builders ...*builder.PriceBuilder) {
	t.Helper()

	ctx := context.Background()
	for _, b := range builders {
		require.NoError(t, insertPrice(ctx, db, b), "failed to insert price id=%d", b.ID)
	}
}

func CountPrices(t *testing.T, db DBLike) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.QueryRow(context.Background(), "SELECT count(*) FROM prices").Scan(&n))
	return n
}

// inserts the four reference price lists for product 35455 / brand 1
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	for _, b := range []*builder.PriceBuilder{builder.PriceList1(), builder.PriceList2(), builder.PriceList3(), builder.PriceList4()} {
		if err := insertPrice(ctx, pool, b); err != nil {
			return fmt.Errorf("seed price list %d: %w", b.ID, err)
		}
	}
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

package seed

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"

	"pricing-api/internal/domain/price"
	"pricing-api/internal/infra"
	"pricing-api/internal/infra/repository/converter"
	sqlc "pricing-api/internal/infra/sqlc/generated"
	"pricing-api/internal/pkg/config"
	"pricing-api/internal/pkg/errs"
	"pricing-api/internal/pkg/localtime"

	"github.com/shopspring/decimal"
)

const schemaGlob = "migrations/*.sql"

type SeedQueries interface {
	InsertPrice(ctx context.Context, db sqlc.DBTX, arg []sqlc.InsertPriceParams) *sqlc.InsertPriceBatchResults
	CountPrices(ctx context.Context, db sqlc.DBTX) (int64, error)
}

// Seeder creates the prices table and loads the seed file of the configured environment and region.
// Rows whose id already exists are left untouched, so restarts are safe.
type Seeder struct {
	queries SeedQueries
	db      sqlc.DBTX
	assets  fs.FS
	cfg     config.SeedConfig
	logger  *slog.Logger
}

func NewSeeder(queries SeedQueries, db sqlc.DBTX, assets fs.FS, cfg config.Config, logger *slog.Logger) *Seeder {
	return &Seeder{
		queries: queries,
		db:      db,
		assets:  assets,
		cfg:     cfg.Seed,
		logger:  logger,
	}
}

type entry struct {
	ID        int64               `json:"id"`
	BrandID   *int64              `json:"brandId"`
	StartDate *localtime.DateTime `json:"startDate"`
	EndDate   *localtime.DateTime `json:"endDate"`
	PriceList *int64              `json:"priceList"`
	ProductID *int64              `json:"productId"`
	Priority  *int64              `json:"priority"`
	Price     *decimal.Decimal    `json:"price"`
	Currency  *string             `json:"currency"`
}

func (e entry) toDomain() price.Price {
	p := price.Price{
		ProductID: e.ProductID,
		BrandID:   e.BrandID,
		PriceList: e.PriceList,
		Amount:    e.Price,
		Currency:  e.Currency,
		Priority:  e.Priority,
	}
	if e.StartDate != nil {
		t := e.StartDate.Time()
		p.StartDate = &t
	}
	if e.EndDate != nil {
		t := e.EndDate.Time()
		p.EndDate = &t
	}
	return p
}

func (s *Seeder) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Starting database initialization...",
		slog.String("env", s.cfg.Env),
		slog.String("region", s.cfg.Region))

	if err := s.applySchema(ctx); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Prices table created or already exists")

	entries, err := s.loadEntries()
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Loaded entries from JSON", slog.Int("entries", len(entries)), slog.String("path", s.cfg.DataPath()))

	if err := s.insertEntries(ctx, entries); err != nil {
		return err
	}

	total, err := s.queries.CountPrices(ctx, s.db)
	if err != nil {
		return infra.WrapRepoErr("failed to count prices after seeding", err, infra.KindSeedFailure)
	}
	s.logger.InfoContext(ctx, "Entries inserted successfully", slog.Int64("rows_in_table", total))
	return nil
}

func (s *Seeder) applySchema(ctx context.Context) error {
	files, err := fs.Glob(s.assets, schemaGlob)
	if err != nil {
		return infra.WrapRepoErr("invalid schema pattern", err, infra.KindSeedFailure)
	}
	if len(files) == 0 {
		return infra.WrapRepoErr("no schema files found", errs.Newf("pattern %s matched nothing", schemaGlob), infra.KindSeedFailure)
	}

	for _, name := range files {
		ddl, err := fs.ReadFile(s.assets, name)
		if err != nil {
			return infra.WrapRepoErr("could not read schema file "+name, err, infra.KindSeedFailure)
		}
		if _, err := s.db.Exec(ctx, string(ddl)); err != nil {
			return infra.WrapRepoErr("failed to apply schema file "+name, err, infra.KindSeedFailure)
		}
	}
	return nil
}

func (s *Seeder) loadEntries() ([]entry, error) {
	path := s.cfg.DataPath()
	raw, err := fs.ReadFile(s.assets, path)
	if err != nil {
		return nil, infra.WrapRepoErr("could not load JSON file "+path, err, infra.KindSeedFailure)
	}

	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, infra.WrapRepoErr("could not decode JSON file "+path, err, infra.KindSeedFailure)
	}
	return entries, nil
}

func (s *Seeder) insertEntries(ctx context.Context, entries []entry) error {
	if len(entries) == 0 {
		return nil
	}

	params := make([]sqlc.InsertPriceParams, len(entries))
	for i, e := range entries {
		params[i] = converter.PriceToInsertParams(e.ID, e.toDomain())
	}

	var batchErr error
	s.queries.InsertPrice(ctx, s.db, params).Exec(func(i int, err error) {
		if err != nil && batchErr == nil {
			batchErr = errs.Wrapf(err, "entry with id %d", entries[i].ID)
		}
	})
	if batchErr != nil {
		return infra.WrapRepoErr("failed to insert seed entries", batchErr, infra.KindSeedFailure)
	}
	return nil
}

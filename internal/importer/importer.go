// Package importer rebuilds the administrative hierarchy and postal codes of
// a country from its raw national datasets. Every country import is
// destroy-and-rebuild inside one transaction: a failure anywhere leaves the
// previously imported dataset intact.
package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/ubiwhere/go-postal-codes/internal/config"
	"github.com/ubiwhere/go-postal-codes/internal/domain"
	"github.com/ubiwhere/go-postal-codes/internal/repository"
	"github.com/ubiwhere/go-postal-codes/internal/source"
)

type Importer struct {
	db       *sqlx.DB
	repos    *repository.Repositories
	registry source.Registry
	cfg      config.Importer
	logger   *zap.Logger
}

func New(db *sqlx.DB, repos *repository.Repositories, registry source.Registry, cfg config.Importer, logger *zap.Logger) *Importer {
	return &Importer{
		db:       db,
		repos:    repos,
		registry: registry,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run imports every configured country in sequence. Countries are
// independent: one failing rolls back only its own rebuild and the remaining
// countries still run.
func (i *Importer) Run(ctx context.Context) error {
	var errs []error
	for _, name := range i.cfg.Countries {
		if err := i.ImportCountry(ctx, name); err != nil {
			i.logger.Error("country import failed",
				zap.String("source", name),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// ImportCountry runs the full pipeline for one registered source. Loading,
// hierarchy building and record resolution are pure reads and run before the
// transaction opens; the write phase then executes as one atomic sequence:
// replace country, insert districts, insert counties and localities, insert
// postal codes.
func (i *Importer) ImportCountry(ctx context.Context, name string) error {
	src, err := i.registry.New(name, source.Config{
		DataDir: i.cfg.DataDir,
		Logger:  i.logger,
	})
	if err != nil {
		return err
	}
	logger := i.logger.With(zap.String("country", src.CountryName()))

	referenceRows, err := src.LoadReferenceTable()
	if err != nil {
		return fmt.Errorf("load reference table: %w", err)
	}
	store, err := src.LoadGeometries()
	if err != nil {
		return fmt.Errorf("load geometries: %w", err)
	}
	records, err := src.LoadPostalRecords()
	if err != nil {
		return fmt.Errorf("load postal records: %w", err)
	}
	geocoder, err := src.Geocoder()
	if err != nil {
		return fmt.Errorf("load geocoder: %w", err)
	}

	h := buildHierarchy(src.CountryName(), referenceRows, store, logger)
	logger.Info("hierarchy built",
		zap.Int("districts", len(h.districts)),
		zap.Int("counties", len(h.counties)),
		zap.Int("localities", len(h.localities)),
	)

	resolver := newRecordResolver(geocoder, h, records, i.cfg.Workers, logger)
	codes, err := resolver.resolveAll(ctx, records)
	if err != nil {
		return fmt.Errorf("resolve postal records: %w", err)
	}

	if err := i.persist(ctx, h, codes); err != nil {
		return err
	}
	logger.Info("country import finished",
		zap.Int("postal_codes", len(codes)),
	)
	return nil
}

func (i *Importer) persist(ctx context.Context, h *hierarchy, codes []domain.PostalCode) (err error) {
	tx, err := i.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				i.logger.Error("import rollback failed", zap.Error(rollbackErr))
			}
		}
	}()

	repos := i.repos.WithTx(tx)

	// Deleting the country cascades over the whole previous dataset, which is
	// what makes re-imports idempotent.
	if err = repos.Countries.DeleteByName(ctx, h.country.Name); err != nil {
		return err
	}
	if err = repos.Countries.Create(ctx, &h.country); err != nil {
		return err
	}

	for _, batch := range chunk(h.districts, i.cfg.BatchSize) {
		if err = repos.Districts.CreateBulk(ctx, batch); err != nil {
			return err
		}
	}
	for _, batch := range chunk(h.counties, i.cfg.BatchSize) {
		if err = repos.Counties.CreateBulk(ctx, batch); err != nil {
			return err
		}
	}
	for _, batch := range chunk(h.localities, i.cfg.BatchSize) {
		if err = repos.Localities.CreateBulk(ctx, batch); err != nil {
			return err
		}
	}
	for _, batch := range chunk(codes, i.cfg.BatchSize) {
		if err = repos.PostalCodes.CreateBulk(ctx, batch); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit import transaction: %w", err)
	}
	return nil
}

func chunk[T any](items []T, size int) [][]T {
	if size < 1 {
		size = 1
	}
	var batches [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}

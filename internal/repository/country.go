package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ubiwhere/go-postal-codes/internal/domain"
)

type countryRepository struct {
	ext sqlx.ExtContext
}

func newCountryRepository(ext sqlx.ExtContext) *countryRepository {
	return &countryRepository{
		ext: ext,
	}
}

func (r *countryRepository) Create(ctx context.Context, country *domain.Country) error {
	const query = `
	INSERT INTO country (id, name) VALUES (uuid_to_bin(?), ?);
	`
	if _, err := r.ext.ExecContext(ctx, query, country.ID, country.Name); err != nil {
		return fmt.Errorf("insert into country failed: %w", err)
	}
	return nil
}

// DeleteByName removes a country and, through cascading foreign keys, every
// district, county, locality and postal code under it.
func (r *countryRepository) DeleteByName(ctx context.Context, name string) error {
	const query = `
	DELETE FROM country WHERE name = ?;
	`
	if _, err := r.ext.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("delete from country by name failed: %w", err)
	}
	return nil
}

func (r *countryRepository) GetByName(ctx context.Context, name string) (*domain.Country, error) {
	const query = `
	SELECT id, name, created_at, updated_at FROM country WHERE name = ?;
	`
	var country domain.Country
	if err := sqlx.GetContext(ctx, r.ext, &country, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from country by name failed: %w", err)
	}
	return &country, nil
}

func (r *countryRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Country, error) {
	const query = `
	SELECT id, name, created_at, updated_at FROM country WHERE id = uuid_to_bin(?);
	`
	var country domain.Country
	if err := sqlx.GetContext(ctx, r.ext, &country, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from country by id failed: %w", err)
	}
	return &country, nil
}

func (r *countryRepository) GetAll(ctx context.Context, nameFilter string) ([]domain.Country, error) {
	const query = `
	SELECT id, name, created_at, updated_at FROM country
	WHERE name LIKE CONCAT('%', ?, '%')
	ORDER BY name ASC;
	`
	var countries []domain.Country
	if err := sqlx.SelectContext(ctx, r.ext, &countries, query, nameFilter); err != nil {
		return nil, fmt.Errorf("select from country failed: %w", err)
	}
	return countries, nil
}

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

type districtRepository struct {
	ext sqlx.ExtContext
}

func newDistrictRepository(ext sqlx.ExtContext) *districtRepository {
	return &districtRepository{
		ext: ext,
	}
}

func (r *districtRepository) CreateBulk(ctx context.Context, districts []domain.District) error {
	if len(districts) == 0 {
		return nil
	}
	const query = `
	INSERT INTO district (id, country_id, name)
	VALUES (uuid_to_bin(:id), uuid_to_bin(:country_id), :name);
	`
	if _, err := sqlx.NamedExecContext(ctx, r.ext, query, districts); err != nil {
		return fmt.Errorf("bulk insert into district failed: %w", err)
	}
	return nil
}

func (r *districtRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.District, error) {
	const query = `
	SELECT id, country_id, name, created_at, updated_at FROM district WHERE id = uuid_to_bin(?);
	`
	var district domain.District
	if err := sqlx.GetContext(ctx, r.ext, &district, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from district by id failed: %w", err)
	}
	return &district, nil
}

func (r *districtRepository) GetAllByCountry(ctx context.Context, countryID uuid.UUID, nameFilter string) ([]domain.District, error) {
	const query = `
	SELECT id, country_id, name, created_at, updated_at FROM district
	WHERE country_id = uuid_to_bin(?) AND name LIKE CONCAT('%', ?, '%')
	ORDER BY name ASC;
	`
	var districts []domain.District
	if err := sqlx.SelectContext(ctx, r.ext, &districts, query, countryID, nameFilter); err != nil {
		return nil, fmt.Errorf("select from district by country failed: %w", err)
	}
	return districts, nil
}

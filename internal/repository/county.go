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

type countyRepository struct {
	ext sqlx.ExtContext
}

func newCountyRepository(ext sqlx.ExtContext) *countyRepository {
	return &countyRepository{
		ext: ext,
	}
}

func (r *countyRepository) CreateBulk(ctx context.Context, counties []domain.County) error {
	if len(counties) == 0 {
		return nil
	}
	const query = `
	INSERT INTO county (id, district_id, name)
	VALUES (uuid_to_bin(:id), uuid_to_bin(:district_id), :name);
	`
	if _, err := sqlx.NamedExecContext(ctx, r.ext, query, counties); err != nil {
		return fmt.Errorf("bulk insert into county failed: %w", err)
	}
	return nil
}

func (r *countyRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.County, error) {
	const query = `
	SELECT id, district_id, name, created_at, updated_at FROM county WHERE id = uuid_to_bin(?);
	`
	var county domain.County
	if err := sqlx.GetContext(ctx, r.ext, &county, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from county by id failed: %w", err)
	}
	return &county, nil
}

func (r *countyRepository) GetAllByDistrict(ctx context.Context, districtID uuid.UUID, nameFilter string) ([]domain.County, error) {
	const query = `
	SELECT id, district_id, name, created_at, updated_at FROM county
	WHERE district_id = uuid_to_bin(?) AND name LIKE CONCAT('%', ?, '%')
	ORDER BY name ASC;
	`
	var counties []domain.County
	if err := sqlx.SelectContext(ctx, r.ext, &counties, query, districtID, nameFilter); err != nil {
		return nil, fmt.Errorf("select from county by district failed: %w", err)
	}
	return counties, nil
}

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

type localityRepository struct {
	ext sqlx.ExtContext
}

func newLocalityRepository(ext sqlx.ExtContext) *localityRepository {
	return &localityRepository{
		ext: ext,
	}
}

func (r *localityRepository) CreateBulk(ctx context.Context, localities []domain.Locality) error {
	if len(localities) == 0 {
		return nil
	}
	const query = `
	INSERT INTO locality (id, county_id, name, polygon)
	VALUES (uuid_to_bin(:id), uuid_to_bin(:county_id), :name, :polygon);
	`
	if _, err := sqlx.NamedExecContext(ctx, r.ext, query, localities); err != nil {
		return fmt.Errorf("bulk insert into locality failed: %w", err)
	}
	return nil
}

func (r *localityRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Locality, error) {
	const query = `
	SELECT id, county_id, name, polygon, created_at, updated_at FROM locality WHERE id = uuid_to_bin(?);
	`
	var locality domain.Locality
	if err := sqlx.GetContext(ctx, r.ext, &locality, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from locality by id failed: %w", err)
	}
	return &locality, nil
}

func (r *localityRepository) GetAllByCounty(ctx context.Context, countyID uuid.UUID, nameFilter string) ([]domain.Locality, error) {
	const query = `
	SELECT id, county_id, name, polygon, created_at, updated_at FROM locality
	WHERE county_id = uuid_to_bin(?) AND name LIKE CONCAT('%', ?, '%')
	ORDER BY name ASC;
	`
	var localities []domain.Locality
	if err := sqlx.SelectContext(ctx, r.ext, &localities, query, countyID, nameFilter); err != nil {
		return nil, fmt.Errorf("select from locality by county failed: %w", err)
	}
	return localities, nil
}

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

type postalCodeRepository struct {
	ext sqlx.ExtContext
}

func newPostalCodeRepository(ext sqlx.ExtContext) *postalCodeRepository {
	return &postalCodeRepository{
		ext: ext,
	}
}

func (r *postalCodeRepository) CreateBulk(ctx context.Context, codes []domain.PostalCode) error {
	if len(codes) == 0 {
		return nil
	}
	const query = `
	INSERT INTO postal_code
	(id, locality_id, artery_type, prep1, artery_title, prep2, artery_name, artery_local,
	 postal_code, postal_code_extension, postal_designation, full_address)
	VALUES (uuid_to_bin(:id), uuid_to_bin(:locality_id), :artery_type, :prep1, :artery_title,
	 :prep2, :artery_name, :artery_local, :postal_code, :postal_code_extension,
	 :postal_designation, :full_address);
	`
	if _, err := sqlx.NamedExecContext(ctx, r.ext, query, codes); err != nil {
		return fmt.Errorf("bulk insert into postal_code failed: %w", err)
	}
	return nil
}

func (r *postalCodeRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.PostalCode, error) {
	const query = `
	SELECT id, locality_id, artery_type, prep1, artery_title, prep2, artery_name, artery_local,
	 postal_code, postal_code_extension, postal_designation, full_address, created_at, updated_at
	FROM postal_code WHERE id = uuid_to_bin(?);
	`
	var code domain.PostalCode
	if err := sqlx.GetContext(ctx, r.ext, &code, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from postal_code by id failed: %w", err)
	}
	return &code, nil
}

func (r *postalCodeRepository) GetAllByLocality(ctx context.Context, localityID uuid.UUID, addressFilter string) ([]domain.PostalCode, error) {
	const query = `
	SELECT id, locality_id, artery_type, prep1, artery_title, prep2, artery_name, artery_local,
	 postal_code, postal_code_extension, postal_designation, full_address, created_at, updated_at
	FROM postal_code
	WHERE locality_id = uuid_to_bin(?) AND full_address LIKE CONCAT('%', ?, '%')
	ORDER BY full_address ASC;
	`
	var codes []domain.PostalCode
	if err := sqlx.SelectContext(ctx, r.ext, &codes, query, localityID, addressFilter); err != nil {
		return nil, fmt.Errorf("select from postal_code by locality failed: %w", err)
	}
	return codes, nil
}

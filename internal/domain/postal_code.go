package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type PostalCode struct {
	ID                  uuid.UUID      `db:"id" json:"id"`
	LocalityID          uuid.UUID      `db:"locality_id" json:"locality_id"`
	ArteryType          sql.NullString `db:"artery_type" json:"artery_type"`
	Prep1               sql.NullString `db:"prep1" json:"prep1"`
	ArteryTitle         sql.NullString `db:"artery_title" json:"artery_title"`
	Prep2               sql.NullString `db:"prep2" json:"prep2"`
	ArteryName          sql.NullString `db:"artery_name" json:"artery_name"`
	ArteryLocal         sql.NullString `db:"artery_local" json:"artery_local"`
	PostalCode          int            `db:"postal_code" json:"postal_code"`
	PostalCodeExtension int            `db:"postal_code_extension" json:"postal_code_extension"`
	PostalDesignation   sql.NullString `db:"postal_designation" json:"postal_designation"`
	FullAddress         string         `db:"full_address" json:"full_address"`
	CreatedAt           time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at" json:"updated_at"`
}

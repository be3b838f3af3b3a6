package domain

import (
	"time"

	"github.com/google/uuid"
)

type County struct {
	ID         uuid.UUID `db:"id" json:"id"`
	DistrictID uuid.UUID `db:"district_id" json:"district_id"`
	Name       string    `db:"name" json:"name"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

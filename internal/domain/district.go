package domain

import (
	"time"

	"github.com/google/uuid"
)

type District struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CountryID uuid.UUID `db:"country_id" json:"country_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ubiwhere/go-postal-codes/internal/domain"
)

type Repositories struct {
	Countries   Countries
	Districts   Districts
	Counties    Counties
	Localities  Localities
	PostalCodes PostalCodes
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return newRepositories(db)
}

// WithTx returns repositories bound to the given transaction. The import
// pipeline uses it to make a whole country rebuild atomic.
func (r *Repositories) WithTx(tx *sqlx.Tx) *Repositories {
	return newRepositories(tx)
}

func newRepositories(ext sqlx.ExtContext) *Repositories {
	return &Repositories{
		Countries:   newCountryRepository(ext),
		Districts:   newDistrictRepository(ext),
		Counties:    newCountyRepository(ext),
		Localities:  newLocalityRepository(ext),
		PostalCodes: newPostalCodeRepository(ext),
	}
}

type Countries interface {
	Create(ctx context.Context, country *domain.Country) error
	DeleteByName(ctx context.Context, name string) error
	GetByName(ctx context.Context, name string) (*domain.Country, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Country, error)
	GetAll(ctx context.Context, nameFilter string) ([]domain.Country, error)
}

type Districts interface {
	CreateBulk(ctx context.Context, districts []domain.District) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.District, error)
	GetAllByCountry(ctx context.Context, countryID uuid.UUID, nameFilter string) ([]domain.District, error)
}

type Counties interface {
	CreateBulk(ctx context.Context, counties []domain.County) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.County, error)
	GetAllByDistrict(ctx context.Context, districtID uuid.UUID, nameFilter string) ([]domain.County, error)
}

type Localities interface {
	CreateBulk(ctx context.Context, localities []domain.Locality) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Locality, error)
	GetAllByCounty(ctx context.Context, countyID uuid.UUID, nameFilter string) ([]domain.Locality, error)
}

type PostalCodes interface {
	CreateBulk(ctx context.Context, codes []domain.PostalCode) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.PostalCode, error)
	GetAllByLocality(ctx context.Context, localityID uuid.UUID, addressFilter string) ([]domain.PostalCode, error)
}

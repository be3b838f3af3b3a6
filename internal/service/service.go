// Package service exposes the read side of the imported hierarchy to the
// presentation layer: scoped listing with case-insensitive substring filters
// and on-demand aggregate polygons for the parent levels.
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/ubiwhere/go-postal-codes/internal/domain"
	"github.com/ubiwhere/go-postal-codes/internal/repository"
)

type Services struct {
	Countries   Countries
	Districts   Districts
	Counties    Counties
	Localities  Localities
	PostalCodes PostalCodes
}

type Deps struct {
	Repos *repository.Repositories
}

func NewServices(deps Deps) *Services {
	counties := newCountyService(deps.Repos.Counties, deps.Repos.Localities)
	return &Services{
		Countries:   newCountryService(deps.Repos.Countries),
		Districts:   newDistrictService(deps.Repos.Districts, counties),
		Counties:    counties,
		Localities:  newLocalityService(deps.Repos.Localities),
		PostalCodes: newPostalCodeService(deps.Repos.PostalCodes),
	}
}

type Countries interface {
	GetByName(ctx context.Context, name string) (*domain.Country, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Country, error)
	List(ctx context.Context, nameFilter string) ([]domain.Country, error)
}

type Districts interface {
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.District, error)
	List(ctx context.Context, countryID uuid.UUID, nameFilter string) ([]domain.District, error)
	GetPolygon(ctx context.Context, districtID uuid.UUID) (orb.MultiPolygon, error)
}

type Counties interface {
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.County, error)
	List(ctx context.Context, districtID uuid.UUID, nameFilter string) ([]domain.County, error)
	GetPolygon(ctx context.Context, countyID uuid.UUID) (orb.MultiPolygon, error)
}

type Localities interface {
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Locality, error)
	List(ctx context.Context, countyID uuid.UUID, nameFilter string) ([]domain.Locality, error)
}

type PostalCodes interface {
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.PostalCode, error)
	List(ctx context.Context, localityID uuid.UUID, addressFilter string) ([]domain.PostalCode, error)
}

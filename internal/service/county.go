package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/ubiwhere/go-postal-codes/internal/domain"
	"github.com/ubiwhere/go-postal-codes/internal/geometry"
	"github.com/ubiwhere/go-postal-codes/internal/repository"
)

type countyService struct {
	countyRepository   repository.Counties
	localityRepository repository.Localities
}

func newCountyService(countyRepository repository.Counties, localityRepository repository.Localities) *countyService {
	return &countyService{
		countyRepository:   countyRepository,
		localityRepository: localityRepository,
	}
}

func (s *countyService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.County, error) {
	return s.countyRepository.GetOneByID(ctx, id)
}

func (s *countyService) List(ctx context.Context, districtID uuid.UUID, nameFilter string) ([]domain.County, error) {
	return s.countyRepository.GetAllByDistrict(ctx, districtID, nameFilter)
}

// GetPolygon dissolves the polygons of the county's localities. Counties
// whose localities are all unresolved aggregate to an empty multipolygon.
func (s *countyService) GetPolygon(ctx context.Context, countyID uuid.UUID) (orb.MultiPolygon, error) {
	localities, err := s.localityRepository.GetAllByCounty(ctx, countyID, "")
	if err != nil {
		return nil, err
	}
	polygons := make([]orb.MultiPolygon, 0, len(localities))
	for _, locality := range localities {
		polygons = append(polygons, locality.Polygon.MultiPolygon)
	}
	return geometry.Union(polygons...)
}

package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/ubiwhere/go-postal-codes/internal/domain"
	"github.com/ubiwhere/go-postal-codes/internal/geometry"
	"github.com/ubiwhere/go-postal-codes/internal/repository"
)

type districtService struct {
	districtRepository repository.Districts
	counties           Counties
}

func newDistrictService(districtRepository repository.Districts, counties Counties) *districtService {
	return &districtService{
		districtRepository: districtRepository,
		counties:           counties,
	}
}

func (s *districtService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.District, error) {
	return s.districtRepository.GetOneByID(ctx, id)
}

func (s *districtService) List(ctx context.Context, countryID uuid.UUID, nameFilter string) ([]domain.District, error) {
	return s.districtRepository.GetAllByCountry(ctx, countryID, nameFilter)
}

// GetPolygon dissolves the aggregate polygons of the district's counties,
// which are themselves dissolved locality polygons.
func (s *districtService) GetPolygon(ctx context.Context, districtID uuid.UUID) (orb.MultiPolygon, error) {
	counties, err := s.counties.List(ctx, districtID, "")
	if err != nil {
		return nil, err
	}
	polygons := make([]orb.MultiPolygon, 0, len(counties))
	for _, county := range counties {
		polygon, err := s.counties.GetPolygon(ctx, county.ID)
		if err != nil {
			return nil, err
		}
		polygons = append(polygons, polygon)
	}
	return geometry.Union(polygons...)
}

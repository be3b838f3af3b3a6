package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ubiwhere/go-postal-codes/internal/domain"
	"github.com/ubiwhere/go-postal-codes/internal/repository"
)

type localityService struct {
	localityRepository repository.Localities
}

func newLocalityService(localityRepository repository.Localities) *localityService {
	return &localityService{
		localityRepository: localityRepository,
	}
}

func (s *localityService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Locality, error) {
	return s.localityRepository.GetOneByID(ctx, id)
}

func (s *localityService) List(ctx context.Context, countyID uuid.UUID, nameFilter string) ([]domain.Locality, error) {
	return s.localityRepository.GetAllByCounty(ctx, countyID, nameFilter)
}

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ubiwhere/go-postal-codes/internal/domain"
	"github.com/ubiwhere/go-postal-codes/internal/repository"
)

type countryService struct {
	countryRepository repository.Countries
}

func newCountryService(countryRepository repository.Countries) *countryService {
	return &countryService{
		countryRepository: countryRepository,
	}
}

func (s *countryService) GetByName(ctx context.Context, name string) (*domain.Country, error) {
	return s.countryRepository.GetByName(ctx, name)
}

func (s *countryService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Country, error) {
	return s.countryRepository.GetOneByID(ctx, id)
}

func (s *countryService) List(ctx context.Context, nameFilter string) ([]domain.Country, error) {
	return s.countryRepository.GetAll(ctx, nameFilter)
}

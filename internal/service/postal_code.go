package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ubiwhere/go-postal-codes/internal/domain"
	"github.com/ubiwhere/go-postal-codes/internal/repository"
)

type postalCodeService struct {
	postalCodeRepository repository.PostalCodes
}

func newPostalCodeService(postalCodeRepository repository.PostalCodes) *postalCodeService {
	return &postalCodeService{
		postalCodeRepository: postalCodeRepository,
	}
}

func (s *postalCodeService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.PostalCode, error) {
	return s.postalCodeRepository.GetOneByID(ctx, id)
}

func (s *postalCodeService) List(ctx context.Context, localityID uuid.UUID, addressFilter string) ([]domain.PostalCode, error) {
	return s.postalCodeRepository.GetAllByLocality(ctx, localityID, addressFilter)
}

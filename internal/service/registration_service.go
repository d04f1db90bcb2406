package service

import (
	"context"

	"github.com/agroconecta/marketplace-service/internal/domain"
	"github.com/agroconecta/marketplace-service/internal/dto"
	"github.com/agroconecta/marketplace-service/internal/repository"
)

type RegistrationServiceImpl struct {
	repo repository.RegistrationRepository
}

func CreateRegistrationService(repo repository.RegistrationRepository) RegistrationService {
	return &RegistrationServiceImpl{repo: repo}
}

func (s *RegistrationServiceImpl) AddRegistration(ctx context.Context, data dto.RegistrationRequest) (id dto.DocumentID, err error) {
	newID, err := s.repo.AddRegistration(ctx, data)
	if err != nil {
		return
	}

	return dto.DocumentID{ID: newID}, nil
}

func (s *RegistrationServiceImpl) GetRegistrations(ctx context.Context) (data []domain.Registration, err error) {
	return s.repo.GetRegistrations(ctx)
}

func (s *RegistrationServiceImpl) GetRegistrationByID(ctx context.Context, id string) (registration domain.Registration, err error) {
	return s.repo.GetRegistrationByID(ctx, id)
}

func (s *RegistrationServiceImpl) UpdateRegistration(ctx context.Context, id string, data dto.RegistrationRequest) (err error) {
	return s.repo.UpdateRegistration(ctx, id, data)
}

func (s *RegistrationServiceImpl) DeleteRegistration(ctx context.Context, id string) (err error) {
	return s.repo.DeleteRegistration(ctx, id)
}

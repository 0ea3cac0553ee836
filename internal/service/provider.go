package service

import (
	"context"
	"fmt"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

type providerService struct {
	providerRepo repository.ProviderRepository
}

func NewProviderService(providerRepo repository.ProviderRepository) ProviderService {
	return &providerService{providerRepo: providerRepo}
}

func (s *providerService) CreateProvider(ctx context.Context, provider *domain.ServiceProvider) error {
	if !provider.ServiceType.Valid() {
		return fmt.Errorf("invalid service type %q", provider.ServiceType)
	}
	if provider.Status == "" {
		provider.Status = domain.ProviderStatusActive
	}
	return s.providerRepo.Create(ctx, provider)
}

func (s *providerService) GetProvider(ctx context.Context, serviceType domain.ServiceType, id int64) (*domain.ServiceProvider, error) {
	return s.providerRepo.GetByID(ctx, serviceType, id)
}

func (s *providerService) UpdateProvider(ctx context.Context, provider *domain.ServiceProvider) error {
	return s.providerRepo.Update(ctx, provider)
}

func (s *providerService) DeleteProvider(ctx context.Context, serviceType domain.ServiceType, id int64) error {
	return s.providerRepo.Delete(ctx, serviceType, id)
}

func (s *providerService) ListProviders(ctx context.Context, serviceType domain.ServiceType) ([]domain.ServiceProvider, error) {
	return s.providerRepo.ListByType(ctx, serviceType)
}

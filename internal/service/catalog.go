package service

import (
	"context"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

type catalogService struct {
	schoolRepo repository.SchoolRepository
	destRepo   repository.DestinationRepository
}

func NewCatalogService(schoolRepo repository.SchoolRepository, destRepo repository.DestinationRepository) CatalogService {
	return &catalogService{schoolRepo: schoolRepo, destRepo: destRepo}
}

func (s *catalogService) CreateSchool(ctx context.Context, school *domain.School) error {
	return s.schoolRepo.Create(ctx, school)
}

func (s *catalogService) GetSchool(ctx context.Context, id int64) (*domain.School, error) {
	return s.schoolRepo.GetByID(ctx, id)
}

func (s *catalogService) UpdateSchool(ctx context.Context, school *domain.School) error {
	return s.schoolRepo.Update(ctx, school)
}

func (s *catalogService) DeleteSchool(ctx context.Context, id int64) error {
	return s.schoolRepo.Delete(ctx, id)
}

func (s *catalogService) ListSchools(ctx context.Context) ([]domain.School, error) {
	return s.schoolRepo.List(ctx)
}

func (s *catalogService) CreateDestination(ctx context.Context, dest *domain.Destination) error {
	return s.destRepo.Create(ctx, dest)
}

func (s *catalogService) GetDestination(ctx context.Context, id int64) (*domain.Destination, error) {
	return s.destRepo.GetByID(ctx, id)
}

func (s *catalogService) UpdateDestination(ctx context.Context, dest *domain.Destination) error {
	return s.destRepo.Update(ctx, dest)
}

func (s *catalogService) DeleteDestination(ctx context.Context, id int64) error {
	return s.destRepo.Delete(ctx, id)
}

func (s *catalogService) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return s.destRepo.List(ctx)
}

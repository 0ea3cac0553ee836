package service

import (
	"context"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if customer.CustomerType == "" {
		customer.CustomerType = domain.CustomerTypeSchool
	}
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	return s.customerRepo.Update(ctx, customer)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	return s.customerRepo.Delete(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error) {
	return s.customerRepo.List(ctx, page, pageSize)
}

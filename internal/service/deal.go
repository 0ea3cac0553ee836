package service

import (
	"context"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/logger"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

type dealService struct {
	dealRepo  repository.DealRepository
	ledgerSvc LedgerService
}

func NewDealService(dealRepo repository.DealRepository, ledgerSvc LedgerService) DealService {
	return &dealService{dealRepo: dealRepo, ledgerSvc: ledgerSvc}
}

// CreateDeal persists the deal and deducts its amount from the customer
// balance. The ledger call is not transactional with the insert: a deal can
// exist without its balance effect if the second step fails.
func (s *dealService) CreateDeal(ctx context.Context, deal *domain.Deal) error {
	if deal.Status == "" {
		deal.Status = domain.DealStatusActive
	}
	if deal.DealType == "" {
		deal.DealType = domain.DealTypeDirect
	}
	if err := s.dealRepo.Create(ctx, deal); err != nil {
		return err
	}

	if err := s.ledgerSvc.HandleDealCreated(ctx, deal.ID, deal.CustomerID, deal.Amount, deal.Title); err != nil {
		logger.Error("deal created but balance update failed", "dealID", deal.ID, "error", err)
		return err
	}
	return nil
}

func (s *dealService) GetDeal(ctx context.Context, id int64) (*domain.Deal, error) {
	return s.dealRepo.GetByID(ctx, id)
}

func (s *dealService) UpdateDeal(ctx context.Context, deal *domain.Deal) error {
	return s.dealRepo.Update(ctx, deal)
}

// DeleteDeal removes the deal and reverses its balance deduction.
func (s *dealService) DeleteDeal(ctx context.Context, id int64) error {
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.dealRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.ledgerSvc.HandleDealDeleted(ctx, deal.ID, deal.CustomerID, deal.Amount, deal.Title); err != nil {
		logger.Error("deal deleted but balance reversal failed", "dealID", id, "error", err)
		return err
	}
	return nil
}

func (s *dealService) ListDeals(ctx context.Context, page, pageSize int32) ([]domain.Deal, int32, error) {
	return s.dealRepo.List(ctx, page, pageSize)
}

func (s *dealService) ListCustomerDeals(ctx context.Context, customerID int64) ([]domain.Deal, error) {
	return s.dealRepo.ListByCustomer(ctx, customerID)
}

package service

import (
	"context"
	"fmt"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/logger"
	"github.com/mhr996/school-dash-backend/internal/repository"
	"github.com/mhr996/school-dash-backend/internal/utils"
)

type billService struct {
	billRepo  repository.BillRepository
	ledgerSvc LedgerService
}

func NewBillService(billRepo repository.BillRepository, ledgerSvc LedgerService) BillService {
	return &billService{billRepo: billRepo, ledgerSvc: ledgerSvc}
}

// CreateBill persists the bill with its payment legs and applies the
// direction-signed aggregate to the customer balance.
func (s *billService) CreateBill(ctx context.Context, bill *domain.Bill, payments []domain.BillPayment) error {
	if bill.Direction == "" {
		bill.Direction = domain.BillDirectionPositive
	}
	if bill.Status == "" {
		bill.Status = domain.BillStatusIssued
	}
	if err := s.billRepo.Create(ctx, bill, payments); err != nil {
		return err
	}

	total := utils.TotalPaymentAmount(payments, bill.Direction)
	desc := bill.Description
	if desc == "" {
		desc = fmt.Sprintf("Bill #%d", bill.ID)
	}
	if err := s.ledgerSvc.HandleReceiptCreated(ctx, bill.ID, bill.CustomerID, total, desc); err != nil {
		logger.Error("bill created but balance update failed", "billID", bill.ID, "error", err)
		return err
	}
	return nil
}

func (s *billService) GetBill(ctx context.Context, id int64) (*domain.Bill, []domain.BillPayment, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	payments, err := s.billRepo.GetPayments(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return bill, payments, nil
}

func (s *billService) UpdateBill(ctx context.Context, bill *domain.Bill) error {
	return s.billRepo.Update(ctx, bill)
}

// UpdateBillPayments replaces every payment leg of the bill. Ledger rows are
// written only on bill create/delete, so an edit leaves the balance as is.
func (s *billService) UpdateBillPayments(ctx context.Context, billID int64, payments []domain.BillPayment) error {
	if _, err := s.billRepo.GetByID(ctx, billID); err != nil {
		return err
	}
	return s.billRepo.ReplacePayments(ctx, billID, payments)
}

// DeleteBill removes the bill and reverses its balance effect.
func (s *billService) DeleteBill(ctx context.Context, id int64) error {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	payments, err := s.billRepo.GetPayments(ctx, id)
	if err != nil {
		return err
	}
	if err := s.billRepo.Delete(ctx, id); err != nil {
		return err
	}

	total := utils.TotalPaymentAmount(payments, bill.Direction)
	desc := fmt.Sprintf("Bill #%d deleted", id)
	if err := s.ledgerSvc.HandleReceiptDeleted(ctx, id, bill.CustomerID, total, desc); err != nil {
		logger.Error("bill deleted but balance reversal failed", "billID", id, "error", err)
		return err
	}
	return nil
}

func (s *billService) ListBills(ctx context.Context, page, pageSize int32) ([]domain.Bill, int32, error) {
	return s.billRepo.List(ctx, page, pageSize)
}

func (s *billService) ListCustomerBills(ctx context.Context, customerID int64) ([]domain.Bill, error) {
	return s.billRepo.ListByCustomer(ctx, customerID)
}

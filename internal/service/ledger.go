package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/logger"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

// discrepancyTolerance absorbs float rounding when comparing the stored
// balance against the transaction log sum.
const discrepancyTolerance = 0.005

type ledgerService struct {
	customerRepo repository.CustomerRepository
	ledgerRepo   repository.LedgerRepository
}

func NewLedgerService(customerRepo repository.CustomerRepository, ledgerRepo repository.LedgerRepository) LedgerService {
	return &ledgerService{customerRepo: customerRepo, ledgerRepo: ledgerRepo}
}

// UpdateCustomerBalance is a plain read-modify-write: two concurrent calls
// for the same customer can lose one update. The audit append after the
// write is best-effort, so the log can lag the balance.
func (s *ledgerService) UpdateCustomerBalance(ctx context.Context, upd BalanceUpdate) error {
	logger.EnterMethod("ledgerService.UpdateCustomerBalance", "customerID", upd.CustomerID, "amount", upd.Amount, "type", upd.Type)

	balance, err := s.customerRepo.GetBalance(ctx, upd.CustomerID)
	if err != nil {
		logger.ExitMethodWithError("ledgerService.UpdateCustomerBalance", err, "customerID", upd.CustomerID)
		return fmt.Errorf("read balance: %w", err)
	}

	newBalance := balance + upd.Amount
	if err := s.customerRepo.UpdateBalance(ctx, upd.CustomerID, newBalance); err != nil {
		logger.ExitMethodWithError("ledgerService.UpdateCustomerBalance", err, "customerID", upd.CustomerID)
		return fmt.Errorf("write balance: %w", err)
	}

	tx := &domain.CustomerTransaction{
		CustomerID:    upd.CustomerID,
		Type:          upd.Type,
		Amount:        upd.Amount,
		BalanceBefore: balance,
		BalanceAfter:  newBalance,
		ReferenceID:   upd.ReferenceID,
		Description:   upd.Description,
	}
	if err := s.ledgerRepo.CreateTransaction(ctx, tx); err != nil {
		// The balance write already committed. The transaction log is an
		// audit trail, not the source of truth, so the miss is reported to
		// the reconciliation job rather than failing the operation.
		logger.Warn("audit transaction insert failed, balance already updated",
			"customerID", upd.CustomerID, "type", upd.Type, "amount", upd.Amount, "error", err)
	}

	logger.ExitMethod("ledgerService.UpdateCustomerBalance", "customerID", upd.CustomerID, "newBalance", newBalance)
	return nil
}

func (s *ledgerService) HandleDealCreated(ctx context.Context, dealID, customerID int64, amount float64, title string) error {
	return s.UpdateCustomerBalance(ctx, BalanceUpdate{
		CustomerID:  customerID,
		Amount:      -amount,
		Type:        domain.TransactionTypeDealCreated,
		ReferenceID: fmt.Sprintf("deal:%d", dealID),
		Description: fmt.Sprintf("Deal created: %s", title),
	})
}

func (s *ledgerService) HandleDealDeleted(ctx context.Context, dealID, customerID int64, amount float64, title string) error {
	return s.UpdateCustomerBalance(ctx, BalanceUpdate{
		CustomerID:  customerID,
		Amount:      amount,
		Type:        domain.TransactionTypeDealDeleted,
		ReferenceID: fmt.Sprintf("deal:%d", dealID),
		Description: fmt.Sprintf("Deal deleted: %s", title),
	})
}

func (s *ledgerService) HandleReceiptCreated(ctx context.Context, billID, customerID int64, total float64, description string) error {
	return s.UpdateCustomerBalance(ctx, BalanceUpdate{
		CustomerID:  customerID,
		Amount:      total,
		Type:        domain.TransactionTypeReceiptCreated,
		ReferenceID: fmt.Sprintf("bill:%d", billID),
		Description: description,
	})
}

func (s *ledgerService) HandleReceiptDeleted(ctx context.Context, billID, customerID int64, total float64, description string) error {
	return s.UpdateCustomerBalance(ctx, BalanceUpdate{
		CustomerID:  customerID,
		Amount:      -total,
		Type:        domain.TransactionTypeReceiptDeleted,
		ReferenceID: fmt.Sprintf("bill:%d", billID),
		Description: description,
	})
}

func (s *ledgerService) GetTransactions(ctx context.Context, customerID int64, page, pageSize int32) ([]domain.CustomerTransaction, int32, error) {
	return s.ledgerRepo.ListByCustomer(ctx, customerID, page, pageSize)
}

func (s *ledgerService) ReconcileCustomer(ctx context.Context, customerID int64) (*domain.BalanceDiscrepancy, error) {
	stored, err := s.customerRepo.GetBalance(ctx, customerID)
	if err != nil {
		return nil, err
	}
	ledgerSum, err := s.ledgerRepo.SumByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	delta := stored - ledgerSum
	if math.Abs(delta) <= discrepancyTolerance {
		return nil, nil
	}

	d := &domain.BalanceDiscrepancy{
		CustomerID:    customerID,
		StoredBalance: stored,
		LedgerBalance: ledgerSum,
		Delta:         delta,
	}
	if err := s.ledgerRepo.CreateDiscrepancy(ctx, d); err != nil {
		return nil, fmt.Errorf("record discrepancy: %w", err)
	}
	logger.Warn("customer balance diverges from transaction log",
		"customerID", customerID, "stored", stored, "ledger", ledgerSum, "delta", delta)
	return d, nil
}

func (s *ledgerService) ListDiscrepancies(ctx context.Context, since time.Time) ([]domain.BalanceDiscrepancy, error) {
	return s.ledgerRepo.ListDiscrepancies(ctx, since)
}

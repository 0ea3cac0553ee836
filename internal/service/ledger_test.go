package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mhr996/school-dash-backend/internal/domain"
)

func TestUpdateCustomerBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("AppliesSignedDelta", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		ledgerRepo := new(MockLedgerRepo)
		svc := NewLedgerService(customerRepo, ledgerRepo)

		customerRepo.On("GetBalance", ctx, int64(1)).Return(1000.0, nil)
		customerRepo.On("UpdateBalance", ctx, int64(1), 700.0).Return(nil)
		ledgerRepo.On("CreateTransaction", ctx, mock.MatchedBy(func(tx *domain.CustomerTransaction) bool {
			return tx.BalanceBefore == 1000.0 && tx.BalanceAfter == 700.0 && tx.Amount == -300.0
		})).Return(nil)

		err := svc.UpdateCustomerBalance(ctx, BalanceUpdate{
			CustomerID: 1,
			Amount:     -300,
			Type:       domain.TransactionTypeDealCreated,
		})
		assert.NoError(t, err)
		customerRepo.AssertExpectations(t)
		ledgerRepo.AssertExpectations(t)
	})

	t.Run("AuditInsertFailureIsSwallowed", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		ledgerRepo := new(MockLedgerRepo)
		svc := NewLedgerService(customerRepo, ledgerRepo)

		customerRepo.On("GetBalance", ctx, int64(1)).Return(500.0, nil)
		customerRepo.On("UpdateBalance", ctx, int64(1), 800.0).Return(nil)
		ledgerRepo.On("CreateTransaction", ctx, mock.Anything).Return(errors.New("insert failed"))

		err := svc.UpdateCustomerBalance(ctx, BalanceUpdate{
			CustomerID: 1,
			Amount:     300,
			Type:       domain.TransactionTypeReceiptCreated,
		})
		assert.NoError(t, err)
		customerRepo.AssertExpectations(t)
	})

	t.Run("BalanceWriteFailureFails", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		ledgerRepo := new(MockLedgerRepo)
		svc := NewLedgerService(customerRepo, ledgerRepo)

		customerRepo.On("GetBalance", ctx, int64(1)).Return(500.0, nil)
		customerRepo.On("UpdateBalance", ctx, int64(1), 200.0).Return(errors.New("db down"))

		err := svc.UpdateCustomerBalance(ctx, BalanceUpdate{CustomerID: 1, Amount: -300})
		assert.Error(t, err)
		ledgerRepo.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	})
}

// The deal and receipt hooks form a round trip: deal creation debits, receipt
// and deal deletion credit.
func TestDealReceiptRoundTrip(t *testing.T) {
	ctx := context.Background()
	customerRepo := new(MockCustomerRepo)
	ledgerRepo := new(MockLedgerRepo)
	svc := NewLedgerService(customerRepo, ledgerRepo)

	ledgerRepo.On("CreateTransaction", ctx, mock.Anything).Return(nil)

	// Deal created for 300: 1000 -> 700.
	customerRepo.On("GetBalance", ctx, int64(7)).Return(1000.0, nil).Once()
	customerRepo.On("UpdateBalance", ctx, int64(7), 700.0).Return(nil).Once()
	assert.NoError(t, svc.HandleDealCreated(ctx, 11, 7, 300, "Spring trip"))

	// Receipt for 300: 700 -> 1000.
	customerRepo.On("GetBalance", ctx, int64(7)).Return(700.0, nil).Once()
	customerRepo.On("UpdateBalance", ctx, int64(7), 1000.0).Return(nil).Once()
	assert.NoError(t, svc.HandleReceiptCreated(ctx, 21, 7, 300, "Receipt"))

	// Deal deleted: 1000 -> 1300. Paid receipt stays, so the customer ends
	// up in credit.
	customerRepo.On("GetBalance", ctx, int64(7)).Return(1000.0, nil).Once()
	customerRepo.On("UpdateBalance", ctx, int64(7), 1300.0).Return(nil).Once()
	assert.NoError(t, svc.HandleDealDeleted(ctx, 11, 7, 300, "Spring trip"))

	customerRepo.AssertExpectations(t)
}

func TestReconcileCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("BalancedCustomerYieldsNothing", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		ledgerRepo := new(MockLedgerRepo)
		svc := NewLedgerService(customerRepo, ledgerRepo)

		customerRepo.On("GetBalance", ctx, int64(3)).Return(150.0, nil)
		ledgerRepo.On("SumByCustomer", ctx, int64(3)).Return(150.0, nil)

		d, err := svc.ReconcileCustomer(ctx, 3)
		assert.NoError(t, err)
		assert.Nil(t, d)
		ledgerRepo.AssertNotCalled(t, "CreateDiscrepancy", mock.Anything, mock.Anything)
	})

	t.Run("DivergenceIsRecordedNotCorrected", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		ledgerRepo := new(MockLedgerRepo)
		svc := NewLedgerService(customerRepo, ledgerRepo)

		customerRepo.On("GetBalance", ctx, int64(3)).Return(150.0, nil)
		ledgerRepo.On("SumByCustomer", ctx, int64(3)).Return(100.0, nil)
		ledgerRepo.On("CreateDiscrepancy", ctx, mock.MatchedBy(func(d *domain.BalanceDiscrepancy) bool {
			return d.CustomerID == 3 && d.StoredBalance == 150.0 && d.LedgerBalance == 100.0 && d.Delta == 50.0
		})).Return(nil)

		d, err := svc.ReconcileCustomer(ctx, 3)
		assert.NoError(t, err)
		assert.NotNil(t, d)
		assert.Equal(t, 50.0, d.Delta)
		customerRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RoundingNoiseIsTolerated", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		ledgerRepo := new(MockLedgerRepo)
		svc := NewLedgerService(customerRepo, ledgerRepo)

		customerRepo.On("GetBalance", ctx, int64(3)).Return(150.001, nil)
		ledgerRepo.On("SumByCustomer", ctx, int64(3)).Return(150.0, nil)

		d, err := svc.ReconcileCustomer(ctx, 3)
		assert.NoError(t, err)
		assert.Nil(t, d)
	})
}

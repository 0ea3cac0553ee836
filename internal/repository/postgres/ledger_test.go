package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/mhr996/school-dash-backend/internal/domain"
)

func TestLedgerRepository_CreateTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLedgerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		tx := &domain.CustomerTransaction{
			CustomerID:    7,
			Type:          domain.TransactionTypeDealCreated,
			Amount:        -300,
			BalanceBefore: 1000,
			BalanceAfter:  700,
			ReferenceID:   "deal:11",
			Description:   "Deal created: Spring trip",
		}

		mock.ExpectQuery("INSERT INTO customer_transactions").
			WithArgs(tx.CustomerID, tx.Type, tx.Amount, tx.BalanceBefore, tx.BalanceAfter, tx.ReferenceID, tx.Description).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

		err := repo.CreateTransaction(ctx, tx)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), tx.ID)
	})
}

func TestLedgerRepository_SumByCustomer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLedgerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM customer_transactions`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(250.5))

		sum, err := repo.SumByCustomer(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, 250.5, sum)
	})

	t.Run("EmptyLedgerSumsToZero", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM customer_transactions`).
			WithArgs(int64(8)).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(0.0))

		sum, err := repo.SumByCustomer(ctx, 8)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, sum)
	})
}

func TestLedgerRepository_CreateDiscrepancy(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLedgerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		d := &domain.BalanceDiscrepancy{
			CustomerID:    7,
			StoredBalance: 150,
			LedgerBalance: 100,
			Delta:         50,
		}

		mock.ExpectQuery("INSERT INTO balance_discrepancies").
			WithArgs(d.CustomerID, d.StoredBalance, d.LedgerBalance, d.Delta).
			WillReturnRows(sqlmock.NewRows([]string{"id", "detected_at"}).AddRow(3, time.Now()))

		err := repo.CreateDiscrepancy(ctx, d)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), d.ID)
	})
}

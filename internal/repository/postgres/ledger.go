package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

type ledgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) CreateTransaction(ctx context.Context, tx *domain.CustomerTransaction) error {
	query := `INSERT INTO customer_transactions (customer_id, type, amount, balance_before, balance_after, reference_id, description, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, NOW()) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query,
		tx.CustomerID, tx.Type, tx.Amount, tx.BalanceBefore, tx.BalanceAfter, tx.ReferenceID, tx.Description).
		Scan(&tx.ID, &tx.CreatedAt)
}

func (r *ledgerRepository) ListByCustomer(ctx context.Context, customerID int64, page, pageSize int32) ([]domain.CustomerTransaction, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, customer_id, type, amount, balance_before, balance_after, COALESCE(reference_id, ''), COALESCE(description, ''), created_at
	          FROM customer_transactions WHERE customer_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, customerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var txs []domain.CustomerTransaction
	for rows.Next() {
		var tx domain.CustomerTransaction
		if err := rows.Scan(&tx.ID, &tx.CustomerID, &tx.Type, &tx.Amount, &tx.BalanceBefore, &tx.BalanceAfter, &tx.ReferenceID, &tx.Description, &tx.CreatedAt); err != nil {
			return nil, 0, err
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	countQuery := `SELECT count(*) FROM customer_transactions WHERE customer_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, customerID).Scan(&count); err != nil {
		return nil, 0, err
	}
	return txs, count, nil
}

func (r *ledgerRepository) SumByCustomer(ctx context.Context, customerID int64) (float64, error) {
	var sum float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM customer_transactions WHERE customer_id = $1`
	err := r.db.QueryRowContext(ctx, query, customerID).Scan(&sum)
	return sum, err
}

func (r *ledgerRepository) CreateDiscrepancy(ctx context.Context, d *domain.BalanceDiscrepancy) error {
	query := `INSERT INTO balance_discrepancies (customer_id, stored_balance, ledger_balance, delta, detected_at)
	          VALUES ($1, $2, $3, $4, NOW()) RETURNING id, detected_at`
	return r.db.QueryRowContext(ctx, query, d.CustomerID, d.StoredBalance, d.LedgerBalance, d.Delta).
		Scan(&d.ID, &d.DetectedAt)
}

func (r *ledgerRepository) ListDiscrepancies(ctx context.Context, since time.Time) ([]domain.BalanceDiscrepancy, error) {
	query := `SELECT id, customer_id, stored_balance, ledger_balance, delta, detected_at
	          FROM balance_discrepancies WHERE detected_at >= $1 ORDER BY detected_at DESC`
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BalanceDiscrepancy
	for rows.Next() {
		var d domain.BalanceDiscrepancy
		if err := rows.Scan(&d.ID, &d.CustomerID, &d.StoredBalance, &d.LedgerBalance, &d.Delta, &d.DetectedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

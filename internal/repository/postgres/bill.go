package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

type billRepository struct {
	db *sql.DB
}

func NewBillRepository(db *sql.DB) repository.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, b *domain.Bill, payments []domain.BillPayment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO bills (customer_id, deal_id, bill_direction, status, description, receipt_key, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW()) RETURNING id, created_at, updated_at`
	err = tx.QueryRowContext(ctx, query, b.CustomerID, b.DealID, b.Direction, b.Status, b.Description, b.ReceiptKey).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertPayments(ctx, tx, b.ID, payments); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *billRepository) GetByID(ctx context.Context, id int64) (*domain.Bill, error) {
	query := `SELECT id, customer_id, deal_id, bill_direction, status, COALESCE(description, ''), COALESCE(receipt_key, ''), created_at, updated_at
	          FROM bills WHERE id = $1`
	var b domain.Bill
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&b.ID, &b.CustomerID, &b.DealID, &b.Direction, &b.Status, &b.Description, &b.ReceiptKey, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *billRepository) GetPayments(ctx context.Context, billID int64) ([]domain.BillPayment, error) {
	query := `SELECT id, bill_id, cash_amount, visa_amount, bank_amount, check_amount, transfer_amount, online_amount, COALESCE(notes, ''), created_at
	          FROM bill_payments WHERE bill_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.BillPayment
	for rows.Next() {
		var p domain.BillPayment
		if err := rows.Scan(&p.ID, &p.BillID, &p.CashAmount, &p.VisaAmount, &p.BankAmount, &p.CheckAmount, &p.TransferAmount, &p.OnlineAmount, &p.Notes, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *billRepository) Update(ctx context.Context, b *domain.Bill) error {
	query := `UPDATE bills SET status = $1, description = $2, receipt_key = $3, updated_at = NOW() WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, b.Status, b.Description, b.ReceiptKey, b.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *billRepository) ReplacePayments(ctx context.Context, billID int64, payments []domain.BillPayment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bill_payments WHERE bill_id = $1`, billID); err != nil {
		return err
	}
	if err := insertPayments(ctx, tx, billID, payments); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *billRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bill_payments WHERE bill_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if err := requireRow(res); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *billRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Bill, error) {
	query := `SELECT id, customer_id, deal_id, bill_direction, status, COALESCE(description, ''), COALESCE(receipt_key, ''), created_at, updated_at
	          FROM bills WHERE customer_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBills(rows)
}

func (r *billRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Bill, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, customer_id, deal_id, bill_direction, status, COALESCE(description, ''), COALESCE(receipt_key, ''), created_at, updated_at
	          FROM bills ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bills, err := scanBills(rows)
	if err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM bills`).Scan(&count); err != nil {
		return nil, 0, err
	}
	return bills, count, nil
}

func insertPayments(ctx context.Context, tx *sql.Tx, billID int64, payments []domain.BillPayment) error {
	query := `INSERT INTO bill_payments (bill_id, cash_amount, visa_amount, bank_amount, check_amount, transfer_amount, online_amount, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`
	for i := range payments {
		p := &payments[i]
		if _, err := tx.ExecContext(ctx, query, billID, p.CashAmount, p.VisaAmount, p.BankAmount, p.CheckAmount, p.TransferAmount, p.OnlineAmount, p.Notes); err != nil {
			return fmt.Errorf("insert bill payment: %w", err)
		}
	}
	return nil
}

func scanBills(rows *sql.Rows) ([]domain.Bill, error) {
	var bills []domain.Bill
	for rows.Next() {
		var b domain.Bill
		if err := rows.Scan(&b.ID, &b.CustomerID, &b.DealID, &b.Direction, &b.Status, &b.Description, &b.ReceiptKey, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

type dealRepository struct {
	db *sql.DB
}

func NewDealRepository(db *sql.DB) repository.DealRepository {
	return &dealRepository{db: db}
}

func (r *dealRepository) Create(ctx context.Context, d *domain.Deal) error {
	query := `INSERT INTO deals (customer_id, seller_id, title, amount, deal_type, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW()) RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query, d.CustomerID, d.SellerID, d.Title, d.Amount, d.DealType, d.Status).
		Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func (r *dealRepository) GetByID(ctx context.Context, id int64) (*domain.Deal, error) {
	query := `SELECT id, customer_id, seller_id, title, amount, deal_type, status, created_at, updated_at
	          FROM deals WHERE id = $1`
	var d domain.Deal
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&d.ID, &d.CustomerID, &d.SellerID, &d.Title, &d.Amount, &d.DealType, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *dealRepository) Update(ctx context.Context, d *domain.Deal) error {
	query := `UPDATE deals SET title = $1, amount = $2, deal_type = $3, status = $4, updated_at = NOW() WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, d.Title, d.Amount, d.DealType, d.Status, d.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *dealRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM deals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *dealRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Deal, error) {
	query := `SELECT id, customer_id, seller_id, title, amount, deal_type, status, created_at, updated_at
	          FROM deals WHERE customer_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDeals(rows)
}

func (r *dealRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Deal, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, customer_id, seller_id, title, amount, deal_type, status, created_at, updated_at
	          FROM deals ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	deals, err := scanDeals(rows)
	if err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM deals`).Scan(&count); err != nil {
		return nil, 0, err
	}
	return deals, count, nil
}

func scanDeals(rows *sql.Rows) ([]domain.Deal, error) {
	var deals []domain.Deal
	for rows.Next() {
		var d domain.Deal
		if err := rows.Scan(&d.ID, &d.CustomerID, &d.SellerID, &d.Title, &d.Amount, &d.DealType, &d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		deals = append(deals, d)
	}
	return deals, rows.Err()
}

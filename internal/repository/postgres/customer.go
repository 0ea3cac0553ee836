package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (name, phone, email, customer_type, balance, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, NOW(), NOW()) RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query, c.Name, c.Phone, c.Email, c.CustomerType, c.Balance).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `SELECT id, name, COALESCE(phone, ''), COALESCE(email, ''), customer_type, balance, created_at, updated_at
	          FROM customers WHERE id = $1`
	var c domain.Customer
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.CustomerType, &c.Balance, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name = $1, phone = $2, email = $3, customer_type = $4, updated_at = NOW()
	          WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.Phone, c.Email, c.CustomerType, c.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *customerRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, name, COALESCE(phone, ''), COALESCE(email, ''), customer_type, balance, created_at, updated_at
	          FROM customers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.CustomerType, &c.Balance, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM customers`).Scan(&count); err != nil {
		return nil, 0, err
	}
	return customers, count, nil
}

func (r *customerRepository) GetBalance(ctx context.Context, id int64) (float64, error) {
	var balance float64
	err := r.db.QueryRowContext(ctx, `SELECT balance FROM customers WHERE id = $1`, id).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	return balance, err
}

func (r *customerRepository) UpdateBalance(ctx context.Context, id int64, balance float64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE customers SET balance = $1, updated_at = NOW() WHERE id = $2`, balance, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *customerRepository) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// requireRow converts a zero-row update/delete into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

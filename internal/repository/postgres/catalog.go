package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

type schoolRepository struct {
	db *sql.DB
}

func NewSchoolRepository(db *sql.DB) repository.SchoolRepository {
	return &schoolRepository{db: db}
}

func (r *schoolRepository) Create(ctx context.Context, s *domain.School) error {
	query := `INSERT INTO schools (name, city, address, phone, contact, created_at)
	          VALUES ($1, $2, $3, $4, $5, NOW()) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, s.Name, s.City, s.Address, s.Phone, s.Contact).
		Scan(&s.ID, &s.CreatedAt)
}

func (r *schoolRepository) GetByID(ctx context.Context, id int64) (*domain.School, error) {
	query := `SELECT id, name, COALESCE(city, ''), COALESCE(address, ''), COALESCE(phone, ''), COALESCE(contact, ''), created_at
	          FROM schools WHERE id = $1`
	var s domain.School
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.Name, &s.City, &s.Address, &s.Phone, &s.Contact, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *schoolRepository) Update(ctx context.Context, s *domain.School) error {
	query := `UPDATE schools SET name = $1, city = $2, address = $3, phone = $4, contact = $5 WHERE id = $6`
	res, err := r.db.ExecContext(ctx, query, s.Name, s.City, s.Address, s.Phone, s.Contact, s.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *schoolRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schools WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *schoolRepository) List(ctx context.Context) ([]domain.School, error) {
	query := `SELECT id, name, COALESCE(city, ''), COALESCE(address, ''), COALESCE(phone, ''), COALESCE(contact, ''), created_at
	          FROM schools ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schools []domain.School
	for rows.Next() {
		var s domain.School
		if err := rows.Scan(&s.ID, &s.Name, &s.City, &s.Address, &s.Phone, &s.Contact, &s.CreatedAt); err != nil {
			return nil, err
		}
		schools = append(schools, s)
	}
	return schools, rows.Err()
}

type destinationRepository struct {
	db *sql.DB
}

func NewDestinationRepository(db *sql.DB) repository.DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Create(ctx context.Context, d *domain.Destination) error {
	query := `INSERT INTO destinations (name, region, base_price, active, created_at)
	          VALUES ($1, $2, $3, $4, NOW()) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, d.Name, d.Region, d.BasePrice, d.Active).
		Scan(&d.ID, &d.CreatedAt)
}

func (r *destinationRepository) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	query := `SELECT id, name, COALESCE(region, ''), COALESCE(base_price, 0), active, created_at
	          FROM destinations WHERE id = $1`
	var d domain.Destination
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&d.ID, &d.Name, &d.Region, &d.BasePrice, &d.Active, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *destinationRepository) Update(ctx context.Context, d *domain.Destination) error {
	query := `UPDATE destinations SET name = $1, region = $2, base_price = $3, active = $4 WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, d.Name, d.Region, d.BasePrice, d.Active, d.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *destinationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *destinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	query := `SELECT id, name, COALESCE(region, ''), COALESCE(base_price, 0), active, created_at
	          FROM destinations ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dests []domain.Destination
	for rows.Next() {
		var d domain.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Region, &d.BasePrice, &d.Active, &d.CreatedAt); err != nil {
			return nil, err
		}
		dests = append(dests, d)
	}
	return dests, rows.Err()
}

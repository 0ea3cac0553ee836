package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

// providerTables is the one place the type-to-table mapping lives. The five
// provider kinds keep physically separate tables with overlapping schemas;
// every caller goes through this repository instead of re-deriving the name.
var providerTables = map[domain.ServiceType]string{
	domain.ServiceTypeGuide:         "guides",
	domain.ServiceTypeParamedic:     "paramedics",
	domain.ServiceTypeSecurity:      "security_companies",
	domain.ServiceTypeEntertainment: "entertainment_companies",
	domain.ServiceTypeTravelCompany: "travel_companies",
}

func providerTable(serviceType domain.ServiceType) (string, error) {
	table, ok := providerTables[serviceType]
	if !ok {
		return "", fmt.Errorf("unknown service type %q", serviceType)
	}
	return table, nil
}

type providerRepository struct {
	db *sql.DB
}

func NewProviderRepository(db *sql.DB) repository.ProviderRepository {
	return &providerRepository{db: db}
}

func (r *providerRepository) Create(ctx context.Context, p *domain.ServiceProvider) error {
	table, err := providerTable(p.ServiceType)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`INSERT INTO %s (name, user_id, phone, email, daily_rate, status, document_key, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, NOW()) RETURNING id, created_at`, table)
	return r.db.QueryRowContext(ctx, query, p.Name, p.UserID, p.Phone, p.Email, p.DailyRate, p.Status, p.DocumentKey).
		Scan(&p.ID, &p.CreatedAt)
}

func (r *providerRepository) GetByID(ctx context.Context, serviceType domain.ServiceType, id int64) (*domain.ServiceProvider, error) {
	table, err := providerTable(serviceType)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT id, name, user_id, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(daily_rate, 0), status, COALESCE(document_key, ''), created_at
	          FROM %s WHERE id = $1`, table)
	p := domain.ServiceProvider{ServiceType: serviceType}
	err = r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.UserID, &p.Phone, &p.Email, &p.DailyRate, &p.Status, &p.DocumentKey, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *providerRepository) Update(ctx context.Context, p *domain.ServiceProvider) error {
	table, err := providerTable(p.ServiceType)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`UPDATE %s SET name = $1, user_id = $2, phone = $3, email = $4, daily_rate = $5, status = $6, document_key = $7
	          WHERE id = $8`, table)
	res, err := r.db.ExecContext(ctx, query, p.Name, p.UserID, p.Phone, p.Email, p.DailyRate, p.Status, p.DocumentKey, p.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *providerRepository) Delete(ctx context.Context, serviceType domain.ServiceType, id int64) error {
	table, err := providerTable(serviceType)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *providerRepository) ListByType(ctx context.Context, serviceType domain.ServiceType) ([]domain.ServiceProvider, error) {
	table, err := providerTable(serviceType)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT id, name, user_id, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(daily_rate, 0), status, COALESCE(document_key, ''), created_at
	          FROM %s ORDER BY name`, table)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var providers []domain.ServiceProvider
	for rows.Next() {
		p := domain.ServiceProvider{ServiceType: serviceType}
		if err := rows.Scan(&p.ID, &p.Name, &p.UserID, &p.Phone, &p.Email, &p.DailyRate, &p.Status, &p.DocumentKey, &p.CreatedAt); err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, rows.Err()
}

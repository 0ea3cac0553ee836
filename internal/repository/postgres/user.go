package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, name, password_hash, role, active, created_at)
	          VALUES ($1, $2, $3, $4, $5, NOW()) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, u.Email, u.Name, u.PasswordHash, u.Role, u.Active).
		Scan(&u.ID, &u.CreatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, email, name, password_hash, role, active, created_at FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, name, password_hash, role, active, created_at FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email = $1, name = $2, password_hash = $3, role = $4, active = $5 WHERE id = $6`
	res, err := r.db.ExecContext(ctx, query, u.Email, u.Name, u.PasswordHash, u.Role, u.Active, u.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, email, name, password_hash, role, active, created_at FROM users ORDER BY email`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

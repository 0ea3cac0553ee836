package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

type payoutRepository struct {
	db *sql.DB
}

func NewPayoutRepository(db *sql.DB) repository.PayoutRepository {
	return &payoutRepository{db: db}
}

const payoutColumns = `id, type, status, service_type, service_id, provider_name, provider_user_id, amount,
	booking_id, booking_service_id, booking_record_id, COALESCE(payment_method, ''), COALESCE(reference, ''), COALESCE(notes, ''), created_at, paid_at`

const payoutInsert = `INSERT INTO payouts (type, status, service_type, service_id, provider_name, provider_user_id, amount,
	booking_id, booking_service_id, booking_record_id, payment_method, reference, notes, created_at, paid_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), $14) RETURNING id, created_at`

func (r *payoutRepository) Create(ctx context.Context, p *domain.Payout) error {
	return r.db.QueryRowContext(ctx, payoutInsert,
		p.Type, p.Status, p.ServiceType, p.ServiceID, p.ProviderName, p.ProviderUserID, p.Amount,
		p.BookingID, p.BookingServiceID, p.BookingRecordID, nullString(string(p.PaymentMethod)), nullString(p.Reference), nullString(p.Notes), p.PaidAt).
		Scan(&p.ID, &p.CreatedAt)
}

func (r *payoutRepository) CreateBatch(ctx context.Context, payouts []domain.Payout) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range payouts {
		p := &payouts[i]
		err := tx.QueryRowContext(ctx, payoutInsert,
			p.Type, p.Status, p.ServiceType, p.ServiceID, p.ProviderName, p.ProviderUserID, p.Amount,
			p.BookingID, p.BookingServiceID, p.BookingRecordID, nullString(string(p.PaymentMethod)), nullString(p.Reference), nullString(p.Notes), p.PaidAt).
			Scan(&p.ID, &p.CreatedAt)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *payoutRepository) GetByID(ctx context.Context, id int64) (*domain.Payout, error) {
	var p domain.Payout
	err := r.db.QueryRowContext(ctx, `SELECT `+payoutColumns+` FROM payouts WHERE id = $1`, id).
		Scan(&p.ID, &p.Type, &p.Status, &p.ServiceType, &p.ServiceID, &p.ProviderName, &p.ProviderUserID, &p.Amount,
			&p.BookingID, &p.BookingServiceID, &p.BookingRecordID, &p.PaymentMethod, &p.Reference, &p.Notes, &p.CreatedAt, &p.PaidAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *payoutRepository) UpdateStatus(ctx context.Context, id int64, status domain.PayoutStatus, paidAt *time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE payouts SET status = $1, paid_at = $2 WHERE id = $3`, status, paidAt, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *payoutRepository) ListByProvider(ctx context.Context, serviceType domain.ServiceType, serviceID int64) ([]domain.Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE service_type = $1 AND service_id = $2 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, serviceType, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayouts(rows)
}

func (r *payoutRepository) List(ctx context.Context, payoutType domain.PayoutType, status domain.PayoutStatus, page, pageSize int32) ([]domain.Payout, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + payoutColumns + ` FROM payouts
	          WHERE ($1 = '' OR type = $1) AND ($2 = '' OR status = $2)
	          ORDER BY created_at DESC, id DESC LIMIT $3 OFFSET $4`
	rows, err := r.db.QueryContext(ctx, query, string(payoutType), string(status), pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	payouts, err := scanPayouts(rows)
	if err != nil {
		return nil, 0, err
	}

	var count int32
	countQuery := `SELECT count(*) FROM payouts WHERE ($1 = '' OR type = $1) AND ($2 = '' OR status = $2)`
	if err := r.db.QueryRowContext(ctx, countQuery, string(payoutType), string(status)).Scan(&count); err != nil {
		return nil, 0, err
	}
	return payouts, count, nil
}

func (r *payoutRepository) ExistingBookingServiceIDs(ctx context.Context, bookingServiceIDs []int64) (map[int64]bool, error) {
	existing := make(map[int64]bool)
	if len(bookingServiceIDs) == 0 {
		return existing, nil
	}
	query := `SELECT booking_service_id FROM payouts
	          WHERE type = 'booking' AND booking_service_id = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(bookingServiceIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		existing[id] = true
	}
	return existing, rows.Err()
}

func (r *payoutRepository) HasPaymentForBookingRecord(ctx context.Context, bookingRecordID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM payouts WHERE type = 'payment' AND booking_record_id = $1)`
	err := r.db.QueryRowContext(ctx, query, bookingRecordID).Scan(&exists)
	return exists, err
}

func scanPayouts(rows *sql.Rows) ([]domain.Payout, error) {
	var payouts []domain.Payout
	for rows.Next() {
		var p domain.Payout
		if err := rows.Scan(&p.ID, &p.Type, &p.Status, &p.ServiceType, &p.ServiceID, &p.ProviderName, &p.ProviderUserID, &p.Amount,
			&p.BookingID, &p.BookingServiceID, &p.BookingRecordID, &p.PaymentMethod, &p.Reference, &p.Notes, &p.CreatedAt, &p.PaidAt); err != nil {
			return nil, err
		}
		payouts = append(payouts, p)
	}
	return payouts, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking, services []domain.BookingService) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO bookings (customer_id, school_id, destination_id, status, trip_date, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW()) RETURNING id, created_at, updated_at`
	err = tx.QueryRowContext(ctx, query, b.CustomerID, b.SchoolID, b.DestinationID, b.Status, b.TripDate, b.Notes).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return err
	}

	lineQuery := `INSERT INTO booking_services (booking_id, service_type, service_id, quantity, days, booked_price)
	              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	for i := range services {
		s := &services[i]
		s.BookingID = b.ID
		if err := tx.QueryRowContext(ctx, lineQuery, b.ID, s.ServiceType, s.ServiceID, s.Quantity, s.Days, s.BookedPrice).Scan(&s.ID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT id, customer_id, school_id, destination_id, status, trip_date, COALESCE(notes, ''), created_at, updated_at
	          FROM bookings WHERE id = $1`
	var b domain.Booking
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&b.ID, &b.CustomerID, &b.SchoolID, &b.DestinationID, &b.Status, &b.TripDate, &b.Notes, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET school_id = $1, destination_id = $2, status = $3, trip_date = $4, notes = $5, updated_at = NOW()
	          WHERE id = $6`
	res, err := r.db.ExecContext(ctx, query, b.SchoolID, b.DestinationID, b.Status, b.TripDate, b.Notes, b.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *bookingRepository) ListServices(ctx context.Context, bookingID int64) ([]domain.BookingService, error) {
	query := `SELECT id, booking_id, service_type, service_id, quantity, days, booked_price
	          FROM booking_services WHERE booking_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []domain.BookingService
	for rows.Next() {
		var s domain.BookingService
		if err := rows.Scan(&s.ID, &s.BookingID, &s.ServiceType, &s.ServiceID, &s.Quantity, &s.Days, &s.BookedPrice); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *bookingRepository) List(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	offset := (page - 1) * pageSize

	var rows *sql.Rows
	var err error
	if status == "" {
		query := `SELECT id, customer_id, school_id, destination_id, status, trip_date, COALESCE(notes, ''), created_at, updated_at
		          FROM bookings ORDER BY trip_date DESC LIMIT $1 OFFSET $2`
		rows, err = r.db.QueryContext(ctx, query, pageSize, offset)
	} else {
		query := `SELECT id, customer_id, school_id, destination_id, status, trip_date, COALESCE(notes, ''), created_at, updated_at
		          FROM bookings WHERE status = $1 ORDER BY trip_date DESC LIMIT $2 OFFSET $3`
		rows, err = r.db.QueryContext(ctx, query, status, pageSize, offset)
	}
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.CustomerID, &b.SchoolID, &b.DestinationID, &b.Status, &b.TripDate, &b.Notes, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	if status == "" {
		err = r.db.QueryRowContext(ctx, `SELECT count(*) FROM bookings`).Scan(&count)
	} else {
		err = r.db.QueryRowContext(ctx, `SELECT count(*) FROM bookings WHERE status = $1`, status).Scan(&count)
	}
	if err != nil {
		return nil, 0, err
	}
	return bookings, count, nil
}

func (r *bookingRepository) ListEarnings(ctx context.Context, serviceType domain.ServiceType, serviceID int64) ([]domain.ProviderEarning, error) {
	query := `SELECT bs.booking_id, bs.id, b.status, b.trip_date, bs.quantity, bs.days, bs.booked_price
	          FROM booking_services bs
	          JOIN bookings b ON b.id = bs.booking_id
	          WHERE bs.service_type = $1 AND bs.service_id = $2 AND b.status IN ('confirmed', 'completed')`
	rows, err := r.db.QueryContext(ctx, query, serviceType, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var earnings []domain.ProviderEarning
	for rows.Next() {
		var e domain.ProviderEarning
		if err := rows.Scan(&e.BookingID, &e.BookingServiceID, &e.BookingStatus, &e.TripDate, &e.Quantity, &e.Days, &e.BookedPrice); err != nil {
			return nil, err
		}
		earnings = append(earnings, e)
	}
	return earnings, rows.Err()
}

func (r *bookingRepository) ListConfirmedIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM bookings WHERE status = 'confirmed' ORDER BY id`)
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

package repository

import (
	"context"
	"time"

	"github.com/mhr996/school-dash-backend/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error)

	// GetBalance and UpdateBalance are the read and write halves of the
	// ledger's read-modify-write. There is deliberately no atomic increment:
	// the ledger service documents the resulting lost-update window.
	GetBalance(ctx context.Context, id int64) (float64, error)
	UpdateBalance(ctx context.Context, id int64, balance float64) error
	ListIDs(ctx context.Context) ([]int64, error)
}

type LedgerRepository interface {
	CreateTransaction(ctx context.Context, tx *domain.CustomerTransaction) error
	ListByCustomer(ctx context.Context, customerID int64, page, pageSize int32) ([]domain.CustomerTransaction, int32, error)
	SumByCustomer(ctx context.Context, customerID int64) (float64, error)
	CreateDiscrepancy(ctx context.Context, d *domain.BalanceDiscrepancy) error
	ListDiscrepancies(ctx context.Context, since time.Time) ([]domain.BalanceDiscrepancy, error)
}

type DealRepository interface {
	Create(ctx context.Context, deal *domain.Deal) error
	GetByID(ctx context.Context, id int64) (*domain.Deal, error)
	Update(ctx context.Context, deal *domain.Deal) error
	Delete(ctx context.Context, id int64) error
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Deal, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Deal, int32, error)
}

type BillRepository interface {
	Create(ctx context.Context, bill *domain.Bill, payments []domain.BillPayment) error
	GetByID(ctx context.Context, id int64) (*domain.Bill, error)
	GetPayments(ctx context.Context, billID int64) ([]domain.BillPayment, error)
	Update(ctx context.Context, bill *domain.Bill) error
	// ReplacePayments deletes every payment leg of the bill and reinserts the
	// given set. Edits are not diffed.
	ReplacePayments(ctx context.Context, billID int64, payments []domain.BillPayment) error
	Delete(ctx context.Context, id int64) error
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Bill, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Bill, int32, error)
}

// ProviderRepository is the single access path to the five per-type provider
// tables. Callers never see table names; the repository owns the mapping for
// the closed ServiceType set.
type ProviderRepository interface {
	Create(ctx context.Context, provider *domain.ServiceProvider) error
	GetByID(ctx context.Context, serviceType domain.ServiceType, id int64) (*domain.ServiceProvider, error)
	Update(ctx context.Context, provider *domain.ServiceProvider) error
	Delete(ctx context.Context, serviceType domain.ServiceType, id int64) error
	ListByType(ctx context.Context, serviceType domain.ServiceType) ([]domain.ServiceProvider, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking, services []domain.BookingService) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	ListServices(ctx context.Context, bookingID int64) ([]domain.BookingService, error)
	List(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error)
	// ListEarnings returns the service lines of confirmed/completed bookings
	// for one provider, joined to the parent booking.
	ListEarnings(ctx context.Context, serviceType domain.ServiceType, serviceID int64) ([]domain.ProviderEarning, error)
	// ListConfirmedIDs returns ids of bookings in confirmed status, for the
	// payout sweep job.
	ListConfirmedIDs(ctx context.Context) ([]int64, error)
}

type PayoutRepository interface {
	Create(ctx context.Context, payout *domain.Payout) error
	CreateBatch(ctx context.Context, payouts []domain.Payout) error
	GetByID(ctx context.Context, id int64) (*domain.Payout, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PayoutStatus, paidAt *time.Time) error
	ListByProvider(ctx context.Context, serviceType domain.ServiceType, serviceID int64) ([]domain.Payout, error)
	List(ctx context.Context, payoutType domain.PayoutType, status domain.PayoutStatus, page, pageSize int32) ([]domain.Payout, int32, error)
	// ExistingBookingServiceIDs returns the booking_service_ids among the
	// given set that already have a booking-type payout row.
	ExistingBookingServiceIDs(ctx context.Context, bookingServiceIDs []int64) (map[int64]bool, error)
	// HasPaymentForBookingRecord reports whether a payment-type row already
	// references the given booking-type row.
	HasPaymentForBookingRecord(ctx context.Context, bookingRecordID int64) (bool, error)
}

type SchoolRepository interface {
	Create(ctx context.Context, school *domain.School) error
	GetByID(ctx context.Context, id int64) (*domain.School, error)
	Update(ctx context.Context, school *domain.School) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.School, error)
}

type DestinationRepository interface {
	Create(ctx context.Context, dest *domain.Destination) error
	GetByID(ctx context.Context, id int64) (*domain.Destination, error)
	Update(ctx context.Context, dest *domain.Destination) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Destination, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}

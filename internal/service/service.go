package service

import (
	"context"
	"time"

	"github.com/mhr996/school-dash-backend/internal/domain"
)

// BalanceUpdate describes one customer balance mutation.
type BalanceUpdate struct {
	CustomerID  int64
	Amount      float64 // signed delta applied to the balance
	Type        domain.TransactionType
	ReferenceID string
	Description string
}

type LedgerService interface {
	// UpdateCustomerBalance applies a signed delta to the customer balance and
	// best-effort appends an audit row. A failed audit append is logged and
	// swallowed; the balance mutation stands.
	UpdateCustomerBalance(ctx context.Context, upd BalanceUpdate) error
	HandleDealCreated(ctx context.Context, dealID, customerID int64, amount float64, title string) error
	HandleDealDeleted(ctx context.Context, dealID, customerID int64, amount float64, title string) error
	HandleReceiptCreated(ctx context.Context, billID, customerID int64, total float64, description string) error
	HandleReceiptDeleted(ctx context.Context, billID, customerID int64, total float64, description string) error
	GetTransactions(ctx context.Context, customerID int64, page, pageSize int32) ([]domain.CustomerTransaction, int32, error)
	// ReconcileCustomer compares the stored balance against the transaction
	// log sum; a nonzero delta is recorded, never auto-corrected.
	ReconcileCustomer(ctx context.Context, customerID int64) (*domain.BalanceDiscrepancy, error)
	ListDiscrepancies(ctx context.Context, since time.Time) ([]domain.BalanceDiscrepancy, error)
}

type BalanceService interface {
	// CalculateProviderBalance returns a point-in-time earned/paid-out
	// snapshot for one provider. ErrNotFound when the provider row is absent;
	// zero activity yields a zeroed snapshot.
	CalculateProviderBalance(ctx context.Context, serviceType domain.ServiceType, serviceID int64) (*domain.ProviderBalance, error)
}

// PaymentDetails carries the caller-supplied fields of a disbursement.
type PaymentDetails struct {
	Method    domain.PaymentMethod
	Reference string
	Notes     string
}

// PayoutCreationResult reports how a payout fan-out went. Partial success is
// possible: lines whose provider lookup failed are skipped, not retried.
type PayoutCreationResult struct {
	Created int
	Skipped int
}

type PayoutService interface {
	CreateBookingPayoutRecords(ctx context.Context, bookingID int64) (*PayoutCreationResult, error)
	CreatePaymentFromBookingRecord(ctx context.Context, bookingRecordID int64, details PaymentDetails) (*domain.Payout, error)
	ListPayouts(ctx context.Context, payoutType domain.PayoutType, status domain.PayoutStatus, page, pageSize int32) ([]domain.Payout, int32, error)
	ListProviderPayouts(ctx context.Context, serviceType domain.ServiceType, serviceID int64) ([]domain.Payout, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
	ListCustomers(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error)
}

type DealService interface {
	CreateDeal(ctx context.Context, deal *domain.Deal) error
	GetDeal(ctx context.Context, id int64) (*domain.Deal, error)
	UpdateDeal(ctx context.Context, deal *domain.Deal) error
	DeleteDeal(ctx context.Context, id int64) error
	ListDeals(ctx context.Context, page, pageSize int32) ([]domain.Deal, int32, error)
	ListCustomerDeals(ctx context.Context, customerID int64) ([]domain.Deal, error)
}

type BillService interface {
	CreateBill(ctx context.Context, bill *domain.Bill, payments []domain.BillPayment) error
	GetBill(ctx context.Context, id int64) (*domain.Bill, []domain.BillPayment, error)
	UpdateBill(ctx context.Context, bill *domain.Bill) error
	// UpdateBillPayments replaces every payment leg. No ledger effect: ledger
	// rows exist only for bill create/delete.
	UpdateBillPayments(ctx context.Context, billID int64, payments []domain.BillPayment) error
	DeleteBill(ctx context.Context, id int64) error
	ListBills(ctx context.Context, page, pageSize int32) ([]domain.Bill, int32, error)
	ListCustomerBills(ctx context.Context, customerID int64) ([]domain.Bill, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, booking *domain.Booking, services []domain.BookingService) error
	GetBooking(ctx context.Context, id int64) (*domain.Booking, []domain.BookingService, error)
	UpdateBooking(ctx context.Context, booking *domain.Booking) error
	// ConfirmBooking moves the booking to confirmed and fans out its payout
	// records.
	ConfirmBooking(ctx context.Context, id int64) (*PayoutCreationResult, error)
	CompleteBooking(ctx context.Context, id int64) error
	CancelBooking(ctx context.Context, id int64) error
	ListBookings(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error)
}

type ProviderService interface {
	CreateProvider(ctx context.Context, provider *domain.ServiceProvider) error
	GetProvider(ctx context.Context, serviceType domain.ServiceType, id int64) (*domain.ServiceProvider, error)
	UpdateProvider(ctx context.Context, provider *domain.ServiceProvider) error
	DeleteProvider(ctx context.Context, serviceType domain.ServiceType, id int64) error
	ListProviders(ctx context.Context, serviceType domain.ServiceType) ([]domain.ServiceProvider, error)
}

type CatalogService interface {
	CreateSchool(ctx context.Context, school *domain.School) error
	GetSchool(ctx context.Context, id int64) (*domain.School, error)
	UpdateSchool(ctx context.Context, school *domain.School) error
	DeleteSchool(ctx context.Context, id int64) error
	ListSchools(ctx context.Context) ([]domain.School, error)

	CreateDestination(ctx context.Context, dest *domain.Destination) error
	GetDestination(ctx context.Context, id int64) (*domain.Destination, error)
	UpdateDestination(ctx context.Context, dest *domain.Destination) error
	DeleteDestination(ctx context.Context, id int64) error
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, *domain.User, error) // access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	CreateUser(ctx context.Context, email, name, password string, role domain.UserRole) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	SetUserActive(ctx context.Context, id int64, active bool) error
}

type EmailService interface {
	SendPayoutNotification(ctx context.Context, toEmail, providerName string, amount float64, reference string) error
	SendBookingConfirmation(ctx context.Context, toEmail string, bookingID int64, lineCount int, total float64) error
}

type DocumentService interface {
	GetUploadURL(ctx context.Context, filename, contentType string) (string, string, error) // key, uploadURL
	GetDownloadURL(ctx context.Context, key string) (string, error)
	DeleteDocument(ctx context.Context, key string) error
}

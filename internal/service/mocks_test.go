package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mhr996/school-dash-backend/internal/domain"
)

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Customer), args.Get(1).(int32), args.Error(2)
}
func (m *MockCustomerRepo) GetBalance(ctx context.Context, id int64) (float64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockCustomerRepo) UpdateBalance(ctx context.Context, id int64, balance float64) error {
	args := m.Called(ctx, id, balance)
	return args.Error(0)
}
func (m *MockCustomerRepo) ListIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).([]int64), args.Error(1)
}

// MockLedgerRepo
type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) CreateTransaction(ctx context.Context, tx *domain.CustomerTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockLedgerRepo) ListByCustomer(ctx context.Context, customerID int64, page, pageSize int32) ([]domain.CustomerTransaction, int32, error) {
	args := m.Called(ctx, customerID, page, pageSize)
	return args.Get(0).([]domain.CustomerTransaction), args.Get(1).(int32), args.Error(2)
}
func (m *MockLedgerRepo) SumByCustomer(ctx context.Context, customerID int64) (float64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockLedgerRepo) CreateDiscrepancy(ctx context.Context, d *domain.BalanceDiscrepancy) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockLedgerRepo) ListDiscrepancies(ctx context.Context, since time.Time) ([]domain.BalanceDiscrepancy, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]domain.BalanceDiscrepancy), args.Error(1)
}

// MockProviderRepo
type MockProviderRepo struct {
	mock.Mock
}

func (m *MockProviderRepo) Create(ctx context.Context, provider *domain.ServiceProvider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}
func (m *MockProviderRepo) GetByID(ctx context.Context, serviceType domain.ServiceType, id int64) (*domain.ServiceProvider, error) {
	args := m.Called(ctx, serviceType, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceProvider), args.Error(1)
}
func (m *MockProviderRepo) Update(ctx context.Context, provider *domain.ServiceProvider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}
func (m *MockProviderRepo) Delete(ctx context.Context, serviceType domain.ServiceType, id int64) error {
	args := m.Called(ctx, serviceType, id)
	return args.Error(0)
}
func (m *MockProviderRepo) ListByType(ctx context.Context, serviceType domain.ServiceType) ([]domain.ServiceProvider, error) {
	args := m.Called(ctx, serviceType)
	return args.Get(0).([]domain.ServiceProvider), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking, services []domain.BookingService) error {
	args := m.Called(ctx, booking, services)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBookingRepo) ListServices(ctx context.Context, bookingID int64) ([]domain.BookingService, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.BookingService), args.Error(1)
}
func (m *MockBookingRepo) List(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) ListEarnings(ctx context.Context, serviceType domain.ServiceType, serviceID int64) ([]domain.ProviderEarning, error) {
	args := m.Called(ctx, serviceType, serviceID)
	return args.Get(0).([]domain.ProviderEarning), args.Error(1)
}
func (m *MockBookingRepo) ListConfirmedIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).([]int64), args.Error(1)
}

// MockPayoutRepo
type MockPayoutRepo struct {
	mock.Mock
}

func (m *MockPayoutRepo) Create(ctx context.Context, payout *domain.Payout) error {
	args := m.Called(ctx, payout)
	return args.Error(0)
}
func (m *MockPayoutRepo) CreateBatch(ctx context.Context, payouts []domain.Payout) error {
	args := m.Called(ctx, payouts)
	return args.Error(0)
}
func (m *MockPayoutRepo) GetByID(ctx context.Context, id int64) (*domain.Payout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payout), args.Error(1)
}
func (m *MockPayoutRepo) UpdateStatus(ctx context.Context, id int64, status domain.PayoutStatus, paidAt *time.Time) error {
	args := m.Called(ctx, id, status, paidAt)
	return args.Error(0)
}
func (m *MockPayoutRepo) ListByProvider(ctx context.Context, serviceType domain.ServiceType, serviceID int64) ([]domain.Payout, error) {
	args := m.Called(ctx, serviceType, serviceID)
	return args.Get(0).([]domain.Payout), args.Error(1)
}
func (m *MockPayoutRepo) List(ctx context.Context, payoutType domain.PayoutType, status domain.PayoutStatus, page, pageSize int32) ([]domain.Payout, int32, error) {
	args := m.Called(ctx, payoutType, status, page, pageSize)
	return args.Get(0).([]domain.Payout), args.Get(1).(int32), args.Error(2)
}
func (m *MockPayoutRepo) ExistingBookingServiceIDs(ctx context.Context, bookingServiceIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, bookingServiceIDs)
	return args.Get(0).(map[int64]bool), args.Error(1)
}
func (m *MockPayoutRepo) HasPaymentForBookingRecord(ctx context.Context, bookingRecordID int64) (bool, error) {
	args := m.Called(ctx, bookingRecordID)
	return args.Get(0).(bool), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendPayoutNotification(ctx context.Context, toEmail, providerName string, amount float64, reference string) error {
	args := m.Called(ctx, toEmail, providerName, amount, reference)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, toEmail string, bookingID int64, lineCount int, total float64) error {
	args := m.Called(ctx, toEmail, bookingID, lineCount, total)
	return args.Error(0)
}

// MockPayoutService
type MockPayoutService struct {
	mock.Mock
}

func (m *MockPayoutService) CreateBookingPayoutRecords(ctx context.Context, bookingID int64) (*PayoutCreationResult, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PayoutCreationResult), args.Error(1)
}
func (m *MockPayoutService) CreatePaymentFromBookingRecord(ctx context.Context, bookingRecordID int64, details PaymentDetails) (*domain.Payout, error) {
	args := m.Called(ctx, bookingRecordID, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payout), args.Error(1)
}
func (m *MockPayoutService) ListPayouts(ctx context.Context, payoutType domain.PayoutType, status domain.PayoutStatus, page, pageSize int32) ([]domain.Payout, int32, error) {
	args := m.Called(ctx, payoutType, status, page, pageSize)
	return args.Get(0).([]domain.Payout), args.Get(1).(int32), args.Error(2)
}
func (m *MockPayoutService) ListProviderPayouts(ctx context.Context, serviceType domain.ServiceType, serviceID int64) ([]domain.Payout, error) {
	args := m.Called(ctx, serviceType, serviceID)
	return args.Get(0).([]domain.Payout), args.Error(1)
}

package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/service"
)

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, booking *domain.Booking, services []domain.BookingService) error {
	args := m.Called(ctx, booking, services)
	return args.Error(0)
}
func (m *MockBookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, []domain.BookingService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Booking), args.Get(1).([]domain.BookingService), args.Error(2)
}
func (m *MockBookingService) UpdateBooking(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingService) ConfirmBooking(ctx context.Context, id int64) (*service.PayoutCreationResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PayoutCreationResult), args.Error(1)
}
func (m *MockBookingService) CompleteBooking(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookingService) CancelBooking(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookingService) ListBookings(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}

// MockPayoutService
type MockPayoutService struct {
	mock.Mock
}

func (m *MockPayoutService) CreateBookingPayoutRecords(ctx context.Context, bookingID int64) (*service.PayoutCreationResult, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PayoutCreationResult), args.Error(1)
}
func (m *MockPayoutService) CreatePaymentFromBookingRecord(ctx context.Context, bookingRecordID int64, details service.PaymentDetails) (*domain.Payout, error) {
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

// MockBalanceService
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) CalculateProviderBalance(ctx context.Context, serviceType domain.ServiceType, serviceID int64) (*domain.ProviderBalance, error) {
	args := m.Called(ctx, serviceType, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProviderBalance), args.Error(1)
}

// MockProviderService
type MockProviderService struct {
	mock.Mock
}

func (m *MockProviderService) CreateProvider(ctx context.Context, provider *domain.ServiceProvider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}
func (m *MockProviderService) GetProvider(ctx context.Context, serviceType domain.ServiceType, id int64) (*domain.ServiceProvider, error) {
	args := m.Called(ctx, serviceType, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceProvider), args.Error(1)
}
func (m *MockProviderService) UpdateProvider(ctx context.Context, provider *domain.ServiceProvider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}
func (m *MockProviderService) DeleteProvider(ctx context.Context, serviceType domain.ServiceType, id int64) error {
	args := m.Called(ctx, serviceType, id)
	return args.Error(0)
}
func (m *MockProviderService) ListProviders(ctx context.Context, serviceType domain.ServiceType) ([]domain.ServiceProvider, error) {
	args := m.Called(ctx, serviceType)
	return args.Get(0).([]domain.ServiceProvider), args.Error(1)
}

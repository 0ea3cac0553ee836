package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mhr996/school-dash-backend/internal/domain"
)

func TestCalculateProviderBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingProvider", func(t *testing.T) {
		providerRepo := new(MockProviderRepo)
		bookingRepo := new(MockBookingRepo)
		payoutRepo := new(MockPayoutRepo)
		svc := NewBalanceService(providerRepo, bookingRepo, payoutRepo)

		providerRepo.On("GetByID", ctx, domain.ServiceTypeGuide, int64(9)).Return(nil, domain.ErrNotFound)

		balance, err := svc.CalculateProviderBalance(ctx, domain.ServiceTypeGuide, 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, balance)
	})

	t.Run("NoActivityYieldsZeroedSnapshot", func(t *testing.T) {
		providerRepo := new(MockProviderRepo)
		bookingRepo := new(MockBookingRepo)
		payoutRepo := new(MockPayoutRepo)
		svc := NewBalanceService(providerRepo, bookingRepo, payoutRepo)

		providerRepo.On("GetByID", ctx, domain.ServiceTypeGuide, int64(9)).
			Return(&domain.ServiceProvider{ID: 9, ServiceType: domain.ServiceTypeGuide, Name: "Dana"}, nil)
		bookingRepo.On("ListEarnings", ctx, domain.ServiceTypeGuide, int64(9)).Return([]domain.ProviderEarning{}, nil)
		payoutRepo.On("ListByProvider", ctx, domain.ServiceTypeGuide, int64(9)).Return([]domain.Payout{}, nil)

		balance, err := svc.CalculateProviderBalance(ctx, domain.ServiceTypeGuide, 9)
		assert.NoError(t, err)
		assert.Equal(t, "Dana", balance.ProviderName)
		assert.Equal(t, 0.0, balance.TotalEarned)
		assert.Equal(t, 0.0, balance.TotalPaidOut)
		assert.Equal(t, 0.0, balance.NetBalance)
		assert.Nil(t, balance.LastBookingDate)
	})

	t.Run("SumsEarningsAndPayouts", func(t *testing.T) {
		providerRepo := new(MockProviderRepo)
		bookingRepo := new(MockBookingRepo)
		payoutRepo := new(MockPayoutRepo)
		svc := NewBalanceService(providerRepo, bookingRepo, payoutRepo)

		earlier := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		later := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)

		providerRepo.On("GetByID", ctx, domain.ServiceTypeParamedic, int64(4)).
			Return(&domain.ServiceProvider{ID: 4, ServiceType: domain.ServiceTypeParamedic, Name: "Medic One"}, nil)
		bookingRepo.On("ListEarnings", ctx, domain.ServiceTypeParamedic, int64(4)).Return([]domain.ProviderEarning{
			{BookingID: 1, Quantity: 2, Days: 1, BookedPrice: 400, TripDate: earlier},
			{BookingID: 2, Quantity: 1, Days: 3, BookedPrice: 400, TripDate: later},
		}, nil)
		payoutRepo.On("ListByProvider", ctx, domain.ServiceTypeParamedic, int64(4)).Return([]domain.Payout{
			{Amount: 800, Type: domain.PayoutTypePayment, Status: domain.PayoutStatusPaid},
			{Amount: 200, Type: domain.PayoutTypeBooking, Status: domain.PayoutStatusPending},
		}, nil)

		balance, err := svc.CalculateProviderBalance(ctx, domain.ServiceTypeParamedic, 4)
		assert.NoError(t, err)
		assert.Equal(t, 2000.0, balance.TotalEarned) // 2*1*400 + 1*3*400
		assert.Equal(t, 1000.0, balance.TotalPaidOut)
		assert.Equal(t, 1000.0, balance.NetBalance)
		assert.Equal(t, 2, balance.BookingCount)
		assert.Equal(t, 2, balance.PayoutCount)
		if assert.NotNil(t, balance.LastBookingDate) {
			assert.Equal(t, later, *balance.LastBookingDate)
		}
	})
}

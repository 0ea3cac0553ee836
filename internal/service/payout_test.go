package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mhr996/school-dash-backend/internal/domain"
)

func newPayoutFixture() (*MockPayoutRepo, *MockBookingRepo, *MockProviderRepo, *MockEmailService, PayoutService) {
	payoutRepo := new(MockPayoutRepo)
	bookingRepo := new(MockBookingRepo)
	providerRepo := new(MockProviderRepo)
	emailSvc := new(MockEmailService)
	svc := NewPayoutService(payoutRepo, bookingRepo, providerRepo, emailSvc)
	return payoutRepo, bookingRepo, providerRepo, emailSvc, svc
}

func TestCreateBookingPayoutRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("NoLines", func(t *testing.T) {
		payoutRepo, bookingRepo, _, _, svc := newPayoutFixture()
		bookingRepo.On("ListServices", ctx, int64(5)).Return([]domain.BookingService{}, nil)

		result, err := svc.CreateBookingPayoutRecords(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		payoutRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("CreatesOneRecordPerLine", func(t *testing.T) {
		payoutRepo, bookingRepo, providerRepo, _, svc := newPayoutFixture()
		lines := []domain.BookingService{
			{ID: 101, BookingID: 5, ServiceType: domain.ServiceTypeGuide, ServiceID: 1, Quantity: 2, Days: 3, BookedPrice: 500},
			{ID: 102, BookingID: 5, ServiceType: domain.ServiceTypeSecurity, ServiceID: 2, Quantity: 1, Days: 3, BookedPrice: 800},
		}
		bookingRepo.On("ListServices", ctx, int64(5)).Return(lines, nil)
		payoutRepo.On("ExistingBookingServiceIDs", ctx, []int64{101, 102}).Return(map[int64]bool{}, nil)
		providerRepo.On("GetByID", ctx, domain.ServiceTypeGuide, int64(1)).
			Return(&domain.ServiceProvider{ID: 1, Name: "Guide A"}, nil)
		providerRepo.On("GetByID", ctx, domain.ServiceTypeSecurity, int64(2)).
			Return(&domain.ServiceProvider{ID: 2, Name: "SecureCo"}, nil)
		payoutRepo.On("CreateBatch", ctx, mock.MatchedBy(func(payouts []domain.Payout) bool {
			if len(payouts) != 2 {
				return false
			}
			first, second := payouts[0], payouts[1]
			return first.Type == domain.PayoutTypeBooking &&
				first.Status == domain.PayoutStatusPending &&
				first.Amount == 3000.0 && // 2*3*500
				*first.BookingServiceID == int64(101) &&
				second.Amount == 2400.0 && // 1*3*800
				second.ProviderName == "SecureCo"
		})).Return(nil)

		result, err := svc.CreateBookingPayoutRecords(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Created)
		assert.Equal(t, 0, result.Skipped)
		payoutRepo.AssertExpectations(t)
	})

	t.Run("SecondCallSkipsExistingLines", func(t *testing.T) {
		payoutRepo, bookingRepo, _, _, svc := newPayoutFixture()
		lines := []domain.BookingService{
			{ID: 101, BookingID: 5, ServiceType: domain.ServiceTypeGuide, ServiceID: 1, Quantity: 1, Days: 1, BookedPrice: 500},
		}
		bookingRepo.On("ListServices", ctx, int64(5)).Return(lines, nil)
		payoutRepo.On("ExistingBookingServiceIDs", ctx, []int64{101}).Return(map[int64]bool{101: true}, nil)

		result, err := svc.CreateBookingPayoutRecords(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 1, result.Skipped)
		payoutRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("FailedProviderLookupSkipsOnlyThatLine", func(t *testing.T) {
		payoutRepo, bookingRepo, providerRepo, _, svc := newPayoutFixture()
		lines := []domain.BookingService{
			{ID: 101, BookingID: 5, ServiceType: domain.ServiceTypeGuide, ServiceID: 1, Quantity: 1, Days: 1, BookedPrice: 500},
			{ID: 102, BookingID: 5, ServiceType: domain.ServiceTypeParamedic, ServiceID: 2, Quantity: 1, Days: 1, BookedPrice: 300},
		}
		bookingRepo.On("ListServices", ctx, int64(5)).Return(lines, nil)
		payoutRepo.On("ExistingBookingServiceIDs", ctx, []int64{101, 102}).Return(map[int64]bool{}, nil)
		providerRepo.On("GetByID", ctx, domain.ServiceTypeGuide, int64(1)).Return(nil, domain.ErrNotFound)
		providerRepo.On("GetByID", ctx, domain.ServiceTypeParamedic, int64(2)).
			Return(&domain.ServiceProvider{ID: 2, Name: "Medic"}, nil)
		payoutRepo.On("CreateBatch", ctx, mock.MatchedBy(func(payouts []domain.Payout) bool {
			return len(payouts) == 1 && payouts[0].ProviderName == "Medic"
		})).Return(nil)

		result, err := svc.CreateBookingPayoutRecords(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 1, result.Skipped)
	})
}

func TestCreatePaymentFromBookingRecord(t *testing.T) {
	ctx := context.Background()
	bookingID := int64(5)
	lineID := int64(101)

	bookingRecord := func() *domain.Payout {
		return &domain.Payout{
			ID:               40,
			Type:             domain.PayoutTypeBooking,
			Status:           domain.PayoutStatusPending,
			ServiceType:      domain.ServiceTypeGuide,
			ServiceID:        1,
			ProviderName:     "Guide A",
			Amount:           3000,
			BookingID:        &bookingID,
			BookingServiceID: &lineID,
		}
	}

	t.Run("PromotesToPaidPayment", func(t *testing.T) {
		payoutRepo, _, providerRepo, emailSvc, svc := newPayoutFixture()
		payoutRepo.On("GetByID", ctx, int64(40)).Return(bookingRecord(), nil)
		payoutRepo.On("HasPaymentForBookingRecord", ctx, int64(40)).Return(false, nil)
		payoutRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Payout) bool {
			return p.Type == domain.PayoutTypePayment &&
				p.Status == domain.PayoutStatusPaid &&
				p.Amount == 3000.0 &&
				*p.BookingRecordID == int64(40) &&
				p.PaymentMethod == domain.PaymentMethodTransfer &&
				p.PaidAt != nil
		})).Return(nil)
		payoutRepo.On("UpdateStatus", ctx, int64(40), domain.PayoutStatusPaid, mock.Anything).Return(nil)
		providerRepo.On("GetByID", ctx, domain.ServiceTypeGuide, int64(1)).
			Return(&domain.ServiceProvider{ID: 1, Name: "Guide A", Email: "guide@example.com"}, nil)
		emailSvc.On("SendPayoutNotification", ctx, "guide@example.com", "Guide A", 3000.0, "TX-1").Return(nil)

		payment, err := svc.CreatePaymentFromBookingRecord(ctx, 40, PaymentDetails{
			Method:    domain.PaymentMethodTransfer,
			Reference: "TX-1",
		})
		assert.NoError(t, err)
		assert.NotNil(t, payment)
		payoutRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("RejectsPaymentTypeRecord", func(t *testing.T) {
		payoutRepo, _, _, _, svc := newPayoutFixture()
		record := bookingRecord()
		record.Type = domain.PayoutTypePayment
		payoutRepo.On("GetByID", ctx, int64(40)).Return(record, nil)

		_, err := svc.CreatePaymentFromBookingRecord(ctx, 40, PaymentDetails{Method: domain.PaymentMethodCash})
		assert.ErrorIs(t, err, ErrNotBookingRecord)
	})

	t.Run("RejectsSecondPayment", func(t *testing.T) {
		payoutRepo, _, _, _, svc := newPayoutFixture()
		payoutRepo.On("GetByID", ctx, int64(40)).Return(bookingRecord(), nil)
		payoutRepo.On("HasPaymentForBookingRecord", ctx, int64(40)).Return(true, nil)

		_, err := svc.CreatePaymentFromBookingRecord(ctx, 40, PaymentDetails{Method: domain.PaymentMethodCash})
		assert.ErrorIs(t, err, ErrPaymentExists)
		payoutRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("StatusUpdateFailureStillReturnsPayment", func(t *testing.T) {
		payoutRepo, _, _, _, svc := newPayoutFixture()
		payoutRepo.On("GetByID", ctx, int64(40)).Return(bookingRecord(), nil)
		payoutRepo.On("HasPaymentForBookingRecord", ctx, int64(40)).Return(false, nil)
		payoutRepo.On("Create", ctx, mock.Anything).Return(nil)
		payoutRepo.On("UpdateStatus", ctx, int64(40), domain.PayoutStatusPaid, mock.Anything).
			Return(errors.New("db down"))

		payment, err := svc.CreatePaymentFromBookingRecord(ctx, 40, PaymentDetails{Method: domain.PaymentMethodCheck})
		assert.Error(t, err)
		// The payment row is already inserted, so the caller gets it back
		// alongside the error.
		assert.NotNil(t, payment)
	})
}

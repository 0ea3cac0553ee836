package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/logger"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

var (
	ErrPaymentExists    = errors.New("payment record already exists for this booking record")
	ErrNotBookingRecord = errors.New("payout record is not a booking-type record")
)

type payoutService struct {
	payoutRepo   repository.PayoutRepository
	bookingRepo  repository.BookingRepository
	providerRepo repository.ProviderRepository
	emailSvc     EmailService
}

func NewPayoutService(
	payoutRepo repository.PayoutRepository,
	bookingRepo repository.BookingRepository,
	providerRepo repository.ProviderRepository,
	emailSvc EmailService,
) PayoutService {
	return &payoutService{
		payoutRepo:   payoutRepo,
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		emailSvc:     emailSvc,
	}
}

// CreateBookingPayoutRecords fans out one pending booking-type payout per
// service line of the booking. Idempotency is check-then-act: lines that
// already have a payout row are skipped, which holds for sequential retries
// but not for concurrent duplicate calls. A failed provider lookup skips
// only that line; the sweep job picks missing lines up later.
func (s *payoutService) CreateBookingPayoutRecords(ctx context.Context, bookingID int64) (*PayoutCreationResult, error) {
	logger.EnterMethod("payoutService.CreateBookingPayoutRecords", "bookingID", bookingID)

	lines, err := s.bookingRepo.ListServices(ctx, bookingID)
	if err != nil {
		logger.ExitMethodWithError("payoutService.CreateBookingPayoutRecords", err, "bookingID", bookingID)
		return nil, fmt.Errorf("list booking services: %w", err)
	}

	result := &PayoutCreationResult{}
	if len(lines) == 0 {
		return result, nil
	}

	lineIDs := make([]int64, len(lines))
	for i := range lines {
		lineIDs[i] = lines[i].ID
	}
	existing, err := s.payoutRepo.ExistingBookingServiceIDs(ctx, lineIDs)
	if err != nil {
		return nil, fmt.Errorf("check existing payouts: %w", err)
	}

	var payouts []domain.Payout
	for i := range lines {
		line := &lines[i]
		if existing[line.ID] {
			result.Skipped++
			continue
		}

		provider, err := s.providerRepo.GetByID(ctx, line.ServiceType, line.ServiceID)
		if err != nil {
			logger.Warn("provider lookup failed, skipping payout line",
				"bookingID", bookingID, "bookingServiceID", line.ID,
				"serviceType", line.ServiceType, "serviceID", line.ServiceID, "error", err)
			result.Skipped++
			continue
		}

		lineBookingID := line.BookingID
		lineID := line.ID
		payouts = append(payouts, domain.Payout{
			Type:             domain.PayoutTypeBooking,
			Status:           domain.PayoutStatusPending,
			ServiceType:      line.ServiceType,
			ServiceID:        line.ServiceID,
			ProviderName:     provider.Name,
			ProviderUserID:   provider.UserID,
			Amount:           line.Amount(),
			BookingID:        &lineBookingID,
			BookingServiceID: &lineID,
		})
	}

	if len(payouts) > 0 {
		if err := s.payoutRepo.CreateBatch(ctx, payouts); err != nil {
			logger.ExitMethodWithError("payoutService.CreateBookingPayoutRecords", err, "bookingID", bookingID)
			return nil, fmt.Errorf("insert payout records: %w", err)
		}
		result.Created = len(payouts)
	}

	logger.ExitMethod("payoutService.CreateBookingPayoutRecords",
		"bookingID", bookingID, "created", result.Created, "skipped", result.Skipped)
	return result, nil
}

// CreatePaymentFromBookingRecord promotes a booking-type payout into a paid
// payment-type row and marks the source record paid. The two writes are not
// atomic: if the status update fails after the payment insert, the paid
// payment coexists with a still-pending booking record.
func (s *payoutService) CreatePaymentFromBookingRecord(ctx context.Context, bookingRecordID int64, details PaymentDetails) (*domain.Payout, error) {
	logger.EnterMethod("payoutService.CreatePaymentFromBookingRecord", "bookingRecordID", bookingRecordID)

	record, err := s.payoutRepo.GetByID(ctx, bookingRecordID)
	if err != nil {
		logger.ExitMethodWithError("payoutService.CreatePaymentFromBookingRecord", err, "bookingRecordID", bookingRecordID)
		return nil, err
	}
	if record.Type != domain.PayoutTypeBooking {
		return nil, ErrNotBookingRecord
	}

	exists, err := s.payoutRepo.HasPaymentForBookingRecord(ctx, bookingRecordID)
	if err != nil {
		return nil, fmt.Errorf("check existing payment: %w", err)
	}
	if exists {
		return nil, ErrPaymentExists
	}

	now := time.Now()
	payment := &domain.Payout{
		Type:            domain.PayoutTypePayment,
		Status:          domain.PayoutStatusPaid,
		ServiceType:     record.ServiceType,
		ServiceID:       record.ServiceID,
		ProviderName:    record.ProviderName,
		ProviderUserID:  record.ProviderUserID,
		Amount:          record.Amount,
		BookingRecordID: &bookingRecordID,
		PaymentMethod:   details.Method,
		Reference:       details.Reference,
		Notes:           details.Notes,
		PaidAt:          &now,
	}
	if err := s.payoutRepo.Create(ctx, payment); err != nil {
		logger.ExitMethodWithError("payoutService.CreatePaymentFromBookingRecord", err, "bookingRecordID", bookingRecordID)
		return nil, fmt.Errorf("insert payment record: %w", err)
	}

	if err := s.payoutRepo.UpdateStatus(ctx, bookingRecordID, domain.PayoutStatusPaid, &now); err != nil {
		// Payment row already inserted, no rollback. The booking record stays
		// pending until someone retries or fixes it manually.
		logger.Error("payment inserted but booking record status update failed",
			"bookingRecordID", bookingRecordID, "paymentID", payment.ID, "error", err)
		return payment, fmt.Errorf("mark booking record paid: %w", err)
	}

	s.notifyPaid(ctx, payment)

	logger.ExitMethod("payoutService.CreatePaymentFromBookingRecord", "bookingRecordID", bookingRecordID, "paymentID", payment.ID)
	return payment, nil
}

func (s *payoutService) notifyPaid(ctx context.Context, payment *domain.Payout) {
	provider, err := s.providerRepo.GetByID(ctx, payment.ServiceType, payment.ServiceID)
	if err != nil || provider.Email == "" {
		return
	}
	if err := s.emailSvc.SendPayoutNotification(ctx, provider.Email, provider.Name, payment.Amount, payment.Reference); err != nil {
		logger.Warn("payout notification email failed", "paymentID", payment.ID, "error", err)
	}
}

func (s *payoutService) ListPayouts(ctx context.Context, payoutType domain.PayoutType, status domain.PayoutStatus, page, pageSize int32) ([]domain.Payout, int32, error) {
	return s.payoutRepo.List(ctx, payoutType, status, page, pageSize)
}

func (s *payoutService) ListProviderPayouts(ctx context.Context, serviceType domain.ServiceType, serviceID int64) ([]domain.Payout, error) {
	return s.payoutRepo.ListByProvider(ctx, serviceType, serviceID)
}

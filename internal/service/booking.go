package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/logger"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

var ErrInvalidStatusChange = errors.New("invalid booking status change")

type bookingService struct {
	bookingRepo repository.BookingRepository
	payoutSvc   PayoutService
	emailSvc    EmailService
	opsEmail    string
}

func NewBookingService(bookingRepo repository.BookingRepository, payoutSvc PayoutService, emailSvc EmailService, opsEmail string) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		payoutSvc:   payoutSvc,
		emailSvc:    emailSvc,
		opsEmail:    opsEmail,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, booking *domain.Booking, services []domain.BookingService) error {
	if booking.Status == "" {
		booking.Status = domain.BookingStatusPending
	}
	for i := range services {
		line := &services[i]
		if !line.ServiceType.Valid() {
			return fmt.Errorf("invalid service type %q on line %d", line.ServiceType, i)
		}
		if line.Quantity <= 0 || line.Days <= 0 {
			return fmt.Errorf("quantity and days must be positive on line %d", i)
		}
	}
	return s.bookingRepo.Create(ctx, booking, services)
}

func (s *bookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, []domain.BookingService, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	services, err := s.bookingRepo.ListServices(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return booking, services, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, booking *domain.Booking) error {
	return s.bookingRepo.Update(ctx, booking)
}

// ConfirmBooking moves a pending booking to confirmed and fans out its
// payout records. A partial payout fan-out does not fail the confirmation;
// the sweep job retries missing lines.
func (s *bookingService) ConfirmBooking(ctx context.Context, id int64) (*PayoutCreationResult, error) {
	logger.EnterMethod("bookingService.ConfirmBooking", "bookingID", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("%w: %s -> confirmed", ErrInvalidStatusChange, booking.Status)
	}
	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusConfirmed); err != nil {
		return nil, err
	}

	result, err := s.payoutSvc.CreateBookingPayoutRecords(ctx, id)
	if err != nil {
		logger.Error("booking confirmed but payout fan-out failed", "bookingID", id, "error", err)
		result = &PayoutCreationResult{}
	}

	s.notifyConfirmed(ctx, id)

	logger.ExitMethod("bookingService.ConfirmBooking", "bookingID", id, "payoutsCreated", result.Created)
	return result, nil
}

func (s *bookingService) notifyConfirmed(ctx context.Context, id int64) {
	if s.opsEmail == "" {
		return
	}
	lines, err := s.bookingRepo.ListServices(ctx, id)
	if err != nil {
		return
	}
	var total float64
	for i := range lines {
		total += lines[i].Amount()
	}
	if err := s.emailSvc.SendBookingConfirmation(ctx, s.opsEmail, id, len(lines), total); err != nil {
		logger.Warn("booking confirmation email failed", "bookingID", id, "error", err)
	}
}

func (s *bookingService) CompleteBooking(ctx context.Context, id int64) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.Status != domain.BookingStatusConfirmed {
		return fmt.Errorf("%w: %s -> completed", ErrInvalidStatusChange, booking.Status)
	}
	return s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusCompleted)
}

func (s *bookingService) CancelBooking(ctx context.Context, id int64) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.Status == domain.BookingStatusCompleted {
		return fmt.Errorf("%w: %s -> cancelled", ErrInvalidStatusChange, booking.Status)
	}
	return s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusCancelled)
}

func (s *bookingService) ListBookings(ctx context.Context, status domain.BookingStatus, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.List(ctx, status, page, pageSize)
}

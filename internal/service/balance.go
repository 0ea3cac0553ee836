package service

import (
	"context"
	"sort"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/logger"
	"github.com/mhr996/school-dash-backend/internal/repository"
)

type balanceService struct {
	providerRepo repository.ProviderRepository
	bookingRepo  repository.BookingRepository
	payoutRepo   repository.PayoutRepository
}

func NewBalanceService(
	providerRepo repository.ProviderRepository,
	bookingRepo repository.BookingRepository,
	payoutRepo repository.PayoutRepository,
) BalanceService {
	return &balanceService{
		providerRepo: providerRepo,
		bookingRepo:  bookingRepo,
		payoutRepo:   payoutRepo,
	}
}

// CalculateProviderBalance sums confirmed/completed booking lines and
// subtracts all payout rows for the provider. Payouts are summed across both
// types and every status; curating which rows belong in the table is the
// writers' job, not this calculator's.
func (s *balanceService) CalculateProviderBalance(ctx context.Context, serviceType domain.ServiceType, serviceID int64) (*domain.ProviderBalance, error) {
	logger.EnterMethod("balanceService.CalculateProviderBalance", "serviceType", serviceType, "serviceID", serviceID)

	provider, err := s.providerRepo.GetByID(ctx, serviceType, serviceID)
	if err != nil {
		logger.ExitMethodWithError("balanceService.CalculateProviderBalance", err, "serviceType", serviceType, "serviceID", serviceID)
		return nil, err
	}

	earnings, err := s.bookingRepo.ListEarnings(ctx, serviceType, serviceID)
	if err != nil {
		return nil, err
	}
	payouts, err := s.payoutRepo.ListByProvider(ctx, serviceType, serviceID)
	if err != nil {
		return nil, err
	}

	balance := &domain.ProviderBalance{
		ServiceType:  serviceType,
		ServiceID:    serviceID,
		ProviderName: provider.Name,
		BookingCount: len(earnings),
		PayoutCount:  len(payouts),
	}

	for i := range earnings {
		balance.TotalEarned += earnings[i].Amount()
	}
	for i := range payouts {
		balance.TotalPaidOut += payouts[i].Amount
	}
	balance.NetBalance = balance.TotalEarned - balance.TotalPaidOut

	if len(earnings) > 0 {
		sort.Slice(earnings, func(i, j int) bool {
			return earnings[i].TripDate.After(earnings[j].TripDate)
		})
		last := earnings[0].TripDate
		balance.LastBookingDate = &last
	}

	logger.ExitMethod("balanceService.CalculateProviderBalance",
		"serviceType", serviceType, "serviceID", serviceID,
		"totalEarned", balance.TotalEarned, "totalPaidOut", balance.TotalPaidOut, "netBalance", balance.NetBalance)
	return balance, nil
}

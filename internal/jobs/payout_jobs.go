package jobs

import (
	"context"

	"github.com/mhr996/school-dash-backend/internal/logger"
)

// PayoutSweep re-runs payout record creation for every confirmed booking.
// The creator skips lines that already have a row, so the sweep only fills
// in lines that were skipped earlier (failed provider lookups, crashes
// mid-fan-out).
func (jr *JobRunner) PayoutSweep() {
	jr.runWithRecovery("PayoutSweep", func() {
		ctx := context.Background()

		ids, err := jr.store.BookingRepository.ListConfirmedIDs(ctx)
		if err != nil {
			logger.Error("Failed to list confirmed bookings", "error", err)
			return
		}

		created := 0
		for _, id := range ids {
			result, err := jr.services.Payout.CreateBookingPayoutRecords(ctx, id)
			if err != nil {
				logger.Error("Payout sweep failed for booking", "booking_id", id, "error", err)
				continue
			}
			if result.Created > 0 {
				logger.Info("Payout sweep filled missing records", "booking_id", id, "created", result.Created)
				created += result.Created
			}
		}

		logger.Info("Payout sweep finished", "bookings", len(ids), "records_created", created)
	})
}

package jobs

import (
	"context"

	"github.com/mhr996/school-dash-backend/internal/logger"
)

// ReconcileBalances compares every customer's stored balance against the sum
// of its transaction log. Divergence is recorded for review; the stored
// balance is never rewritten, since the log is best-effort by contract and
// repair is a human decision.
func (jr *JobRunner) ReconcileBalances() {
	jr.runWithRecovery("ReconcileBalances", func() {
		ctx := context.Background()

		ids, err := jr.store.CustomerRepository.ListIDs(ctx)
		if err != nil {
			logger.Error("Failed to list customers for reconciliation", "error", err)
			return
		}

		checked := 0
		flagged := 0
		for _, id := range ids {
			d, err := jr.services.Ledger.ReconcileCustomer(ctx, id)
			if err != nil {
				logger.Error("Failed to reconcile customer", "customer_id", id, "error", err)
				continue
			}
			checked++
			if d != nil {
				flagged++
			}
		}

		logger.Info("Balance reconciliation finished", "checked", checked, "flagged", flagged)
	})
}

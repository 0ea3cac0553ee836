package jobs

import (
	"database/sql"

	"github.com/mhr996/school-dash-backend/internal/config"
	"github.com/mhr996/school-dash-backend/internal/logger"
	"github.com/mhr996/school-dash-backend/internal/repository/postgres"
	"github.com/mhr996/school-dash-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs.
type JobRunner struct {
	db       *sql.DB
	store    *postgres.Store
	services *Services
	config   *config.Config
}

// Services holds the service dependencies jobs need.
type Services struct {
	Ledger  service.LedgerService
	Payout  service.PayoutService
	Booking service.BookingService
}

func NewJobRunner(db *sql.DB, store *postgres.Store, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:       db,
		store:    store,
		services: services,
		config:   cfg,
	}
}

// Config exposes the runner's configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs every nightly job, for manual execution.
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ReconcileBalances()
	jr.PayoutSweep()
}

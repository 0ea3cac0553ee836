package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mhr996/school-dash-backend/internal/jobs"
	"github.com/mhr996/school-dash-backend/internal/logger"
)

// Scheduler manages cron job scheduling.
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a scheduler with the provided job runner.
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.ReconcileBalances, s.jobs.ReconcileBalances)
	if err != nil {
		logger.Error("Failed to register ReconcileBalances job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.PayoutSweep, s.jobs.PayoutSweep)
	if err != nil {
		logger.Error("Failed to register PayoutSweep job", "error", err)
	}
}

// Start begins the cron scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Scheduler started")
}

// Stop halts the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Scheduler stopped")
}

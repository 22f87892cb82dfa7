package scheduler

import (
	"context"
	"log/slog"
	"time"

	"rental-booking/internal/pkg/config"
	"rental-booking/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the maintenance and outbox jobs in-process.
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
	logger  *slog.Logger
}

func New(logger *slog.Logger, timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC), cron.WithChain(cron.Recover(cron.DefaultLogger))),
		timeout: timeout,
		logger:  logger,
	}
}

// Add schedules fn under spec. Overlapping runs of the same job are skipped.
func (s *Scheduler) Add(name, spec string, fn func(ctx context.Context) error) error {
	job := cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		started := time.Now()
		if err := fn(ctx); err != nil {
			s.logger.Error("scheduled job failed", "job", name, "error", err.Error())
			return
		}
		s.logger.Debug("scheduled job finished", "job", name, "duration_ms", time.Since(started).Milliseconds())
	}))

	if _, err := s.cron.AddJob(spec, job); err != nil {
		return err
	}
	s.logger.Info("scheduled job registered", "job", name, "spec", spec)
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs to return or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// RegisterJobs wires the housekeeping commands to their configured schedules.
func RegisterJobs(s *Scheduler, cfg config.JobsConfig, maintenance commands.MaintenanceCommands, notifications commands.NotificationCommands) error {
	jobs := []struct {
		name string
		spec string
		fn   func(ctx context.Context) error
	}{
		{"expire-pending", cfg.ExpirePendingSpec, func(ctx context.Context) error {
			_, err := maintenance.ExpireStalePending(ctx, cfg.PendingTTL)
			return err
		}},
		{"complete-stays", cfg.CompleteStaysSpec, func(ctx context.Context) error {
			_, err := maintenance.CompleteFinishedStays(ctx)
			return err
		}},
		{"purge-idempotency", cfg.PurgeIdemSpec, func(ctx context.Context) error {
			_, err := maintenance.PurgeExpiredIdempotencyKeys(ctx)
			return err
		}},
		{"dispatch-notifications", cfg.DispatchMailSpec, func(ctx context.Context) error {
			_, err := notifications.DispatchPending(ctx, cfg.DispatchBatchLimit)
			return err
		}},
	}

	for _, j := range jobs {
		if err := s.Add(j.name, j.spec, j.fn); err != nil {
			return err
		}
	}
	return nil
}

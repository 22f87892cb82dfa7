package bootstrap

import (
	"context"
	"log/slog"

	"rental-booking/internal/infra/scheduler"
	"rental-booking/internal/pkg/config"
	"rental-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Invoke(StartJobs),
)

// StartJobs runs the maintenance and outbox jobs in-process when JOBS_ENABLED is set.
func StartJobs(
	lc fx.Lifecycle,
	cfg config.Config,
	maintenance commands.MaintenanceCommands,
	notifications commands.NotificationCommands,
	logger *slog.Logger,
) error {
	if !cfg.Jobs.Enabled {
		logger.Info("background jobs disabled")
		return nil
	}

	s := scheduler.New(logger, cfg.Jobs.Timeout)
	if err := scheduler.RegisterJobs(s, cfg.Jobs, maintenance, notifications); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.Stop(ctx)
			return nil
		},
	})
	return nil
}

package commands

import (
	"context"
	"log/slog"
	"time"

	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/usecase/shared"
)

//go:generate mockgen -source=maintenance.go -destination=../../../tests/mock/commands/mock_maintenance.go -package=commandsmock

// MaintenanceCommands are the periodic housekeeping tasks run by the scheduler.
type MaintenanceCommands interface {
	// ExpireStalePending cancels unpaid PENDING reservations created more than olderThan ago.
	ExpireStalePending(ctx context.Context, olderThan time.Duration) (int, error)
	// CompleteFinishedStays moves CONFIRMED reservations whose stay has ended to COMPLETED.
	CompleteFinishedStays(ctx context.Context) (int64, error)
	PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error)
}

type maintenanceCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewMaintenanceCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) MaintenanceCommands {
	return &maintenanceCommandsImpl{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

func (m *maintenanceCommandsImpl) ExpireStalePending(ctx context.Context, olderThan time.Duration) (int, error) {
	now := m.clock.Now()
	var expired int
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cancelled, err := tx.Reservations().ExpireStalePending(ctx, tx.DB(), now.Add(-olderThan))
		if err != nil {
			return err
		}
		for _, res := range cancelled {
			if err := enqueueReservationNotice(ctx, tx, TopicReservationCancelled, res, now); err != nil {
				return err
			}
		}
		expired = len(cancelled)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if expired > 0 {
		m.logger.Info("expired stale pending reservations", "count", expired)
	}
	return expired, nil
}

func (m *maintenanceCommandsImpl) CompleteFinishedStays(ctx context.Context) (int64, error) {
	var completed int64
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		completed, err = tx.Reservations().CompleteFinished(ctx, tx.DB(), m.clock.Now())
		return err
	})
	if err != nil {
		return 0, err
	}

	if completed > 0 {
		m.logger.Info("completed finished stays", "count", completed)
	}
	return completed, nil
}

func (m *maintenanceCommandsImpl) PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error) {
	var purged int64
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		purged, err = tx.Idempotency().DeleteExpired(ctx, tx.DB(), m.clock.Now())
		return err
	})
	if err != nil {
		return 0, err
	}

	m.logger.Debug("purged expired idempotency keys", "count", purged)
	return purged, nil
}

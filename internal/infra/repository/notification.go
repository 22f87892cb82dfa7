package repository

import (
	"context"
	"time"

	"rental-booking/internal/infra"
	"rental-booking/internal/infra/pgquery"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	notificationStatusQueued = "queued"
	notificationStatusSent   = "sent"
	notificationStatusFailed = "failed"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db pgquery.DBTX, now time.Time, limit int32) ([]pgquery.NotificationJob, error)
	UpdateNotificationJobStatus(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx pgquery.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := pgquery.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgtype.Timestamptz{Time: runAt, Valid: true},
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, tx pgquery.DBTX, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: int(row.Attempts),
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) error {
	return r.updateStatus(ctx, tx, pgquery.UpdateNotificationJobStatusParams{
		ID:     id,
		Status: notificationStatusSent,
	})
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, tx pgquery.DBTX, id uuid.UUID, lastError string, retryAt *time.Time) error {
	params := pgquery.UpdateNotificationJobStatusParams{
		ID:        id,
		Status:    notificationStatusFailed,
		LastError: pgconv.StringToPgtype(lastError),
	}
	if retryAt != nil {
		params.Status = notificationStatusQueued
		params.RunAt = pgconv.TimeToPgtype(*retryAt)
	}
	return r.updateStatus(ctx, tx, params)
}

func (r *NotificationRepository) updateStatus(ctx context.Context, tx pgquery.DBTX, params pgquery.UpdateNotificationJobStatusParams) error {
	err := r.queries.UpdateNotificationJobStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}

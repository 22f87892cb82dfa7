package repository

import (
	"context"
	"time"

	"rental-booking/internal/infra"
	"rental-booking/internal/infra/pgquery"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db pgquery.DBTX, arg pgquery.TryInsertIdempotencyKeyParams) (int64, error)
	ReclaimExpiredIdempotencyKey(ctx context.Context, db pgquery.DBTX, arg pgquery.TryInsertIdempotencyKeyParams) (int64, error)
	CompleteIdempotencyKey(ctx context.Context, db pgquery.DBTX, arg pgquery.CompleteIdempotencyKeyParams) error
	DeleteIdempotencyKey(ctx context.Context, db pgquery.DBTX, arg pgquery.GetIdempotencyKeyParams) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db pgquery.DBTX, now time.Time) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries) *IdempotencyRepository {
	return &IdempotencyRepository{queries: queries}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx pgquery.DBTX, claim shared.IdempotencyClaim) (bool, error) {
	n, err := r.queries.TryInsertIdempotencyKey(ctx, tx, claimParams(claim))
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) Reclaim(ctx context.Context, tx pgquery.DBTX, claim shared.IdempotencyClaim) (bool, error) {
	n, err := r.queries.ReclaimExpiredIdempotencyKey(ctx, tx, claimParams(claim))
	if err != nil {
		return false, infra.WrapRepoErr("failed to reclaim idempotency key", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, tx pgquery.DBTX, key uuid.UUID, subject string, reservationID uuid.UUID) error {
	params := pgquery.CompleteIdempotencyKeyParams{
		Key:                 key,
		Subject:             subject,
		ResultReservationID: pgconv.UUIDToPgtype(reservationID),
	}
	if err := r.queries.CompleteIdempotencyKey(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	return nil
}

func (r *IdempotencyRepository) Release(ctx context.Context, tx pgquery.DBTX, key uuid.UUID, subject string) error {
	if err := r.queries.DeleteIdempotencyKey(ctx, tx, pgquery.GetIdempotencyKeyParams{Key: key, Subject: subject}); err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, tx pgquery.DBTX, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, tx, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return count, nil
}

func claimParams(c shared.IdempotencyClaim) pgquery.TryInsertIdempotencyKeyParams {
	return pgquery.TryInsertIdempotencyKeyParams{
		Key:         c.Key,
		Subject:     c.Subject,
		Endpoint:    c.Endpoint,
		RequestHash: c.RequestHash,
		ExpiresAt:   pgconv.TimeToPgtype(c.ExpiresAt),
	}
}

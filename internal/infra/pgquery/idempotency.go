package pgquery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const idempotencyColumns = `key, subject, endpoint, request_hash, status, result_reservation_id, created_at, expires_at`

type TryInsertIdempotencyKeyParams struct {
	Key         uuid.UUID
	Subject     string
	Endpoint    string
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

const tryInsertIdempotencyKey = `
INSERT INTO idempotency_keys (key, subject, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, subject) DO NOTHING`

// TryInsertIdempotencyKey returns 0 when the key already exists for the subject.
func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (int64, error) {
	return execRows(ctx, db, tryInsertIdempotencyKey, arg.Key, arg.Subject, arg.Endpoint, arg.RequestHash, arg.ExpiresAt)
}

type GetIdempotencyKeyParams struct {
	Key     uuid.UUID
	Subject string
}

const getIdempotencyKey = `SELECT ` + idempotencyColumns + ` FROM idempotency_keys WHERE key = $1 AND subject = $2`

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, arg GetIdempotencyKeyParams) (IdempotencyKey, error) {
	return queryOne[IdempotencyKey](ctx, db, getIdempotencyKey, arg.Key, arg.Subject)
}

type CompleteIdempotencyKeyParams struct {
	Key                 uuid.UUID
	Subject             string
	ResultReservationID pgtype.UUID
}

const completeIdempotencyKey = `
UPDATE idempotency_keys
SET status = 'completed', result_reservation_id = $3
WHERE key = $1 AND subject = $2`

func (q *Queries) CompleteIdempotencyKey(ctx context.Context, db DBTX, arg CompleteIdempotencyKeyParams) error {
	_, err := db.Exec(ctx, completeIdempotencyKey, arg.Key, arg.Subject, arg.ResultReservationID)
	return err
}

const reclaimExpiredIdempotencyKey = `
UPDATE idempotency_keys
SET endpoint = $3, request_hash = $4, status = 'processing', result_reservation_id = NULL,
    created_at = now(), expires_at = $5
WHERE key = $1 AND subject = $2 AND expires_at < now()`

// ReclaimExpiredIdempotencyKey restarts an expired key; it returns 0 while the key is still live.
func (q *Queries) ReclaimExpiredIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (int64, error) {
	return execRows(ctx, db, reclaimExpiredIdempotencyKey, arg.Key, arg.Subject, arg.Endpoint, arg.RequestHash, arg.ExpiresAt)
}

const deleteIdempotencyKey = `DELETE FROM idempotency_keys WHERE key = $1 AND subject = $2`

func (q *Queries) DeleteIdempotencyKey(ctx context.Context, db DBTX, arg GetIdempotencyKeyParams) error {
	_, err := db.Exec(ctx, deleteIdempotencyKey, arg.Key, arg.Subject)
	return err
}

const deleteExpiredIdempotencyKeys = `DELETE FROM idempotency_keys WHERE expires_at < $1`

func (q *Queries) DeleteExpiredIdempotencyKeys(ctx context.Context, db DBTX, now time.Time) (int64, error) {
	return execRows(ctx, db, deleteExpiredIdempotencyKeys, now)
}

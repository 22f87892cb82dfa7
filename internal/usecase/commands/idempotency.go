package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"rental-booking/internal/domain/user"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// claimIdempotency takes the key for this request. It returns the stored outcome when the
// key already completed for an identical request, and nil when the caller now owns the key.
func (r *reservationCommandsImpl) claimIdempotency(ctx context.Context, claim shared.IdempotencyClaim) (*CreateReservationResult, error) {
	var existing *shared.IdempotencyRecord
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing = nil
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), claim)
		if err != nil || inserted {
			return err
		}
		reclaimed, err := tx.Idempotency().Reclaim(ctx, tx.DB(), claim)
		if err != nil || reclaimed {
			return err
		}
		existing, err = tx.Reads().IdempotencyByKey(ctx, claim.Key, claim.Subject)
		return err
	})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if existing.RequestHash != claim.RequestHash {
		return nil, ErrIdempotencyKeyReused
	}
	if existing.Status != shared.IdempotencyStatusCompleted {
		return nil, ErrIdempotencyInProgress
	}
	if existing.ResultReservationID == nil {
		return nil, errs.New("completed idempotency key has no reservation")
	}

	view, err := r.reservationQueries.GetByID(ctx, *existing.ResultReservationID)
	if err != nil {
		return nil, err
	}
	result := &CreateReservationResult{
		Reservation: view,
		IsReplayed:  true,
	}
	if view.PaymentURL != nil {
		result.PaymentURL = *view.PaymentURL
	}
	return result, nil
}

// completeIdempotency records the reservation as the key's outcome. On failure the key
// stays processing and answers 409 until it expires.
func (r *reservationCommandsImpl) completeIdempotency(ctx context.Context, claim shared.IdempotencyClaim, reservationID uuid.UUID) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Complete(ctx, tx.DB(), claim.Key, claim.Subject, reservationID)
	})
	if err != nil {
		r.logger.Error("failed to complete idempotency key",
			"key", claim.Key,
			"reservation_id", reservationID,
			"error", err.Error())
	}
}

func (r *reservationCommandsImpl) releaseIdempotency(ctx context.Context, claim shared.IdempotencyClaim) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), claim.Key, claim.Subject)
	})
	if err != nil {
		r.logger.Warn("failed to release idempotency key",
			"key", claim.Key,
			"error", err.Error())
	}
}

// idempotencySubject scopes keys to the caller: the user id when authenticated, else the guest email.
func idempotencySubject(userID *uuid.UUID, email user.Email) string {
	if userID != nil {
		return "user:" + userID.String()
	}
	return "guest:" + email.Value()
}

func hashCreateInput(in CreateReservationInput) string {
	in.IdempotencyKey = nil
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

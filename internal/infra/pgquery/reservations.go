package pgquery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, property_id, user_id, start_date, end_date, number_of_guests,
	special_requests, guest_email, total_price_cents, deposit_amount_cents, deposit_paid, status,
	confirmation_code, payment_session_id, payment_url, created_at, updated_at`

const reservationWithRefsSelect = `
SELECT r.id, r.property_id, r.user_id, r.start_date, r.end_date, r.number_of_guests,
       r.special_requests, r.guest_email, r.total_price_cents, r.deposit_amount_cents, r.deposit_paid,
       r.status, r.confirmation_code, r.payment_session_id, r.payment_url, r.created_at, r.updated_at,
       p.name AS property_name,
       u.first_name AS user_first_name, u.last_name AS user_last_name, u.email AS user_email
FROM reservations r
JOIN properties p ON p.id = r.property_id
LEFT JOIN users u ON u.id = r.user_id`

type CreateReservationParams struct {
	ID                 uuid.UUID
	PropertyID         uuid.UUID
	UserID             pgtype.UUID
	StartDate          pgtype.Timestamptz
	EndDate            pgtype.Timestamptz
	NumberOfGuests     int32
	SpecialRequests    pgtype.Text
	GuestEmail         string
	TotalPriceCents    int64
	DepositAmountCents int64
	Status             string
	ConfirmationCode   string
}

const createReservation = `
INSERT INTO reservations (id, property_id, user_id, start_date, end_date, number_of_guests,
    special_requests, guest_email, total_price_cents, deposit_amount_cents, status, confirmation_code)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + reservationColumns

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (Reservation, error) {
	return queryOne[Reservation](ctx, db, createReservation,
		arg.ID, arg.PropertyID, arg.UserID, arg.StartDate, arg.EndDate, arg.NumberOfGuests,
		arg.SpecialRequests, arg.GuestEmail, arg.TotalPriceCents, arg.DepositAmountCents,
		arg.Status, arg.ConfirmationCode)
}

const getReservation = reservationWithRefsSelect + ` WHERE r.id = $1`

func (q *Queries) GetReservation(ctx context.Context, db DBTX, id uuid.UUID) (ReservationWithRefs, error) {
	return queryOne[ReservationWithRefs](ctx, db, getReservation, id)
}

const getReservationByCode = reservationWithRefsSelect + ` WHERE r.confirmation_code = $1`

func (q *Queries) GetReservationByCode(ctx context.Context, db DBTX, code string) (ReservationWithRefs, error) {
	return queryOne[ReservationWithRefs](ctx, db, getReservationByCode, code)
}

const getReservationForUpdate = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reservation, error) {
	return queryOne[Reservation](ctx, db, getReservationForUpdate, id)
}

const getReservationBySessionForUpdate = `
SELECT ` + reservationColumns + ` FROM reservations WHERE payment_session_id = $1 FOR UPDATE`

func (q *Queries) GetReservationBySessionForUpdate(ctx context.Context, db DBTX, sessionID string) (Reservation, error) {
	return queryOne[Reservation](ctx, db, getReservationBySessionForUpdate, sessionID)
}

const listReservationsByUser = reservationWithRefsSelect + `
WHERE r.user_id = $1
ORDER BY r.created_at DESC, r.id`

func (q *Queries) ListReservationsByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]ReservationWithRefs, error) {
	return queryMany[ReservationWithRefs](ctx, db, listReservationsByUser, userID)
}

const listReservationsByGuestEmail = reservationWithRefsSelect + `
WHERE lower(r.guest_email) = lower($1)
ORDER BY r.created_at DESC, r.id`

func (q *Queries) ListReservationsByGuestEmail(ctx context.Context, db DBTX, email string) ([]ReservationWithRefs, error) {
	return queryMany[ReservationWithRefs](ctx, db, listReservationsByGuestEmail, email)
}

const listAllReservations = reservationWithRefsSelect + `
ORDER BY r.created_at DESC, r.id`

func (q *Queries) ListAllReservations(ctx context.Context, db DBTX) ([]ReservationWithRefs, error) {
	return queryMany[ReservationWithRefs](ctx, db, listAllReservations)
}

const listActiveReservationRanges = `
SELECT start_date, end_date FROM reservations
WHERE property_id = $1 AND status IN ('PENDING', 'CONFIRMED')
ORDER BY start_date`

func (q *Queries) ListActiveReservationRanges(ctx context.Context, db DBTX, propertyID uuid.UUID) ([]ReservationRange, error) {
	return queryMany[ReservationRange](ctx, db, listActiveReservationRanges, propertyID)
}

type UpdateReservationStateParams struct {
	ID               uuid.UUID
	Status           string
	DepositPaid      bool
	PaymentSessionID pgtype.Text
	PaymentURL       pgtype.Text
}

const updateReservationState = `
UPDATE reservations
SET status = $2, deposit_paid = $3, payment_session_id = $4, payment_url = $5, updated_at = now()
WHERE id = $1
RETURNING ` + reservationColumns

func (q *Queries) UpdateReservationState(ctx context.Context, db DBTX, arg UpdateReservationStateParams) (Reservation, error) {
	return queryOne[Reservation](ctx, db, updateReservationState,
		arg.ID, arg.Status, arg.DepositPaid, arg.PaymentSessionID, arg.PaymentURL)
}

const expireStalePendingReservations = `
UPDATE reservations
SET status = 'CANCELLED', updated_at = now()
WHERE status = 'PENDING' AND deposit_paid = false AND created_at < $1
RETURNING ` + reservationColumns

func (q *Queries) ExpireStalePendingReservations(ctx context.Context, db DBTX, createdBefore time.Time) ([]Reservation, error) {
	return queryMany[Reservation](ctx, db, expireStalePendingReservations, createdBefore)
}

const completeFinishedReservations = `
UPDATE reservations
SET status = 'COMPLETED', updated_at = now()
WHERE status = 'CONFIRMED' AND end_date < $1`

func (q *Queries) CompleteFinishedReservations(ctx context.Context, db DBTX, now time.Time) (int64, error) {
	return execRows(ctx, db, completeFinishedReservations, now)
}

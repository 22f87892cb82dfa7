package queries

import (
	"context"
	"strings"

	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/infra"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/mock_reservation.go -package=queriesmock

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	GetByConfirmationCode(ctx context.Context, code string) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	ListByGuestEmail(ctx context.Context, email string) ([]*ReservationView, error)
	ListAll(ctx context.Context) ([]*ReservationView, error)
	// GuestLookup discloses the whole history of email only when code belongs to one of its reservations.
	GuestLookup(ctx context.Context, email, code string) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByConfirmationCode(ctx context.Context, code string) (*ReservationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	FindByGuestEmail(ctx context.Context, email string) ([]*ReservationView, error)
	FindAll(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, mapReservationNotFound(err)
	}
	return v, nil
}

func (q *reservationQueriesImpl) GetByConfirmationCode(ctx context.Context, code string) (*ReservationView, error) {
	v, err := q.readStore.FindByConfirmationCode(ctx, reservation.NormalizeConfirmationCode(code))
	if err != nil {
		return nil, mapReservationNotFound(err)
	}
	return v, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}

func (q *reservationQueriesImpl) ListByGuestEmail(ctx context.Context, email string) ([]*ReservationView, error) {
	return q.readStore.FindByGuestEmail(ctx, normalizeEmail(email))
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context) ([]*ReservationView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *reservationQueriesImpl) GuestLookup(ctx context.Context, email, code string) ([]*ReservationView, error) {
	email = normalizeEmail(email)
	code = reservation.NormalizeConfirmationCode(code)
	if email == "" || code == "" {
		return []*ReservationView{}, nil
	}

	anchor, err := q.readStore.FindByConfirmationCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return []*ReservationView{}, nil
		}
		return nil, err
	}
	if normalizeEmail(anchor.GuestEmail) != email {
		return []*ReservationView{}, nil
	}

	return q.readStore.FindByGuestEmail(ctx, email)
}

func mapReservationNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return reservation.ErrNotFound
	}
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package repository

import (
	"context"
	"time"

	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/infra"
	"rental-booking/internal/infra/pgquery"
	"rental-booking/internal/infra/repository/converter"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/mock_reservation.go -package=repositorymock

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateReservationParams) (pgquery.Reservation, error)
	UpdateReservationState(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateReservationStateParams) (pgquery.Reservation, error)
	ExpireStalePendingReservations(ctx context.Context, db pgquery.DBTX, createdBefore time.Time) ([]pgquery.Reservation, error)
	CompleteFinishedReservations(ctx context.Context, db pgquery.DBTX, now time.Time) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

// Create inserts a reservation. An overlapping active reservation surfaces as KindExclusionViolated.
func (r *ReservationRepository) Create(ctx context.Context, tx pgquery.DBTX, res *reservation.Reservation) (*reservation.Reservation, error) {
	row, err := r.queries.CreateReservation(ctx, tx, converter.ReservationToCreateParams(res))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return converter.ReservationToDomain(row)
}

func (r *ReservationRepository) Save(ctx context.Context, tx pgquery.DBTX, res *reservation.Reservation) (*reservation.Reservation, error) {
	row, err := r.queries.UpdateReservationState(ctx, tx, converter.ReservationToStateParams(res))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to save reservation", err)
	}
	return converter.ReservationToDomain(row)
}

func (r *ReservationRepository) ExpireStalePending(ctx context.Context, tx pgquery.DBTX, createdBefore time.Time) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ExpireStalePendingReservations(ctx, tx, createdBefore)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to expire stale reservations", err)
	}
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *ReservationRepository) CompleteFinished(ctx context.Context, tx pgquery.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.CompleteFinishedReservations(ctx, tx, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete finished reservations", err)
	}
	return n, nil
}

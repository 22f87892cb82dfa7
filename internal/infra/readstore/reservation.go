package readstore

import (
	"context"

	"rental-booking/internal/infra"
	"rental-booking/internal/infra/pgquery"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservation(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.ReservationWithRefs, error)
	GetReservationByCode(ctx context.Context, db pgquery.DBTX, code string) (pgquery.ReservationWithRefs, error)
	ListReservationsByUser(ctx context.Context, db pgquery.DBTX, userID uuid.UUID) ([]pgquery.ReservationWithRefs, error)
	ListReservationsByGuestEmail(ctx context.Context, db pgquery.DBTX, email string) ([]pgquery.ReservationWithRefs, error)
	ListAllReservations(ctx context.Context, db pgquery.DBTX) ([]pgquery.ReservationWithRefs, error)
	ListActiveReservationRanges(ctx context.Context, db pgquery.DBTX, propertyID uuid.UUID) ([]pgquery.ReservationRange, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      pgquery.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db pgquery.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(row), nil
}

func (r *ReservationReadStore) FindByConfirmationCode(ctx context.Context, code string) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by confirmation code", err)
	}

	return rowToReservationView(row), nil
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	return rowsToReservationViews(rows), nil
}

func (r *ReservationReadStore) FindByGuestEmail(ctx context.Context, email string) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByGuestEmail(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by guest email", err)
	}
	return rowsToReservationViews(rows), nil
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListAllReservations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return rowsToReservationViews(rows), nil
}

func (r *ReservationReadStore) FindActiveRanges(ctx context.Context, propertyID uuid.UUID) ([]queries.DateRangeView, error) {
	rows, err := r.queries.ListActiveReservationRanges(ctx, r.db, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservation ranges", err)
	}
	result := make([]queries.DateRangeView, len(rows))
	for i, row := range rows {
		result[i] = queries.DateRangeView{
			StartDate: pgconv.TimeFromPgtype(row.StartDate),
			EndDate:   pgconv.TimeFromPgtype(row.EndDate),
		}
	}
	return result, nil
}

func rowsToReservationViews(rows []pgquery.ReservationWithRefs) []*queries.ReservationView {
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = rowToReservationView(row)
	}
	return result
}

func rowToReservationView(row pgquery.ReservationWithRefs) *queries.ReservationView {
	v := &queries.ReservationView{
		ID:                 row.ID,
		PropertyID:         row.PropertyID,
		PropertyName:       row.PropertyName,
		UserID:             pgconv.UUIDPtrFromPgtype(row.UserID),
		StartDate:          pgconv.TimeFromPgtype(row.StartDate),
		EndDate:            pgconv.TimeFromPgtype(row.EndDate),
		NumberOfGuests:     int(row.NumberOfGuests),
		SpecialRequests:    pgconv.StringPtrFromPgtype(row.SpecialRequests),
		GuestEmail:         row.GuestEmail,
		TotalPriceCents:    row.TotalPriceCents,
		DepositAmountCents: row.DepositAmountCents,
		DepositPaid:        row.DepositPaid,
		Status:             row.Status,
		ConfirmationCode:   row.ConfirmationCode,
		PaymentSessionID:   pgconv.StringPtrFromPgtype(row.PaymentSessionID),
		PaymentURL:         pgconv.StringPtrFromPgtype(row.PaymentURL),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}

	if v.UserID != nil && row.UserEmail.Valid {
		v.User = &queries.UserSummary{
			ID:        *v.UserID,
			FirstName: row.UserFirstName.String,
			LastName:  row.UserLastName.String,
			Email:     row.UserEmail.String,
		}
	}

	return v
}

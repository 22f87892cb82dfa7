//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"rental-booking/internal/infra"
	"rental-booking/internal/infra/pgquery"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationViewQueries struct {
	mock.Mock
}

func (m *MockReservationViewQueries) GetReservation(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.ReservationWithRefs, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgquery.ReservationWithRefs), args.Error(1)
}

func (m *MockReservationViewQueries) GetReservationByCode(ctx context.Context, db pgquery.DBTX, code string) (pgquery.ReservationWithRefs, error) {
	args := m.Called(ctx, db, code)
	return args.Get(0).(pgquery.ReservationWithRefs), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationsByUser(ctx context.Context, db pgquery.DBTX, userID uuid.UUID) ([]pgquery.ReservationWithRefs, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).([]pgquery.ReservationWithRefs), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationsByGuestEmail(ctx context.Context, db pgquery.DBTX, email string) ([]pgquery.ReservationWithRefs, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).([]pgquery.ReservationWithRefs), args.Error(1)
}

func (m *MockReservationViewQueries) ListAllReservations(ctx context.Context, db pgquery.DBTX) ([]pgquery.ReservationWithRefs, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]pgquery.ReservationWithRefs), args.Error(1)
}

func (m *MockReservationViewQueries) ListActiveReservationRanges(ctx context.Context, db pgquery.DBTX, propertyID uuid.UUID) ([]pgquery.ReservationRange, error) {
	args := m.Called(ctx, db, propertyID)
	return args.Get(0).([]pgquery.ReservationRange), args.Error(1)
}

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func reservationRow(userID *uuid.UUID) pgquery.ReservationWithRefs {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	row := pgquery.ReservationWithRefs{
		Reservation: pgquery.Reservation{
			ID:                 uuid.New(),
			PropertyID:         uuid.New(),
			StartDate:          ts(start),
			EndDate:            ts(start.AddDate(0, 0, 3)),
			NumberOfGuests:     2,
			GuestEmail:         "guest@example.com",
			TotalPriceCents:    60000,
			DepositAmountCents: 18000,
			Status:             "PENDING",
			ConfirmationCode:   "ABCDEFGH23",
			CreatedAt:          ts(start),
			UpdatedAt:          ts(start),
		},
		PropertyName: "Villa Azur",
	}
	if userID != nil {
		row.UserID = pgtype.UUID{Bytes: *userID, Valid: true}
		row.UserFirstName = pgtype.Text{String: "Jane", Valid: true}
		row.UserLastName = pgtype.Text{String: "Doe", Valid: true}
		row.UserEmail = pgtype.Text{String: "jane@example.com", Valid: true}
	}
	return row
}

func TestReservationReadStore_FindByID(t *testing.T) {
	owner := uuid.New()

	t.Run("owner summary attached", func(t *testing.T) {
		row := reservationRow(&owner)
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("GetReservation", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		view, err := NewReservationReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

		require.NoError(t, err)
		assert.Equal(t, "Villa Azur", view.PropertyName)
		require.NotNil(t, view.UserID)
		assert.Equal(t, owner, *view.UserID)
		require.NotNil(t, view.User)
		assert.Equal(t, "jane@example.com", view.User.Email)
		assert.Equal(t, 2, view.NumberOfGuests)
		assert.Nil(t, view.PaymentSessionID)
		mockQueries.AssertExpectations(t)
	})

	t.Run("guest reservation has no owner", func(t *testing.T) {
		row := reservationRow(nil)
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("GetReservation", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		view, err := NewReservationReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

		require.NoError(t, err)
		assert.Nil(t, view.UserID)
		assert.Nil(t, view.User)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockReservationViewQueries)
		mockQueries.On("GetReservation", mock.Anything, mock.Anything, mock.Anything).
			Return(pgquery.ReservationWithRefs{}, pgx.ErrNoRows)

		view, err := NewReservationReadStore(mockQueries, nil).FindByID(context.Background(), uuid.New())

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationReadStore_FindActiveRanges(t *testing.T) {
	propertyID := uuid.New()
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	mockQueries := new(MockReservationViewQueries)
	mockQueries.On("ListActiveReservationRanges", mock.Anything, mock.Anything, propertyID).
		Return([]pgquery.ReservationRange{{StartDate: ts(start), EndDate: ts(start.AddDate(0, 0, 3))}}, nil)

	ranges, err := NewReservationReadStore(mockQueries, nil).FindActiveRanges(context.Background(), propertyID)

	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, start, ranges[0].StartDate)
	assert.Equal(t, start.AddDate(0, 0, 3), ranges[0].EndDate)
}

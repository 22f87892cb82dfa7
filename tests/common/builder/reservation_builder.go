//go:build unit || e2e

package builder

import (
	"time"

	"rental-booking/internal/domain/money"
	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/user"
	reqdto "rental-booking/internal/handler/dto/request"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID                 uuid.UUID
	PropertyID         uuid.UUID
	PropertyName       string
	UserID             *uuid.UUID
	StartDate          time.Time
	EndDate            time.Time
	NumberOfGuests     int
	SpecialRequests    *string
	GuestEmail         string
	TotalPriceCents    int64
	DepositAmountCents int64
	DepositPaid        bool
	Status             reservation.Status
	ConfirmationCode   string
	PaymentSessionID   *string
	PaymentURL         *string
	// CreatedAt defaults to the build time when zero.
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:                 uuid.New(),
		PropertyID:         uuid.New(),
		PropertyName:       "Villa Azur",
		StartDate:          time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2026, time.June, 4, 0, 0, 0, 0, time.UTC),
		NumberOfGuests:     2,
		GuestEmail:         "guest@example.com",
		TotalPriceCents:    60000,
		DepositAmountCents: 18000,
		Status:             reservation.StatusPending,
		ConfirmationCode:   "ABCDEFGH23",
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	stay, err := reservation.NewDateRange(r.StartDate, r.EndDate)
	if err != nil {
		panic(err)
	}
	email, err := user.NewEmail(r.GuestEmail)
	if err != nil {
		panic(err)
	}
	total, _ := money.FromCents(r.TotalPriceCents)
	deposit, _ := money.FromCents(r.DepositAmountCents)
	now := time.Now()
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	return reservation.ReconstructReservation(
		r.ID, r.PropertyID, r.UserID, stay, r.NumberOfGuests, r.SpecialRequests, email,
		total, deposit, r.DepositPaid, r.Status, r.ConfirmationCode,
		r.PaymentSessionID, r.PaymentURL, createdAt, now,
	)
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	now := time.Now()
	return &queries.ReservationView{
		ID:                 r.ID,
		PropertyID:         r.PropertyID,
		PropertyName:       r.PropertyName,
		UserID:             r.UserID,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		NumberOfGuests:     r.NumberOfGuests,
		SpecialRequests:    r.SpecialRequests,
		GuestEmail:         r.GuestEmail,
		TotalPriceCents:    r.TotalPriceCents,
		DepositAmountCents: r.DepositAmountCents,
		DepositPaid:        r.DepositPaid,
		Status:             r.Status.String(),
		ConfirmationCode:   r.ConfirmationCode,
		PaymentSessionID:   r.PaymentSessionID,
		PaymentURL:         r.PaymentURL,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (r *ReservationBuilder) BuildCreateDTO() reqdto.CreateReservationRequest {
	first, last := "Jane", "Doe"
	return reqdto.CreateReservationRequest{
		PropertyID:     r.PropertyID,
		StartDate:      &reqdto.Date{Time: r.StartDate},
		EndDate:        &reqdto.Date{Time: r.EndDate},
		NumberOfGuests: r.NumberOfGuests,
		GuestEmail:     r.GuestEmail,
		GuestFirstName: &first,
		GuestLastName:  &last,
		FrontendURL:    "https://villa.example.com",
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) WithOwner(userID uuid.UUID) *ReservationBuilder {
	r.UserID = &userID
	return r
}

func (r *ReservationBuilder) WithDates(start, end time.Time) *ReservationBuilder {
	r.StartDate = start
	r.EndDate = end
	return r
}

func (r *ReservationBuilder) WithPaymentSession(id, url string) *ReservationBuilder {
	r.PaymentSessionID = &id
	r.PaymentURL = &url
	return r
}

func (r *ReservationBuilder) CreatedAtTime(t time.Time) *ReservationBuilder {
	r.CreatedAt = t
	return r
}

func (r *ReservationBuilder) AsPaid() *ReservationBuilder {
	r.DepositPaid = true
	return r
}

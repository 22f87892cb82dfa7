package converter

import (
	"rental-booking/internal/domain/money"
	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/user"
	"rental-booking/internal/infra/pgquery"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) pgquery.CreateReservationParams {
	stay := res.Stay()
	return pgquery.CreateReservationParams{
		ID:                 res.ID(),
		PropertyID:         res.PropertyID(),
		UserID:             pgconv.UUIDPtrToPgtype(res.UserID()),
		StartDate:          pgconv.TimeToPgtype(stay.Start()),
		EndDate:            pgconv.TimeToPgtype(stay.End()),
		NumberOfGuests:     int32(res.NumberOfGuests()), // #nosec G115 -- bounded by property capacity
		SpecialRequests:    pgconv.StringPtrToPgtype(res.SpecialRequests()),
		GuestEmail:         res.GuestEmail().Value(),
		TotalPriceCents:    res.TotalPrice().Cents(),
		DepositAmountCents: res.DepositAmount().Cents(),
		Status:             res.Status().String(),
		ConfirmationCode:   res.ConfirmationCode(),
	}
}

func ReservationToStateParams(res *reservation.Reservation) pgquery.UpdateReservationStateParams {
	return pgquery.UpdateReservationStateParams{
		ID:               res.ID(),
		Status:           res.Status().String(),
		DepositPaid:      res.DepositPaid(),
		PaymentSessionID: pgconv.StringPtrToPgtype(res.PaymentSessionID()),
		PaymentURL:       pgconv.StringPtrToPgtype(res.PaymentURL()),
	}
}

// ReservationToDomain rebuilds the aggregate from a stored row.
func ReservationToDomain(row pgquery.Reservation) (*reservation.Reservation, error) {
	stay, err := reservation.NewDateRange(pgconv.TimeFromPgtype(row.StartDate), pgconv.TimeFromPgtype(row.EndDate))
	if err != nil {
		return nil, errs.Wrap(err, "stored reservation has invalid dates")
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrap(err, "stored reservation has invalid status")
	}
	email, err := user.NewEmail(row.GuestEmail)
	if err != nil {
		return nil, errs.Wrap(err, "stored reservation has invalid guest email")
	}
	total, err := money.FromCents(row.TotalPriceCents)
	if err != nil {
		return nil, err
	}
	deposit, err := money.FromCents(row.DepositAmountCents)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.PropertyID,
		pgconv.UUIDPtrFromPgtype(row.UserID),
		stay,
		int(row.NumberOfGuests),
		pgconv.StringPtrFromPgtype(row.SpecialRequests),
		email,
		total,
		deposit,
		row.DepositPaid,
		status,
		row.ConfirmationCode,
		pgconv.StringPtrFromPgtype(row.PaymentSessionID),
		pgconv.StringPtrFromPgtype(row.PaymentURL),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func RangesToDomain(rows []pgquery.ReservationRange) ([]reservation.DateRange, error) {
	out := make([]reservation.DateRange, 0, len(rows))
	for _, row := range rows {
		r, err := reservation.NewDateRange(pgconv.TimeFromPgtype(row.StartDate), pgconv.TimeFromPgtype(row.EndDate))
		if err != nil {
			return nil, errs.Wrap(err, "stored reservation has invalid dates")
		}
		out = append(out, r)
	}
	return out, nil
}

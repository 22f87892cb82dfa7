package reservation

import (
	"time"

	"rental-booking/internal/domain/money"
	"rental-booking/internal/domain/user"
	"rental-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errs.Define("Reservation not found", errs.ErrNotFound)
	ErrNotAvailable      = errs.Define("Property is not available for the selected dates", errs.ErrConflict)
	ErrCannotCancel      = errs.Define("Reservation cannot be cancelled", errs.ErrConflict)
	ErrNotPayable        = errs.Define("Reservation is not awaiting payment", errs.ErrConflict)
	ErrInvalidStatus     = errs.Define("invalid reservation status", errs.ErrValidation)
	ErrDatesRequired     = errs.Define("startDate and endDate are required", errs.ErrValidation)
	ErrInvalidDateRange  = errs.Define("startDate must be before endDate", errs.ErrValidation)
	ErrInvalidGuestCount = errs.Define("numberOfGuests must be at least 1", errs.ErrValidation)
	ErrExceedsCapacity   = errs.Define("numberOfGuests exceeds property capacity", errs.ErrValidation)
)

type Reservation struct {
	id               uuid.UUID
	propertyID       uuid.UUID
	userID           *uuid.UUID
	stay             DateRange
	numberOfGuests   int
	specialRequests  *string
	guestEmail       user.Email
	totalPrice       money.Money
	depositAmount    money.Money
	depositPaid      bool
	status           Status
	confirmationCode string
	paymentSessionID *string
	paymentURL       *string
	createdAt        time.Time
	updatedAt        time.Time
}

func ReconstructReservation(
	id, propertyID uuid.UUID,
	userID *uuid.UUID,
	stay DateRange,
	numberOfGuests int,
	specialRequests *string,
	guestEmail user.Email,
	totalPrice, depositAmount money.Money,
	depositPaid bool,
	status Status,
	confirmationCode string,
	paymentSessionID, paymentURL *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:               id,
		propertyID:       propertyID,
		userID:           userID,
		stay:             stay,
		numberOfGuests:   numberOfGuests,
		specialRequests:  specialRequests,
		guestEmail:       guestEmail,
		totalPrice:       totalPrice,
		depositAmount:    depositAmount,
		depositPaid:      depositPaid,
		status:           status,
		confirmationCode: confirmationCode,
		paymentSessionID: paymentSessionID,
		paymentURL:       paymentURL,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Cancel moves an active reservation to CANCELLED. The status is untouched on error.
func (r *Reservation) Cancel() error {
	if !r.status.CanCancel() {
		return ErrCannotCancel
	}
	r.status = StatusCancelled
	return nil
}

// OverrideStatus is the administrative escape hatch: any valid status from any status.
func (r *Reservation) OverrideStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	r.status = s
	return nil
}

// RecordDepositPayment marks the deposit paid and confirms a PENDING reservation.
// Calling it again is a no-op.
func (r *Reservation) RecordDepositPayment() PaymentOutcome {
	if r.depositPaid {
		return PaymentAlreadyRecorded
	}
	r.depositPaid = true
	switch r.status {
	case StatusPending:
		r.status = StatusConfirmed
		return PaymentConfirmed
	case StatusCancelled:
		return PaymentAfterCancel
	default:
		return PaymentRecorded
	}
}

func (r *Reservation) AwaitsPayment() bool {
	return r.status == StatusPending && !r.depositPaid
}

// AttachPaymentSession stores the checkout session opened for the deposit.
func (r *Reservation) AttachPaymentSession(sessionID, url string) error {
	if !r.AwaitsPayment() {
		return ErrNotPayable
	}
	r.paymentSessionID = &sessionID
	r.paymentURL = &url
	return nil
}

// IsOwnedBy reports whether userID owns the reservation.
func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID != nil && *r.userID == userID
}

func (r *Reservation) MatchesCode(code string) bool {
	return code != "" && NormalizeConfirmationCode(code) == r.confirmationCode
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) PropertyID() uuid.UUID      { return r.propertyID }
func (r *Reservation) UserID() *uuid.UUID         { return r.userID }
func (r *Reservation) Stay() DateRange            { return r.stay }
func (r *Reservation) NumberOfGuests() int        { return r.numberOfGuests }
func (r *Reservation) SpecialRequests() *string   { return r.specialRequests }
func (r *Reservation) GuestEmail() user.Email     { return r.guestEmail }
func (r *Reservation) TotalPrice() money.Money    { return r.totalPrice }
func (r *Reservation) DepositAmount() money.Money { return r.depositAmount }
func (r *Reservation) DepositPaid() bool          { return r.depositPaid }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) ConfirmationCode() string   { return r.confirmationCode }
func (r *Reservation) PaymentSessionID() *string  { return r.paymentSessionID }
func (r *Reservation) PaymentURL() *string        { return r.paymentURL }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time       { return r.updatedAt }

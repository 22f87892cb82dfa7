package reservation

import (
	"strings"

	"rental-booking/internal/domain/property"
	"rental-booking/internal/domain/user"
	"rental-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type Factory struct {
	PriceCalculator PriceCalculator
	NewCode         CodeGenerator
}

func NewFactory(priceCalculator PriceCalculator, newCode CodeGenerator) *Factory {
	if newCode == nil {
		newCode = NewConfirmationCode
	}
	return &Factory{
		PriceCalculator: priceCalculator,
		NewCode:         newCode,
	}
}

type Request struct {
	Stay            DateRange
	NumberOfGuests  int
	SpecialRequests *string
	GuestEmail      user.Email
	UserID          *uuid.UUID
}

// CreateReservation prices a PENDING reservation for prop after checking capacity and
// the active ranges already held on it.
func (f *Factory) CreateReservation(prop *property.Property, active []DateRange, req Request) (*Reservation, error) {
	if req.NumberOfGuests < 1 {
		return nil, ErrInvalidGuestCount
	}
	if !prop.Fits(req.NumberOfGuests) {
		return nil, ErrExceedsCapacity
	}
	if !IsAvailable(prop.IsAvailable(), active, req.Stay) {
		return nil, ErrNotAvailable
	}

	quote := f.PriceCalculator.Quote(prop.PricePerNight(), req.Stay)

	code, err := f.NewCode()
	if err != nil {
		return nil, errs.Wrap(err, "generate confirmation code")
	}

	var requests *string
	if req.SpecialRequests != nil {
		if v := strings.TrimSpace(*req.SpecialRequests); v != "" {
			requests = &v
		}
	}

	return &Reservation{
		id:               uuid.New(),
		propertyID:       prop.ID(),
		userID:           req.UserID,
		stay:             req.Stay,
		numberOfGuests:   req.NumberOfGuests,
		specialRequests:  requests,
		guestEmail:       req.GuestEmail,
		totalPrice:       quote.Total,
		depositAmount:    quote.Deposit,
		status:           StatusPending,
		confirmationCode: code,
	}, nil
}

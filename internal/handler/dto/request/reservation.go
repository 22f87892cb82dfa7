package request

import (
	"strings"

	"rental-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	PropertyID      uuid.UUID `json:"propertyId" binding:"required"`
	StartDate       *Date     `json:"startDate" binding:"required"`
	EndDate         *Date     `json:"endDate" binding:"required"`
	NumberOfGuests  int       `json:"numberOfGuests" binding:"required,min=1"`
	SpecialRequests *string   `json:"specialRequests" binding:"omitempty,max=2000"`
	GuestEmail      string    `json:"guestEmail" binding:"required,email"`
	GuestFirstName  *string   `json:"guestFirstName"`
	GuestLastName   *string   `json:"guestLastName"`
	FrontendURL     string    `json:"frontendUrl" binding:"omitempty,url"`
}

func (r *CreateReservationRequest) ToInput(userID *uuid.UUID, idempotencyKey *uuid.UUID) commands.CreateReservationInput {
	var special *string
	if r.SpecialRequests != nil {
		if s := strings.TrimSpace(*r.SpecialRequests); s != "" {
			special = &s
		}
	}

	return commands.CreateReservationInput{
		PropertyID:      r.PropertyID,
		StartDate:       r.StartDate.Value(),
		EndDate:         r.EndDate.Value(),
		NumberOfGuests:  r.NumberOfGuests,
		SpecialRequests: special,
		GuestEmail:      strings.TrimSpace(r.GuestEmail),
		GuestFirstName:  r.GuestFirstName,
		GuestLastName:   r.GuestLastName,
		UserID:          userID,
		FrontendURL:     r.FrontendURL,
		IdempotencyKey:  idempotencyKey,
	}
}

type GuestLookupRequest struct {
	Email            string `json:"email" binding:"required,email"`
	ConfirmationCode string `json:"confirmationCode" binding:"required,notblank"`
}

type CancelReservationRequest struct {
	ConfirmationCode *string `json:"confirmationCode"`
}

func (r *CancelReservationRequest) Code() string {
	if r == nil || r.ConfirmationCode == nil {
		return ""
	}
	return strings.TrimSpace(*r.ConfirmationCode)
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,reservation_status"`
}

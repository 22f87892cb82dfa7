package response

import (
	"time"

	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserSummaryResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

type PropertySummaryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ReservationResponse struct {
	ID               uuid.UUID               `json:"id"`
	PropertyID       uuid.UUID               `json:"propertyId"`
	Property         PropertySummaryResponse `json:"property"`
	UserID           *uuid.UUID              `json:"userId"`
	User             *UserSummaryResponse    `json:"user,omitempty"`
	StartDate        time.Time               `json:"startDate"`
	EndDate          time.Time               `json:"endDate"`
	NumberOfGuests   int                     `json:"numberOfGuests"`
	SpecialRequests  *string                 `json:"specialRequests"`
	GuestEmail       string                  `json:"guestEmail"`
	TotalPrice       float64                 `json:"totalPrice"`
	DepositAmount    float64                 `json:"depositAmount"`
	DepositPaid      bool                    `json:"depositPaid"`
	Status           string                  `json:"status"`
	ConfirmationCode string                  `json:"confirmationCode"`
	PaymentSessionID *string                 `json:"paymentSessionId,omitempty"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

type CreateReservationResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	PaymentURL  string               `json:"paymentUrl"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	out := ReservationResponse{
		ID:               v.ID,
		PropertyID:       v.PropertyID,
		Property:         PropertySummaryResponse{ID: v.PropertyID, Name: v.PropertyName},
		UserID:           v.UserID,
		StartDate:        v.StartDate,
		EndDate:          v.EndDate,
		NumberOfGuests:   v.NumberOfGuests,
		SpecialRequests:  v.SpecialRequests,
		GuestEmail:       v.GuestEmail,
		TotalPrice:       centsToAmount(v.TotalPriceCents),
		DepositAmount:    centsToAmount(v.DepositAmountCents),
		DepositPaid:      v.DepositPaid,
		Status:           v.Status,
		ConfirmationCode: v.ConfirmationCode,
		PaymentSessionID: v.PaymentSessionID,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
	if v.User != nil {
		out.User = &UserSummaryResponse{
			ID:        v.User.ID,
			FirstName: v.User.FirstName,
			LastName:  v.User.LastName,
			Email:     v.User.Email,
		}
	}
	return &out
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReservationView(v)
	}
	return out
}

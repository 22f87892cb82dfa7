package request

import "github.com/google/uuid"

type CreatePaymentSessionRequest struct {
	ReservationID uuid.UUID `json:"reservationId" binding:"required"`
	FrontendURL   string    `json:"frontendUrl" binding:"omitempty,url"`
}

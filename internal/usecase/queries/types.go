package queries

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// PropertyView represents read-optimized property data
type PropertyView struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Capacity           int       `json:"capacity"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	Images             []string  `json:"images"`
	Amenities          []string  `json:"amenities"`
	IsAvailable        bool      `json:"is_available"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type DateRangeView struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// UserSummary is the owner block attached to reservations in admin listings
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// ReservationView represents read-optimized reservation data joined with its property
type ReservationView struct {
	ID                 uuid.UUID    `json:"id"`
	PropertyID         uuid.UUID    `json:"property_id"`
	PropertyName       string       `json:"property_name"`
	UserID             *uuid.UUID   `json:"user_id,omitempty"`
	User               *UserSummary `json:"user,omitempty"`
	StartDate          time.Time    `json:"start_date"`
	EndDate            time.Time    `json:"end_date"`
	NumberOfGuests     int          `json:"number_of_guests"`
	SpecialRequests    *string      `json:"special_requests,omitempty"`
	GuestEmail         string       `json:"guest_email"`
	TotalPriceCents    int64        `json:"total_price_cents"`
	DepositAmountCents int64        `json:"deposit_amount_cents"`
	DepositPaid        bool         `json:"deposit_paid"`
	Status             string       `json:"status"`
	ConfirmationCode   string       `json:"confirmation_code"`
	PaymentSessionID   *string      `json:"payment_session_id,omitempty"`
	PaymentURL         *string      `json:"payment_url,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// IsOwnedBy reports whether userID owns the reservation.
func (v *ReservationView) IsOwnedBy(userID uuid.UUID) bool {
	return v.UserID != nil && *v.UserID == userID
}

// UserView represents read-optimized user data with authorization info
type UserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	Role        string    `json:"role"`
	IsGuest     bool      `json:"is_guest"`
	CreatedAt   time.Time `json:"created_at"`
}

type SiteConfigView struct {
	SinglePropertyMode bool       `json:"single_property_mode"`
	MainPropertyID     *uuid.UUID `json:"main_property_id,omitempty"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

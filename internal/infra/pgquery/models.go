package pgquery

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Property struct {
	ID                 uuid.UUID          `db:"id"`
	Name               string             `db:"name"`
	Description        string             `db:"description"`
	Capacity           int32              `db:"capacity"`
	PricePerNightCents int64              `db:"price_per_night_cents"`
	Images             []string           `db:"images"`
	Amenities          []string           `db:"amenities"`
	IsAvailable        bool               `db:"is_available"`
	CreatedAt          pgtype.Timestamptz `db:"created_at"`
	UpdatedAt          pgtype.Timestamptz `db:"updated_at"`
}

type User struct {
	ID           uuid.UUID          `db:"id"`
	Email        string             `db:"email"`
	FirstName    string             `db:"first_name"`
	LastName     string             `db:"last_name"`
	PhoneNumber  pgtype.Text        `db:"phone_number"`
	PasswordHash pgtype.Text        `db:"password_hash"`
	Role         string             `db:"role"`
	CreatedAt    pgtype.Timestamptz `db:"created_at"`
	UpdatedAt    pgtype.Timestamptz `db:"updated_at"`
}

type Reservation struct {
	ID                 uuid.UUID          `db:"id"`
	PropertyID         uuid.UUID          `db:"property_id"`
	UserID             pgtype.UUID        `db:"user_id"`
	StartDate          pgtype.Timestamptz `db:"start_date"`
	EndDate            pgtype.Timestamptz `db:"end_date"`
	NumberOfGuests     int32              `db:"number_of_guests"`
	SpecialRequests    pgtype.Text        `db:"special_requests"`
	GuestEmail         string             `db:"guest_email"`
	TotalPriceCents    int64              `db:"total_price_cents"`
	DepositAmountCents int64              `db:"deposit_amount_cents"`
	DepositPaid        bool               `db:"deposit_paid"`
	Status             string             `db:"status"`
	ConfirmationCode   string             `db:"confirmation_code"`
	PaymentSessionID   pgtype.Text        `db:"payment_session_id"`
	PaymentURL         pgtype.Text        `db:"payment_url"`
	CreatedAt          pgtype.Timestamptz `db:"created_at"`
	UpdatedAt          pgtype.Timestamptz `db:"updated_at"`
}

// ReservationWithRefs is a reservation joined with its property and owning user.
type ReservationWithRefs struct {
	Reservation
	PropertyName  string      `db:"property_name"`
	UserFirstName pgtype.Text `db:"user_first_name"`
	UserLastName  pgtype.Text `db:"user_last_name"`
	UserEmail     pgtype.Text `db:"user_email"`
}

type ReservationRange struct {
	StartDate pgtype.Timestamptz `db:"start_date"`
	EndDate   pgtype.Timestamptz `db:"end_date"`
}

type SiteConfig struct {
	ID                 string             `db:"id"`
	SinglePropertyMode bool               `db:"single_property_mode"`
	MainPropertyID     pgtype.UUID        `db:"main_property_id"`
	UpdatedAt          pgtype.Timestamptz `db:"updated_at"`
}

type IdempotencyKey struct {
	Key                 uuid.UUID          `db:"key"`
	Subject             string             `db:"subject"`
	Endpoint            string             `db:"endpoint"`
	RequestHash         string             `db:"request_hash"`
	Status              string             `db:"status"`
	ResultReservationID pgtype.UUID        `db:"result_reservation_id"`
	CreatedAt           pgtype.Timestamptz `db:"created_at"`
	ExpiresAt           pgtype.Timestamptz `db:"expires_at"`
}

type NotificationJob struct {
	ID        uuid.UUID          `db:"id"`
	Kind      string             `db:"kind"`
	Topic     string             `db:"topic"`
	Payload   []byte             `db:"payload"`
	RunAt     pgtype.Timestamptz `db:"run_at"`
	Attempts  int32              `db:"attempts"`
	Status    string             `db:"status"`
	LastError pgtype.Text        `db:"last_error"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
	UpdatedAt pgtype.Timestamptz `db:"updated_at"`
}

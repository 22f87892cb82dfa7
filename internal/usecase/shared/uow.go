package shared

import (
	"context"
	"time"

	"rental-booking/internal/domain/property"
	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/siteconfig"
	"rental-booking/internal/domain/user"
	"rental-booking/internal/infra/pgquery"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/mock_uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Properties() PropertyRepository
	Reservations() ReservationRepository
	Users() UserRepository
	SiteConfig() SiteConfigRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() pgquery.DBTX
}

// CommandReads loads aggregates for write paths. Inside a Tx they read through the transaction.
type CommandReads interface {
	PropertyByID(ctx context.Context, id uuid.UUID) (*property.Property, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// ReservationByIDForUpdate locks the row until the transaction ends.
	ReservationByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ReservationBySessionForUpdate(ctx context.Context, sessionID string) (*reservation.Reservation, error)
	ActiveRanges(ctx context.Context, propertyID uuid.UUID) ([]reservation.DateRange, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserByEmail(ctx context.Context, email user.Email) (*user.User, error)
	SiteConfig(ctx context.Context) (*siteconfig.SiteConfig, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID, subject string) (*IdempotencyRecord, error)
}

type PropertyRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, p *property.Property) (*property.Property, error)
	Update(ctx context.Context, tx pgquery.DBTX, p *property.Property) (*property.Property, error)
	Delete(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) error
	CountActiveReservations(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, res *reservation.Reservation) (*reservation.Reservation, error)
	// Save persists status, deposit and payment session fields.
	Save(ctx context.Context, tx pgquery.DBTX, res *reservation.Reservation) (*reservation.Reservation, error)
	ExpireStalePending(ctx context.Context, tx pgquery.DBTX, createdBefore time.Time) ([]*reservation.Reservation, error)
	CompleteFinished(ctx context.Context, tx pgquery.DBTX, now time.Time) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, u *user.User) (*user.User, error)
	SaveProfile(ctx context.Context, tx pgquery.DBTX, u *user.User) (*user.User, error)
}

type SiteConfigRepository interface {
	Save(ctx context.Context, tx pgquery.DBTX, cfg *siteconfig.SiteConfig) (*siteconfig.SiteConfig, error)
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key is already taken for the subject.
	TryInsert(ctx context.Context, tx pgquery.DBTX, claim IdempotencyClaim) (bool, error)
	// Reclaim restarts an expired key and reports false while it is still live.
	Reclaim(ctx context.Context, tx pgquery.DBTX, claim IdempotencyClaim) (bool, error)
	Complete(ctx context.Context, tx pgquery.DBTX, key uuid.UUID, subject string, reservationID uuid.UUID) error
	Release(ctx context.Context, tx pgquery.DBTX, key uuid.UUID, subject string) error
	DeleteExpired(ctx context.Context, tx pgquery.DBTX, now time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx pgquery.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx pgquery.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) error
	// MarkFailed requeues the job at retryAt, or fails it for good when retryAt is nil.
	MarkFailed(ctx context.Context, tx pgquery.DBTX, id uuid.UUID, lastError string, retryAt *time.Time) error
}

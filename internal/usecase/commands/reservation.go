package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/user"
	"rental-booking/internal/infra"
	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/queries"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/mock_reservation.go -package=commandsmock

const (
	createReservationEndpoint = "POST /api/reservations"
	idempotencyTTL            = 24 * time.Hour
)

var (
	ErrIdempotencyInProgress = errs.Define("A request with this Idempotency-Key is still being processed", errs.ErrConflict)
	ErrIdempotencyKeyReused  = errs.Define("Idempotency-Key was already used for a different request", errs.ErrConflict)
	ErrReservationForbidden  = errs.Define("You are not allowed to access this reservation", errs.ErrForbidden)
	ErrPaymentSessionFailed  = errs.Define("Could not open the payment session; the reservation was cancelled", errs.ErrUpstream)
)

type CreateReservationInput struct {
	PropertyID      uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	NumberOfGuests  int
	SpecialRequests *string
	GuestEmail      string
	GuestFirstName  *string
	GuestLastName   *string
	// UserID is set when the caller is authenticated.
	UserID         *uuid.UUID
	FrontendURL    string
	IdempotencyKey *uuid.UUID
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	PaymentURL  string
	IsReplayed  bool
}

// Actor is whoever triggers a reservation change. A zero Actor is an anonymous caller.
type Actor struct {
	UserID *uuid.UUID
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error)
	// Cancel is allowed to admins, the owning user, or anyone presenting the confirmation code.
	Cancel(ctx context.Context, id uuid.UUID, actor Actor, confirmationCode string) (*queries.ReservationView, error)
	// OverrideStatus writes any valid status regardless of the current one.
	OverrideStatus(ctx context.Context, id uuid.UUID, status string) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	factory            *reservation.Factory
	payments           PaymentCommands
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
	logger             *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	payments PaymentCommands,
	reservationQueries queries.ReservationQueries,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		factory:            factory,
		payments:           payments,
		reservationQueries: reservationQueries,
		clock:              clk,
		logger:             logger,
	}
}

func (r *reservationCommandsImpl) Create(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error) {
	req, err := in.toRequest()
	if err != nil {
		return nil, err
	}

	var claim *shared.IdempotencyClaim
	if in.IdempotencyKey != nil {
		c := shared.IdempotencyClaim{
			Key:         *in.IdempotencyKey,
			Subject:     idempotencySubject(in.UserID, req.GuestEmail),
			Endpoint:    createReservationEndpoint,
			RequestHash: hashCreateInput(in),
			ExpiresAt:   r.clock.Now().Add(idempotencyTTL),
		}
		replayed, err := r.claimIdempotency(ctx, c)
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			return replayed, nil
		}
		claim = &c
	}

	saved, err := r.persist(ctx, in, req)
	if err != nil {
		if claim != nil {
			r.releaseIdempotency(ctx, *claim)
		}
		return nil, err
	}

	session, err := r.payments.OpenSession(ctx, saved.ID(), in.FrontendURL)
	if err != nil {
		r.compensate(ctx, saved.ID(), claim, err)
		return nil, ErrPaymentSessionFailed
	}
	// The key stays processing until the payer has a checkout URL, so a retry during
	// OpenSession gets 409 instead of a replay without one.
	if claim != nil {
		r.completeIdempotency(ctx, *claim, saved.ID())
	}

	view, err := r.reservationQueries.GetByID(ctx, saved.ID())
	if err != nil {
		return nil, err
	}
	return &CreateReservationResult{
		Reservation: view,
		PaymentURL:  session.URL,
	}, nil
}

func (in CreateReservationInput) toRequest() (reservation.Request, error) {
	email, err := user.NewEmail(in.GuestEmail)
	if err != nil {
		return reservation.Request{}, err
	}
	stay, err := reservation.NewDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return reservation.Request{}, err
	}
	if in.NumberOfGuests < 1 {
		return reservation.Request{}, reservation.ErrInvalidGuestCount
	}

	return reservation.Request{
		Stay:            stay,
		NumberOfGuests:  in.NumberOfGuests,
		SpecialRequests: in.SpecialRequests,
		GuestEmail:      email,
		UserID:          in.UserID,
	}, nil
}

// persist runs the availability check and the insert in one transaction. The exclusion
// constraint turns a lost race into the same conflict the check reports.
func (r *reservationCommandsImpl) persist(
	ctx context.Context,
	in CreateReservationInput,
	req reservation.Request,
) (*reservation.Reservation, error) {
	var saved *reservation.Reservation
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		prop, err := tx.Reads().PropertyByID(ctx, in.PropertyID)
		if err != nil {
			return mapPropertyNotFound(err)
		}
		active, err := tx.Reads().ActiveRanges(ctx, prop.ID())
		if err != nil {
			return err
		}

		owner, err := r.resolveOwner(ctx, tx, in, req.GuestEmail)
		if err != nil {
			return err
		}
		req.UserID = owner

		res, err := r.factory.CreateReservation(prop, active, req)
		if err != nil {
			return err
		}

		saved, err = tx.Reservations().Create(ctx, tx.DB(), res)
		if infra.IsKind(err, infra.KindExclusionViolated) {
			return reservation.ErrNotAvailable
		}
		if err != nil {
			return err
		}

		return enqueueReservationNotice(ctx, tx, TopicReservationCreated, saved, r.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// resolveOwner picks the account a new reservation belongs to: the caller, an existing
// account with the guest email, or a new guest shadow account when a full name is given.
func (r *reservationCommandsImpl) resolveOwner(ctx context.Context, tx shared.Tx, in CreateReservationInput, email user.Email) (*uuid.UUID, error) {
	if in.UserID != nil {
		return in.UserID, nil
	}

	existing, err := tx.Reads().UserByEmail(ctx, email)
	if err == nil {
		id := existing.ID()
		return &id, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	first, last := trimmed(in.GuestFirstName), trimmed(in.GuestLastName)
	if first == "" || last == "" {
		return nil, nil
	}

	guest, err := user.NewGuestUser(email, user.Profile{FirstName: first, LastName: last})
	if err != nil {
		return nil, err
	}
	created, err := tx.Users().Create(ctx, tx.DB(), guest)
	if err != nil {
		return nil, err
	}
	id := created.ID()
	return &id, nil
}

// compensate cancels a reservation whose checkout could not be opened so its dates are
// released, and frees the idempotency key for a retry.
func (r *reservationCommandsImpl) compensate(ctx context.Context, id uuid.UUID, claim *shared.IdempotencyClaim, cause error) {
	r.logger.Error("payment session failed, cancelling reservation",
		"reservation_id", id,
		"error", cause.Error())

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := res.Cancel(); err != nil {
			return err
		}
		if _, err := tx.Reservations().Save(ctx, tx.DB(), res); err != nil {
			return err
		}
		if claim != nil {
			return tx.Idempotency().Release(ctx, tx.DB(), claim.Key, claim.Subject)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("failed to cancel reservation after payment failure",
			"reservation_id", id,
			"error", err.Error())
	}
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, actor Actor, confirmationCode string) (*queries.ReservationView, error) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationByIDForUpdate(ctx, id)
		if err != nil {
			return mapReservationNotFound(err)
		}
		if !canManage(res, actor, confirmationCode) {
			return ErrReservationForbidden
		}

		if err := res.Cancel(); err != nil {
			return err
		}
		saved, err := tx.Reservations().Save(ctx, tx.DB(), res)
		if err != nil {
			return err
		}
		return enqueueReservationNotice(ctx, tx, TopicReservationCancelled, saved, r.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	return r.reservationQueries.GetByID(ctx, id)
}

func (r *reservationCommandsImpl) OverrideStatus(ctx context.Context, id uuid.UUID, status string) (*queries.ReservationView, error) {
	next, err := reservation.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationByIDForUpdate(ctx, id)
		if err != nil {
			return mapReservationNotFound(err)
		}
		previous := res.Status()
		if err := res.OverrideStatus(next); err != nil {
			return err
		}

		_, err = tx.Reservations().Save(ctx, tx.DB(), res)
		if infra.IsKind(err, infra.KindExclusionViolated) {
			return reservation.ErrNotAvailable
		}
		if err != nil {
			return err
		}

		r.logger.Info("reservation status overridden",
			"reservation_id", id,
			"from", previous.String(),
			"to", next.String())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.reservationQueries.GetByID(ctx, id)
}

func canManage(res *reservation.Reservation, actor Actor, confirmationCode string) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.UserID != nil && res.IsOwnedBy(*actor.UserID) {
		return true
	}
	return res.MatchesCode(confirmationCode)
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

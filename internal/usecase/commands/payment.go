package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/infra"
	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/mock_payment.go -package=commandsmock

const EventCheckoutSessionCompleted = "checkout.session.completed"

// Hosted checkout accepts an expiry between 30 minutes and 24 hours after creation.
const (
	MinCheckoutWindow = 30 * time.Minute
	MaxCheckoutWindow = 24 * time.Hour
)

var (
	ErrPaymentProvider     = errs.Define("Payment provider error", errs.ErrUpstream)
	ErrInvalidSignature    = errs.Define("invalid signature", errs.ErrUpstream)
	ErrPaymentWindowClosed = errs.Define("The payment window for this reservation has closed", errs.ErrConflict)
)

type CheckoutRequest struct {
	ReservationID uuid.UUID
	AmountCents   int64
	Currency      string
	PayerEmail    string
	PropertyName  string
	Description   string
	SuccessURL    string
	CancelURL     string
	// ExpiresAt is when the pending reservation gets cancelled; the session must not outlive it.
	ExpiresAt time.Time
}

type CheckoutSession struct {
	ID  string
	URL string
}

type SessionStatus struct {
	Paid          bool
	ReservationID *uuid.UUID
}

type WebhookEvent struct {
	Type      string
	SessionID string
	Paid      bool
}

// PaymentGateway is the port to the hosted checkout provider.
type PaymentGateway interface {
	OpenSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	SessionStatus(ctx context.Context, sessionID string) (*SessionStatus, error)
	VerifyEvent(payload []byte, signature string) (*WebhookEvent, error)
}

type PaymentSettings struct {
	Currency string
	// FrontendURL is used when a caller does not say where to send the payer back.
	FrontendURL string
	// PendingTTL is how long a reservation may await payment before it is cancelled.
	PendingTTL time.Duration
}

type PaymentSession struct {
	URL       string
	SessionID string
}

type PaymentCommands interface {
	OpenSession(ctx context.Context, reservationID uuid.UUID, frontendURL string) (*PaymentSession, error)
	CheckStatus(ctx context.Context, sessionID string) (bool, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	settings PaymentSettings
	clock    clock.Clock
	logger   *slog.Logger
}

func NewPaymentCommands(uow shared.UnitOfWork, gateway PaymentGateway, settings PaymentSettings, clk clock.Clock, logger *slog.Logger) PaymentCommands {
	return &paymentCommandsImpl{
		uow:      uow,
		gateway:  gateway,
		settings: settings,
		clock:    clk,
		logger:   logger,
	}
}

// OpenSession opens a deposit checkout for a reservation still awaiting payment and stores
// the session on it.
func (p *paymentCommandsImpl) OpenSession(ctx context.Context, reservationID uuid.UUID, frontendURL string) (*PaymentSession, error) {
	reads := p.uow.CommandReads()
	res, err := reads.ReservationByID(ctx, reservationID)
	if err != nil {
		return nil, mapReservationNotFound(err)
	}
	if !res.AwaitsPayment() {
		return nil, reservation.ErrNotPayable
	}
	prop, err := reads.PropertyByID(ctx, res.PropertyID())
	if err != nil {
		return nil, mapPropertyNotFound(err)
	}

	expiresAt, err := p.checkoutExpiry(res.CreatedAt())
	if err != nil {
		return nil, err
	}

	base := strings.TrimRight(strings.TrimSpace(frontendURL), "/")
	if base == "" {
		base = strings.TrimRight(p.settings.FrontendURL, "/")
	}

	session, err := p.gateway.OpenSession(ctx, CheckoutRequest{
		ReservationID: res.ID(),
		AmountCents:   res.DepositAmount().Cents(),
		Currency:      p.settings.Currency,
		PayerEmail:    res.GuestEmail().Value(),
		PropertyName:  prop.Name(),
		Description:   "Reservation " + res.Stay().String(),
		SuccessURL:    fmt.Sprintf("%s/reservation/confirmation/%s", base, res.ID()),
		CancelURL:     fmt.Sprintf("%s/reservation/cancel/%s", base, res.ID()),
		ExpiresAt:     expiresAt,
	})
	if err != nil {
		p.logger.Error("failed to open checkout session",
			"reservation_id", res.ID(),
			"error", err.Error())
		return nil, ErrPaymentProvider
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Reads().ReservationByIDForUpdate(ctx, res.ID())
		if err != nil {
			return mapReservationNotFound(err)
		}
		if err := locked.AttachPaymentSession(session.ID, session.URL); err != nil {
			return err
		}
		_, err = tx.Reservations().Save(ctx, tx.DB(), locked)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &PaymentSession{
		URL:       session.URL,
		SessionID: session.ID,
	}, nil
}

// checkoutExpiry ties the session to the pending deadline of the reservation. A deadline
// closer than the provider minimum cannot be honoured, so no session is opened.
func (p *paymentCommandsImpl) checkoutExpiry(createdAt time.Time) (time.Time, error) {
	now := p.clock.Now()
	deadline := createdAt.Add(p.settings.PendingTTL)
	if deadline.Sub(now) < MinCheckoutWindow {
		return time.Time{}, ErrPaymentWindowClosed
	}
	if limit := now.Add(MaxCheckoutWindow); deadline.After(limit) {
		deadline = limit
	}
	return deadline, nil
}

// CheckStatus asks the provider and confirms the reservation once the session is paid.
func (p *paymentCommandsImpl) CheckStatus(ctx context.Context, sessionID string) (bool, error) {
	status, err := p.gateway.SessionStatus(ctx, sessionID)
	if err != nil {
		p.logger.Error("failed to retrieve checkout session",
			"session_id", sessionID,
			"error", err.Error())
		return false, ErrPaymentProvider
	}
	if !status.Paid {
		return false, nil
	}

	if err := p.confirmBySession(ctx, sessionID); err != nil {
		return false, err
	}
	return true, nil
}

func (p *paymentCommandsImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := p.gateway.VerifyEvent(payload, signature)
	if err != nil {
		p.logger.Warn("rejected payment webhook", "error", err.Error())
		return ErrInvalidSignature
	}

	if event.Type != EventCheckoutSessionCompleted || !event.Paid {
		p.logger.Debug("ignoring payment webhook", "type", event.Type, "session_id", event.SessionID)
		return nil
	}

	err = p.confirmBySession(ctx, event.SessionID)
	if errs.Is(err, reservation.ErrNotFound) {
		// Sessions opened outside this system are acknowledged so the provider stops retrying
		p.logger.Warn("payment webhook for unknown session", "session_id", event.SessionID)
		return nil
	}
	return err
}

// confirmBySession is safe to run any number of times for the same session: only the
// first call changes the reservation or enqueues the confirmation email.
func (p *paymentCommandsImpl) confirmBySession(ctx context.Context, sessionID string) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationBySessionForUpdate(ctx, sessionID)
		if err != nil {
			return mapReservationNotFound(err)
		}

		outcome := res.RecordDepositPayment()
		if !outcome.Changed() {
			return nil
		}
		if _, err := tx.Reservations().Save(ctx, tx.DB(), res); err != nil {
			return err
		}

		switch outcome {
		case reservation.PaymentConfirmed:
			return enqueueReservationNotice(ctx, tx, TopicReservationConfirmed, res, p.clock.Now())
		case reservation.PaymentAfterCancel:
			p.logger.Warn("deposit paid for a cancelled reservation, refund required",
				"reservation_id", res.ID(),
				"session_id", sessionID,
				"deposit_cents", res.DepositAmount().Cents())
		}
		return nil
	})
}

func mapReservationNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return reservation.ErrNotFound
	}
	return err
}

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/commands/mock_notification.go -package=commandsmock

const (
	TopicReservationCreated   = "reservation_created"
	TopicReservationConfirmed = "reservation_confirmed"
	TopicReservationCancelled = "reservation_cancelled"

	notificationKindEmail = "email"
	maxDeliveryAttempts   = 5
	retryBackoff          = 5 * time.Minute
)

// ReservationNotice is the outbox payload describing the reservation at the time of the change.
type ReservationNotice struct {
	ReservationID      uuid.UUID `json:"reservation_id"`
	PropertyID         uuid.UUID `json:"property_id"`
	ConfirmationCode   string    `json:"confirmation_code"`
	GuestEmail         string    `json:"guest_email"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	NumberOfGuests     int       `json:"number_of_guests"`
	TotalPriceCents    int64     `json:"total_price_cents"`
	DepositAmountCents int64     `json:"deposit_amount_cents"`
	Status             string    `json:"status"`
}

type MailMessage struct {
	To        string
	Subject   string
	PlainText string
}

// Mailer delivers rendered notification emails.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}

type DispatchResult struct {
	Sent   int
	Failed int
}

type NotificationCommands interface {
	// DispatchPending sends up to limit due jobs. A job is failed for good after its fifth attempt.
	DispatchPending(ctx context.Context, limit int32) (DispatchResult, error)
}

type notificationCommandsImpl struct {
	uow    shared.UnitOfWork
	mailer Mailer
	clock  clock.Clock
	logger *slog.Logger
}

func NewNotificationCommands(uow shared.UnitOfWork, mailer Mailer, clk clock.Clock, logger *slog.Logger) NotificationCommands {
	return &notificationCommandsImpl{
		uow:    uow,
		mailer: mailer,
		clock:  clk,
		logger: logger,
	}
}

// Jobs stay locked by the claiming transaction while they are delivered.
func (n *notificationCommandsImpl) DispatchPending(ctx context.Context, limit int32) (DispatchResult, error) {
	var result DispatchResult
	err := n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = DispatchResult{}
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), n.clock.Now(), limit)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			sendErr := n.deliver(ctx, job)
			if sendErr == nil {
				if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
					return err
				}
				result.Sent++
				continue
			}

			var retryAt *time.Time
			if job.Attempts < maxDeliveryAttempts {
				at := n.clock.Now().Add(retryBackoff)
				retryAt = &at
			} else {
				result.Failed++
			}
			n.logger.Warn("notification delivery failed",
				"job_id", job.ID,
				"topic", job.Topic,
				"attempts", job.Attempts,
				"error", sendErr.Error())
			if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, sendErr.Error(), retryAt); err != nil {
				return err
			}
		}
		return nil
	})
	return result, err
}

func (n *notificationCommandsImpl) deliver(ctx context.Context, job shared.NotificationJob) error {
	if job.Kind != notificationKindEmail {
		return errs.Newf("unsupported notification kind %q", job.Kind)
	}

	var notice ReservationNotice
	if err := json.Unmarshal(job.Payload, &notice); err != nil {
		return errs.Wrap(err, "decode notification payload")
	}

	msg, err := renderReservationEmail(job.Topic, notice)
	if err != nil {
		return err
	}
	return n.mailer.Send(ctx, msg)
}

func renderReservationEmail(topic string, notice ReservationNotice) (MailMessage, error) {
	stay := fmt.Sprintf("%s to %s", notice.StartDate.Format(time.DateOnly), notice.EndDate.Format(time.DateOnly))

	var subject, body string
	switch topic {
	case TopicReservationCreated:
		subject = "Your reservation request " + notice.ConfirmationCode
		body = fmt.Sprintf(
			"We received your reservation for %s (%d guests).\nTotal: %s EUR, deposit due: %s EUR.\nConfirmation code: %s\n",
			stay, notice.NumberOfGuests, formatCents(notice.TotalPriceCents), formatCents(notice.DepositAmountCents), notice.ConfirmationCode)
	case TopicReservationConfirmed:
		subject = "Reservation confirmed " + notice.ConfirmationCode
		body = fmt.Sprintf(
			"Your deposit of %s EUR was received and your stay %s is confirmed.\nConfirmation code: %s\n",
			formatCents(notice.DepositAmountCents), stay, notice.ConfirmationCode)
	case TopicReservationCancelled:
		subject = "Reservation cancelled " + notice.ConfirmationCode
		body = fmt.Sprintf("Your reservation for %s has been cancelled.\nConfirmation code: %s\n", stay, notice.ConfirmationCode)
	default:
		return MailMessage{}, errs.Newf("unknown notification topic %q", topic)
	}

	return MailMessage{
		To:        notice.GuestEmail,
		Subject:   subject,
		PlainText: body,
	}, nil
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func enqueueReservationNotice(ctx context.Context, tx shared.Tx, topic string, res *reservation.Reservation, now time.Time) error {
	payload, err := json.Marshal(ReservationNotice{
		ReservationID:      res.ID(),
		PropertyID:         res.PropertyID(),
		ConfirmationCode:   res.ConfirmationCode(),
		GuestEmail:         res.GuestEmail().Value(),
		StartDate:          res.Stay().Start(),
		EndDate:            res.Stay().End(),
		NumberOfGuests:     res.NumberOfGuests(),
		TotalPriceCents:    res.TotalPrice().Cents(),
		DepositAmountCents: res.DepositAmount().Cents(),
		Status:             res.Status().String(),
	})
	if err != nil {
		return errs.Wrap(err, "encode notification payload")
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), notificationKindEmail, topic, payload, now)
}

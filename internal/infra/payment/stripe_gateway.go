package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"rental-booking/internal/pkg/config"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

const metadataReservationID = "reservation_id"

// StripeGateway opens hosted checkout sessions and verifies webhook deliveries.
type StripeGateway struct {
	sessions      *session.Client
	webhookSecret string
	logger        *slog.Logger
}

func NewStripeGateway(cfg config.StripeConfig, logger *slog.Logger) *StripeGateway {
	return NewStripeGatewayWithBackend(cfg, stripe.GetBackend(stripe.APIBackend), logger)
}

// NewStripeGatewayWithBackend lets tests point the client at a fake API server.
func NewStripeGatewayWithBackend(cfg config.StripeConfig, backend stripe.Backend, logger *slog.Logger) *StripeGateway {
	return &StripeGateway{
		sessions:      &session.Client{B: backend, Key: cfg.SecretKey},
		webhookSecret: cfg.WebhookSecret,
		logger:        logger,
	}
}

func (g *StripeGateway) OpenSession(ctx context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		// Card payments settle synchronously, so checkout.session.completed is the only
		// event HandleWebhook needs. Adding a delayed method also needs
		// checkout.session.async_payment_succeeded handled there.
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(strings.ToLower(req.Currency)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("Deposit for " + req.PropertyName),
						Description: stripe.String(req.Description),
					},
					UnitAmount: stripe.Int64(req.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(successURL(req.SuccessURL, req.ReservationID)),
		CancelURL:         stripe.String(req.CancelURL),
		CustomerEmail:     stripe.String(req.PayerEmail),
		ClientReferenceID: stripe.String(req.ReservationID.String()),
	}
	if !req.ExpiresAt.IsZero() {
		params.ExpiresAt = stripe.Int64(req.ExpiresAt.Unix())
	}
	params.Context = ctx
	params.AddMetadata(metadataReservationID, req.ReservationID.String())

	s, err := g.sessions.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "create stripe checkout session")
	}

	g.logger.Info("stripe checkout session created",
		"reservation_id", req.ReservationID,
		"session_id", s.ID,
		"amount_cents", req.AmountCents)

	return &commands.CheckoutSession{
		ID:  s.ID,
		URL: s.URL,
	}, nil
}

func (g *StripeGateway) SessionStatus(ctx context.Context, sessionID string) (*commands.SessionStatus, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.sessions.Get(sessionID, params)
	if err != nil {
		return nil, errs.Wrap(err, "retrieve stripe checkout session")
	}

	return &commands.SessionStatus{
		Paid:          s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		ReservationID: reservationIDOf(s),
	}, nil
}

// VerifyEvent checks the Stripe-Signature header. API version mismatches are tolerated
// because only the session id and payment status are read from the payload.
func (g *StripeGateway) VerifyEvent(payload []byte, signature string) (*commands.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, errs.Wrap(err, "verify stripe webhook")
	}

	out := &commands.WebhookEvent{Type: string(event.Type)}
	if !strings.HasPrefix(out.Type, "checkout.session.") || event.Data == nil {
		return out, nil
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		return nil, errs.Wrap(err, "decode checkout session event")
	}
	out.SessionID = s.ID
	out.Paid = s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid
	return out, nil
}

// successURL lets the confirmation page look the session up on return.
func successURL(base string, reservationID uuid.UUID) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%ssession_id={CHECKOUT_SESSION_ID}&reservation_id=%s", base, sep, reservationID)
}

func reservationIDOf(s *stripe.CheckoutSession) *uuid.UUID {
	raw := s.ClientReferenceID
	if raw == "" {
		raw = s.Metadata[metadataReservationID]
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

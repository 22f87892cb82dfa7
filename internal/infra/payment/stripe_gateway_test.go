//go:build unit

package payment_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"rental-booking/internal/infra/payment"
	"rental-booking/internal/pkg/config"
	"rental-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

const webhookSecret = "whsec_test_secret"

func testConfig() config.StripeConfig {
	return config.StripeConfig{SecretKey: "sk_test_dummy", WebhookSecret: webhookSecret, Currency: "eur"}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sign(payload []byte, secret string) string {
	timestamp := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write([]byte(fmt.Sprintf("%d.", timestamp)))
	_, _ = mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func eventPayload(t *testing.T, eventType string, object map[string]any) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"id":          "evt_test_1",
		"object":      "event",
		"api_version": stripe.APIVersion,
		"created":     time.Now().Unix(),
		"type":        eventType,
		"data":        map[string]any{"object": object},
	})
	require.NoError(t, err)
	return b
}

func TestStripeGateway_VerifyEvent(t *testing.T) {
	gateway := payment.NewStripeGateway(testConfig(), discardLogger())

	t.Run("支払い完了イベント", func(t *testing.T) {
		payload := eventPayload(t, "checkout.session.completed", map[string]any{
			"id":             "cs_test_1",
			"object":         "checkout.session",
			"payment_status": "paid",
		})

		event, err := gateway.VerifyEvent(payload, sign(payload, webhookSecret))

		require.NoError(t, err)
		assert.Equal(t, &commands.WebhookEvent{Type: "checkout.session.completed", SessionID: "cs_test_1", Paid: true}, event)
	})

	t.Run("未払いのセッション", func(t *testing.T) {
		payload := eventPayload(t, "checkout.session.completed", map[string]any{
			"id":             "cs_test_2",
			"object":         "checkout.session",
			"payment_status": "unpaid",
		})

		event, err := gateway.VerifyEvent(payload, sign(payload, webhookSecret))

		require.NoError(t, err)
		assert.False(t, event.Paid)
	})

	t.Run("対象外のイベントは種別のみ", func(t *testing.T) {
		payload := eventPayload(t, "charge.refunded", map[string]any{"id": "ch_1", "object": "charge"})

		event, err := gateway.VerifyEvent(payload, sign(payload, webhookSecret))

		require.NoError(t, err)
		assert.Equal(t, "charge.refunded", event.Type)
		assert.Empty(t, event.SessionID)
	})

	t.Run("署名不一致", func(t *testing.T) {
		payload := eventPayload(t, "checkout.session.completed", map[string]any{"id": "cs_test_3"})

		_, err := gateway.VerifyEvent(payload, sign(payload, "whsec_other"))

		require.Error(t, err)
	})
}

func newFakeStripe(t *testing.T, handler http.HandlerFunc) *payment.StripeGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(server.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return payment.NewStripeGatewayWithBackend(testConfig(), backend, discardLogger())
}

func TestStripeGateway_OpenSession(t *testing.T) {
	reservationID := uuid.New()
	expiresAt := time.Date(2026, time.May, 20, 12, 0, 0, 0, time.UTC)
	var form url.Values
	gateway := newFakeStripe(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_new","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_new"}`))
	})

	session, err := gateway.OpenSession(context.Background(), commands.CheckoutRequest{
		ReservationID: reservationID,
		AmountCents:   18000,
		Currency:      "EUR",
		PayerEmail:    "guest@example.com",
		PropertyName:  "Villa Azur",
		Description:   "2026-06-01 to 2026-06-04",
		SuccessURL:    "https://villa.example.com/reservation/confirmation/" + reservationID.String(),
		CancelURL:     "https://villa.example.com/reservation/cancel/" + reservationID.String(),
		ExpiresAt:     expiresAt,
	})

	require.NoError(t, err)
	assert.Equal(t, &commands.CheckoutSession{ID: "cs_test_new", URL: "https://checkout.stripe.com/c/pay/cs_test_new"}, session)
	assert.Equal(t, "18000", form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "eur", form.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "Deposit for Villa Azur", form.Get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, reservationID.String(), form.Get("client_reference_id"))
	assert.Equal(t, reservationID.String(), form.Get("metadata[reservation_id]"))
	assert.Contains(t, form.Get("success_url"), "session_id={CHECKOUT_SESSION_ID}")
	assert.Equal(t, "guest@example.com", form.Get("customer_email"))
	assert.Equal(t, fmt.Sprint(expiresAt.Unix()), form.Get("expires_at"))
	assert.Equal(t, "card", form.Get("payment_method_types[0]"))
}

func TestStripeGateway_OpenSessionWithoutExpiry(t *testing.T) {
	var form url.Values
	gateway := newFakeStripe(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_default","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_default"}`))
	})

	_, err := gateway.OpenSession(context.Background(), commands.CheckoutRequest{
		ReservationID: uuid.New(),
		AmountCents:   18000,
		Currency:      "eur",
		PayerEmail:    "guest@example.com",
		PropertyName:  "Villa Azur",
		SuccessURL:    "https://villa.example.com/ok",
		CancelURL:     "https://villa.example.com/cancel",
	})

	require.NoError(t, err)
	assert.False(t, form.Has("expires_at"))
}

func TestStripeGateway_SessionStatus(t *testing.T) {
	reservationID := uuid.New()

	t.Run("支払い済み", func(t *testing.T) {
		gateway := newFakeStripe(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/checkout/sessions/cs_test_paid", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = fmt.Fprintf(w, `{"id":"cs_test_paid","object":"checkout.session","payment_status":"paid","client_reference_id":%q}`, reservationID)
		})

		status, err := gateway.SessionStatus(context.Background(), "cs_test_paid")

		require.NoError(t, err)
		assert.True(t, status.Paid)
		require.NotNil(t, status.ReservationID)
		assert.Equal(t, reservationID, *status.ReservationID)
	})

	t.Run("APIエラー", func(t *testing.T) {
		gateway := newFakeStripe(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such checkout.session"}}`))
		})

		_, err := gateway.SessionStatus(context.Background(), "cs_missing")

		require.Error(t, err)
	})
}

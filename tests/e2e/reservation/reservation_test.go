//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"rental-booking/internal/handler/dto/response"
	"rental-booking/tests/common/authtest"
	"rental-booking/tests/common/dbtest"
	"rental-booking/tests/common/httptest"
	"rental-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	availabilityURL = "/api/property/check-availability"
	guestEmail      = "guest@example.com"
)

type reservationSuite struct {
	e2e.SharedSuite
	propertyID uuid.UUID
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.propertyID = dbtest.CreateTestProperty(s.T(), s.DB, "Villa Azur", 4, 10000)
}

func (s *reservationSuite) bookingBody(start, end string, guests int) map[string]any {
	return map[string]any{
		"propertyId":     s.propertyID,
		"startDate":      start,
		"endDate":        end,
		"numberOfGuests": guests,
		"guestEmail":     guestEmail,
	}
}

func (s *reservationSuite) book(start, end string) *response.CreateReservationResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.bookingBody(start, end, 2), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreateReservationResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotNil(t, created.Reservation)
	return &created
}

func (s *reservationSuite) available(start, end string) bool {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, availabilityURL, map[string]any{
		"propertyId": s.propertyID,
		"startDate":  start,
		"endDate":    end,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.AvailabilityResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res.IsAvailable
}

func (s *reservationSuite) byCode(code string) *response.ReservationResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/confirmation/"+code, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.ReservationResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return &res
}

func (s *reservationSuite) countRows(table string) int {
	var n int
	err := s.DB.QueryRow(s.T().Context(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(s.T(), err)
	return n
}

func (s *reservationSuite) TestBookingLifecycle() {
	s.Run("予約から入金確認、キャンセルまで", func() {
		t := s.T()

		created := s.book("2030-06-01", "2030-06-04")
		res := created.Reservation
		assert.Equal(t, "PENDING", res.Status)
		assert.InDelta(t, 300.0, res.TotalPrice, 0.001)
		assert.InDelta(t, 90.0, res.DepositAmount, 0.001)
		assert.Equal(t, guestEmail, res.GuestEmail)
		assert.Nil(t, res.UserID)
		assert.Len(t, res.ConfirmationCode, 10)
		require.NotNil(t, res.PaymentSessionID)
		assert.NotEmpty(t, created.PaymentURL)

		charged, ok := s.Payments.Request(*res.PaymentSessionID)
		require.True(t, ok)
		assert.Equal(t, int64(9000), charged.AmountCents)
		assert.Equal(t, res.ID, charged.ReservationID)
		assert.WithinDuration(t, res.CreatedAt.Add(s.Config.Jobs.PendingTTL), charged.ExpiresAt, time.Second)

		// overlapping and touching stays are both refused
		for _, dates := range [][2]string{{"2030-06-03", "2030-06-05"}, {"2030-06-04", "2030-06-06"}} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.bookingBody(dates[0], dates[1], 2), "")
			httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Property is not available for the selected dates")
		}
		assert.False(t, s.available("2030-06-02", "2030-06-03"))
		assert.True(t, s.available("2030-06-05", "2030-06-08"))

		s.Payments.MarkPaid(*res.PaymentSessionID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/payments/check/"+*res.PaymentSessionID, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var status response.PaymentStatusResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &status))
		assert.True(t, status.Paid)

		confirmed := s.byCode(res.ConfirmationCode)
		assert.Equal(t, "CONFIRMED", confirmed.Status)
		assert.True(t, confirmed.DepositPaid)

		// request email plus confirmation email
		assert.Equal(t, 2, s.countRows("notification_jobs"))

		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/%s/cancel", reservationsURL, res.ID),
			map[string]any{"confirmationCode": strings.ToLower(res.ConfirmationCode)}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var cancelled response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cancelled))
		assert.Equal(t, "CANCELLED", cancelled.Status)

		assert.True(t, s.available("2030-06-01", "2030-06-04"))
		s.book("2030-06-01", "2030-06-04")
	})
}

func (s *reservationSuite) TestWebhookConfirmsReservation() {
	s.Run("署名済みWebhookで確定し、再送は無視される", func() {
		t := s.T()

		res := s.book("2030-07-01", "2030-07-03").Reservation
		sessionID := *res.PaymentSessionID
		s.Payments.MarkPaid(sessionID)

		for range 2 {
			w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/payments/webhook",
				map[string]any{"id": "evt_test"}, map[string]string{"Stripe-Signature": sessionID})
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		assert.Equal(t, "CONFIRMED", s.byCode(res.ConfirmationCode).Status)
		assert.Equal(t, 2, s.countRows("notification_jobs"))
	})

	s.Run("署名が不正なWebhookは拒否される", func() {
		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/payments/webhook",
			map[string]any{"id": "evt_test"}, map[string]string{"Stripe-Signature": "cs_unknown"})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid signature")
	})
}

func (s *reservationSuite) TestIdempotentCreate() {
	s.Run("同じキーの再送は同じ予約を返す", func() {
		t := s.T()
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		body := s.bookingBody("2030-08-01", "2030-08-05", 2)

		first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, headers)
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
		second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, headers)
		require.Equal(t, http.StatusCreated, second.Code, second.Body.String())
		httptest.AssertHeaders(t, second, map[string]string{"Idempotent-Replayed": "true"})

		var a, b response.CreateReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, first.Body, &a))
		require.NoError(t, httptest.DecodeResponseBody(t, second.Body, &b))
		assert.Equal(t, a.Reservation.ID, b.Reservation.ID)
		assert.Equal(t, 1, s.countRows("reservations"))
	})

	s.Run("同じキーで内容が違えば拒否される", func() {
		t := s.T()
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL,
			s.bookingBody("2030-08-01", "2030-08-05", 2), headers)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL,
			s.bookingBody("2030-09-01", "2030-09-05", 2), headers)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		assert.Equal(t, 1, s.countRows("reservations"))
	})
}

func (s *reservationSuite) TestPaymentFailureReleasesDates() {
	s.Run("決済セッション作成失敗で日程が解放される", func() {
		t := s.T()
		s.Payments.FailNextSession()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.bookingBody("2030-06-10", "2030-06-12", 2), "")
		assert.Equal(t, http.StatusBadGateway, w.Code, w.Body.String())

		assert.True(t, s.available("2030-06-10", "2030-06-12"))
		s.book("2030-06-10", "2030-06-12")
	})
}

func (s *reservationSuite) TestCapacity() {
	s.Run("定員超過は拒否される", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, s.bookingBody("2030-06-10", "2030-06-12", 5), "")
		assert.Equal(s.T(), http.StatusBadRequest, w.Code, w.Body.String())
		assert.Equal(s.T(), 0, s.countRows("reservations"))
	})
}

func (s *reservationSuite) TestGuestLookup() {
	s.Run("メールアドレスと確認コードで照会できる", func() {
		t := s.T()
		res := s.book("2030-06-01", "2030-06-03").Reservation

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/guest", map[string]any{
			"email":            strings.ToUpper(guestEmail),
			"confirmationCode": strings.ToLower(res.ConfirmationCode),
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var found []response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &found))
		require.Len(t, found, 1)
		assert.Equal(t, res.ID, found[0].ID)
	})

	s.Run("別のメールアドレスでは見つからない", func() {
		t := s.T()
		res := s.book("2030-06-01", "2030-06-03").Reservation

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/guest", map[string]any{
			"email":            "someone@example.com",
			"confirmationCode": res.ConfirmationCode,
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "No reservation found")
	})
}

func (s *reservationSuite) TestSignedInBookings() {
	s.Run("ログインユーザーの予約は本人と管理者だけが参照できる", func() {
		t := s.T()
		userToken := authtest.CreateAndLogin(t, s.DB, s.Router, "member@example.com", "USER")
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", "USER")
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "ADMIN")

		body := s.bookingBody("2030-10-01", "2030-10-04", 2)
		body["guestEmail"] = "member@example.com"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, userToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.CreateReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotNil(t, created.Reservation.UserID)

		path := reservationsURL + "/" + created.Reservation.ID.String()
		assert.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, userToken).Code)
		assert.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, adminToken).Code)
		assert.Equal(t, http.StatusForbidden, httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, otherToken).Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/me", nil, userToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var mine []response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &mine))
		assert.Len(t, mine, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/all", nil, userToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("管理者はステータスを上書きできる", func() {
		t := s.T()
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "ADMIN")
		res := s.book("2030-11-01", "2030-11-03").Reservation

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reservationsURL+"/"+res.ID.String()+"/status",
			map[string]any{"status": "COMPLETED"}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "COMPLETED", s.byCode(res.ConfirmationCode).Status)
	})
}

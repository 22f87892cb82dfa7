//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-booking/internal/domain/property"
	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/usecase/commands"
	"rental-booking/tests/common/builder"
	commandsmock "rental-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type paymentFixture struct {
	*uowFixture
	gateway *commandsmock.MockPaymentGateway
	cmds    commands.PaymentCommands
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	f := newUOWFixture(t)
	gateway := commandsmock.NewMockPaymentGateway(f.ctrl)
	settings := commands.PaymentSettings{Currency: "eur", FrontendURL: "https://default.example.com/", PendingTTL: 2 * time.Hour}
	return &paymentFixture{
		uowFixture: f,
		gateway:    gateway,
		cmds:       commands.NewPaymentCommands(f.uow, gateway, settings, f.clock, f.logger),
	}
}

func TestPaymentCommands_OpenSession(t *testing.T) {
	t.Run("デポジット額でセッションを開き予約に保存", func(t *testing.T) {
		f := newPaymentFixture(t)
		prop := builder.NewPropertyBuilder().BuildDomain()
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.PropertyID = prop.ID()
			b.CreatedAt = fixedNow
		}).BuildDomain()

		f.reads.EXPECT().ReservationByID(gomock.Any(), res.ID()).Return(res, nil)
		f.reads.EXPECT().PropertyByID(gomock.Any(), prop.ID()).Return(prop, nil)
		f.gateway.EXPECT().OpenSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
				assert.Equal(t, res.ID(), req.ReservationID)
				assert.Equal(t, int64(18000), req.AmountCents)
				assert.Equal(t, "eur", req.Currency)
				assert.Equal(t, "guest@example.com", req.PayerEmail)
				assert.Equal(t, prop.Name(), req.PropertyName)
				assert.Equal(t, "https://default.example.com/reservation/confirmation/"+res.ID().String(), req.SuccessURL)
				assert.Equal(t, "https://default.example.com/reservation/cancel/"+res.ID().String(), req.CancelURL)
				return &commands.CheckoutSession{ID: "cs_test_1", URL: "https://checkout/cs_test_1"}, nil
			})
		f.reads.EXPECT().ReservationByIDForUpdate(gomock.Any(), res.ID()).Return(res, nil)
		f.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), res).Return(res, nil)

		session, err := f.cmds.OpenSession(context.Background(), res.ID(), "")

		require.NoError(t, err)
		assert.Equal(t, "cs_test_1", session.SessionID)
		assert.Equal(t, "https://checkout/cs_test_1", session.URL)
		require.NotNil(t, res.PaymentSessionID())
		assert.Equal(t, "cs_test_1", *res.PaymentSessionID())
	})

	t.Run("呼び出し元のURLを優先", func(t *testing.T) {
		f := newPaymentFixture(t)
		res := builder.NewReservationBuilder().CreatedAtTime(fixedNow).BuildDomain()
		f.reads.EXPECT().ReservationByID(gomock.Any(), res.ID()).Return(res, nil)
		f.reads.EXPECT().PropertyByID(gomock.Any(), gomock.Any()).Return(builder.NewPropertyBuilder().BuildDomain(), nil)
		f.gateway.EXPECT().OpenSession(gomock.Any(), gomock.Cond(func(req commands.CheckoutRequest) bool {
			return req.SuccessURL == "https://villa.example.com/reservation/confirmation/"+res.ID().String()
		})).Return(&commands.CheckoutSession{ID: "cs", URL: "u"}, nil)
		f.reads.EXPECT().ReservationByIDForUpdate(gomock.Any(), res.ID()).Return(res, nil)
		f.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), res).Return(res, nil)

		_, err := f.cmds.OpenSession(context.Background(), res.ID(), " https://villa.example.com/ ")

		require.NoError(t, err)
	})

	t.Run("支払い済みの予約は不可", func(t *testing.T) {
		f := newPaymentFixture(t)
		res := builder.NewReservationBuilder().AsPaid().WithStatus(reservation.StatusConfirmed).BuildDomain()
		f.reads.EXPECT().ReservationByID(gomock.Any(), res.ID()).Return(res, nil)

		_, err := f.cmds.OpenSession(context.Background(), res.ID(), "")

		require.ErrorIs(t, err, reservation.ErrNotPayable)
	})

	t.Run("予約が存在しない", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.reads.EXPECT().ReservationByID(gomock.Any(), gomock.Any()).Return(nil, notFound("reservation"))

		_, err := f.cmds.OpenSession(context.Background(), uuid.New(), "")

		require.ErrorIs(t, err, reservation.ErrNotFound)
	})

	t.Run("物件が存在しない", func(t *testing.T) {
		f := newPaymentFixture(t)
		res := builder.NewReservationBuilder().BuildDomain()
		f.reads.EXPECT().ReservationByID(gomock.Any(), res.ID()).Return(res, nil)
		f.reads.EXPECT().PropertyByID(gomock.Any(), gomock.Any()).Return(nil, notFound("property"))

		_, err := f.cmds.OpenSession(context.Background(), res.ID(), "")

		require.ErrorIs(t, err, property.ErrNotFound)
	})

	t.Run("セッションは保留期限と同時に失効する", func(t *testing.T) {
		f := newPaymentFixture(t)
		createdAt := fixedNow.Add(-30 * time.Minute)
		res := builder.NewReservationBuilder().CreatedAtTime(createdAt).BuildDomain()
		f.reads.EXPECT().ReservationByID(gomock.Any(), res.ID()).Return(res, nil)
		f.reads.EXPECT().PropertyByID(gomock.Any(), gomock.Any()).Return(builder.NewPropertyBuilder().BuildDomain(), nil)
		f.gateway.EXPECT().OpenSession(gomock.Any(), gomock.Cond(func(req commands.CheckoutRequest) bool {
			return req.ExpiresAt.Equal(createdAt.Add(2 * time.Hour))
		})).Return(&commands.CheckoutSession{ID: "cs", URL: "u"}, nil)
		f.reads.EXPECT().ReservationByIDForUpdate(gomock.Any(), res.ID()).Return(res, nil)
		f.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), res).Return(res, nil)

		_, err := f.cmds.OpenSession(context.Background(), res.ID(), "")

		require.NoError(t, err)
	})

	t.Run("保留期限まで30分未満ならセッションを開かない", func(t *testing.T) {
		f := newPaymentFixture(t)
		res := builder.NewReservationBuilder().CreatedAtTime(fixedNow.Add(-100 * time.Minute)).BuildDomain()
		f.reads.EXPECT().ReservationByID(gomock.Any(), res.ID()).Return(res, nil)
		f.reads.EXPECT().PropertyByID(gomock.Any(), gomock.Any()).Return(builder.NewPropertyBuilder().BuildDomain(), nil)

		_, err := f.cmds.OpenSession(context.Background(), res.ID(), "")

		require.ErrorIs(t, err, commands.ErrPaymentWindowClosed)
		assert.Nil(t, res.PaymentSessionID())
	})

	t.Run("失効時刻は24時間先を超えない", func(t *testing.T) {
		f := newPaymentFixture(t)
		res := builder.NewReservationBuilder().CreatedAtTime(fixedNow.Add(48 * time.Hour)).BuildDomain()
		f.reads.EXPECT().ReservationByID(gomock.Any(), res.ID()).Return(res, nil)
		f.reads.EXPECT().PropertyByID(gomock.Any(), gomock.Any()).Return(builder.NewPropertyBuilder().BuildDomain(), nil)
		f.gateway.EXPECT().OpenSession(gomock.Any(), gomock.Cond(func(req commands.CheckoutRequest) bool {
			return req.ExpiresAt.Equal(fixedNow.Add(24 * time.Hour))
		})).Return(&commands.CheckoutSession{ID: "cs", URL: "u"}, nil)
		f.reads.EXPECT().ReservationByIDForUpdate(gomock.Any(), res.ID()).Return(res, nil)
		f.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), res).Return(res, nil)

		_, err := f.cmds.OpenSession(context.Background(), res.ID(), "")

		require.NoError(t, err)
	})

	t.Run("決済プロバイダのエラー", func(t *testing.T) {
		f := newPaymentFixture(t)
		res := builder.NewReservationBuilder().CreatedAtTime(fixedNow).BuildDomain()
		f.reads.EXPECT().ReservationByID(gomock.Any(), res.ID()).Return(res, nil)
		f.reads.EXPECT().PropertyByID(gomock.Any(), gomock.Any()).Return(builder.NewPropertyBuilder().BuildDomain(), nil)
		f.gateway.EXPECT().OpenSession(gomock.Any(), gomock.Any()).Return(nil, errors.New("api key invalid"))

		_, err := f.cmds.OpenSession(context.Background(), res.ID(), "")

		require.ErrorIs(t, err, commands.ErrPaymentProvider)
		assert.Nil(t, res.PaymentSessionID())
	})
}

func TestPaymentCommands_CheckStatus(t *testing.T) {
	t.Run("未払いは確定しない", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.gateway.EXPECT().SessionStatus(gomock.Any(), "cs_1").Return(&commands.SessionStatus{Paid: false}, nil)

		paid, err := f.cmds.CheckStatus(context.Background(), "cs_1")

		require.NoError(t, err)
		assert.False(t, paid)
	})

	t.Run("支払い済みでPENDINGを確定", func(t *testing.T) {
		f := newPaymentFixture(t)
		res := builder.NewReservationBuilder().WithPaymentSession("cs_1", "u").BuildDomain()
		f.gateway.EXPECT().SessionStatus(gomock.Any(), "cs_1").Return(&commands.SessionStatus{Paid: true}, nil)
		f.reads.EXPECT().ReservationBySessionForUpdate(gomock.Any(), "cs_1").Return(res, nil)
		f.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), res).Return(res, nil)
		f.expectNotice(commands.TopicReservationConfirmed)

		paid, err := f.cmds.CheckStatus(context.Background(), "cs_1")

		require.NoError(t, err)
		assert.True(t, paid)
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.True(t, res.DepositPaid())
	})

	t.Run("二回目の確認は何も書き込まない", func(t *testing.T) {
		f := newPaymentFixture(t)
		res := builder.NewReservationBuilder().AsPaid().WithStatus(reservation.StatusConfirmed).BuildDomain()
		f.gateway.EXPECT().SessionStatus(gomock.Any(), "cs_1").Return(&commands.SessionStatus{Paid: true}, nil)
		f.reads.EXPECT().ReservationBySessionForUpdate(gomock.Any(), "cs_1").Return(res, nil)

		paid, err := f.cmds.CheckStatus(context.Background(), "cs_1")

		require.NoError(t, err)
		assert.True(t, paid)
	})

	t.Run("プロバイダのエラー", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.gateway.EXPECT().SessionStatus(gomock.Any(), "cs_1").Return(nil, errors.New("timeout"))

		_, err := f.cmds.CheckStatus(context.Background(), "cs_1")

		require.ErrorIs(t, err, commands.ErrPaymentProvider)
	})
}

func TestPaymentCommands_HandleWebhook(t *testing.T) {
	payload := []byte(`{"type":"checkout.session.completed"}`)

	t.Run("署名不正", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.gateway.EXPECT().VerifyEvent(payload, "bad").Return(nil, errors.New("signature mismatch"))

		err := f.cmds.HandleWebhook(context.Background(), payload, "bad")

		require.ErrorIs(t, err, commands.ErrInvalidSignature)
	})

	t.Run("対象外のイベントは無視", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.gateway.EXPECT().VerifyEvent(payload, "sig").Return(&commands.WebhookEvent{Type: "payment_intent.created"}, nil)

		require.NoError(t, f.cmds.HandleWebhook(context.Background(), payload, "sig"))
	})

	t.Run("未払いの完了イベントは無視", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.gateway.EXPECT().VerifyEvent(payload, "sig").
			Return(&commands.WebhookEvent{Type: commands.EventCheckoutSessionCompleted, SessionID: "cs_1", Paid: false}, nil)

		require.NoError(t, f.cmds.HandleWebhook(context.Background(), payload, "sig"))
	})

	t.Run("支払い完了で予約を確定", func(t *testing.T) {
		f := newPaymentFixture(t)
		res := builder.NewReservationBuilder().BuildDomain()
		f.gateway.EXPECT().VerifyEvent(payload, "sig").
			Return(&commands.WebhookEvent{Type: commands.EventCheckoutSessionCompleted, SessionID: "cs_1", Paid: true}, nil)
		f.reads.EXPECT().ReservationBySessionForUpdate(gomock.Any(), "cs_1").Return(res, nil)
		f.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), res).Return(res, nil)
		f.expectNotice(commands.TopicReservationConfirmed)

		require.NoError(t, f.cmds.HandleWebhook(context.Background(), payload, "sig"))
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("取消後の支払いは状態を変えず通知もしない", func(t *testing.T) {
		f := newPaymentFixture(t)
		res := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildDomain()
		f.gateway.EXPECT().VerifyEvent(payload, "sig").
			Return(&commands.WebhookEvent{Type: commands.EventCheckoutSessionCompleted, SessionID: "cs_1", Paid: true}, nil)
		f.reads.EXPECT().ReservationBySessionForUpdate(gomock.Any(), "cs_1").Return(res, nil)
		f.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), res).Return(res, nil)

		require.NoError(t, f.cmds.HandleWebhook(context.Background(), payload, "sig"))
		assert.Equal(t, reservation.StatusCancelled, res.Status())
		assert.True(t, res.DepositPaid())
	})

	t.Run("不明なセッションは受理", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.gateway.EXPECT().VerifyEvent(payload, "sig").
			Return(&commands.WebhookEvent{Type: commands.EventCheckoutSessionCompleted, SessionID: "cs_other", Paid: true}, nil)
		f.reads.EXPECT().ReservationBySessionForUpdate(gomock.Any(), "cs_other").Return(nil, notFound("reservation"))

		require.NoError(t, f.cmds.HandleWebhook(context.Background(), payload, "sig"))
	})
}

//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-booking/internal/domain/property"
	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/user"
	"rental-booking/internal/infra"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/usecase/queries"
	"rental-booking/internal/usecase/shared"
	"rental-booking/tests/common/builder"
	commandsmock "rental-booking/tests/mock/commands"
	queriesmock "rental-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reservationFixture struct {
	*uowFixture
	payments *commandsmock.MockPaymentCommands
	queries  *queriesmock.MockReservationQueries
	cmds     commands.ReservationCommands
	prop     *property.Property
}

func newReservationFixture(t *testing.T) *reservationFixture {
	f := newUOWFixture(t)
	payments := commandsmock.NewMockPaymentCommands(f.ctrl)
	q := queriesmock.NewMockReservationQueries(f.ctrl)
	factory := reservation.NewFactory(reservation.NewDefaultPriceCalculator(), func() (string, error) {
		return "QWERTYUP23", nil
	})
	return &reservationFixture{
		uowFixture: f,
		payments:   payments,
		queries:    q,
		cmds:       commands.NewReservationCommands(f.uow, factory, payments, q, f.clock, f.logger),
		prop:       builder.NewPropertyBuilder().WithPricePerNight(10000).BuildDomain(),
	}
}

func (f *reservationFixture) input() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		PropertyID:     f.prop.ID(),
		StartDate:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC),
		NumberOfGuests: 2,
		GuestEmail:     "Guest@Example.com",
		FrontendURL:    "https://villa.example.com",
	}
}

// expectPersist wires the happy transactional path and captures the inserted reservation.
func (f *reservationFixture) expectPersist(saved **reservation.Reservation) {
	f.reads.EXPECT().PropertyByID(gomock.Any(), f.prop.ID()).Return(f.prop, nil)
	f.reads.EXPECT().ActiveRanges(gomock.Any(), f.prop.ID()).Return(nil, nil)
	f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, res *reservation.Reservation) (*reservation.Reservation, error) {
			*saved = res
			return res, nil
		})
	f.expectNotice(commands.TopicReservationCreated)
}

func TestReservationCommands_Create(t *testing.T) {
	t.Run("ゲスト予約で影アカウントを作成", func(t *testing.T) {
		f := newReservationFixture(t)
		in := f.input()
		first, last := "Jane", "Doe"
		in.GuestFirstName, in.GuestLastName = &first, &last

		var saved *reservation.Reservation
		var guest *user.User
		f.expectPersist(&saved)
		f.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, notFound("user"))
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, u *user.User) (*user.User, error) {
				guest = u
				return u, nil
			})
		f.payments.EXPECT().OpenSession(gomock.Any(), gomock.Any(), "https://villa.example.com").
			DoAndReturn(func(_ context.Context, id uuid.UUID, _ string) (*commands.PaymentSession, error) {
				assert.Equal(t, saved.ID(), id)
				return &commands.PaymentSession{URL: "https://pay/cs_1", SessionID: "cs_1"}, nil
			})
		view := builder.NewReservationBuilder().BuildView()
		f.queries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(view, nil)

		result, err := f.cmds.Create(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, "https://pay/cs_1", result.PaymentURL)
		assert.False(t, result.IsReplayed)
		assert.Same(t, view, result.Reservation)

		require.NotNil(t, saved)
		assert.Equal(t, int64(30000), saved.TotalPrice().Cents())
		assert.Equal(t, int64(9000), saved.DepositAmount().Cents())
		assert.Equal(t, reservation.StatusPending, saved.Status())
		assert.Equal(t, "guest@example.com", saved.GuestEmail().Value())
		require.NotNil(t, guest)
		assert.True(t, guest.IsGuest())
		assert.True(t, saved.IsOwnedBy(guest.ID()))
	})

	t.Run("既存アカウントのメールなら紐付け", func(t *testing.T) {
		f := newReservationFixture(t)
		existing := builder.NewUserBuilder().WithEmail("guest@example.com").BuildDomain()

		var saved *reservation.Reservation
		f.expectPersist(&saved)
		f.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(existing, nil)
		f.payments.EXPECT().OpenSession(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.PaymentSession{URL: "u", SessionID: "s"}, nil)
		f.queries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(builder.NewReservationBuilder().BuildView(), nil)

		_, err := f.cmds.Create(context.Background(), f.input())

		require.NoError(t, err)
		assert.True(t, saved.IsOwnedBy(existing.ID()))
	})

	t.Run("ログインユーザーはメール検索しない", func(t *testing.T) {
		f := newReservationFixture(t)
		in := f.input()
		userID := uuid.New()
		in.UserID = &userID

		var saved *reservation.Reservation
		f.expectPersist(&saved)
		f.payments.EXPECT().OpenSession(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.PaymentSession{URL: "u", SessionID: "s"}, nil)
		f.queries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(builder.NewReservationBuilder().BuildView(), nil)

		_, err := f.cmds.Create(context.Background(), in)

		require.NoError(t, err)
		assert.True(t, saved.IsOwnedBy(userID))
	})

	t.Run("入力エラーはトランザクション前に返す", func(t *testing.T) {
		f := newReservationFixture(t)
		cases := []struct {
			name   string
			mutate func(*commands.CreateReservationInput)
			errIs  error
		}{
			{name: "メール不正", mutate: func(in *commands.CreateReservationInput) { in.GuestEmail = "nope" }, errIs: user.ErrInvalidEmail},
			{name: "日付逆順", mutate: func(in *commands.CreateReservationInput) { in.StartDate, in.EndDate = in.EndDate, in.StartDate }, errIs: reservation.ErrInvalidDateRange},
			{name: "日付なし", mutate: func(in *commands.CreateReservationInput) { in.EndDate = time.Time{} }, errIs: reservation.ErrDatesRequired},
			{name: "ゲスト数0", mutate: func(in *commands.CreateReservationInput) { in.NumberOfGuests = 0 }, errIs: reservation.ErrInvalidGuestCount},
		}
		for _, tc := range cases {
			in := f.input()
			tc.mutate(&in)
			_, err := f.cmds.Create(context.Background(), in)
			assert.ErrorIs(t, err, tc.errIs, tc.name)
		}
	})

	t.Run("物件が存在しない", func(t *testing.T) {
		f := newReservationFixture(t)
		f.reads.EXPECT().PropertyByID(gomock.Any(), gomock.Any()).Return(nil, notFound("property"))

		_, err := f.cmds.Create(context.Background(), f.input())

		require.ErrorIs(t, err, property.ErrNotFound)
	})

	t.Run("期間が重なると予約不可", func(t *testing.T) {
		f := newReservationFixture(t)
		userID := uuid.New()
		in := f.input()
		in.UserID = &userID
		held, err := reservation.NewDateRange(in.EndDate, in.EndDate.AddDate(0, 0, 2))
		require.NoError(t, err)
		f.reads.EXPECT().PropertyByID(gomock.Any(), gomock.Any()).Return(f.prop, nil)
		f.reads.EXPECT().ActiveRanges(gomock.Any(), gomock.Any()).Return([]reservation.DateRange{held}, nil)

		_, err = f.cmds.Create(context.Background(), in)

		require.ErrorIs(t, err, reservation.ErrNotAvailable)
		assert.Equal(t, "Property is not available for the selected dates", err.Error())
	})

	t.Run("排他制約違反は予約不可として扱いキーを解放", func(t *testing.T) {
		f := newReservationFixture(t)
		userID := uuid.New()
		key := uuid.New()
		in := f.input()
		in.UserID = &userID
		in.IdempotencyKey = &key

		f.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.reads.EXPECT().PropertyByID(gomock.Any(), gomock.Any()).Return(f.prop, nil)
		f.reads.EXPECT().ActiveRanges(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("insert", errors.New("conflicting key value"), infra.KindExclusionViolated))
		f.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), key, "user:"+userID.String()).Return(nil)

		_, err := f.cmds.Create(context.Background(), in)

		require.ErrorIs(t, err, reservation.ErrNotAvailable)
	})

	t.Run("決済セッション失敗で予約を取消しキーを解放", func(t *testing.T) {
		f := newReservationFixture(t)
		key := uuid.New()
		in := f.input()
		in.IdempotencyKey = &key
		subject := "guest:guest@example.com"

		var saved *reservation.Reservation
		f.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, claim shared.IdempotencyClaim) (bool, error) {
				assert.Equal(t, key, claim.Key)
				assert.Equal(t, subject, claim.Subject)
				assert.Equal(t, fixedNow.Add(24*time.Hour), claim.ExpiresAt)
				return true, nil
			})
		f.expectPersist(&saved)
		f.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, notFound("user"))
		f.payments.EXPECT().OpenSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("stripe down"))
		f.reads.EXPECT().ReservationByIDForUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
				assert.Equal(t, saved.ID(), id)
				return saved, nil
			})
		f.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Cond(func(r *reservation.Reservation) bool {
			return r.Status() == reservation.StatusCancelled
		})).DoAndReturn(func(_ context.Context, _ any, r *reservation.Reservation) (*reservation.Reservation, error) {
			return r, nil
		})
		f.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), key, subject).Return(nil)

		_, err := f.cmds.Create(context.Background(), in)

		require.ErrorIs(t, err, commands.ErrPaymentSessionFailed)
		assert.True(t, errs.Is(err, errs.ErrUpstream))
		assert.Equal(t, reservation.StatusCancelled, saved.Status())
	})
}

func TestReservationCommands_CreateIdempotency(t *testing.T) {
	setup := func(t *testing.T) (*reservationFixture, commands.CreateReservationInput, *shared.IdempotencyClaim) {
		f := newReservationFixture(t)
		key := uuid.New()
		in := f.input()
		in.IdempotencyKey = &key
		claim := &shared.IdempotencyClaim{}
		f.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, c shared.IdempotencyClaim) (bool, error) {
				*claim = c
				return false, nil
			})
		f.idempotency.EXPECT().Reclaim(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		return f, in, claim
	}

	t.Run("完了済みキーは前回の結果を返す", func(t *testing.T) {
		f, in, claim := setup(t)
		resultID := uuid.New()
		view := builder.NewReservationBuilder().WithPaymentSession("cs_1", "https://pay/cs_1").BuildView()
		f.reads.EXPECT().IdempotencyByKey(gomock.Any(), *in.IdempotencyKey, "guest:guest@example.com").
			DoAndReturn(func(context.Context, uuid.UUID, string) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{
					Status:              shared.IdempotencyStatusCompleted,
					RequestHash:         claim.RequestHash,
					ResultReservationID: &resultID,
				}, nil
			})
		f.queries.EXPECT().GetByID(gomock.Any(), resultID).Return(view, nil)

		result, err := f.cmds.Create(context.Background(), in)

		require.NoError(t, err)
		assert.True(t, result.IsReplayed)
		assert.Equal(t, "https://pay/cs_1", result.PaymentURL)
		assert.Same(t, view, result.Reservation)
	})

	t.Run("キーはチェックアウト作成後に完了する", func(t *testing.T) {
		f := newReservationFixture(t)
		key := uuid.New()
		in := f.input()
		in.IdempotencyKey = &key
		subject := "guest:guest@example.com"

		var saved *reservation.Reservation
		f.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.expectPersist(&saved)
		f.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, notFound("user"))
		gomock.InOrder(
			f.payments.EXPECT().OpenSession(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&commands.PaymentSession{URL: "https://pay/cs_1", SessionID: "cs_1"}, nil),
			f.idempotency.EXPECT().Complete(gomock.Any(), gomock.Any(), key, subject, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, _ string, id uuid.UUID) error {
					assert.Equal(t, saved.ID(), id)
					return nil
				}),
		)
		f.queries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(builder.NewReservationBuilder().BuildView(), nil)

		result, err := f.cmds.Create(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, "https://pay/cs_1", result.PaymentURL)
	})

	t.Run("キーの完了に失敗しても予約は返す", func(t *testing.T) {
		f := newReservationFixture(t)
		key := uuid.New()
		in := f.input()
		in.IdempotencyKey = &key

		var saved *reservation.Reservation
		f.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.expectPersist(&saved)
		f.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, notFound("user"))
		f.payments.EXPECT().OpenSession(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.PaymentSession{URL: "https://pay/cs_1", SessionID: "cs_1"}, nil)
		f.idempotency.EXPECT().Complete(gomock.Any(), gomock.Any(), key, gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))
		f.queries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(builder.NewReservationBuilder().BuildView(), nil)

		result, err := f.cmds.Create(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, "https://pay/cs_1", result.PaymentURL)
	})

	t.Run("処理中のキーは競合", func(t *testing.T) {
		f, in, claim := setup(t)
		f.reads.EXPECT().IdempotencyByKey(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, uuid.UUID, string) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{Status: shared.IdempotencyStatusProcessing, RequestHash: claim.RequestHash}, nil
			})

		_, err := f.cmds.Create(context.Background(), in)

		require.ErrorIs(t, err, commands.ErrIdempotencyInProgress)
	})

	t.Run("別リクエストでのキー再利用はエラー", func(t *testing.T) {
		f, in, _ := setup(t)
		f.reads.EXPECT().IdempotencyByKey(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&shared.IdempotencyRecord{Status: shared.IdempotencyStatusCompleted, RequestHash: "other"}, nil)

		_, err := f.cmds.Create(context.Background(), in)

		require.ErrorIs(t, err, commands.ErrIdempotencyKeyReused)
	})
}

func TestReservationCommands_Cancel(t *testing.T) {
	owner := uuid.New()

	cases := []struct {
		name  string
		actor commands.Actor
		code  string
		from  reservation.Status
		errIs error
	}{
		{name: "所有者は取消可", actor: commands.Actor{UserID: &owner, Role: user.RoleUser}, from: reservation.StatusPending},
		{name: "管理者は取消可", actor: commands.Actor{UserID: ptrUUID(uuid.New()), Role: user.RoleAdmin}, from: reservation.StatusConfirmed},
		{name: "確認コード保持者は取消可", code: "abcdefgh23", from: reservation.StatusPending},
		{name: "他人は取消不可", actor: commands.Actor{UserID: ptrUUID(uuid.New()), Role: user.RoleUser}, from: reservation.StatusPending, errIs: commands.ErrReservationForbidden},
		{name: "匿名でコード違いは取消不可", code: "WRONGCODE2", from: reservation.StatusPending, errIs: commands.ErrReservationForbidden},
		{name: "完了済みは取消不可", actor: commands.Actor{UserID: &owner, Role: user.RoleUser}, from: reservation.StatusCompleted, errIs: reservation.ErrCannotCancel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newReservationFixture(t)
			res := builder.NewReservationBuilder().WithOwner(owner).WithStatus(tc.from).BuildDomain()
			f.reads.EXPECT().ReservationByIDForUpdate(gomock.Any(), res.ID()).Return(res, nil)

			if tc.errIs == nil {
				f.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), res).Return(res, nil)
				f.expectNotice(commands.TopicReservationCancelled)
				f.queries.EXPECT().GetByID(gomock.Any(), res.ID()).
					Return(builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildView(), nil)
			}

			view, err := f.cmds.Cancel(context.Background(), res.ID(), tc.actor, tc.code)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.from, res.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "CANCELLED", view.Status)
			assert.Equal(t, reservation.StatusCancelled, res.Status())
		})
	}

	t.Run("存在しない予約", func(t *testing.T) {
		f := newReservationFixture(t)
		f.reads.EXPECT().ReservationByIDForUpdate(gomock.Any(), gomock.Any()).Return(nil, notFound("reservation"))

		_, err := f.cmds.Cancel(context.Background(), uuid.New(), commands.Actor{}, "")

		require.ErrorIs(t, err, reservation.ErrNotFound)
	})
}

func TestReservationCommands_OverrideStatus(t *testing.T) {
	t.Run("取消済みを確定に戻せる", func(t *testing.T) {
		f := newReservationFixture(t)
		res := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildDomain()
		f.reads.EXPECT().ReservationByIDForUpdate(gomock.Any(), res.ID()).Return(res, nil)
		f.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), res).Return(res, nil)
		f.queries.EXPECT().GetByID(gomock.Any(), res.ID()).Return(&queries.ReservationView{ID: res.ID(), Status: "CONFIRMED"}, nil)

		view, err := f.cmds.OverrideStatus(context.Background(), res.ID(), "confirmed")

		require.NoError(t, err)
		assert.Equal(t, "CONFIRMED", view.Status)
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("不正な状態", func(t *testing.T) {
		f := newReservationFixture(t)
		_, err := f.cmds.OverrideStatus(context.Background(), uuid.New(), "ARCHIVED")
		require.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})

	t.Run("再有効化で期間が重なる", func(t *testing.T) {
		f := newReservationFixture(t)
		res := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildDomain()
		f.reads.EXPECT().ReservationByIDForUpdate(gomock.Any(), res.ID()).Return(res, nil)
		f.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), res).
			Return(nil, infra.WrapRepoErr("save", errors.New("exclusion"), infra.KindExclusionViolated))

		_, err := f.cmds.OverrideStatus(context.Background(), res.ID(), "PENDING")

		require.ErrorIs(t, err, reservation.ErrNotAvailable)
	})
}

func ptrUUID(id uuid.UUID) *uuid.UUID { return &id }

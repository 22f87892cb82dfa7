//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"rental-booking/internal/infra"
	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/usecase/shared"
	sharedmock "rental-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, time.May, 20, 10, 0, 0, 0, time.UTC)

// uowFixture runs every Within callback against one mocked transaction.
type uowFixture struct {
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	properties    *sharedmock.MockPropertyRepository
	reservations  *sharedmock.MockReservationRepository
	users         *sharedmock.MockUserRepository
	siteConfig    *sharedmock.MockSiteConfigRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
	clock         *clock.MockClock
	logger        *slog.Logger
}

func newUOWFixture(t *testing.T) *uowFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &uowFixture{
		ctrl:          ctrl,
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		properties:    sharedmock.NewMockPropertyRepository(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		siteConfig:    sharedmock.NewMockSiteConfigRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		clock:         clock.NewMockClock(fixedNow),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()

	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Properties().Return(f.properties).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().SiteConfig().Return(f.siteConfig).AnyTimes()
	f.tx.EXPECT().Idempotency().Return(f.idempotency).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()

	return f
}

// expectNotice expects one outbox job for topic.
func (f *uowFixture) expectNotice(topic string) *gomock.Call {
	return f.notifications.EXPECT().
		CreateJob(gomock.Any(), gomock.Any(), "email", topic, gomock.Any(), fixedNow).
		Return(nil)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows in result set"), infra.KindNotFound)
}

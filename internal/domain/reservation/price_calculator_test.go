//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"rental-booking/internal/domain/money"
	"rental-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPriceCalculator_Quote(t *testing.T) {
	cases := []struct {
		name        string
		priceCents  int64
		start       time.Time
		end         time.Time
		wantNights  int
		wantTotal   int64
		wantDeposit int64
	}{
		{name: "7泊 x 200", priceCents: 20000, start: date(2026, 7, 1), end: date(2026, 7, 8), wantNights: 7, wantTotal: 140000, wantDeposit: 42000},
		{name: "3泊 x 100", priceCents: 10000, start: date(2026, 6, 1), end: date(2026, 6, 4), wantNights: 3, wantTotal: 30000, wantDeposit: 9000},
		{name: "端数泊は切り上げ", priceCents: 10000, start: date(2026, 6, 1), end: date(2026, 6, 2).Add(6 * time.Hour), wantNights: 2, wantTotal: 20000, wantDeposit: 6000},
		{name: "デポジットは四捨五入", priceCents: 333, start: date(2026, 6, 1), end: date(2026, 6, 2), wantNights: 1, wantTotal: 333, wantDeposit: 100},
	}

	calc := reservation.NewDefaultPriceCalculator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := money.FromCents(tc.priceCents)
			require.NoError(t, err)

			q := calc.Quote(price, mustRange(t, tc.start, tc.end))

			assert.Equal(t, tc.wantNights, q.Nights)
			assert.Equal(t, tc.wantTotal, q.Total.Cents())
			assert.Equal(t, tc.wantDeposit, q.Deposit.Cents())
		})
	}
}

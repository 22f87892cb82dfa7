//go:build unit

package money_test

import (
	"testing"

	"rental-booking/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAmount(t *testing.T) {
	cases := []struct {
		name      string
		amount    float64
		wantCents int64
		errIs     error
	}{
		{name: "whole amount", amount: 200, wantCents: 20000},
		{name: "two decimals", amount: 199.99, wantCents: 19999},
		{name: "float noise rounds", amount: 0.1 + 0.2, wantCents: 30},
		{name: "zero", amount: 0, wantCents: 0},
		{name: "negative rejected", amount: -1, errIs: money.ErrNegativeAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := money.FromAmount(tc.amount)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCents, m.Cents())
		})
	}
}

func TestMoney_Percent(t *testing.T) {
	cases := []struct {
		cents int64
		want  int64
	}{
		{cents: 140000, want: 42000},
		{cents: 30000, want: 9000},
		{cents: 5, want: 2},  // 1.5 -> 2
		{cents: 3, want: 1},  // 0.9 -> 1
		{cents: 1, want: 0},  // 0.3 -> 0
		{cents: 99999, want: 30000},
	}
	for _, tc := range cases {
		m, err := money.FromCents(tc.cents)
		require.NoError(t, err)
		assert.Equal(t, tc.want, m.Percent(30).Cents(), "30%% of %d", tc.cents)
	}
}

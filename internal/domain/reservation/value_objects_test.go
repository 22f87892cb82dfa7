//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"rental-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) reservation.DateRange {
	t.Helper()
	r, err := reservation.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{name: "正常な期間OK", start: date(2026, 6, 1), end: date(2026, 6, 4)},
		{name: "開始日なしNG", end: date(2026, 6, 4), errIs: reservation.ErrDatesRequired},
		{name: "終了日なしNG", start: date(2026, 6, 1), errIs: reservation.ErrDatesRequired},
		{name: "同日NG", start: date(2026, 6, 1), end: date(2026, 6, 1), errIs: reservation.ErrInvalidDateRange},
		{name: "逆順NG", start: date(2026, 6, 4), end: date(2026, 6, 1), errIs: reservation.ErrInvalidDateRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := reservation.NewDateRange(tc.start, tc.end)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, r.Start())
			assert.Equal(t, tc.end, r.End())
		})
	}

	t.Run("UTCに正規化される", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		r := mustRange(t, time.Date(2026, 6, 1, 9, 0, 0, 0, tokyo), time.Date(2026, 6, 2, 9, 0, 0, 0, tokyo))
		assert.Equal(t, time.UTC, r.Start().Location())
		assert.Equal(t, date(2026, 6, 1), r.Start())
	})
}

func TestDateRange_Nights(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{name: "3泊", start: date(2026, 6, 1), end: date(2026, 6, 4), want: 3},
		{name: "1泊", start: date(2026, 6, 1), end: date(2026, 6, 2), want: 1},
		{name: "端数は切り上げ", start: date(2026, 6, 1), end: date(2026, 6, 2).Add(time.Hour), want: 2},
		{name: "24時間未満は1泊", start: date(2026, 6, 1), end: date(2026, 6, 1).Add(2 * time.Hour), want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mustRange(t, tc.start, tc.end).Nights())
		})
	}
}

func TestDateRange_Overlaps(t *testing.T) {
	booked := mustRange(t, date(2026, 6, 1), date(2026, 6, 4))

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{name: "完全に内側", start: date(2026, 6, 2), end: date(2026, 6, 3), want: true},
		{name: "後半と重なる", start: date(2026, 6, 3), end: date(2026, 6, 5), want: true},
		{name: "前半と重なる", start: date(2026, 5, 28), end: date(2026, 6, 2), want: true},
		{name: "全体を包含", start: date(2026, 5, 1), end: date(2026, 7, 1), want: true},
		{name: "チェックアウト日に開始も重複扱い", start: date(2026, 6, 4), end: date(2026, 6, 6), want: true},
		{name: "チェックイン日に終了も重複扱い", start: date(2026, 5, 29), end: date(2026, 6, 1), want: true},
		{name: "翌日開始は重ならない", start: date(2026, 6, 5), end: date(2026, 6, 8), want: false},
		{name: "前日終了は重ならない", start: date(2026, 5, 25), end: date(2026, 5, 31), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := mustRange(t, tc.start, tc.end)
			assert.Equal(t, tc.want, booked.Overlaps(other))
			assert.Equal(t, tc.want, other.Overlaps(booked), "overlap must be symmetric")
		})
	}
}

func TestNewConfirmationCode(t *testing.T) {
	seen := make(map[string]struct{})
	for range 200 {
		code, err := reservation.NewConfirmationCode()
		require.NoError(t, err)
		require.Len(t, code, 10)
		assert.False(t, strings.ContainsAny(code, "01IO"), "ambiguous character in %s", code)
		assert.Equal(t, strings.ToUpper(code), code)
		seen[code] = struct{}{}
	}
	assert.Len(t, seen, 200)
}

func TestNormalizeConfirmationCode(t *testing.T) {
	assert.Equal(t, "ABCDEFGH23", reservation.NormalizeConfirmationCode("  abcdefgh23 "))
}

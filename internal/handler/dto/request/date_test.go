//go:build unit

package request_test

import (
	"encoding/json"
	"testing"
	"time"

	reqdto "rental-booking/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "calendar date is midnight UTC", in: "2026-06-01", want: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
		{name: "RFC 3339 is normalized to UTC", in: "2026-06-01T02:00:00+02:00", want: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", in: " 2026-06-01 ", want: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
		{name: "day-first format", in: "01/06/2026", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reqdto.ParseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %s", got.Time)
		})
	}
}

func TestCreateReservationRequest_ToInput(t *testing.T) {
	var req reqdto.CreateReservationRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"propertyId": "6f1c2d8e-2b1a-4c59-9a51-0f6f4e0f2c11",
		"startDate": "2026-06-01",
		"endDate": "2026-06-04",
		"numberOfGuests": 2,
		"specialRequests": "   ",
		"guestEmail": " Guest@Example.com "
	}`), &req))

	in := req.ToInput(nil, nil)

	assert.Equal(t, time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC), in.EndDate)
	assert.Nil(t, in.SpecialRequests)
	assert.Equal(t, "Guest@Example.com", in.GuestEmail)
}

func TestCreateReservationRequest_MissingDateIsZero(t *testing.T) {
	req := reqdto.CreateReservationRequest{}

	in := req.ToInput(nil, nil)

	assert.True(t, in.StartDate.IsZero())
}

func TestCancelReservationRequest_Code(t *testing.T) {
	var nilReq *reqdto.CancelReservationRequest
	assert.Empty(t, nilReq.Code())

	code := " abcdefgh23 "
	assert.Equal(t, "abcdefgh23", (&reqdto.CancelReservationRequest{ConfirmationCode: &code}).Code())
}

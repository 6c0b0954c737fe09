package create_reservation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func mustDateTime(t *testing.T, s string) types.DateTime {
	t.Helper()
	dt, err := types.ParseDateTime(s)
	require.NoError(t, err)
	return dt
}

func TestValidateRequest(t *testing.T) {
	valid := func() *Request {
		return &Request{
			DateAndTime: types.NewDateTime(time.Date(2025, 7, 1, 18, 0, 0, 0, time.Local)),
			Room:        "Sakura",
			Diner:       "Tanaka",
			PartySize:   4,
		}
	}

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, validateRequest(valid()))
	})

	t.Run("missing datetime", func(t *testing.T) {
		req := valid()
		req.DateAndTime = types.DateTime{}
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("empty room", func(t *testing.T) {
		req := valid()
		req.Room = ""
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("room name too long", func(t *testing.T) {
		req := valid()
		req.Room = strings.Repeat("a", 51)
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("room name at limit", func(t *testing.T) {
		req := valid()
		req.Room = strings.Repeat("a", 50)
		assert.NoError(t, validateRequest(req))
	})

	t.Run("empty diner", func(t *testing.T) {
		req := valid()
		req.Diner = ""
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("diner name too long", func(t *testing.T) {
		req := valid()
		req.Diner = strings.Repeat("b", 51)
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})
}

func TestValidateSchedule(t *testing.T) {
	now := time.Date(2025, 6, 27, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		dtime     time.Time
		partySize int
		wantErr   error
	}{
		{
			name:      "valid reservation",
			dtime:     time.Date(2025, 7, 1, 18, 0, 0, 0, time.Local),
			partySize: 4,
			wantErr:   nil,
		},
		{
			name:      "exactly two days ahead at 17:00 is accepted",
			dtime:     time.Date(2025, 6, 29, 17, 0, 0, 0, time.Local),
			partySize: 2,
			wantErr:   nil,
		},
		{
			name:      "two days and one minute ahead at 17:00 is accepted",
			dtime:     time.Date(2025, 6, 29, 17, 1, 0, 0, time.Local),
			partySize: 2,
			wantErr:   nil,
		},
		{
			name:      "last seating 21:30 is accepted",
			dtime:     time.Date(2025, 7, 1, 21, 30, 0, 0, time.Local),
			partySize: 2,
			wantErr:   nil,
		},
		{
			name:      "too soon",
			dtime:     time.Date(2025, 6, 28, 18, 0, 0, 0, time.Local),
			partySize: 2,
			wantErr:   ErrInvalidDateTime,
		},
		{
			name:      "before opening",
			dtime:     time.Date(2025, 7, 1, 16, 59, 0, 0, time.Local),
			partySize: 2,
			wantErr:   ErrInvalidDateTime,
		},
		{
			name:      "after last seating",
			dtime:     time.Date(2025, 7, 1, 21, 31, 0, 0, time.Local),
			partySize: 2,
			wantErr:   ErrInvalidDateTime,
		},
		{
			name:      "one second after last seating",
			dtime:     time.Date(2025, 7, 1, 21, 30, 1, 0, time.Local),
			partySize: 2,
			wantErr:   ErrInvalidDateTime,
		},
		{
			name:      "zero party size",
			dtime:     time.Date(2025, 7, 1, 18, 0, 0, 0, time.Local),
			partySize: 0,
			wantErr:   ErrInvalidPartySize,
		},
		{
			name:      "negative party size",
			dtime:     time.Date(2025, 7, 1, 18, 0, 0, 0, time.Local),
			partySize: -3,
			wantErr:   ErrInvalidPartySize,
		},
		{
			// Оба правила нарушены - побеждает код даты/времени
			name:      "bad time and bad party size reports datetime",
			dtime:     time.Date(2025, 7, 1, 12, 0, 0, 0, time.Local),
			partySize: 0,
			wantErr:   ErrInvalidDateTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSchedule(tt.dtime, now, tt.partySize)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayUTC(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "midday truncates to midnight",
			in:   time.Date(2025, 6, 1, 15, 30, 45, 0, time.UTC),
			want: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "already midnight",
			in:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "positive offset near midnight maps to previous UTC day",
			in:   time.Date(2025, 6, 2, 1, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)),
			want: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "negative offset near midnight maps to next UTC day",
			in:   time.Date(2025, 6, 1, 23, 0, 0, 0, time.FixedZone("EST", -5*3600)),
			want: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, DayUTC(tt.in).Equal(tt.want))
		})
	}
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusReserved}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusReserved}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

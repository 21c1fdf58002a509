package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNights(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
		wantErr  bool
	}{
		{
			name:     "three nights",
			checkIn:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
			want:     3,
		},
		{
			name:     "one night",
			checkIn:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "DST spring-forward night still counts as one",
			checkIn:  time.Date(2024, 3, 30, 0, 0, 0, 0, berlin),
			checkOut: time.Date(2024, 3, 31, 0, 0, 0, 0, berlin),
			want:     1,
		},
		{
			name:     "DST fall-back night still counts as one",
			checkIn:  time.Date(2024, 10, 26, 0, 0, 0, 0, berlin),
			checkOut: time.Date(2024, 10, 27, 0, 0, 0, 0, berlin),
			want:     1,
		},
		{
			name:     "time of day is ignored",
			checkIn:  time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC),
			checkOut: time.Date(2024, 6, 4, 0, 1, 0, 0, time.UTC),
			want:     3,
		},
		{
			name:     "zero nights rejected",
			checkIn:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC),
			wantErr:  true,
		},
		{
			name:     "negative range rejected",
			checkIn:  time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Nights(tt.checkIn, tt.checkOut)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDays(t *testing.T) {
	r, err := New(
		time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	days := r.Days()
	require.Len(t, days, 3)
	assert.Equal(t, time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), days[2])

	// End day (check-out) is excluded from the range.
	assert.True(t, r.Contains(days[2]))
	assert.False(t, r.Contains(r.End()))
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2024-07-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDay("15/07/2024")
	assert.Error(t, err)
}

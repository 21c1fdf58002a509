package availability

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edonabdullahu1/city-sub002/internal/catalog"
	"github.com/Edonabdullahu1/city-sub002/internal/daterange"
)

func newTestService(t *testing.T, totalRooms int) (Service, *catalog.Room) {
	t.Helper()

	catalogRepo := catalog.NewMemoryRepository()
	hotel := catalogRepo.AddHotel(catalog.Hotel{CityID: "city-1", Name: "Hotel Riviera", Stars: 4})
	room := catalogRepo.AddRoom(catalog.Room{
		HotelID:    hotel.ID,
		RoomType:   "Double",
		TotalRooms: totalRooms,
	})

	return NewService(NewMemoryRepository(), catalogRepo), room
}

func mustRange(t *testing.T, start, end string) daterange.Range {
	t.Helper()
	s, err := daterange.ParseDay(start)
	require.NoError(t, err)
	e, err := daterange.ParseDay(end)
	require.NoError(t, err)
	rng, err := daterange.New(s, e)
	require.NoError(t, err)
	return rng
}

func TestGetCalendarSynthesizesUntouchedDays(t *testing.T) {
	svc, room := newTestService(t, 10)
	ctx := context.Background()

	rng := mustRange(t, "2024-06-01", "2024-06-04")
	calendar, err := svc.GetCalendar(ctx, room.ID, rng)
	require.NoError(t, err)

	require.Len(t, calendar, 3)
	for _, d := range calendar {
		assert.Equal(t, 10, d.TotalRooms)
		assert.Equal(t, 0, d.BookedRooms)
		assert.Equal(t, 10, d.AvailableRooms())
		assert.Nil(t, d.PriceOverride)
		assert.False(t, d.IsBlocked)
	}
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), calendar[0].Date)
}

func TestGetCalendarUnknownRoom(t *testing.T) {
	svc, _ := newTestService(t, 10)

	_, err := svc.GetCalendar(context.Background(), "missing-room", mustRange(t, "2024-06-01", "2024-06-04"))
	assert.ErrorIs(t, err, catalog.ErrRoomNotFound)
}

func TestInitializeIdempotent(t *testing.T) {
	svc, room := newTestService(t, 10)
	ctx := context.Background()
	rng := mustRange(t, "2024-06-01", "2024-06-08")

	require.NoError(t, svc.Initialize(ctx, room.ID, rng, 5))
	before, err := svc.GetCalendar(ctx, room.ID, rng)
	require.NoError(t, err)

	// Re-running with the same total changes nothing.
	require.NoError(t, svc.Initialize(ctx, room.ID, rng, 5))
	after, err := svc.GetCalendar(ctx, room.ID, rng)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestInitializeCapacityConflict(t *testing.T) {
	svc, room := newTestService(t, 10)
	ctx := context.Background()
	rng := mustRange(t, "2024-06-01", "2024-06-04")

	require.NoError(t, svc.Initialize(ctx, room.ID, rng, 2))
	require.NoError(t, svc.ConfirmBooking(ctx, room.ID, rng))
	require.NoError(t, svc.ConfirmBooking(ctx, room.ID, rng))

	// Two rooms booked on every day; shrinking capacity below that must fail.
	err := svc.Initialize(ctx, room.ID, rng, 1)
	assert.ErrorIs(t, err, ErrCapacityConflict)

	// And the failed initialize must not have lost the booked count.
	calendar, err := svc.GetCalendar(ctx, room.ID, rng)
	require.NoError(t, err)
	for _, d := range calendar {
		assert.Equal(t, 2, d.BookedRooms)
		assert.Equal(t, 2, d.TotalRooms)
	}

	// Growing capacity is fine.
	require.NoError(t, svc.Initialize(ctx, room.ID, rng, 4))
	calendar, err = svc.GetCalendar(ctx, room.ID, rng)
	require.NoError(t, err)
	for _, d := range calendar {
		assert.Equal(t, 2, d.BookedRooms)
		assert.Equal(t, 4, d.TotalRooms)
	}
}

func TestUpdatePricingSetAndClear(t *testing.T) {
	svc, room := newTestService(t, 10)
	ctx := context.Background()
	rng := mustRange(t, "2024-12-24", "2024-12-26")

	price := int64(25000)
	require.NoError(t, svc.UpdatePricing(ctx, room.ID, rng, &price))

	calendar, err := svc.GetCalendar(ctx, room.ID, rng)
	require.NoError(t, err)
	for _, d := range calendar {
		require.NotNil(t, d.PriceOverride)
		assert.Equal(t, int64(25000), *d.PriceOverride)
	}

	// nil clears back to rate-card pricing.
	require.NoError(t, svc.UpdatePricing(ctx, room.ID, rng, nil))
	calendar, err = svc.GetCalendar(ctx, room.ID, rng)
	require.NoError(t, err)
	for _, d := range calendar {
		assert.Nil(t, d.PriceOverride)
	}
}

func TestUpdatePricingRejectsNegativeOverride(t *testing.T) {
	svc, room := newTestService(t, 10)
	ctx := context.Background()
	rng := mustRange(t, "2024-12-24", "2024-12-26")

	negative := int64(-100)
	err := svc.UpdatePricing(ctx, room.ID, rng, &negative)
	assert.ErrorIs(t, err, ErrInvalidPriceOverride)

	// The rejected write must not have touched the calendar.
	calendar, err := svc.GetCalendar(ctx, room.ID, rng)
	require.NoError(t, err)
	for _, d := range calendar {
		assert.Nil(t, d.PriceOverride)
	}
}

func TestBlockedRangeReportsZeroAvailable(t *testing.T) {
	svc, room := newTestService(t, 10)
	ctx := context.Background()
	rng := mustRange(t, "2024-07-01", "2024-07-05")

	require.NoError(t, svc.SetBlocked(ctx, room.ID, rng, true))

	calendar, err := svc.GetCalendar(ctx, room.ID, rng)
	require.NoError(t, err)
	for _, d := range calendar {
		assert.Equal(t, 10, d.TotalRooms)
		assert.Equal(t, 0, d.BookedRooms)
		assert.Equal(t, 0, d.AvailableRooms())
	}

	// Blocking does not touch capacity bookkeeping; unblocking restores it.
	require.NoError(t, svc.SetBlocked(ctx, room.ID, rng, false))
	calendar, err = svc.GetCalendar(ctx, room.ID, rng)
	require.NoError(t, err)
	for _, d := range calendar {
		assert.Equal(t, 10, d.AvailableRooms())
	}
}

func TestConfirmBookingOnBlockedRangeFails(t *testing.T) {
	svc, room := newTestService(t, 10)
	ctx := context.Background()
	rng := mustRange(t, "2024-07-01", "2024-07-05")

	require.NoError(t, svc.SetBlocked(ctx, room.ID, rng, true))
	err := svc.ConfirmBooking(ctx, room.ID, rng)
	assert.ErrorIs(t, err, ErrConcurrencyConflict)
}

func TestConfirmBookingPartialRangeLeavesNoTrace(t *testing.T) {
	svc, room := newTestService(t, 10)
	ctx := context.Background()

	// Only the middle night is sold out.
	soldOut := mustRange(t, "2024-06-02", "2024-06-03")
	require.NoError(t, svc.Initialize(ctx, room.ID, soldOut, 1))
	require.NoError(t, svc.ConfirmBooking(ctx, room.ID, soldOut))

	stay := mustRange(t, "2024-06-01", "2024-06-04")
	err := svc.ConfirmBooking(ctx, room.ID, stay)
	assert.ErrorIs(t, err, ErrConcurrencyConflict)

	// The nights around the sold-out day must not have been decremented.
	calendar, err := svc.GetCalendar(ctx, room.ID, stay)
	require.NoError(t, err)
	assert.Equal(t, 0, calendar[0].BookedRooms)
	assert.Equal(t, 1, calendar[1].BookedRooms)
	assert.Equal(t, 0, calendar[2].BookedRooms)
}

func TestConcurrentBookingsNeverOversell(t *testing.T) {
	svc, room := newTestService(t, 10)
	ctx := context.Background()
	rng := mustRange(t, "2024-08-01", "2024-08-02")

	require.NoError(t, svc.Initialize(ctx, room.ID, rng, 1))

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.ConfirmBooking(ctx, room.ID, rng)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrConcurrencyConflict)
		}
	}
	assert.Equal(t, 1, wins, "exactly one booking takes the last room")

	calendar, err := svc.GetCalendar(ctx, room.ID, rng)
	require.NoError(t, err)
	require.Len(t, calendar, 1)
	assert.Equal(t, 1, calendar[0].BookedRooms)
	assert.Equal(t, 1, calendar[0].TotalRooms)
	assert.Equal(t, 0, calendar[0].AvailableRooms())
}

func TestInitializeRacingBookingsKeepsInvariant(t *testing.T) {
	svc, room := newTestService(t, 10)
	ctx := context.Background()
	rng := mustRange(t, "2024-08-01", "2024-08-03")

	require.NoError(t, svc.Initialize(ctx, room.ID, rng, 10))
	// Four rooms already sold before the capacity change is attempted.
	for i := 0; i < 4; i++ {
		require.NoError(t, svc.ConfirmBooking(ctx, room.ID, rng))
	}

	// Shrink capacity to the current booked count while more bookings race
	// in. Whatever interleaving wins, no day may end up with booked_rooms
	// above total_rooms: a shrink that would undercut fails instead.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := svc.Initialize(ctx, room.ID, rng, 4)
		if err != nil {
			assert.ErrorIs(t, err, ErrCapacityConflict)
		}
	}()
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := svc.ConfirmBooking(ctx, room.ID, rng)
			if err != nil {
				assert.ErrorIs(t, err, ErrConcurrencyConflict)
			}
		}()
	}
	wg.Wait()

	calendar, err := svc.GetCalendar(ctx, room.ID, rng)
	require.NoError(t, err)
	for _, d := range calendar {
		assert.GreaterOrEqual(t, d.BookedRooms, 0)
		assert.LessOrEqual(t, d.BookedRooms, d.TotalRooms,
			"capacity invariant broken on %s", d.Date.Format(daterange.DayFormat))
	}
}

func TestReleaseBooking(t *testing.T) {
	svc, room := newTestService(t, 10)
	ctx := context.Background()
	rng := mustRange(t, "2024-09-01", "2024-09-04")

	require.NoError(t, svc.ConfirmBooking(ctx, room.ID, rng))
	require.NoError(t, svc.ReleaseBooking(ctx, room.ID, rng))

	calendar, err := svc.GetCalendar(ctx, room.ID, rng)
	require.NoError(t, err)
	for _, d := range calendar {
		assert.Equal(t, 0, d.BookedRooms)
	}

	// Nothing left to release.
	err = svc.ReleaseBooking(ctx, room.ID, rng)
	assert.ErrorIs(t, err, ErrReleaseConflict)
}

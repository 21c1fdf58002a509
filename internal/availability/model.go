package availability

import (
	"net/http"
	"time"

	"github.com/Edonabdullahu1/city-sub002/internal/pkg/apperror"
)

var (
	// ErrCapacityConflict is returned when re-initializing a range with a
	// total that would undercut rooms already booked on some day.
	ErrCapacityConflict = apperror.New(http.StatusConflict, "total rooms below already booked rooms")

	// ErrConcurrencyConflict is returned when an atomic booking decrement
	// finds no free room on some day of the range. The winning booking of a
	// race keeps the room; the loser gets this.
	ErrConcurrencyConflict = apperror.New(http.StatusConflict, "no rooms available for part of the range")

	// ErrReleaseConflict is returned when releasing a booking on a day that
	// has no booked rooms recorded.
	ErrReleaseConflict = apperror.New(http.StatusConflict, "no booked rooms to release")

	ErrInvalidTotalRooms = apperror.New(http.StatusBadRequest, "total rooms must be zero or positive")

	ErrInvalidPriceOverride = apperror.New(http.StatusBadRequest, "price override must be zero or positive")
)

// Day is the availability record for one (room, calendar day). Rows are
// created lazily: a day nobody has touched is not stored and is served
// with the room's configured defaults instead. Rows are never deleted;
// past days stay around for reporting.
type Day struct {
	RoomID        string
	Date          time.Time
	TotalRooms    int
	BookedRooms   int
	PriceOverride *int64 // minor units; replaces the rate-card nightly price outright
	IsBlocked     bool
}

// AvailableRooms derives sellable capacity. A blocked day sells nothing
// no matter how many rooms are free.
func (d Day) AvailableRooms() int {
	if d.IsBlocked {
		return 0
	}
	return d.TotalRooms - d.BookedRooms
}

package catalog

import (
	"net/http"
	"time"

	"github.com/Edonabdullahu1/city-sub002/internal/pkg/apperror"
)

var (
	ErrHotelNotFound       = apperror.New(http.StatusNotFound, "hotel not found")
	ErrRoomNotFound        = apperror.New(http.StatusNotFound, "room not found")
	ErrRateNotFound        = apperror.New(http.StatusNotFound, "no rate card for room and board")
	ErrFlightBlockNotFound = apperror.New(http.StatusNotFound, "flight block not found")
)

// Board types a rate card can be filed under.
const (
	BoardRoomOnly  = "RO"
	BoardBreakfast = "BB"
	BoardHalf      = "HB"
	BoardFull      = "FB"
	BoardAllIn     = "AI"
)

// Hotel is a bookable property. The catalog is maintained by the back
// office; this service only reads it.
type Hotel struct {
	ID        string
	CityID    string
	Name      string
	Stars     int
	CreatedAt time.Time
}

// Room is a sellable room category within a hotel. RoomType matches the
// occupancy classifier's bucket labels. TotalRooms is the configured
// capacity used when a calendar day has never been touched.
type Room struct {
	ID         string
	HotelID    string
	RoomType   string
	TotalRooms int
	CreatedAt  time.Time
}

// RateCard holds the nightly prices for one (room, board) combination.
// All amounts are minor currency units.
type RateCard struct {
	RoomID     string
	RoomType   string
	Board      string
	Single     int64
	Double     int64
	ExtraBed   int64
	ChildPrice int64
	Currency   string
}

// FlightBlock is a pre-purchased seat block for a destination city.
// Every traveller pays the same seat price, infants included. A SeatPrice
// of 0 means the block carries no negotiated price and the pricing
// policy's default seat price applies; comped seats are not a thing the
// back office sells, so 0 never means free.
type FlightBlock struct {
	ID        string
	CityID    string
	Name      string
	SeatPrice int64
	Seats     int
}

// HotelFilter defines parameters for listing hotels.
type HotelFilter struct {
	CityID   string
	Page     int
	PageSize int
}

package http

import (
	"github.com/Edonabdullahu1/city-sub002/internal/availability"
	"github.com/Edonabdullahu1/city-sub002/internal/daterange"
)

// Mutation actions on a room's calendar.
const (
	ActionInitialize    = "initialize"
	ActionUpdatePricing = "updatePricing"
	ActionSetBlocked    = "setBlocked"
)

// MutateRequest is the admin calendar mutation envelope. Which extra
// fields matter depends on the action: total_rooms for initialize,
// price for updatePricing (null clears the override), is_blocked for
// setBlocked.
type MutateRequest struct {
	Action     string `json:"action" binding:"required,oneof=initialize updatePricing setBlocked"`
	Start      string `json:"start" binding:"required,datetime=2006-01-02"`
	End        string `json:"end" binding:"required,datetime=2006-01-02"`
	TotalRooms *int   `json:"total_rooms" binding:"omitempty,min=0"`
	Price      *int64 `json:"price" binding:"omitempty,min=0"`
	IsBlocked  *bool  `json:"is_blocked"`
}

// BookRequest confirms or releases a stay's rooms.
type BookRequest struct {
	Start string `json:"start" binding:"required,datetime=2006-01-02"`
	End   string `json:"end" binding:"required,datetime=2006-01-02"`
}

// DayResponse is one calendar day on the wire. Price is the admin
// override in minor units, or null when rate-card pricing applies.
type DayResponse struct {
	Date           string `json:"date"`
	TotalRooms     int    `json:"total_rooms"`
	BookedRooms    int    `json:"booked_rooms"`
	AvailableRooms int    `json:"available_rooms"`
	Price          *int64 `json:"price"`
	IsBlocked      bool   `json:"is_blocked"`
}

func NewDayResponse(d availability.Day) DayResponse {
	return DayResponse{
		Date:           d.Date.Format(daterange.DayFormat),
		TotalRooms:     d.TotalRooms,
		BookedRooms:    d.BookedRooms,
		AvailableRooms: d.AvailableRooms(),
		Price:          d.PriceOverride,
		IsBlocked:      d.IsBlocked,
	}
}

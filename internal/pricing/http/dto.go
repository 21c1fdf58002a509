package http

import (
	"github.com/Edonabdullahu1/city-sub002/internal/pricing"
)

// CalculateQuery defines query parameters for the package price
// calculation. Dates are calendar days; child_ages is a comma-separated
// list of ages, one entry per child.
type CalculateQuery struct {
	HotelID       string `form:"hotel_id" binding:"omitempty,uuid"`
	CityID        string `form:"city_id"`
	FlightBlockID string `form:"flight_block_id" binding:"omitempty,uuid"`
	CheckIn       string `form:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut      string `form:"check_out" binding:"required,datetime=2006-01-02"`
	Adults        int    `form:"adults" binding:"required,min=1"`
	ChildAges     string `form:"child_ages"`
	Board         string `form:"board" binding:"omitempty,oneof=RO BB HB FB AI"`
	Transfer      bool   `form:"transfer"`
}

// QuoteResponse is a computed package price on the wire. All amounts are
// minor currency units; the UI divides by 100 for display.
type QuoteResponse struct {
	HotelID        string `json:"hotel_id"`
	HotelName      string `json:"hotel_name"`
	OccupancyLabel string `json:"occupancy_label"`
	Adults         int    `json:"adults"`
	Children       int    `json:"children"`
	RoomType       string `json:"room_type"`
	Board          string `json:"board"`
	Nights         int    `json:"nights"`
	FlightCost     int64  `json:"flight_cost"`
	HotelCost      int64  `json:"hotel_cost"`
	TransferCost   int64  `json:"transfer_cost"`
	TotalCost      int64  `json:"total_cost"`
	Currency       string `json:"currency"`
}

func NewQuoteResponse(q pricing.PackageQuote) QuoteResponse {
	return QuoteResponse{
		HotelID:        q.HotelID,
		HotelName:      q.HotelName,
		OccupancyLabel: q.OccupancyLabel,
		Adults:         q.Adults,
		Children:       q.Children,
		RoomType:       q.RoomType,
		Board:          q.Board,
		Nights:         q.Nights,
		FlightCost:     q.FlightCost,
		HotelCost:      q.HotelCost,
		TransferCost:   q.TransferCost,
		TotalCost:      q.TotalCost,
		Currency:       q.Currency,
	}
}

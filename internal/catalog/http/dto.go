package http

import (
	"github.com/Edonabdullahu1/city-sub002/internal/catalog"
)

// ListHotelsRequest defines query parameters for listing hotels.
type ListHotelsRequest struct {
	CityID   string `form:"city_id"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type HotelResponse struct {
	ID     string `json:"id"`
	CityID string `json:"city_id"`
	Name   string `json:"name"`
	Stars  int    `json:"stars"`
}

func NewHotelResponse(h *catalog.Hotel) HotelResponse {
	return HotelResponse{
		ID:     h.ID,
		CityID: h.CityID,
		Name:   h.Name,
		Stars:  h.Stars,
	}
}

type RoomResponse struct {
	ID         string `json:"id"`
	HotelID    string `json:"hotel_id"`
	RoomType   string `json:"room_type"`
	TotalRooms int    `json:"total_rooms"`
}

func NewRoomResponse(r *catalog.Room) RoomResponse {
	return RoomResponse{
		ID:         r.ID,
		HotelID:    r.HotelID,
		RoomType:   r.RoomType,
		TotalRooms: r.TotalRooms,
	}
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Edonabdullahu1/city-sub002/internal/catalog"
	"github.com/Edonabdullahu1/city-sub002/internal/pkg/request"
	"github.com/Edonabdullahu1/city-sub002/internal/pkg/response"
)

type Handler struct {
	service catalog.Service
}

func NewHandler(service catalog.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListHotels(c *gin.Context) {
	var query ListHotelsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	hotels, total, err := h.service.ListHotels(c.Request.Context(), catalog.HotelFilter{
		CityID:   query.CityID,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]HotelResponse, len(hotels))
	for i, hotel := range hotels {
		items[i] = NewHotelResponse(hotel)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, query.Page, query.PageSize, total))
}

func (h *Handler) GetHotel(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel UUID"})
		return
	}

	hotel, err := h.service.GetHotel(c.Request.Context(), params.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewHotelResponse(hotel))
}

func (h *Handler) ListRooms(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel UUID"})
		return
	}

	rooms, err := h.service.ListRooms(c.Request.Context(), params.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		items[i] = NewRoomResponse(room)
	}
	c.JSON(http.StatusOK, gin.H{"rooms": items})
}

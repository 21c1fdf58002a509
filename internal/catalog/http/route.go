package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/hotels")

	// === Public Routes ===
	{
		group.GET("", h.ListHotels)
		group.GET("/:id", h.GetHotel)
		group.GET("/:id/rooms", h.ListRooms)
	}
}

package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware, agentMiddleware gin.HandlerFunc) {
	group := g.Group("/rooms/:id/availability")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.GetCalendar)

		// Agent portal: booking confirmation and cancellation.
		group.POST("/book", agentMiddleware, h.Book)
		group.POST("/release", agentMiddleware, h.Release)

		// Back office: capacity, pricing and block mutations.
		group.POST("", adminMiddleware, h.Mutate)
	}
}
